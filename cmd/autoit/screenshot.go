package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/Lonami/autoit"
	"github.com/Lonami/autoit/internal/coord"
)

func runScreenshot(args []string) int {
	fs := flag.NewFlagSet("screenshot", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: autoit screenshot [-o FILE] [<x> <y> <width> <height>]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Capture the whole screen, or a region, and write it as PNG.")
		fmt.Fprintln(os.Stderr, "Region values may be pixels or fractions of the screen.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	out := fs.String("o", "", "Output file (default standard output)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 && fs.NArg() != 4 {
		fmt.Fprintln(os.Stderr, "screenshot takes zero or four arguments")
		fs.Usage()
		return 2
	}

	s, code := newSession()
	if s == nil {
		return code
	}
	defer s.Close()

	var (
		shot *autoit.Screenshot
		err  error
	)
	if fs.NArg() == 4 {
		var specs [4]autoit.Spec
		for i := range specs {
			specs[i], err = coord.Parse(fs.Arg(i))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 2
			}
		}
		shot, err = s.ScreenshotRegion(specs[0], specs[1], specs[2], specs[3])
	} else {
		shot, err = s.Screenshot()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	w := os.Stdout
	if *out != "" {
		w, err = os.Create(*out)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer w.Close()
	}

	if err := png.Encode(w, shot.RGBA()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
