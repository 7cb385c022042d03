package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lonami/autoit/internal/config"
	"github.com/Lonami/autoit/internal/eventlog"
	"github.com/Lonami/autoit/internal/watcher"
	"golang.org/x/term"
)

func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: autoit watch [--keyboard] [--mouse] [--log FILE]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print keyboard and mouse events as they happen, without consuming")
		fmt.Fprintln(os.Stderr, "them. Stops on interrupt. With neither --keyboard nor --mouse, both")
		fmt.Fprintln(os.Stderr, "kinds are reported.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	keyboardOnly := fs.Bool("keyboard", false, "Report keyboard events only")
	mouseOnly := fs.Bool("mouse", false, "Report mouse events only")
	logFile := fs.String("log", "", "Also append events to a rotated log file")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "watch takes no arguments")
		fs.Usage()
		return 2
	}

	wantKeys := !*mouseOnly || *keyboardOnly
	wantMouse := !*keyboardOnly || *mouseOnly

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var logger *eventlog.Logger
	path := *logFile
	if path == "" {
		path = cfg.Watch.LogFile
	}
	if path != "" {
		logger, err = eventlog.New(eventlog.Config{
			FilePath:  path,
			MaxSizeMB: cfg.Watch.MaxSizeMB,
			MaxFiles:  cfg.Watch.MaxFiles,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer logger.Close()
	}

	w, err := watcher.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer w.Close()

	// Plain output when piped; positions on a carriage-return line when
	// attached to a terminal so motion does not flood the scrollback.
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if wantKeys {
		w.OnKeyboard(func(e watcher.KeyEvent) {
			if logger != nil {
				logger.LogKey(e)
			}
			action := "press"
			if e.Up() {
				action = "release"
			}
			if isTTY {
				fmt.Print("\r\x1b[K")
			}
			fmt.Printf("key %-7s %s\n", action, e.Name)
		})
	}
	if wantMouse {
		w.OnMouse(func(e watcher.MouseEvent) {
			if logger != nil {
				logger.LogMouse(e)
			}
			switch {
			case e.Move:
				if isTTY {
					fmt.Printf("\r\x1b[Kmouse at %d %d", e.X, e.Y)
				} else {
					fmt.Printf("mouse move %d %d\n", e.X, e.Y)
				}
			case e.Wheel() != 0:
				if e.Down {
					if isTTY {
						fmt.Print("\r\x1b[K")
					}
					fmt.Printf("mouse wheel %+d at %d %d\n", e.Wheel(), e.X, e.Y)
				}
			default:
				action := "press"
				if e.Up() {
					action = "release"
				}
				if isTTY {
					fmt.Print("\r\x1b[K")
				}
				fmt.Printf("mouse %-7s button %d at %d %d\n", action, e.Button, e.X, e.Y)
			}
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := w.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if isTTY {
		fmt.Println()
	}
	return 0
}
