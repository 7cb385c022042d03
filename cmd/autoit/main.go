package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Lonami/autoit"
	"github.com/Lonami/autoit/internal/config"
	"github.com/Lonami/autoit/internal/coord"
	"gopkg.in/yaml.v3"
)

var version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "mouse":
		os.Exit(runMouse(os.Args[2:]))
	case "move":
		os.Exit(runMove(os.Args[2:]))
	case "click":
		os.Exit(runClick(os.Args[2:]))
	case "press":
		os.Exit(runPress(os.Args[2:]))
	case "type":
		os.Exit(runType(os.Args[2:]))
	case "hold":
		os.Exit(runHold(os.Args[2:]))
	case "size":
		os.Exit(runSize(os.Args[2:]))
	case "color":
		os.Exit(runColor(os.Args[2:]))
	case "screenshot":
		os.Exit(runScreenshot(os.Args[2:]))
	case "copy":
		os.Exit(runCopy(os.Args[2:]))
	case "paste":
		os.Exit(runPaste(os.Args[2:]))
	case "watch":
		os.Exit(runWatch(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "version":
		fmt.Println(version)
		os.Exit(0)
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: autoit <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  mouse               Print the current pointer position")
	fmt.Fprintln(w, "  move <x> <y>        Move the pointer")
	fmt.Fprintln(w, "  click [x y] [btn]   Click a mouse button, optionally moving first")
	fmt.Fprintln(w, "  press <key>...      Press and release keys")
	fmt.Fprintln(w, "  type <text>...      Type literal text")
	fmt.Fprintln(w, "  hold <key>...       Hold keys for a duration or around a command")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  size                Print the screen dimensions")
	fmt.Fprintln(w, "  color [x y]         Print the pixel color under the pointer or a point")
	fmt.Fprintln(w, "  screenshot          Capture the screen (or a region) as PNG")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  copy <text>         Put text on the clipboard")
	fmt.Fprintln(w, "  paste               Print the clipboard contents")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  watch               Log keyboard and mouse events as they happen")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config show         Print the effective configuration")
	fmt.Fprintln(w, "  config path         Print the configuration file path")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  version             Print the version")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Coordinates may be absolute pixels (140), fractions of the screen (0.5)")
	fmt.Fprintln(w, "or relative offsets with a trailing j (-10j).")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'autoit <command> --help' for command-specific options.")
}

// newSession loads the configuration and opens a session, reporting
// failures in the CLI's error style.
func newSession() (*autoit.Session, int) {
	s, err := autoit.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, 1
	}
	return s, 0
}

func parsePoint(xs, ys string) (x, y autoit.Spec, err error) {
	x, err = coord.Parse(xs)
	if err != nil {
		return x, y, err
	}
	y, err = coord.Parse(ys)
	return x, y, err
}

func runMouse(args []string) int {
	fs := flag.NewFlagSet("mouse", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: autoit mouse")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the current pointer position as 'X Y'.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "mouse takes no arguments")
		fs.Usage()
		return 2
	}

	s, code := newSession()
	if s == nil {
		return code
	}
	defer s.Close()

	p, err := s.Mouse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("%d %d\n", p.X, p.Y)
	return 0
}

func runMove(args []string) int {
	fs := flag.NewFlagSet("move", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: autoit move <x> <y>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Move the pointer. Values may be pixels (140), fractions (0.5)")
		fmt.Fprintln(os.Stderr, "or offsets from the current position (-10j).")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "move takes exactly two arguments")
		fs.Usage()
		return 2
	}

	x, y, err := parsePoint(fs.Arg(0), fs.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	s, code := newSession()
	if s == nil {
		return code
	}
	defer s.Close()

	if err := s.Move(x, y); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runClick(args []string) int {
	fs := flag.NewFlagSet("click", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: autoit click [<x> <y>] [button]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Click a mouse button (default left), optionally moving first.")
		fmt.Fprintln(os.Stderr, "Buttons: l/lmb/left, m/mmb/middle, r/rmb/right, or a number")
		fmt.Fprintln(os.Stderr, "(negative=left, 0=middle, positive=right).")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	button := autoit.ButtonLeft
	var x, y autoit.Spec
	hasPoint := false

	switch fs.NArg() {
	case 0:
	case 1:
		b, err := autoit.ParseButton(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		button = b
	case 2, 3:
		var err error
		x, y, err = parsePoint(fs.Arg(0), fs.Arg(1))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		hasPoint = true
		if fs.NArg() == 3 {
			b, err := autoit.ParseButton(fs.Arg(2))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 2
			}
			button = b
		}
	default:
		fmt.Fprintln(os.Stderr, "click takes at most three arguments")
		fs.Usage()
		return 2
	}

	s, code := newSession()
	if s == nil {
		return code
	}
	defer s.Close()

	var err error
	if hasPoint {
		err = s.ClickAt(x, y, button)
	} else {
		err = s.Click(button)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runPress(args []string) int {
	fs := flag.NewFlagSet("press", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: autoit press <key>...")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Press and release keys in order. Each argument is one key (a")
		fmt.Fprintln(os.Stderr, "character, an escape like \\n, or a name like shift or F2) or a")
		fmt.Fprintln(os.Stderr, "'+'-joined chord such as ctrl+d.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "press requires at least one key")
		fs.Usage()
		return 2
	}

	s, code := newSession()
	if s == nil {
		return code
	}
	defer s.Close()

	if err := s.Press(fs.Args()...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runType(args []string) int {
	fs := flag.NewFlagSet("type", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: autoit type [--sep S] [--end S] <text>...")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Type the arguments as literal text.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	sep := fs.String("sep", " ", "Separator inserted between arguments")
	end := fs.String("end", "", "Text typed after the arguments")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "type requires at least one argument")
		fs.Usage()
		return 2
	}

	s, code := newSession()
	if s == nil {
		return code
	}
	defer s.Close()

	opts := autoit.WriteOptions{Sep: *sep, End: *end}
	if err := s.WriteOpts(opts, fs.Args()...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// splitHoldArgs separates the keys to hold from an optional command
// introduced by "--".
func splitHoldArgs(args []string) (keys, command []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func runHold(args []string) int {
	fs := flag.NewFlagSet("hold", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: autoit hold [--for D] <key>... [-- <command> [args...]]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Hold the keys down, then release them. With a trailing command the")
		fmt.Fprintln(os.Stderr, "keys stay held while that command runs; otherwise they are held")
		fmt.Fprintln(os.Stderr, "for the --for duration.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	holdFor := fs.Duration("for", 500*time.Millisecond, "How long to hold the keys")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	keys, cmdArgs := splitHoldArgs(fs.Args())
	if len(keys) == 0 {
		fmt.Fprintln(os.Stderr, "hold requires at least one key")
		fs.Usage()
		return 2
	}

	s, code := newSession()
	if s == nil {
		return code
	}
	defer s.Close()

	release, err := s.Hold(keys...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ret := 0
	if len(cmdArgs) > 0 {
		cmd := exec.Command(cmdArgs[0], cmdArgs[1:]...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				ret = exitErr.ExitCode()
			} else {
				fmt.Fprintln(os.Stderr, err)
				ret = 1
			}
		}
	} else {
		time.Sleep(*holdFor)
	}

	if err := release(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if ret == 0 {
			ret = 1
		}
	}
	return ret
}

func runSize(args []string) int {
	fs := flag.NewFlagSet("size", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: autoit size")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the screen dimensions as 'WIDTH HEIGHT'.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "size takes no arguments")
		fs.Usage()
		return 2
	}

	s, code := newSession()
	if s == nil {
		return code
	}
	defer s.Close()

	size, err := s.Size()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("%d %d\n", size.Width, size.Height)
	return 0
}

func runColor(args []string) int {
	fs := flag.NewFlagSet("color", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: autoit color [<x> <y>]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the pixel color at the pointer (or the given point) as")
		fmt.Fprintln(os.Stderr, "'#RRGGBB R G B'. The pointer is not moved.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 && fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "color takes zero or two arguments")
		fs.Usage()
		return 2
	}

	s, code := newSession()
	if s == nil {
		return code
	}
	defer s.Close()

	var (
		c   autoit.RGB
		err error
	)
	if fs.NArg() == 2 {
		var x, y autoit.Spec
		x, y, err = parsePoint(fs.Arg(0), fs.Arg(1))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		c, err = s.ColorAt(x, y)
	} else {
		c, err = s.Color()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("#%02x%02x%02x %d %d %d\n", c.R, c.G, c.B, c.R, c.G, c.B)
	return 0
}

func runCopy(args []string) int {
	fs := flag.NewFlagSet("copy", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: autoit copy <text>...")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Put the arguments (joined with spaces) on the clipboard.")
		fmt.Fprintln(os.Stderr, "With no arguments, copy standard input.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	var text string
	if fs.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		text = string(data)
	} else {
		text = strings.Join(fs.Args(), " ")
	}

	s, code := newSession()
	if s == nil {
		return code
	}
	defer s.Close()

	if err := s.Copy(text); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runPaste(args []string) int {
	fs := flag.NewFlagSet("paste", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: autoit paste")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the clipboard contents.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "paste takes no arguments")
		fs.Usage()
		return 2
	}

	s, code := newSession()
	if s == nil {
		return code
	}
	defer s.Close()

	text, err := s.Paste()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Print(text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Println()
	}
	return 0
}

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: autoit config <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  show    Print the effective configuration as YAML")
	fmt.Fprintln(w, "  path    Print the configuration file path")
}

func runConfig(args []string) int {
	if len(args) == 0 {
		printConfigUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "show":
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		os.Stdout.Write(out)
		return 0
	case "path":
		path, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(path)
		return 0
	case "help", "-h", "--help":
		printConfigUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n\n", args[0])
		printConfigUsage(os.Stderr)
		return 2
	}
}
