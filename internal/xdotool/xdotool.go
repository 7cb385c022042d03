// Package xdotool shells out to the xdotool binary for input synthesis.
// Every method is a single synchronous invocation: the process is spawned,
// waited on and its exit status mapped to an error before the call returns.
package xdotool

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/Lonami/autoit/internal/coord"
)

// DefaultPath is the binary looked up in PATH when no explicit path is
// configured.
const DefaultPath = "xdotool"

// ErrNotAvailable is returned when the xdotool binary cannot be found.
var ErrNotAvailable = errors.New("xdotool is not available in PATH")

// runFunc executes a command and returns its stdout. Swappable in tests.
type runFunc func(name string, args ...string) ([]byte, error)

// Tool invokes xdotool subprocesses.
type Tool struct {
	path     string
	run      runFunc
	lookPath func(string) (string, error)
}

// New returns a Tool invoking the binary at path, or DefaultPath when path
// is empty.
func New(path string) *Tool {
	if path == "" {
		path = DefaultPath
	}
	return &Tool{path: path, run: runCommand, lookPath: exec.LookPath}
}

// Available reports whether the xdotool binary can be found.
func (t *Tool) Available() bool {
	_, err := t.lookPath(t.path)
	return err == nil
}

func runCommand(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = "no error output"
			}
			return nil, fmt.Errorf("%s %s exited with status %d: %s",
				name, strings.Join(args, " "), exitErr.ExitCode(), msg)
		}
		return nil, fmt.Errorf("%s failed to start: %w", name, err)
	}
	return stdout.Bytes(), nil
}

func (t *Tool) exec(args ...string) ([]byte, error) {
	if !t.Available() {
		return nil, ErrNotAvailable
	}
	return t.run(t.path, args...)
}

// MouseLocation queries the current pointer position.
func (t *Tool) MouseLocation() (coord.Point, error) {
	out, err := t.exec("getmouselocation")
	if err != nil {
		return coord.Point{}, err
	}
	return parseMouseLocation(string(out))
}

// parseMouseLocation extracts x and y from output shaped like
// "x:140 y:480 screen:0 window:12345678".
func parseMouseLocation(out string) (coord.Point, error) {
	var p coord.Point
	var haveX, haveY bool
	for _, field := range strings.Fields(out) {
		if v, ok := strings.CutPrefix(field, "x:"); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return coord.Point{}, fmt.Errorf("malformed mouse location %q", out)
			}
			p.X, haveX = n, true
		} else if v, ok := strings.CutPrefix(field, "y:"); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return coord.Point{}, fmt.Errorf("malformed mouse location %q", out)
			}
			p.Y, haveY = n, true
		}
	}
	if !haveX || !haveY {
		return coord.Point{}, fmt.Errorf("malformed mouse location %q", out)
	}
	return p, nil
}

// DisplayGeometry queries the screen dimensions.
func (t *Tool) DisplayGeometry() (coord.Size, error) {
	out, err := t.exec("getdisplaygeometry")
	if err != nil {
		return coord.Size{}, err
	}
	fields := strings.Fields(string(out))
	if len(fields) != 2 {
		return coord.Size{}, fmt.Errorf("malformed display geometry %q", out)
	}
	w, errW := strconv.Atoi(fields[0])
	h, errH := strconv.Atoi(fields[1])
	if errW != nil || errH != nil {
		return coord.Size{}, fmt.Errorf("malformed display geometry %q", out)
	}
	return coord.Size{Width: w, Height: h}, nil
}

// MouseMove warps the pointer to an absolute position.
func (t *Tool) MouseMove(p coord.Point) error {
	_, err := t.exec("mousemove", "--", strconv.Itoa(p.X), strconv.Itoa(p.Y))
	return err
}

// MouseMoveRelative displaces the pointer from its current position.
// Deltas may be negative.
func (t *Tool) MouseMoveRelative(dx, dy int) error {
	_, err := t.exec("mousemove_relative", "--", strconv.Itoa(dx), strconv.Itoa(dy))
	return err
}

// Click presses and releases a mouse button at the current position.
func (t *Tool) Click(buttonCode string) error {
	_, err := t.exec("click", buttonCode)
	return err
}

// Key sends one or more key sequences, each pressed and released in order.
func (t *Tool) Key(sequences ...string) error {
	args := append([]string{"key", "--"}, sequences...)
	_, err := t.exec(args...)
	return err
}

// KeyDown presses a key sequence without releasing it.
func (t *Tool) KeyDown(sequence string) error {
	_, err := t.exec("keydown", "--", sequence)
	return err
}

// KeyUp releases a previously held key sequence.
func (t *Tool) KeyUp(sequence string) error {
	_, err := t.exec("keyup", "--", sequence)
	return err
}

// Type sends literal text. A zero delay types as fast as the tool allows.
func (t *Tool) Type(delay time.Duration, text string) error {
	args := []string{"type"}
	if delay > 0 {
		args = append(args, "--delay", strconv.FormatInt(delay.Milliseconds(), 10))
	} else {
		args = append(args, "--delay", "0")
	}
	args = append(args, "--", text)
	_, err := t.exec(args...)
	return err
}
