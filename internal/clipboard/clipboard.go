// Package clipboard reads and writes the X clipboard selection through the
// xclip or xsel helper binaries.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotAvailable is returned when neither xclip nor xsel is installed.
var ErrNotAvailable = errors.New("no clipboard tool available (install xclip or xsel)")

// Clipboard wraps an external clipboard helper.
type Clipboard struct {
	tool     string // "xclip", "xsel" or "" for auto-detection
	lookPath func(string) (string, error)
	run      func(stdin string, name string, args ...string) ([]byte, error)
}

// New returns a Clipboard using the named helper, or auto-detection when
// tool is empty or "auto".
func New(tool string) *Clipboard {
	if tool == "auto" {
		tool = ""
	}
	return &Clipboard{tool: tool, lookPath: exec.LookPath, run: runCommand}
}

func runCommand(stdin string, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
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
			return nil, fmt.Errorf("%s exited with status %d: %s",
				name, exitErr.ExitCode(), msg)
		}
		return nil, fmt.Errorf("%s failed to start: %w", name, err)
	}
	return stdout.Bytes(), nil
}

// detect resolves the helper binary to use.
func (c *Clipboard) detect() (string, error) {
	if c.tool != "" {
		if _, err := c.lookPath(c.tool); err != nil {
			return "", fmt.Errorf("%w: %s not found", ErrNotAvailable, c.tool)
		}
		return c.tool, nil
	}
	for _, tool := range []string{"xclip", "xsel"} {
		if _, err := c.lookPath(tool); err == nil {
			return tool, nil
		}
	}
	return "", ErrNotAvailable
}

// Copy places text on the clipboard selection.
func (c *Clipboard) Copy(text string) error {
	tool, err := c.detect()
	if err != nil {
		return err
	}
	switch tool {
	case "xsel":
		_, err = c.run(text, "xsel", "--input", "--clipboard")
	default:
		_, err = c.run(text, "xclip", "-selection", "clipboard")
	}
	return err
}

// Paste returns the current clipboard contents.
func (c *Clipboard) Paste() (string, error) {
	tool, err := c.detect()
	if err != nil {
		return "", err
	}
	var out []byte
	switch tool {
	case "xsel":
		out, err = c.run("", "xsel", "--output", "--clipboard")
	default:
		out, err = c.run("", "xclip", "-selection", "clipboard", "-o")
	}
	if err != nil {
		return "", err
	}
	return string(out), nil
}
