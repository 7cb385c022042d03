package clipboard

import (
	"errors"
	"strings"
	"testing"
)

func fakeClipboard(available []string, output string) (*Clipboard, *[]string) {
	var calls []string
	c := New("auto")
	c.lookPath = func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
	c.run = func(stdin string, name string, args ...string) ([]byte, error) {
		calls = append(calls, name+" "+strings.Join(args, " ")+" <<< "+stdin)
		return []byte(output), nil
	}
	return c, &calls
}

func TestCopyPrefersXclip(t *testing.T) {
	c, calls := fakeClipboard([]string{"xclip", "xsel"}, "")
	if err := c.Copy("meow"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if (*calls)[0] != "xclip -selection clipboard <<< meow" {
		t.Fatalf("unexpected invocation: %q", (*calls)[0])
	}
}

func TestCopyFallsBackToXsel(t *testing.T) {
	c, calls := fakeClipboard([]string{"xsel"}, "")
	if err := c.Copy("meow"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if (*calls)[0] != "xsel --input --clipboard <<< meow" {
		t.Fatalf("unexpected invocation: %q", (*calls)[0])
	}
}

func TestPaste(t *testing.T) {
	c, calls := fakeClipboard([]string{"xclip"}, "clipboard contents")
	got, err := c.Paste()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "clipboard contents" {
		t.Fatalf("unexpected contents: %q", got)
	}
	if (*calls)[0] != "xclip -selection clipboard -o <<< " {
		t.Fatalf("unexpected invocation: %q", (*calls)[0])
	}
}

func TestExplicitToolMissing(t *testing.T) {
	c, _ := fakeClipboard(nil, "")
	c.tool = "xsel"
	if err := c.Copy("x"); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("expected ErrNotAvailable, got %v", err)
	}
}

func TestNoToolAvailable(t *testing.T) {
	c, _ := fakeClipboard(nil, "")
	if _, err := c.Paste(); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("expected ErrNotAvailable, got %v", err)
	}
}
