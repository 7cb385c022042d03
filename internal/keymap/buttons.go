package keymap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownButton is returned for button names outside the accepted set.
var ErrUnknownButton = errors.New("unknown mouse button")

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

// Code returns the X protocol button code passed to the synthesis tool.
func (b Button) Code() string {
	switch b {
	case ButtonMiddle:
		return "2"
	case ButtonRight:
		return "3"
	default:
		return "1"
	}
}

// ParseButton accepts the button notations of the scripting surface:
// negative numbers, "l", "lmb" or "left" mean the left button; zero, "m",
// "mmb" or "middle" the middle one; positive numbers, "r", "rmb" or "right"
// the right one. Names are case insensitive.
func ParseButton(value string) (Button, error) {
	s := strings.TrimSpace(value)
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		switch {
		case n < 0:
			return ButtonLeft, nil
		case n > 0:
			return ButtonRight, nil
		default:
			return ButtonMiddle, nil
		}
	}
	switch strings.ToLower(s) {
	case "l", "lmb", "left":
		return ButtonLeft, nil
	case "m", "mmb", "middle":
		return ButtonMiddle, nil
	case "r", "rmb", "right":
		return ButtonRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownButton, value)
}
