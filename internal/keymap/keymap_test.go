package keymap

import (
	"errors"
	"testing"
)

func TestParseButtonNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want Button
	}{
		{"-1", ButtonLeft},
		{"-0.5", ButtonLeft},
		{"0", ButtonMiddle},
		{"1", ButtonRight},
		{"3", ButtonRight},
	}
	for _, tc := range cases {
		got, err := ParseButton(tc.in)
		if err != nil {
			t.Fatalf("ParseButton(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseButton(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseButtonNames(t *testing.T) {
	cases := []struct {
		in   string
		want Button
	}{
		{"l", ButtonLeft},
		{"LMB", ButtonLeft},
		{"Left", ButtonLeft},
		{"m", ButtonMiddle},
		{"MMB", ButtonMiddle},
		{"r", ButtonRight},
		{"rmb", ButtonRight},
	}
	for _, tc := range cases {
		got, err := ParseButton(tc.in)
		if err != nil {
			t.Fatalf("ParseButton(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseButton(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseButtonUnknown(t *testing.T) {
	for _, in := range []string{"x", "lmbb", "", "scroll"} {
		if _, err := ParseButton(in); !errors.Is(err, ErrUnknownButton) {
			t.Fatalf("ParseButton(%q): expected ErrUnknownButton, got %v", in, err)
		}
	}
}

func TestButtonCodes(t *testing.T) {
	if ButtonLeft.Code() != "1" || ButtonMiddle.Code() != "2" || ButtonRight.Code() != "3" {
		t.Fatalf("unexpected button codes: %s %s %s",
			ButtonLeft.Code(), ButtonMiddle.Code(), ButtonRight.Code())
	}
}

func TestKeysymForCharacters(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a", "a"},
		{"H", "H"},
		{"7", "7"},
		{"!", "exclam"},
		{" ", "space"},
		{"+", "plus"},
		{"\b", "BackSpace"},
		{"\n", "Return"},
		{"\t", "Tab"},
	}
	for _, tc := range cases {
		got, err := KeysymFor(tc.in)
		if err != nil {
			t.Fatalf("KeysymFor(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("KeysymFor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKeysymForSpecialNames(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"shift", "Shift_L"},
		{"RSHIFT", "Shift_R"},
		{"ctrl", "Control_L"},
		{"Alt", "Alt_L"},
		{"super", "Super_L"},
		{"esc", "Escape"},
		{"pageup", "Prior"},
		{"pagedown", "Next"},
		{"F1", "F1"},
		{"f24", "F24"},
		{"del", "Delete"},
		{"mute", "XF86AudioMute"},
		{"mediaplaypause", "XF86AudioPlay"},
	}
	for _, tc := range cases {
		got, err := KeysymFor(tc.in)
		if err != nil {
			t.Fatalf("KeysymFor(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("KeysymFor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKeysymForUnknown(t *testing.T) {
	for _, in := range []string{"f25", "meta", "notakey", "\x00"} {
		if _, err := KeysymFor(in); !errors.Is(err, ErrUnknownKey) {
			t.Fatalf("KeysymFor(%q): expected ErrUnknownKey, got %v", in, err)
		}
	}
}

func TestKeySequenceChords(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ctrl+d", "Control_L+d"},
		{"shift+h", "Shift_L+h"},
		{"alt+F4", "Alt_L+F4"},
		{"ctrl+shift+esc", "Control_L+Shift_L+Escape"},
		{"+", "plus"},
		{"j", "j"},
	}
	for _, tc := range cases {
		got, err := KeySequence(tc.in)
		if err != nil {
			t.Fatalf("KeySequence(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("KeySequence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKeySequenceRejectsUnknownSegments(t *testing.T) {
	for _, in := range []string{"ctrl+notakey", "meta+a", "ctrl+"} {
		if _, err := KeySequence(in); !errors.Is(err, ErrUnknownKey) {
			t.Fatalf("KeySequence(%q): expected ErrUnknownKey, got %v", in, err)
		}
	}
}
