// Package keymap translates scripting-surface key and button names into the
// keysym and button-code vocabulary understood by the input-synthesis tool.
// The tables are immutable and initialized at process start; misses are
// reported as errors instead of being passed through silently.
package keymap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned when a key name maps to no known keysym.
var ErrUnknownKey = errors.New("unknown key")

// charKeysyms maps single printable characters and escape sequences to the
// keysym names the synthesis tool expects. Letters and digits pass through
// as themselves and are not listed.
var charKeysyms = map[rune]string{
	' ':  "space",
	'!':  "exclam",
	'"':  "quotedbl",
	'#':  "numbersign",
	'$':  "dollar",
	'%':  "percent",
	'&':  "ampersand",
	'\'': "quoteright",
	'(':  "parenleft",
	')':  "parenright",
	'*':  "asterisk",
	'+':  "plus",
	',':  "comma",
	'-':  "minus",
	'.':  "period",
	'/':  "slash",
	':':  "colon",
	';':  "semicolon",
	'<':  "less",
	'=':  "equal",
	'>':  "greater",
	'?':  "question",
	'@':  "at",
	'[':  "bracketleft",
	'\\': "backslash",
	']':  "bracketright",
	'^':  "asciicircum",
	'_':  "underscore",
	'`':  "quoteleft",
	'{':  "braceleft",
	'|':  "bar",
	'}':  "braceright",
	'~':  "asciitilde",
	'\b': "BackSpace",
	'\n': "Return",
	'\t': "Tab",
}

// namedKeysyms maps the case-insensitive special key names of the scripting
// surface to X keysym names, media keys included.
var namedKeysyms = map[string]string{
	"shift":          "Shift_L",
	"lshift":         "Shift_L",
	"rshift":         "Shift_R",
	"ctrl":           "Control_L",
	"lctrl":          "Control_L",
	"rctrl":          "Control_R",
	"alt":            "Alt_L",
	"lalt":           "Alt_L",
	"ralt":           "Alt_R",
	"super":          "Super_L",
	"capslock":       "Caps_Lock",
	"numlock":        "Num_Lock",
	"scrolllock":     "Scroll_Lock",
	"esc":            "Escape",
	"pageup":         "Prior",
	"pagedown":       "Next",
	"end":            "End",
	"home":           "Home",
	"left":           "Left",
	"up":             "Up",
	"right":          "Right",
	"down":           "Down",
	"ins":            "Insert",
	"del":            "Delete",
	"prscr":          "Print",
	"mute":           "XF86AudioMute",
	"voldown":        "XF86AudioLowerVolume",
	"volup":          "XF86AudioRaiseVolume",
	"medianext":      "XF86AudioNext",
	"mediaprev":      "XF86AudioPrev",
	"mediastop":      "XF86AudioStop",
	"mediaplaypause": "XF86AudioPlay",
}

func init() {
	for n := 1; n <= 24; n++ {
		namedKeysyms[fmt.Sprintf("f%d", n)] = fmt.Sprintf("F%d", n)
	}
}

// KeysymFor translates a single key (a printable character, an escape
// sequence or a special key name) into its keysym name.
func KeysymFor(key string) (string, error) {
	runes := []rune(key)
	if len(runes) == 1 {
		r := runes[0]
		if sym, ok := charKeysyms[r]; ok {
			return sym, nil
		}
		if isPlainChar(r) {
			return string(r), nil
		}
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if sym, ok := namedKeysyms[strings.ToLower(key)]; ok {
		return sym, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// KeySequence translates a key argument into the synthesis tool's key
// sequence form. Segments joined by "+" are chords held together, so
// "ctrl+d" becomes "Control_L+d".
func KeySequence(key string) (string, error) {
	if sym, err := KeysymFor(key); err == nil {
		return sym, nil
	} else if !strings.Contains(key, "+") {
		return "", err
	}
	parts := strings.Split(key, "+")
	syms := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		sym, err := KeysymFor(part)
		if err != nil {
			return "", err
		}
		syms = append(syms, sym)
	}
	return strings.Join(syms, "+"), nil
}

func isPlainChar(r rune) bool {
	// Anything printable past the table works as a keysym on its own:
	// letters, digits and unicode characters the tool resolves itself.
	return r > ' ' && r != 0x7f
}
