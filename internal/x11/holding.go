package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/Lonami/autoit/internal/keymap"
)

// HoldingKey reports whether any keycode bound to the given keysym name is
// currently pressed, according to the server's key bitmap.
func (c *Connection) HoldingKey(keysym string) (bool, error) {
	keycodes := keybind.StrToKeycodes(c.XUtil, keysym)
	if len(keycodes) == 0 {
		return false, fmt.Errorf("%w: %q", keymap.ErrUnknownKey, keysym)
	}

	reply, err := xproto.QueryKeymap(c.XUtil.Conn()).Reply()
	if err != nil {
		return false, err
	}
	for _, kc := range keycodes {
		if reply.Keys[kc/8]&(1<<(kc%8)) != 0 {
			return true, nil
		}
	}
	return false, nil
}

// HoldingButton reports whether a mouse button is currently held, from the
// pointer's button mask.
func (c *Connection) HoldingButton(button keymap.Button) (bool, error) {
	reply, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return false, err
	}
	var mask uint16
	switch button {
	case keymap.ButtonMiddle:
		mask = xproto.ButtonMask2
	case keymap.ButtonRight:
		mask = xproto.ButtonMask3
	default:
		mask = xproto.ButtonMask1
	}
	return reply.Mask&mask != 0, nil
}
