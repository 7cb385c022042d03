package watcher

import (
	"github.com/jezek/xgb"

	"github.com/Lonami/autoit/internal/coord"
)

// X core protocol event codes observed by the watcher.
const (
	evKeyPress      = 2
	evKeyRelease    = 3
	evButtonPress   = 4
	evButtonRelease = 5
	evMotionNotify  = 6
)

// State mask bits of core input events.
const (
	stateMaskShift uint16 = 1 << 0
	stateMaskLock  uint16 = 1 << 1
)

// X core button codes for the wheel.
const (
	buttonWheelUp   = 4
	buttonWheelDown = 5
)

// KeyEvent is a single observed keyboard transition.
type KeyEvent struct {
	// Sym is the X keysym selected for the pressed keycode, with the
	// shift and caps state of the event applied.
	Sym uint32
	// Name is the keysym's name, e.g. "a", "H" or "Escape".
	Name string
	// Down is true for a press, false for a release.
	Down bool
	// Shift reports whether a shift modifier was active.
	Shift bool
	// Caps reports whether caps lock was active.
	Caps bool
}

// Up is the complement of Down.
func (e KeyEvent) Up() bool { return !e.Down }

// MouseEvent is a single observed pointer transition: a button change or
// a motion.
type MouseEvent struct {
	// Button is the raw X button code; zero for pure motion events.
	Button byte
	// Down is true when the button was pressed, false when released.
	// Meaningless for motion events.
	Down bool
	// Move is true for motion events.
	Move bool
	// X, Y is the pointer position on screen.
	X int
	Y int
}

// Up is the complement of Down.
func (e MouseEvent) Up() bool { return !e.Down }

// Left reports whether the event concerns the left button.
func (e MouseEvent) Left() bool { return e.Button == 1 }

// Middle reports whether the event concerns the middle button.
func (e MouseEvent) Middle() bool { return e.Button == 2 }

// Right reports whether the event concerns the right button.
func (e MouseEvent) Right() bool { return e.Button == 3 }

// Wheel returns +1 for a scroll up, -1 for a scroll down, 0 otherwise.
func (e MouseEvent) Wheel() int {
	switch e.Button {
	case buttonWheelUp:
		return 1
	case buttonWheelDown:
		return -1
	default:
		return 0
	}
}

// Pos returns the event position as a point.
func (e MouseEvent) Pos() coord.Point { return coord.Point{X: e.X, Y: e.Y} }

// deviceEvent is the wire form of a 32-byte core input event as it appears
// inside RECORD reply data.
type deviceEvent struct {
	Type   byte
	Detail byte
	RootX  int16
	RootY  int16
	State  uint16
}

const deviceEventSize = 32

// parseDeviceEvent decodes one core event from RECORD intercept data.
// Layout per the core protocol: code, detail, sequence(2), time(4),
// root(4), event(4), child(4), root-x(2), root-y(2), event-x(2),
// event-y(2), state(2), same-screen, pad. Multi-byte fields use the byte
// order the client requested at connection setup, which xgb fixes to
// little-endian on every host; xgb.Get16 matches it.
func parseDeviceEvent(data []byte) (deviceEvent, bool) {
	if len(data) < deviceEventSize {
		return deviceEvent{}, false
	}
	typ := data[0] & 0x7f
	if typ < evKeyPress || typ > evMotionNotify {
		return deviceEvent{}, false
	}
	return deviceEvent{
		Type:   typ,
		Detail: data[1],
		RootX:  int16(xgb.Get16(data[20:])),
		RootY:  int16(xgb.Get16(data[22:])),
		State:  xgb.Get16(data[28:]),
	}, true
}
