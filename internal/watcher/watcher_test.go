package watcher

import (
	"testing"

	"github.com/jezek/xgb"
)

// rawEvent builds a 32-byte core input event as found in RECORD intercept
// data, in the connection's byte order.
func rawEvent(typ, detail byte, rootX, rootY int16, state uint16) []byte {
	buf := make([]byte, deviceEventSize)
	buf[0] = typ
	buf[1] = detail
	xgb.Put16(buf[20:], uint16(rootX))
	xgb.Put16(buf[22:], uint16(rootY))
	xgb.Put16(buf[28:], state)
	return buf
}

func TestParseDeviceEvent(t *testing.T) {
	ev, ok := parseDeviceEvent(rawEvent(evKeyPress, 38, 100, 200, stateMaskShift))
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if ev.Type != evKeyPress || ev.Detail != 38 {
		t.Fatalf("unexpected type/detail: %d/%d", ev.Type, ev.Detail)
	}
	if ev.RootX != 100 || ev.RootY != 200 {
		t.Fatalf("unexpected position: (%d, %d)", ev.RootX, ev.RootY)
	}
	if ev.State&stateMaskShift == 0 {
		t.Fatal("shift bit lost")
	}
}

func TestParseDeviceEventNegativeCoordinates(t *testing.T) {
	ev, ok := parseDeviceEvent(rawEvent(evMotionNotify, 0, -5, -7, 0))
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if ev.RootX != -5 || ev.RootY != -7 {
		t.Fatalf("unexpected position: (%d, %d)", ev.RootX, ev.RootY)
	}
}

func TestParseDeviceEventRejectsNonEvents(t *testing.T) {
	// Replies (0) and errors (1) must not be treated as events.
	if _, ok := parseDeviceEvent(rawEvent(0, 1, 0, 0, 0)); ok {
		t.Fatal("reply data parsed as event")
	}
	if _, ok := parseDeviceEvent(rawEvent(1, 1, 0, 0, 0)); ok {
		t.Fatal("error data parsed as event")
	}
	if _, ok := parseDeviceEvent(rawEvent(7, 1, 0, 0, 0)); ok {
		t.Fatal("out-of-range event code parsed as event")
	}
	if _, ok := parseDeviceEvent(make([]byte, 8)); ok {
		t.Fatal("short buffer parsed as event")
	}
}

func TestParseDeviceEventMasksSendEventBit(t *testing.T) {
	ev, ok := parseDeviceEvent(rawEvent(evButtonPress|0x80, 1, 0, 0, 0))
	if !ok || ev.Type != evButtonPress {
		t.Fatalf("expected masked type %d, got %d (ok=%v)", evButtonPress, ev.Type, ok)
	}
}

func TestDispatchButtonEvents(t *testing.T) {
	w := &Watcher{}
	var events []MouseEvent
	w.OnMouse(func(e MouseEvent) { events = append(events, e) })

	var data []byte
	data = append(data, rawEvent(evMotionNotify, 0, 300, 300, 0)...)
	data = append(data, rawEvent(evButtonPress, 1, 300, 300, 0)...)
	data = append(data, rawEvent(evButtonRelease, 1, 300, 300, 0)...)
	w.dispatch(data)

	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if !events[0].Move || events[0].X != 300 || events[0].Y != 300 {
		t.Fatalf("unexpected motion event: %+v", events[0])
	}
	if !events[1].Down || !events[1].Left() || events[1].Move {
		t.Fatalf("unexpected press event: %+v", events[1])
	}
	if !events[2].Up() || !events[2].Left() {
		t.Fatalf("unexpected release event: %+v", events[2])
	}
}

func TestDispatchTracksPointerPosition(t *testing.T) {
	w := &Watcher{}
	w.OnMouse(func(MouseEvent) {})

	w.dispatch(rawEvent(evMotionNotify, 0, 42, 24, 0))
	if w.pos.X != 42 || w.pos.Y != 24 {
		t.Fatalf("expected pointer (42, 24), got %+v", w.pos)
	}
}

func TestDispatchStopsOnNonEventData(t *testing.T) {
	w := &Watcher{}
	var events []MouseEvent
	w.OnMouse(func(e MouseEvent) { events = append(events, e) })

	var data []byte
	data = append(data, rawEvent(0, 0, 0, 0, 0)...) // reply bytes, unknown alignment
	data = append(data, rawEvent(evButtonPress, 1, 0, 0, 0)...)
	w.dispatch(data)

	if len(events) != 0 {
		t.Fatalf("expected no events after non-event data, got %d", len(events))
	}
}

func TestMouseEventWheel(t *testing.T) {
	if (MouseEvent{Button: buttonWheelUp}).Wheel() != 1 {
		t.Fatal("expected wheel up = +1")
	}
	if (MouseEvent{Button: buttonWheelDown}).Wheel() != -1 {
		t.Fatal("expected wheel down = -1")
	}
	if (MouseEvent{Button: 1}).Wheel() != 0 {
		t.Fatal("expected non-wheel button = 0")
	}
}

func TestKeyEventUp(t *testing.T) {
	if (KeyEvent{Down: true}).Up() {
		t.Fatal("down event reported as up")
	}
	if !(KeyEvent{}).Up() {
		t.Fatal("release event not reported as up")
	}
}
