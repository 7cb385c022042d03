package autoit

import "github.com/Lonami/autoit/internal/watcher"

// Observed input events.
type (
	// KeyEvent is a keyboard press or release seen by the watcher.
	KeyEvent = watcher.KeyEvent
	// MouseEvent is a button change or pointer motion seen by the
	// watcher.
	MouseEvent = watcher.MouseEvent
)

// Watcher passively observes keyboard and mouse events of the whole
// session through the X RECORD extension.
type Watcher = watcher.Watcher

// Watch connects a new event watcher. Register handlers with OnKeyboard
// and OnMouse, then call Run; Stop or context cancellation ends delivery.
// The watcher is independent of any Session.
func Watch() (*Watcher, error) {
	return watcher.New()
}
