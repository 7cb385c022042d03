// Package autoit automates the desktop: move the mouse, click, type text
// or press key combinations, observe input events.
//
// Input synthesis shells out to xdotool, so an X session and the xdotool
// binary are required. Passive observation (pixel colors, held keys, the
// event watcher) talks to the X server directly.
//
// Wherever a mouse button is expected the notations -1/"l"/"lmb" (left),
// 0/"m"/"mmb" (middle) and +1/"r"/"rmb" (right) are accepted, case
// insensitive. Wherever a key is expected, use the character itself ("!"),
// the escape sequences "\b", "\n" and "\t", special names such as "shift",
// "ctrl", "alt", "super", "esc", "F1".."F24" or media keys ("mute",
// "volup", "mediaplaypause"), and "+"-joined chords like "ctrl+d".
//
// Coordinates may be absolute pixels, fractions of the screen in [0, 1],
// or offsets from the current pointer position:
//
//	autoit.Move(autoit.Abs(120), autoit.Abs(240))
//	autoit.Move(autoit.Frac(0.5), autoit.Frac(0.5)) // screen center
//	autoit.Move(autoit.Off(-10), autoit.Off(0))     // nudge left
package autoit

import (
	"sync"
	"time"

	"github.com/Lonami/autoit/internal/clipboard"
	"github.com/Lonami/autoit/internal/config"
	"github.com/Lonami/autoit/internal/coord"
	"github.com/Lonami/autoit/internal/keymap"
	"github.com/Lonami/autoit/internal/x11"
	"github.com/Lonami/autoit/internal/xdotool"
)

// Re-exported coordinate vocabulary.
type (
	// Spec is one axis of a coordinate specifier.
	Spec = coord.Spec
	// Point is an absolute pixel position.
	Point = coord.Point
	// Size is a screen dimension.
	Size = coord.Size
	// Button identifies a mouse button.
	Button = keymap.Button
)

// Coordinate constructors, re-exported from the resolver.
var (
	// Abs builds an absolute-pixel axis value.
	Abs = coord.Abs
	// Frac builds a fraction-of-screen axis value.
	Frac = coord.Frac
	// Off builds a pointer-relative axis value.
	Off = coord.Off
)

// Mouse buttons.
const (
	ButtonLeft   = keymap.ButtonLeft
	ButtonMiddle = keymap.ButtonMiddle
	ButtonRight  = keymap.ButtonRight
)

// Argument and environment errors.
var (
	ErrUnknownKey            = keymap.ErrUnknownKey
	ErrUnknownButton         = keymap.ErrUnknownButton
	ErrXdotoolNotAvailable   = xdotool.ErrNotAvailable
	ErrClipboardNotAvailable = clipboard.ErrNotAvailable
)

// ParseButton converts the accepted button notations into a Button.
func ParseButton(value string) (Button, error) { return keymap.ParseButton(value) }

// synthesizer is the process boundary to the input-synthesis tool.
// *xdotool.Tool implements it; tests substitute a fake.
type synthesizer interface {
	MouseLocation() (coord.Point, error)
	DisplayGeometry() (coord.Size, error)
	MouseMove(coord.Point) error
	MouseMoveRelative(dx, dy int) error
	Click(buttonCode string) error
	Key(sequences ...string) error
	KeyDown(sequence string) error
	KeyUp(sequence string) error
	Type(delay time.Duration, text string) error
}

// Session bundles the configuration, the synthesis tool and a lazily
// opened X connection. Calls are synchronous and independent; concurrent
// calls from multiple goroutines are not ordered with respect to each
// other.
type Session struct {
	cfg  *config.Config
	tool synthesizer
	clip *clipboard.Clipboard

	mu     sync.Mutex
	x      *x11.Connection
	screen *coord.Size
}

// New creates a session from the user configuration file, falling back to
// defaults when none exists.
func New() (*Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg), nil
}

// NewWithConfig creates a session from an explicit configuration.
func NewWithConfig(cfg *config.Config) *Session {
	return &Session{
		cfg:  cfg,
		tool: xdotool.New(cfg.XdotoolPath),
		clip: clipboard.New(string(cfg.Clipboard)),
	}
}

// Close releases the session's X connection, if one was opened.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.x != nil {
		s.x.Close()
		s.x = nil
	}
}

// conn returns the lazily opened X connection.
func (s *Session) conn() (*x11.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.x == nil {
		c, err := x11.NewConnection()
		if err != nil {
			return nil, err
		}
		s.x = c
	}
	return s.x, nil
}

// screenSize returns the screen dimensions, queried once per session.
func (s *Session) screenSize() (coord.Size, error) {
	s.mu.Lock()
	if s.screen != nil {
		size := *s.screen
		s.mu.Unlock()
		return size, nil
	}
	s.mu.Unlock()

	size, err := s.tool.DisplayGeometry()
	if err != nil {
		return coord.Size{}, err
	}

	s.mu.Lock()
	s.screen = &size
	s.mu.Unlock()
	return size, nil
}

// resolve turns a coordinate specifier into an absolute position, querying
// screen size and pointer position only when the specifier needs them.
func (s *Session) resolve(x, y coord.Spec) (coord.Point, error) {
	var screen coord.Size
	var pointer coord.Point

	if x.Kind == coord.Fraction || y.Kind == coord.Fraction || s.cfg.ClampToScreen {
		var err error
		if screen, err = s.screenSize(); err != nil {
			return coord.Point{}, err
		}
	}
	if x.Kind == coord.Offset || y.Kind == coord.Offset {
		var err error
		if pointer, err = s.tool.MouseLocation(); err != nil {
			return coord.Point{}, err
		}
	}

	p := coord.Resolve(x, y, screen, pointer)
	if s.cfg.ClampToScreen {
		p = coord.Clamp(p, screen)
	}
	return p, nil
}

// defaultSession backs the package-level convenience functions.
var (
	defaultSession     *Session
	defaultSessionErr  error
	defaultSessionOnce sync.Once
)

// Default returns the shared session used by the package-level functions.
func Default() (*Session, error) {
	defaultSessionOnce.Do(func() {
		defaultSession, defaultSessionErr = New()
	})
	return defaultSession, defaultSessionErr
}
