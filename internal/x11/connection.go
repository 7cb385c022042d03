// Package x11 holds the X server connection used for the passive side of
// the automation surface: screen geometry, pointer queries, pixel capture
// and held-key checks. Input synthesis never goes through this connection;
// that is the xdotool package's job.
package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/Lonami/autoit/internal/coord"
)

// Connection manages the X11 connection and core X resources.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection establishes a connection to the X11 server.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	// Initialize keybind module (required for keysym lookups)
	keybind.Initialize(xu)

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// ScreenSize returns the dimensions of the default screen.
func (c *Connection) ScreenSize() coord.Size {
	screen := c.XUtil.Screen()
	return coord.Size{
		Width:  int(screen.WidthInPixels),
		Height: int(screen.HeightInPixels),
	}
}

// PointerPosition queries the current pointer position relative to the
// root window.
func (c *Connection) PointerPosition() (coord.Point, error) {
	reply, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return coord.Point{}, err
	}
	return coord.Point{X: int(reply.RootX), Y: int(reply.RootY)}, nil
}

// Close cleanly disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
