package autoit

import (
	"fmt"
	"math"

	"github.com/Lonami/autoit/internal/coord"
	"github.com/Lonami/autoit/internal/x11"
)

// RGB is a captured pixel color.
type RGB = x11.RGB

// Screenshot is a snapshot of a screen region.
type Screenshot = x11.Capture

// Size returns the primary screen's dimensions.
func (s *Session) Size() (Size, error) {
	return s.screenSize()
}

// Color returns the color under the current pointer position. The pointer
// is queried over the X connection; nothing moves and the synthesis tool
// is not involved.
func (s *Session) Color() (RGB, error) {
	conn, err := s.conn()
	if err != nil {
		return RGB{}, err
	}
	p, err := conn.PointerPosition()
	if err != nil {
		return RGB{}, err
	}
	return conn.ColorAt(p)
}

// ColorAt returns the color at the given position without moving the
// pointer. Fractions resolve against the screen, offsets against the
// current pointer position, both queried over the X connection.
func (s *Session) ColorAt(x, y Spec) (RGB, error) {
	conn, err := s.conn()
	if err != nil {
		return RGB{}, err
	}
	p, err := passivePoint(conn, x, y)
	if err != nil {
		return RGB{}, err
	}
	return conn.ColorAt(p)
}

// passivePoint resolves a coordinate pair using only the X connection, so
// that read-only queries never spawn the synthesis tool.
func passivePoint(conn *x11.Connection, x, y Spec) (Point, error) {
	var pointer Point
	if x.Kind == coord.Offset || y.Kind == coord.Offset {
		var err error
		if pointer, err = conn.PointerPosition(); err != nil {
			return Point{}, err
		}
	}
	return coord.Resolve(x, y, conn.ScreenSize(), pointer), nil
}

// Screenshot captures the whole screen.
func (s *Session) Screenshot() (*Screenshot, error) {
	conn, err := s.conn()
	if err != nil {
		return nil, err
	}
	size := conn.ScreenSize()
	return conn.CaptureRegion(0, 0, size.Width, size.Height)
}

// ScreenshotRegion captures a region. Each value may be an absolute pixel
// count or a fraction of the screen dimension; x and width scale by the
// screen width, y and height by the screen height. Offset values are not
// meaningful for regions and are rejected.
func (s *Session) ScreenshotRegion(x, y, width, height Spec) (*Screenshot, error) {
	for _, v := range []Spec{x, y, width, height} {
		if v.Kind == coord.Offset {
			return nil, fmt.Errorf("screenshot regions cannot use offset values")
		}
	}

	conn, err := s.conn()
	if err != nil {
		return nil, err
	}
	size := conn.ScreenSize()
	return conn.CaptureRegion(
		regionValue(x, size.Width),
		regionValue(y, size.Height),
		regionValue(width, size.Width),
		regionValue(height, size.Height),
	)
}

func regionValue(v Spec, dim int) int {
	if v.Kind == coord.Fraction {
		return int(math.Round(v.Value * float64(dim)))
	}
	return int(math.Round(v.Value))
}

// ScreenSize returns the screen dimensions using the default session.
func ScreenSize() (Size, error) {
	s, err := Default()
	if err != nil {
		return Size{}, err
	}
	return s.Size()
}

// Color returns the color under the pointer using the default session.
func Color() (RGB, error) {
	s, err := Default()
	if err != nil {
		return RGB{}, err
	}
	return s.Color()
}
