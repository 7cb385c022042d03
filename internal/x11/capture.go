package x11

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/Lonami/autoit/internal/coord"
)

// RGB is a single captured pixel.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Capture is a snapshot of a rectangular screen region. Pixels are stored
// as packed RGB triplets in row-major order.
type Capture struct {
	X      int
	Y      int
	Width  int
	Height int
	Pix    []byte

	conn *Connection
}

// ColorAt returns the color of the single pixel at an absolute position.
func (c *Connection) ColorAt(p coord.Point) (RGB, error) {
	capture, err := c.CaptureRegion(p.X, p.Y, 1, 1)
	if err != nil {
		return RGB{}, err
	}
	return capture.At(0, 0), nil
}

// CaptureRegion grabs the pixels of a screen region via GetImage.
func (c *Connection) CaptureRegion(x, y, width, height int) (*Capture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid capture region %dx%d", width, height)
	}
	capture := &Capture{X: x, Y: y, Width: width, Height: height, conn: c}
	if err := capture.Refresh(); err != nil {
		return nil, err
	}
	return capture, nil
}

// Refresh re-reads the same region from the current screen contents.
func (s *Capture) Refresh() error {
	reply, err := xproto.GetImage(
		s.conn.XUtil.Conn(),
		xproto.ImageFormatZPixmap,
		xproto.Drawable(s.conn.Root),
		int16(s.X), int16(s.Y),
		uint16(s.Width), uint16(s.Height),
		^uint32(0),
	).Reply()
	if err != nil {
		return err
	}
	s.Pix = bgrxToRGB(reply.Data, s.Width*s.Height)
	return nil
}

// At returns the pixel at coordinates relative to the capture origin.
func (s *Capture) At(x, y int) RGB {
	i := (y*s.Width + x) * 3
	return RGB{R: s.Pix[i], G: s.Pix[i+1], B: s.Pix[i+2]}
}

// RGBA converts the capture into a standard library image.
func (s *Capture) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	for i := 0; i < s.Width*s.Height; i++ {
		img.Pix[i*4+0] = s.Pix[i*3+0]
		img.Pix[i*4+1] = s.Pix[i*3+1]
		img.Pix[i*4+2] = s.Pix[i*3+2]
		img.Pix[i*4+3] = 0xff
	}
	return img
}

// bgrxToRGB repacks the BGRx pixel data returned by the X server for
// 24/32-bit visuals into RGB triplets.
func bgrxToRGB(data []byte, pixels int) []byte {
	out := make([]byte, 0, pixels*3)
	for i := 0; i+3 < len(data) && len(out) < pixels*3; i += 4 {
		out = append(out, data[i+2], data[i+1], data[i])
	}
	return out
}
