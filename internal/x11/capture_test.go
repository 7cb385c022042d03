package x11

import (
	"bytes"
	"testing"
)

func TestBgrxToRGB(t *testing.T) {
	// Two pixels: pure red and pure blue in BGRx order.
	data := []byte{
		0x00, 0x00, 0xff, 0x00,
		0xff, 0x00, 0x00, 0x00,
	}
	got := bgrxToRGB(data, 2)
	want := []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0xff}
	if !bytes.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBgrxToRGBTruncatesToPixelCount(t *testing.T) {
	data := make([]byte, 16)
	if got := bgrxToRGB(data, 2); len(got) != 6 {
		t.Fatalf("expected 6 bytes, got %d", len(got))
	}
}

func TestCaptureAt(t *testing.T) {
	s := &Capture{
		Width:  2,
		Height: 2,
		Pix: []byte{
			1, 2, 3, 4, 5, 6,
			7, 8, 9, 10, 11, 12,
		},
	}
	if px := s.At(1, 1); px != (RGB{R: 10, G: 11, B: 12}) {
		t.Fatalf("unexpected pixel: %+v", px)
	}
	if px := s.At(0, 1); px != (RGB{R: 7, G: 8, B: 9}) {
		t.Fatalf("unexpected pixel: %+v", px)
	}
}

func TestCaptureRGBA(t *testing.T) {
	s := &Capture{Width: 1, Height: 1, Pix: []byte{9, 8, 7}}
	img := s.RGBA()
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 9 || g>>8 != 8 || b>>8 != 7 || a>>8 != 0xff {
		t.Fatalf("unexpected RGBA pixel: %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
}
