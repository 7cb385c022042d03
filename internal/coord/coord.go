// Package coord resolves coordinate specifiers into absolute screen pixels.
//
// A specifier axis is one of three kinds: an absolute pixel value, a
// fraction of the screen dimension in [0, 1], or a signed offset from the
// current pointer position. The kind is an explicit tag rather than being
// inferred from the numeric form at resolution time; Infer and Parse apply
// the numeric-form rules once, at the edge.
package coord

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind discriminates how a specifier axis is interpreted.
type Kind int

const (
	// Absolute is a pixel value measured from the screen origin.
	Absolute Kind = iota
	// Fraction is a value in [0, 1] scaled by the screen dimension.
	Fraction
	// Offset is a displacement from the current pointer position.
	Offset
)

func (k Kind) String() string {
	switch k {
	case Absolute:
		return "absolute"
	case Fraction:
		return "fraction"
	case Offset:
		return "offset"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Spec is one axis of a coordinate specifier.
type Spec struct {
	Kind  Kind
	Value float64
}

// Abs returns an absolute-pixel specifier.
func Abs(v float64) Spec { return Spec{Kind: Absolute, Value: v} }

// Frac returns a fraction-of-screen specifier.
func Frac(v float64) Spec { return Spec{Kind: Fraction, Value: v} }

// Off returns a relative-offset specifier. Negative deltas move toward the
// screen origin.
func Off(delta float64) Spec { return Spec{Kind: Offset, Value: delta} }

// Infer classifies an untagged numeric value: values in [0, 1] inclusive
// are fractions of the screen dimension, everything else is an absolute
// pixel value. Offsets are never inferred; they require Off or the "j"
// suffix accepted by Parse.
func Infer(v float64) Spec {
	if v >= 0 && v <= 1 {
		return Frac(v)
	}
	return Abs(v)
}

// Parse converts a textual axis value into a Spec. A trailing "j" marks a
// relative offset ("10j", "-9j"); plain numbers go through Infer.
func Parse(s string) (Spec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Spec{}, fmt.Errorf("empty coordinate value")
	}
	if rel, ok := strings.CutSuffix(s, "j"); ok {
		delta, err := strconv.ParseFloat(rel, 64)
		if err != nil {
			return Spec{}, fmt.Errorf("invalid offset coordinate %q", s)
		}
		return Off(delta), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Spec{}, fmt.Errorf("invalid coordinate %q", s)
	}
	return Infer(v), nil
}

// Point is an absolute pixel position, origin at the top-left corner.
type Point struct {
	X int
	Y int
}

// Size is a screen dimension in pixels.
type Size struct {
	Width  int
	Height int
}

// Resolve maps a two-axis specifier to an absolute pixel position given the
// current screen size and pointer position. It is a pure function of its
// inputs: resolving the same specifier twice with unchanged screen and
// pointer state yields the same result.
//
// Components resolve independently, so absolute and relative axes may be
// mixed. Each resolved component is floored at zero; values beyond the
// screen bound pass through untouched and are left for the input-synthesis
// tool to handle.
func Resolve(x, y Spec, screen Size, pointer Point) Point {
	return Point{
		X: resolveAxis(x, screen.Width, pointer.X),
		Y: resolveAxis(y, screen.Height, pointer.Y),
	}
}

// Clamp restricts p to the screen rectangle. The resolver never calls this
// itself; callers opt in via configuration.
func Clamp(p Point, screen Size) Point {
	if p.X >= screen.Width {
		p.X = screen.Width - 1
	}
	if p.Y >= screen.Height {
		p.Y = screen.Height - 1
	}
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	return p
}

func resolveAxis(s Spec, dim, pos int) int {
	var v int
	switch s.Kind {
	case Offset:
		v = pos + int(math.Round(s.Value))
	case Fraction:
		v = int(math.Round(s.Value * float64(dim)))
	default:
		v = int(math.Round(s.Value))
	}
	if v < 0 {
		v = 0
	}
	return v
}
