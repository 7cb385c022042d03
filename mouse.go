package autoit

import (
	"math"

	"github.com/Lonami/autoit/internal/coord"
)

// Mouse returns the current pointer position. Coordinates are absolute,
// starting from (0, 0) at the top-left of the screen.
func (s *Session) Mouse() (Point, error) {
	return s.tool.MouseLocation()
}

// Move warps the pointer to the position described by the specifier. When
// both axes are pointer-relative offsets the displacement is handed to the
// tool directly; any other combination is resolved to an absolute position
// first.
func (s *Session) Move(x, y Spec) error {
	if x.Kind == coord.Offset && y.Kind == coord.Offset && !s.cfg.ClampToScreen {
		return s.tool.MouseMoveRelative(
			int(math.Round(x.Value)),
			int(math.Round(y.Value)),
		)
	}
	p, err := s.resolve(x, y)
	if err != nil {
		return err
	}
	return s.tool.MouseMove(p)
}

// Click presses and releases a mouse button at the current pointer
// position.
func (s *Session) Click(button Button) error {
	return s.tool.Click(button.Code())
}

// ClickAt moves the pointer to the given position, then clicks.
func (s *Session) ClickAt(x, y Spec, button Button) error {
	if err := s.Move(x, y); err != nil {
		return err
	}
	return s.tool.Click(button.Code())
}

// Mouse returns the current pointer position using the default session.
func Mouse() (Point, error) {
	s, err := Default()
	if err != nil {
		return Point{}, err
	}
	return s.Mouse()
}

// Move warps the pointer using the default session.
func Move(x, y Spec) error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.Move(x, y)
}

// Click left-clicks at the current pointer position using the default
// session.
func Click() error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.Click(ButtonLeft)
}

// ClickButton clicks the given button at the current pointer position
// using the default session.
func ClickButton(button Button) error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.Click(button)
}

// ClickAt moves and clicks using the default session.
func ClickAt(x, y Spec, button Button) error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.ClickAt(x, y, button)
}
