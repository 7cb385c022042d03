package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Lonami/autoit"
	"github.com/Lonami/autoit/internal/coord"
)

func (s *Server) handleMoveMouse(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveMouseInput) (*mcpsdk.CallToolResult, MoveMouseOutput, error) {
	x, y, err := parseSpecPair(args.X, args.Y)
	if err != nil {
		return nil, MoveMouseOutput{}, err
	}
	if err := s.session.Move(x, y); err != nil {
		return nil, MoveMouseOutput{}, err
	}
	pos, err := s.session.Mouse()
	if err != nil {
		return nil, MoveMouseOutput{}, err
	}
	return nil, MoveMouseOutput{X: pos.X, Y: pos.Y}, nil
}

func (s *Server) handleClick(_ context.Context, _ *mcpsdk.CallToolRequest, args ClickInput) (*mcpsdk.CallToolResult, ClickOutput, error) {
	button := autoit.ButtonLeft
	if args.Button != "" {
		var err error
		if button, err = autoit.ParseButton(args.Button); err != nil {
			return nil, ClickOutput{}, err
		}
	}

	switch {
	case args.X == "" && args.Y == "":
		if err := s.session.Click(button); err != nil {
			return nil, ClickOutput{}, err
		}
	case args.X != "" && args.Y != "":
		x, y, err := parseSpecPair(args.X, args.Y)
		if err != nil {
			return nil, ClickOutput{}, err
		}
		if err := s.session.ClickAt(x, y, button); err != nil {
			return nil, ClickOutput{}, err
		}
	default:
		return nil, ClickOutput{}, fmt.Errorf("x and y must be given together")
	}

	pos, err := s.session.Mouse()
	if err != nil {
		return nil, ClickOutput{}, err
	}
	return nil, ClickOutput{Button: button.String(), X: pos.X, Y: pos.Y}, nil
}

func (s *Server) handlePressKeys(_ context.Context, _ *mcpsdk.CallToolRequest, args PressKeysInput) (*mcpsdk.CallToolResult, PressKeysOutput, error) {
	if len(args.Keys) == 0 {
		return nil, PressKeysOutput{}, fmt.Errorf("keys must not be empty")
	}
	if err := s.session.Press(args.Keys...); err != nil {
		return nil, PressKeysOutput{}, err
	}
	return nil, PressKeysOutput{Pressed: len(args.Keys)}, nil
}

func (s *Server) handleTypeText(_ context.Context, _ *mcpsdk.CallToolRequest, args TypeTextInput) (*mcpsdk.CallToolResult, TypeTextOutput, error) {
	if args.Text == "" {
		return nil, TypeTextOutput{}, fmt.Errorf("text must not be empty")
	}
	if err := s.session.Write(args.Text); err != nil {
		return nil, TypeTextOutput{}, err
	}
	return nil, TypeTextOutput{Typed: len(args.Text)}, nil
}

func (s *Server) handleMousePosition(_ context.Context, _ *mcpsdk.CallToolRequest, _ MousePositionInput) (*mcpsdk.CallToolResult, MousePositionOutput, error) {
	pos, err := s.session.Mouse()
	if err != nil {
		return nil, MousePositionOutput{}, err
	}
	return nil, MousePositionOutput{X: pos.X, Y: pos.Y}, nil
}

func (s *Server) handleScreenSize(_ context.Context, _ *mcpsdk.CallToolRequest, _ ScreenSizeInput) (*mcpsdk.CallToolResult, ScreenSizeOutput, error) {
	size, err := s.session.Size()
	if err != nil {
		return nil, ScreenSizeOutput{}, err
	}
	return nil, ScreenSizeOutput{Width: size.Width, Height: size.Height}, nil
}

func (s *Server) handlePixelColor(_ context.Context, _ *mcpsdk.CallToolRequest, args PixelColorInput) (*mcpsdk.CallToolResult, PixelColorOutput, error) {
	var px autoit.RGB
	var err error
	switch {
	case args.X == nil && args.Y == nil:
		px, err = s.session.Color()
	case args.X != nil && args.Y != nil:
		px, err = s.session.ColorAt(autoit.Abs(float64(*args.X)), autoit.Abs(float64(*args.Y)))
	default:
		return nil, PixelColorOutput{}, fmt.Errorf("x and y must be given together")
	}
	if err != nil {
		return nil, PixelColorOutput{}, err
	}
	return nil, PixelColorOutput{R: px.R, G: px.G, B: px.B}, nil
}

// parseSpecPair parses the textual coordinate notation shared by the
// mouse tools.
func parseSpecPair(xs, ys string) (coord.Spec, coord.Spec, error) {
	x, err := coord.Parse(xs)
	if err != nil {
		return coord.Spec{}, coord.Spec{}, err
	}
	y, err := coord.Parse(ys)
	if err != nil {
		return coord.Spec{}, coord.Spec{}, err
	}
	return x, y, nil
}
