package mcp

// MoveMouseInput is the input for the move_mouse tool.
type MoveMouseInput struct {
	X string `json:"x" jsonschema:"required,Target x. A plain number is an absolute pixel, a value in [0 1] is a fraction of the screen width, and a 'j' suffix (e.g. '10j' or '-9j') is an offset from the current pointer position."`
	Y string `json:"y" jsonschema:"required,Target y, using the same notation as x against the screen height."`
}

// MoveMouseOutput is the output for the move_mouse tool.
type MoveMouseOutput struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ClickInput is the input for the click tool.
type ClickInput struct {
	X      string `json:"x,omitempty" jsonschema:"Optional target x (same notation as move_mouse). When set, y must be set too and the pointer moves before clicking."`
	Y      string `json:"y,omitempty" jsonschema:"Optional target y."`
	Button string `json:"button,omitempty" jsonschema:"Mouse button: l/lmb/left, m/mmb/middle or r/rmb/right, or a number (negative=left, 0=middle, positive=right). Defaults to the left button."`
}

// ClickOutput is the output for the click tool.
type ClickOutput struct {
	Button string `json:"button"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// PressKeysInput is the input for the press_keys tool.
type PressKeysInput struct {
	Keys []string `json:"keys" jsonschema:"required,Keys to press in order. Single characters, special names like shift/ctrl/esc/F1, or '+'-joined chords like ctrl+d."`
}

// PressKeysOutput is the output for the press_keys tool.
type PressKeysOutput struct {
	Pressed int `json:"pressed"`
}

// TypeTextInput is the input for the type_text tool.
type TypeTextInput struct {
	Text string `json:"text" jsonschema:"required,Text typed as-is into the focused window."`
}

// TypeTextOutput is the output for the type_text tool.
type TypeTextOutput struct {
	Typed int `json:"typed"`
}

// MousePositionInput is the input for the mouse_position tool.
type MousePositionInput struct{}

// MousePositionOutput is the output for the mouse_position tool.
type MousePositionOutput struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ScreenSizeInput is the input for the screen_size tool.
type ScreenSizeInput struct{}

// ScreenSizeOutput is the output for the screen_size tool.
type ScreenSizeOutput struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PixelColorInput is the input for the pixel_color tool.
type PixelColorInput struct {
	X *int `json:"x,omitempty" jsonschema:"Absolute pixel x. Defaults to the current pointer position."`
	Y *int `json:"y,omitempty" jsonschema:"Absolute pixel y. Defaults to the current pointer position."`
}

// PixelColorOutput is the output for the pixel_color tool.
type PixelColorOutput struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}
