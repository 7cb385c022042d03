// Package mcp exposes the automation primitives as MCP tools over stdio,
// so MCP clients can drive the desktop. One tool call maps to one
// primitive invocation; nothing is batched or retried.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Lonami/autoit"
	"github.com/Lonami/autoit/internal/config"
)

const (
	ServerName    = "autoit"
	ServerVersion = "0.1.0"
)

// Server is the MCP server wrapping an automation session.
type Server struct {
	mcpServer *mcpsdk.Server
	session   *autoit.Session
}

// NewServer creates an MCP server backed by a fresh automation session.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		session: autoit.NewWithConfig(cfg),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close releases the underlying session.
func (s *Server) Close() {
	s.session.Close()
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_mouse",
		Description: "Move the mouse pointer. Coordinates may be absolute pixels, fractions of the screen (0..1), or offsets from the current position using a 'j' suffix. Returns the resulting pointer position.",
	}, s.handleMoveMouse)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "click",
		Description: "Click a mouse button, optionally moving the pointer to a target position first. Defaults to a left click at the current position.",
	}, s.handleClick)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "press_keys",
		Description: "Press and release keys in order. Accepts single characters, special key names (shift, ctrl, esc, F1..F24, media keys) and '+'-joined chords such as ctrl+d.",
	}, s.handlePressKeys)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "type_text",
		Description: "Type literal text into the focused window, as fast as the configured typing delay allows.",
	}, s.handleTypeText)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "mouse_position",
		Description: "Get the current mouse pointer position in absolute screen pixels.",
	}, s.handleMousePosition)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "screen_size",
		Description: "Get the screen dimensions in pixels.",
	}, s.handleScreenSize)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "pixel_color",
		Description: "Get the RGB color of a screen pixel, defaulting to the pixel under the mouse pointer.",
	}, s.handlePixelColor)
}
