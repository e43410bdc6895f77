package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/updown/updown-shell/internal/menu"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("add_recent_file",
			mcp.WithDescription("Record a freshly opened document in the recent-files list and rebuild the Open Recent menu"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Absolute path of the opened document")),
		),
		s.handleAddRecentFile,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_opened_file",
			mcp.WithDescription("Return and clear the file path queued by an OS open event before the frontend was ready. Empty when nothing is pending."),
		),
		s.handleGetOpenedFile,
	)

	s.mcp.AddTool(
		mcp.NewTool("install_quicklook",
			mcp.WithDescription("Install the bundled Quick Look extension into ~/Applications and register it (macOS only)"),
		),
		s.handleInstallQuickLook,
	)

	s.mcp.AddTool(
		mcp.NewTool("menu_event",
			mcp.WithDescription("Forward a native menu click by item id (about, open, save, recent_<n>, clear_recent, ...)"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Menu item identifier")),
		),
		s.handleMenuEvent,
	)

	s.mcp.AddTool(
		mcp.NewTool("open_event",
			mcp.WithDescription("Forward an OS file-open notification. Only the first path is used."),
			mcp.WithArray("paths", mcp.Required(), mcp.Description("File paths from the OS open event"),
				mcp.Items(map[string]any{"type": "string"})),
		),
		s.handleOpenEvent,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_recent",
			mcp.WithDescription("List the recent-files entries, most recent first"),
		),
		s.handleListRecent,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_menu_state",
			mcp.WithDescription("Return the current Open Recent submenu items (for a frontend connecting after startup)"),
		),
		s.handleGetMenuState,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_menubar",
			mcp.WithDescription("Return the full menubar model the frontend should construct"),
		),
		s.handleGetMenubar,
	)
}

func (s *Server) handleAddRecentFile(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}
	s.AddRecent(path)
	return mcp.NewToolResultText("ok"), nil
}

func (s *Server) handleGetOpenedFile(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, ok := s.TakeOpened()
	if !ok {
		return mcp.NewToolResultText(""), nil
	}
	return mcp.NewToolResultText(path), nil
}

func (s *Server) handleInstallQuickLook(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	msg, err := s.InstallQuickLook()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleMenuEvent(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	id := stringParam(params, "id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}
	s.MenuEvent(id)
	return mcp.NewToolResultText("ok"), nil
}

func (s *Server) handleOpenEvent(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	paths := stringSliceParam(params, "paths")
	s.OpenEvent(paths)
	return mcp.NewToolResultText("ok"), nil
}

func (s *Server) handleListRecent(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type listResult struct {
		Files []string `yaml:"files"`
	}
	return yamlResult(listResult{Files: s.RecentList()})
}

func (s *Server) handleGetMenuState(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type stateResult struct {
		Items []menu.Item `yaml:"items"`
	}
	return yamlResult(stateResult{Items: s.MenuItems()})
}

func (s *Server) handleGetMenubar(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return yamlResult(s.MenubarModel())
}

// yamlResult serializes v to YAML for the MCP response.
func yamlResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// stringParam extracts a string parameter with a default.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// stringSliceParam extracts a string-array parameter.
func stringSliceParam(params map[string]interface{}, key string) []string {
	raw, ok := params[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
