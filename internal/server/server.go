// Package server exposes the shell's UI-facing commands over MCP and pushes
// backend events (file opened, menu action, menu state) to the frontend.
package server

import (
	"fmt"
	"path/filepath"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/updown/updown-shell/internal/bridge"
	"github.com/updown/updown-shell/internal/handoff"
	"github.com/updown/updown-shell/internal/install"
	"github.com/updown/updown-shell/internal/menu"
	"github.com/updown/updown-shell/internal/recent"
	"github.com/updown/updown-shell/internal/version"
)

// appName is the product name shown in the menubar.
const appName = "UpDown"

// Config holds server configuration.
type Config struct {
	Transport string // stdio, streamable-http
	Port      int    // HTTP port for streamable-http

	DataDir     string
	ResourceDir string
}

// Server wires the shell services to the MCP surface.
type Server struct {
	store      *recent.Store
	mailbox    *handoff.Mailbox
	bridge     *bridge.Bridge
	sync       *menu.Synchronizer
	dispatcher *menu.Dispatcher
	installer  install.Installer
	surface    *menuSurface

	mcp *mcpserver.MCPServer
}

// New builds the shell: loads the persisted recent files, constructs the
// menu once, and registers the command tools.
func New(cfg Config) *Server {
	s := &Server{
		store:   recent.NewStore(filepath.Join(cfg.DataDir, "recent-files.json")),
		mailbox: handoff.NewMailbox(),
	}

	s.mcp = mcpserver.NewMCPServer(
		"updown-shell",
		version.Version,
	)

	notifier := &mcpNotifier{server: s}
	s.surface = newMenuSurface()
	s.bridge = bridge.New(s.mailbox, notifier)
	s.sync = menu.NewSynchronizer(s.surface, s.store)
	s.dispatcher = menu.NewDispatcher(s.store, notifier)
	s.installer = install.New(install.Config{ResourceDir: cfg.ResourceDir})

	// Rebuild after every store mutation, then mirror the submenu state to
	// the frontend. The hook runs outside the store lock.
	s.store.OnChange(func() {
		s.sync.Rebuild()
		s.pushMenuState()
	})

	s.store.Load()
	s.sync.Rebuild() // startup menu construction, exactly once

	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

// AddRecent records a freshly opened document.
func (s *Server) AddRecent(path string) {
	s.store.Add(path)
}

// TakeOpened consumes the pending launch file, if any.
func (s *Server) TakeOpened() (string, bool) {
	return s.mailbox.Take()
}

// InstallQuickLook runs the system-integration installer.
func (s *Server) InstallQuickLook() (string, error) {
	return s.installer.Install()
}

// MenuEvent routes a native menu click by item id.
func (s *Server) MenuEvent(id string) {
	s.dispatcher.Handle(id)
}

// OpenEvent routes an OS file-open notification into the bridge.
func (s *Server) OpenEvent(paths []string) {
	s.bridge.HandleOpen(paths)
}

// RecentList returns a snapshot of the recent-files list.
func (s *Server) RecentList() []string {
	return s.store.All()
}

// MenubarModel returns the full menubar the frontend should construct.
func (s *Server) MenubarModel() menu.Model {
	return menu.Menubar(appName)
}

// MenuItems returns the current "Open Recent" submenu items.
func (s *Server) MenuItems() []menu.Item {
	return s.surface.snapshot()
}
