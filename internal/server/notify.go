package server

import (
	"sync"

	"github.com/updown/updown-shell/internal/menu"
)

// Notification methods pushed to connected frontends. Delivery is
// best-effort: no acknowledgment, no retry, and no client is fine.
const (
	notifyFileOpened = "updown/fileOpened"
	notifyMenuAction = "updown/menuAction"
	notifyMenuState  = "updown/menuState"
)

// mcpNotifier implements bridge.Notifier over MCP notifications.
type mcpNotifier struct {
	server *Server
}

func (n *mcpNotifier) FileOpened(path string) {
	n.server.mcp.SendNotificationToAllClients(notifyFileOpened, map[string]any{
		"path": path,
	})
}

func (n *mcpNotifier) MenuAction(action string) {
	n.server.mcp.SendNotificationToAllClients(notifyMenuAction, map[string]any{
		"action": action,
	})
}

// pushMenuState mirrors the rebuilt "Open Recent" submenu to the frontend,
// which owns the native menu objects.
func (s *Server) pushMenuState() {
	items := s.surface.snapshot()
	entries := make([]map[string]any, len(items))
	for i, it := range items {
		entries[i] = map[string]any{
			"id":        it.ID,
			"label":     it.Label,
			"enabled":   it.Enabled,
			"separator": it.Kind == menu.KindSeparator,
		}
	}
	s.mcp.SendNotificationToAllClients(notifyMenuState, map[string]any{
		"items": entries,
	})
}

// menuSurface is the in-process mirror of the "Open Recent" submenu. The
// native items live in the frontend; this holds the state pushed to it.
type menuSurface struct {
	mu    sync.Mutex
	items []menu.Item
}

func newMenuSurface() *menuSurface {
	return &menuSurface{}
}

func (m *menuSurface) Items() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, len(m.items))
	for i, it := range m.items {
		ids[i] = it.ID
	}
	return ids, nil
}

func (m *menuSurface) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *menuSurface) Append(it menu.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, it)
	return nil
}

func (m *menuSurface) snapshot() []menu.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]menu.Item, len(m.items))
	copy(out, m.items)
	return out
}
