package server

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/updown/updown-shell/internal/menu"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{
		Transport:   "stdio",
		DataDir:     t.TempDir(),
		ResourceDir: filepath.Join(t.TempDir(), "resources"),
	})
}

func TestStartupBuildsPlaceholderMenu(t *testing.T) {
	s := newTestServer(t)

	items := s.MenuItems()
	if len(items) != 1 || items[0].ID != menu.IDNoRecent || items[0].Enabled {
		t.Fatalf("expected one disabled placeholder at startup, got %+v", items)
	}
}

func TestAddRecentRebuildsMenu(t *testing.T) {
	s := newTestServer(t)
	s.AddRecent("/x/b.md")
	s.AddRecent("/x/a.md")

	files := s.RecentList()
	if len(files) != 2 || files[0] != "/x/a.md" {
		t.Fatalf("recent list mismatch: %v", files)
	}

	items := s.MenuItems()
	if len(items) != 4 {
		t.Fatalf("expected 2 entries + separator + clear, got %+v", items)
	}
	if items[0].Label != "a.md" || items[1].Label != "b.md" {
		t.Fatalf("menu labels mismatch: %+v", items)
	}
	if items[3].ID != menu.IDClearRecent {
		t.Fatalf("expected clear item last, got %+v", items)
	}
}

func TestOpenEventFeedsMailbox(t *testing.T) {
	s := newTestServer(t)
	s.OpenEvent([]string{"/docs/first.md", "/docs/second.md"})

	path, ok := s.TakeOpened()
	if !ok || path != "/docs/first.md" {
		t.Fatalf("expected first path, got %q (%v)", path, ok)
	}
	if _, ok := s.TakeOpened(); ok {
		t.Fatal("second take must report empty")
	}
}

func TestMenuEventClearRecent(t *testing.T) {
	s := newTestServer(t)
	s.AddRecent("/x/a.md")

	s.MenuEvent(menu.IDClearRecent)

	if len(s.RecentList()) != 0 {
		t.Fatal("clear_recent should empty the store")
	}
	items := s.MenuItems()
	if len(items) != 1 || items[0].ID != menu.IDNoRecent {
		t.Fatalf("menu should show the placeholder again, got %+v", items)
	}
}

func TestMenuEventRecentEntryWithoutClients(t *testing.T) {
	// No frontend connected: the push is a silent no-op.
	s := newTestServer(t)
	s.AddRecent("/x/a.md")
	s.MenuEvent("recent_0")
}

func TestInstallOffPlatform(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("unsupported-platform path only exists off macOS")
	}
	s := newTestServer(t)
	if _, err := s.InstallQuickLook(); err == nil {
		t.Fatal("expected an unsupported-platform error")
	}
}

func TestMenubarModel(t *testing.T) {
	s := newTestServer(t)
	model := s.MenubarModel()
	if len(model.Submenus) != 5 {
		t.Fatalf("expected 5 submenus, got %d", len(model.Submenus))
	}
}

func TestStringParamHelpers(t *testing.T) {
	params := map[string]interface{}{
		"path":  "/x/a.md",
		"paths": []interface{}{"/x/a.md", "/x/b.md", 3},
	}
	if got := stringParam(params, "path", ""); got != "/x/a.md" {
		t.Fatalf("stringParam = %q", got)
	}
	if got := stringParam(params, "missing", "def"); got != "def" {
		t.Fatalf("stringParam default = %q", got)
	}
	got := stringSliceParam(params, "paths")
	if len(got) != 2 || got[0] != "/x/a.md" || got[1] != "/x/b.md" {
		t.Fatalf("stringSliceParam = %v", got)
	}
	if stringSliceParam(params, "path") != nil {
		t.Fatal("non-array param should yield nil")
	}
}
