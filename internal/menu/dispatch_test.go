package menu

import (
	"path/filepath"
	"testing"

	"github.com/updown/updown-shell/internal/recent"
)

type fakeNotifier struct {
	opened  []string
	actions []string
}

func (f *fakeNotifier) FileOpened(path string)   { f.opened = append(f.opened, path) }
func (f *fakeNotifier) MenuAction(action string) { f.actions = append(f.actions, action) }

func newDispatchFixture(t *testing.T) (*Dispatcher, *fakeNotifier, *recent.Store) {
	t.Helper()
	store := recent.NewStore(filepath.Join(t.TempDir(), "recent-files.json"))
	notifier := &fakeNotifier{}
	return NewDispatcher(store, notifier), notifier, store
}

func TestHandleMenuActions(t *testing.T) {
	tests := []struct {
		id     string
		action string
	}{
		{IDAbout, "about"},
		{IDInstallQuickLook, "installQuickLook"},
		{IDOpen, "open"},
		{IDSave, "save"},
		{IDSaveAs, "saveAs"},
		{IDToggleFolder, "toggleFolder"},
		{IDViewSource, "viewSource"},
		{IDViewPreview, "viewPreview"},
		{IDViewSplit, "viewSplit"},
	}
	d, notifier, _ := newDispatchFixture(t)
	for _, tt := range tests {
		d.Handle(tt.id)
	}
	if len(notifier.actions) != len(tests) {
		t.Fatalf("expected %d actions, got %v", len(tests), notifier.actions)
	}
	for i, tt := range tests {
		if notifier.actions[i] != tt.action {
			t.Errorf("id %q: expected action %q, got %q", tt.id, tt.action, notifier.actions[i])
		}
	}
}

func TestHandleRecentEntryOpensFile(t *testing.T) {
	d, notifier, store := newDispatchFixture(t)
	store.Add("/x/b.md")
	store.Add("/x/a.md")

	d.Handle("recent_1")

	if len(notifier.opened) != 1 || notifier.opened[0] != "/x/b.md" {
		t.Fatalf("expected open of /x/b.md, got %v", notifier.opened)
	}
}

func TestHandleRecentOutOfRange(t *testing.T) {
	d, notifier, store := newDispatchFixture(t)
	store.Add("/x/a.md")

	d.Handle("recent_5")

	if len(notifier.opened) != 0 {
		t.Fatalf("out-of-range entry should be ignored, got %v", notifier.opened)
	}
}

func TestHandleClearRecent(t *testing.T) {
	d, _, store := newDispatchFixture(t)
	store.Add("/x/a.md")

	d.Handle(IDClearRecent)

	if store.Len() != 0 {
		t.Fatalf("expected cleared store, got %d entries", store.Len())
	}
}

func TestHandleUnknownID(t *testing.T) {
	d, notifier, store := newDispatchFixture(t)
	store.Add("/x/a.md")

	d.Handle("bogus")
	d.Handle(IDNoRecent)

	if len(notifier.opened) != 0 || len(notifier.actions) != 0 {
		t.Fatalf("unknown ids should be ignored: %v %v", notifier.opened, notifier.actions)
	}
	if store.Len() != 1 {
		t.Fatalf("unknown ids must not mutate the store")
	}
}
