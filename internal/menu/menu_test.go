package menu

import "testing"

func TestBasename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/b/c.md", "c.md"},
		{`C:\a\b.md`, "b.md"},
		{"plainname", "plainname"},
		{"/trailing/", ""},
		{`mixed/sep\last.md`, "last.md"},
	}
	for _, tt := range tests {
		if got := Basename(tt.path); got != tt.want {
			t.Errorf("Basename(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRecentIDRoundTrip(t *testing.T) {
	for _, i := range []int{0, 3, 9} {
		id := RecentID(i)
		got, ok := RecentIndex(id)
		if !ok || got != i {
			t.Fatalf("RecentIndex(%q) = %d, %v; want %d, true", id, got, ok, i)
		}
	}
}

func TestRecentIndexRejectsOtherIDs(t *testing.T) {
	for _, id := range []string{IDClearRecent, IDNoRecent, "recent_", "recent_x", "recent_-1", "open"} {
		if _, ok := RecentIndex(id); ok {
			t.Errorf("RecentIndex(%q) should not parse", id)
		}
	}
}

func TestMenubarContainsInteractiveIDs(t *testing.T) {
	model := Menubar("UpDown")

	ids := map[string]bool{}
	for _, sub := range model.Submenus {
		for _, it := range sub.Items {
			if it.ID != "" {
				ids[it.ID] = true
			}
		}
	}

	for _, id := range []string{
		IDAbout, IDOpen, IDOpenRecent, IDSave, IDSaveAs,
		IDInstallQuickLook, IDToggleFolder, IDViewSource, IDViewPreview, IDViewSplit,
	} {
		if !ids[id] {
			t.Errorf("menubar missing item %q", id)
		}
	}
}

func TestMenubarAccelerators(t *testing.T) {
	model := Menubar("UpDown")

	want := map[string]string{
		IDOpen:         "CmdOrCtrl+O",
		IDSave:         "CmdOrCtrl+S",
		IDSaveAs:       "CmdOrCtrl+Shift+S",
		IDToggleFolder: "CmdOrCtrl+B",
		IDViewSource:   "CmdOrCtrl+1",
		IDViewPreview:  "CmdOrCtrl+2",
		IDViewSplit:    "CmdOrCtrl+3",
	}
	for _, sub := range model.Submenus {
		for _, it := range sub.Items {
			if acc, ok := want[it.ID]; ok && it.Accelerator != acc {
				t.Errorf("item %q accelerator = %q, want %q", it.ID, it.Accelerator, acc)
			}
		}
	}
}
