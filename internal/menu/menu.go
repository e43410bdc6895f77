// Package menu models the native menubar and keeps the "Open Recent"
// submenu synchronized with the recent-files store.
package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// Interactive item identifiers. The click dispatcher routes on these.
const (
	IDAbout            = "about"
	IDOpen             = "open"
	IDSave             = "save"
	IDSaveAs           = "save_as"
	IDInstallQuickLook = "install_quicklook"
	IDToggleFolder     = "toggle_folder"
	IDViewSource       = "view_source"
	IDViewPreview      = "view_preview"
	IDViewSplit        = "view_split"
	IDOpenRecent       = "open_recent"
	IDClearRecent      = "clear_recent"
	IDNoRecent         = "no_recent"
)

// recentPrefix is the id prefix of dynamically generated recent-file items;
// the suffix encodes the entry's position in the store.
const recentPrefix = "recent_"

// RecentID returns the item id for the recent entry at index i.
func RecentID(i int) string {
	return fmt.Sprintf("%s%d", recentPrefix, i)
}

// RecentIndex parses a recent_<index> id. ok is false for any other id.
func RecentIndex(id string) (int, bool) {
	if !strings.HasPrefix(id, recentPrefix) {
		return 0, false
	}
	i, err := strconv.Atoi(id[len(recentPrefix):])
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

// Basename returns the label for a path: the substring after the last
// '/' or '\' separator, or the whole path if neither is present.
func Basename(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Kind distinguishes regular items from separators and toolkit-predefined
// items (undo, copy, quit, ...).
type Kind int

const (
	KindNormal Kind = iota
	KindSeparator
	KindPredefined
)

// Item is one entry in a submenu.
type Item struct {
	ID          string `yaml:"id,omitempty"          json:"id,omitempty"`
	Label       string `yaml:"label,omitempty"       json:"label,omitempty"`
	Enabled     bool   `yaml:"enabled"               json:"enabled"`
	Accelerator string `yaml:"accelerator,omitempty" json:"accelerator,omitempty"`
	Kind        Kind   `yaml:"kind,omitempty"        json:"kind,omitempty"`
	// Predefined names the toolkit role for KindPredefined items.
	Predefined string `yaml:"predefined,omitempty" json:"predefined,omitempty"`
}

// Submenu is a titled group of items. Submenus with an ID can be looked up
// and rebuilt at runtime.
type Submenu struct {
	ID    string `yaml:"id,omitempty" json:"id,omitempty"`
	Title string `yaml:"title"        json:"title"`
	Items []Item `yaml:"items"        json:"items"`
}

// Model is the full menubar.
type Model struct {
	Submenus []Submenu `yaml:"submenus" json:"submenus"`
}

func item(id, label string, accelerator string) Item {
	return Item{ID: id, Label: label, Enabled: true, Accelerator: accelerator}
}

func separator() Item {
	return Item{Kind: KindSeparator}
}

func predefined(role string) Item {
	return Item{Kind: KindPredefined, Predefined: role, Enabled: true}
}

// Menubar builds the application menubar. The "Open Recent" submenu starts
// empty; the synchronizer populates it once at startup and after every store
// mutation, so initial build and rebuild share one routine.
func Menubar(appName string) Model {
	return Model{Submenus: []Submenu{
		{
			Title: appName,
			Items: []Item{
				item(IDAbout, "About "+appName, ""),
				separator(),
				predefined("hide"),
				predefined("hideOthers"),
				predefined("showAll"),
				separator(),
				predefined("quit"),
			},
		},
		{
			Title: "File",
			Items: []Item{
				item(IDOpen, "Open…", "CmdOrCtrl+O"),
				{ID: IDOpenRecent, Label: "Open Recent", Enabled: true},
				separator(),
				item(IDSave, "Save", "CmdOrCtrl+S"),
				item(IDSaveAs, "Save As…", "CmdOrCtrl+Shift+S"),
				separator(),
				item(IDInstallQuickLook, "Install Quick Look Plugin…", ""),
				separator(),
				predefined("closeWindow"),
			},
		},
		{
			Title: "Edit",
			Items: []Item{
				predefined("undo"),
				predefined("redo"),
				separator(),
				predefined("cut"),
				predefined("copy"),
				predefined("paste"),
				predefined("selectAll"),
			},
		},
		{
			Title: "View",
			Items: []Item{
				item(IDToggleFolder, "Toggle Folder Panel", "CmdOrCtrl+B"),
				separator(),
				item(IDViewSource, "Source", "CmdOrCtrl+1"),
				item(IDViewPreview, "Preview", "CmdOrCtrl+2"),
				item(IDViewSplit, "Split", "CmdOrCtrl+3"),
			},
		},
		{
			Title: "Window",
			Items: []Item{
				predefined("minimize"),
				predefined("maximize"),
				separator(),
				predefined("fullscreen"),
			},
		},
	}}
}
