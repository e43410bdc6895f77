package menu

import (
	"github.com/updown/updown-shell/internal/bridge"
	"github.com/updown/updown-shell/internal/recent"
)

// menuActions maps menu item ids to the action identifiers the UI layer
// understands.
var menuActions = map[string]string{
	IDAbout:            "about",
	IDInstallQuickLook: "installQuickLook",
	IDOpen:             "open",
	IDSave:             "save",
	IDSaveAs:           "saveAs",
	IDToggleFolder:     "toggleFolder",
	IDViewSource:       "viewSource",
	IDViewPreview:      "viewPreview",
	IDViewSplit:        "viewSplit",
}

// Dispatcher routes native menu clicks: replay as a UI action, mutate the
// store, or open a recent entry.
type Dispatcher struct {
	store    *recent.Store
	notifier bridge.Notifier
}

// NewDispatcher creates a dispatcher over the store and UI push channel.
func NewDispatcher(store *recent.Store, notifier bridge.Notifier) *Dispatcher {
	return &Dispatcher{store: store, notifier: notifier}
}

// Handle processes one menu click by item id. Unknown ids are ignored.
func (d *Dispatcher) Handle(id string) {
	if action, ok := menuActions[id]; ok {
		if d.notifier != nil {
			d.notifier.MenuAction(action)
		}
		return
	}

	if id == IDClearRecent {
		d.store.Clear()
		return
	}

	if i, ok := RecentIndex(id); ok {
		if path, ok := d.store.Get(i); ok && d.notifier != nil {
			d.notifier.FileOpened(path)
		}
	}
}
