package menu

import (
	"go.uber.org/zap"

	"github.com/updown/updown-shell/internal/logging"
	"github.com/updown/updown-shell/internal/recent"
)

// Surface is the live "Open Recent" submenu handle, implemented by the
// native toolkit binding (or a mirror that forwards state to the frontend).
// The surface is only touched from rebuilds, never concurrently.
type Surface interface {
	// Items returns the ids of the items currently in the submenu, in order.
	// Separators report an empty id.
	Items() ([]string, error)

	// Remove deletes one item by id.
	Remove(id string) error

	// Append adds an item at the end of the submenu.
	Append(Item) error
}

// Synchronizer projects the recent-files store onto the native submenu.
type Synchronizer struct {
	surface Surface
	store   *recent.Store
}

// NewSynchronizer wires a surface to a store. Register Rebuild as the
// store's on-change hook and call it once during startup menu construction.
func NewSynchronizer(surface Surface, store *recent.Store) *Synchronizer {
	return &Synchronizer{surface: surface, store: store}
}

// Rebuild clears the submenu and repopulates it from the store: one disabled
// placeholder when empty, otherwise one enabled item per entry (label =
// basename, id = recent_<index>) followed by a separator and a clear item.
//
// There is no bulk-clear primitive; removal is per-item and best-effort. A
// failed removal leaves a stale item rather than aborting the rebuild.
func (s *Synchronizer) Rebuild() {
	if s.surface == nil {
		return
	}

	ids, err := s.surface.Items()
	if err != nil {
		logging.Debug("menu: enumerate failed", zap.Error(err))
	}
	for _, id := range ids {
		if err := s.surface.Remove(id); err != nil {
			logging.Debug("menu: remove failed", zap.String("id", id), zap.Error(err))
		}
	}

	files := s.store.All()

	if len(files) == 0 {
		s.append(Item{ID: IDNoRecent, Label: "No Recent Items", Enabled: false})
		return
	}

	for i, path := range files {
		s.append(Item{ID: RecentID(i), Label: Basename(path), Enabled: true})
	}
	s.append(separator())
	s.append(Item{ID: IDClearRecent, Label: "Clear Recent Items", Enabled: true})
}

func (s *Synchronizer) append(it Item) {
	if err := s.surface.Append(it); err != nil {
		logging.Debug("menu: append failed", zap.String("id", it.ID), zap.Error(err))
	}
}
