// Package recent tracks recently opened document paths: an ordered,
// deduplicated list capped at MaxRecent, persisted to disk on every change.
package recent

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/updown/updown-shell/internal/logging"
)

// MaxRecent is the maximum number of entries kept in the list.
const MaxRecent = 10

// Store holds the recent-files list, most recent first. Every mutation
// persists the full list and then fires the on-change hook (used for the
// menu rebuild). The hook runs outside the lock: a menu callback may call
// back into the store.
type Store struct {
	mu       sync.Mutex
	files    []string
	path     string
	onChange func()
}

// NewStore creates a store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// OnChange registers the hook invoked after every mutation. Must be set
// before the store is shared across goroutines.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

// Load replaces the in-memory list with the persisted record. Missing,
// unreadable, or malformed records yield an empty list; entries whose target
// no longer exists on disk are dropped and the result is capped again.
// Load never fails and does not fire the on-change hook; the caller builds
// the menu once after loading.
func (s *Store) Load() {
	files := readRecord(s.path)

	kept := files[:0]
	for _, p := range files {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		kept = append(kept, p)
		if len(kept) == MaxRecent {
			break
		}
	}

	s.mu.Lock()
	s.files = kept
	s.mu.Unlock()
}

// Add moves path to the front of the list, dedupes by exact string match,
// caps at MaxRecent, and persists.
func (s *Store) Add(path string) {
	s.mu.Lock()
	kept := s.files[:0]
	for _, p := range s.files {
		if p != path {
			kept = append(kept, p)
		}
	}
	s.files = append([]string{path}, kept...)
	if len(s.files) > MaxRecent {
		s.files = s.files[:MaxRecent]
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Clear empties the list and persists the empty record.
func (s *Store) Clear() {
	s.mu.Lock()
	s.files = nil
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Get returns the entry at index i, most recent first.
func (s *Store) Get(i int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.files) {
		return "", false
	}
	return s.files[i], true
}

// All returns a snapshot copy of the list.
func (s *Store) All() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.files))
	copy(out, s.files)
	return out
}

// Len returns the current number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

// persistLocked writes the full list. Recent-file tracking is a convenience,
// not durable state: write failures are logged and otherwise ignored.
func (s *Store) persistLocked() {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		logging.Debug("recent: create data dir failed", zap.Error(err))
		return
	}
	data, err := json.Marshal(s.files)
	if err != nil {
		logging.Debug("recent: marshal failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		logging.Debug("recent: write failed", zap.String("path", s.path), zap.Error(err))
	}
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// readRecord parses the persisted record, tolerating any failure.
func readRecord(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var files []string
	if err := json.Unmarshal(data, &files); err != nil {
		logging.Debug("recent: malformed record ignored", zap.String("path", path), zap.Error(err))
		return nil
	}
	return files
}
