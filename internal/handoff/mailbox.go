// Package handoff bridges the launch-time race between an OS "open file"
// event and UI readiness with a single-slot mailbox.
package handoff

import "sync"

// Mailbox holds at most one pending file path. Set overwrites (last writer
// wins, no queue); Take reads and clears in one step. It is written from the
// OS event callback and read from a command handler, so access is locked.
type Mailbox struct {
	mu   sync.Mutex
	path string
	set  bool
}

// NewMailbox returns an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Set unconditionally replaces any current value.
func (m *Mailbox) Set(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.path = path
	m.set = true
}

// Take returns the pending path and clears the slot. A second call before a
// new Set reports false.
func (m *Mailbox) Take() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", false
	}
	path := m.path
	m.path = ""
	m.set = false
	return path, true
}
