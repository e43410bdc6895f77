// Package bridge routes OS-level file-open notifications into the shell.
package bridge

import (
	"go.uber.org/zap"

	"github.com/updown/updown-shell/internal/handoff"
	"github.com/updown/updown-shell/internal/logging"
)

// Notifier is the one-way, fire-and-forget push channel into the UI layer.
// Implementations must tolerate the UI not listening yet.
type Notifier interface {
	// FileOpened tells the UI to open the given document.
	FileOpened(path string)

	// MenuAction replays a menu action identifier to the UI.
	MenuAction(action string)
}

// Bridge receives OS file-open notifications, which may arrive during launch
// (before the UI exists) or while the UI is running. It cannot know which,
// so every path is delivered on both channels: the mailbox covers the launch
// race, the live push covers a running UI, and the consumers are idempotent.
type Bridge struct {
	mailbox  *handoff.Mailbox
	notifier Notifier
}

// New creates a bridge feeding the mailbox and the optional notifier.
func New(mailbox *handoff.Mailbox, notifier Notifier) *Bridge {
	return &Bridge{mailbox: mailbox, notifier: notifier}
}

// HandleOpen processes one OS open notification. Only the first file
// reference is used; additional simultaneously opened files are discarded.
func (b *Bridge) HandleOpen(paths []string) {
	if len(paths) == 0 {
		return
	}
	path := paths[0]
	if len(paths) > 1 {
		logging.Debug("bridge: extra open targets discarded", zap.Int("count", len(paths)-1))
	}

	b.mailbox.Set(path)

	if b.notifier != nil {
		b.notifier.FileOpened(path)
	}
}
