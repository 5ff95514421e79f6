package tui

import (
	"time"

	"github.com/pipdeck/pipdeck/internal/model"
	"github.com/pipdeck/pipdeck/internal/pip"
)

// TaskMessage is the immutable, tagged result of one completed
// background operation. Produced exclusively by worker goroutines,
// consumed exclusively by the UI loop's poll-tick drain. Ownership
// transfers at enqueue: workers never touch a payload after posting.
type TaskMessage interface {
	taskMessage()
}

// ListLoadedMsg carries a fresh listing of installed packages.
// Warning is set when pip's output needed salvage or was unparseable;
// Err is set on a hard failure (pip missing, non-zero exit).
type ListLoadedMsg struct {
	Records []model.PackageRecord
	Warning string
	Err     error
}

// DetailLoadedMsg carries resolved metadata for one package.
type DetailLoadedMsg struct {
	Name   string
	Detail pip.Detail
	Err    error
}

// OutdatedCheckedMsg carries the set of packages with newer versions.
type OutdatedCheckedMsg struct {
	Entries []model.OutdatedEntry
	Warning string
	Err     error
}

// MutationCompletedMsg reports the outcome of an install, upgrade, or
// uninstall. Failed mutations still post this message; workers always
// run to completion and always report.
type MutationCompletedMsg struct {
	Action  string // "install", "upgrade", "uninstall"
	Command string // human-readable command, e.g. "pip install requests"
	Success bool
	Err     error
}

func (ListLoadedMsg) taskMessage()        {}
func (DetailLoadedMsg) taskMessage()      {}
func (OutdatedCheckedMsg) taskMessage()   {}
func (MutationCompletedMsg) taskMessage() {}

// TickMsg drives the fixed-interval mailbox drain.
type TickMsg time.Time
