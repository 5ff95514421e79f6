package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pipdeck/pipdeck/internal/log"
	"github.com/pipdeck/pipdeck/internal/model"
	"github.com/pipdeck/pipdeck/internal/pip"
)

// Workers: each user-triggered operation spawns one independent
// goroutine that performs the blocking pip call and posts exactly one
// TaskMessage. No cancellation: an in-flight worker always runs to
// completion and always reports, so every spawn below uses a background
// context and every error path still yields a message.

// startListTask issues a full listing refresh.
func (m *Model) startListTask() {
	m.tasksInFlight++
	m.box.Go(func() TaskMessage {
		pkgs, err := m.pip.List(context.Background())
		if warning, ok := asParseWarning(err); ok {
			return ListLoadedMsg{Warning: warning}
		}
		if err != nil {
			return ListLoadedMsg{Err: err}
		}

		records := make([]model.PackageRecord, 0, len(pkgs))
		for _, p := range pkgs {
			records = append(records, model.PackageRecord{
				Name:      p.Name,
				Version:   p.Version,
				SizeBytes: model.SizeUnknown,
			})
		}
		return ListLoadedMsg{Records: records}
	}, func(err error) TaskMessage {
		return ListLoadedMsg{Err: err}
	})
}

// startDetailTask fetches show metadata and on-disk size for one row.
// Callers must have passed the RequestDetail guard first.
func (m *Model) startDetailTask(name string) {
	m.tasksInFlight++
	m.box.Go(func() TaskMessage {
		d, err := m.pip.Detail(context.Background(), name)
		return DetailLoadedMsg{Name: name, Detail: d, Err: err}
	}, func(err error) TaskMessage {
		return DetailLoadedMsg{Name: name, Err: err}
	})
}

// startOutdatedTask checks the index for newer versions.
func (m *Model) startOutdatedTask() {
	m.tasksInFlight++
	m.setStatus(statusInfo, "checking for updates...")
	m.box.Go(func() TaskMessage {
		entries, err := m.pip.Outdated(context.Background())
		if warning, ok := asParseWarning(err); ok {
			return OutdatedCheckedMsg{Warning: warning}
		}
		if err != nil {
			return OutdatedCheckedMsg{Err: err}
		}
		return OutdatedCheckedMsg{Entries: entries}
	}, func(err error) TaskMessage {
		return OutdatedCheckedMsg{Err: err}
	})
}

// startMutation runs one mutating pip operation behind the single-slot
// guard. Returns false when another mutation is already in flight.
func (m *Model) startMutation(action, command string, op func(ctx context.Context) error) bool {
	if m.mutationInFlight {
		m.setStatus(statusWarning, "another operation is still running")
		return false
	}
	m.mutationInFlight = true
	m.tasksInFlight++
	m.setStatus(statusInfo, command+" ...")
	log.Info("mutation started: %s", command)

	m.box.Go(func() TaskMessage {
		err := op(context.Background())
		return MutationCompletedMsg{
			Action:  action,
			Command: command,
			Success: err == nil,
			Err:     err,
		}
	}, func(err error) TaskMessage {
		return MutationCompletedMsg{Action: action, Command: command, Err: err}
	})
	return true
}

func (m *Model) startInstall(name string) bool {
	return m.startMutation("install", fmt.Sprintf("pip install %s", name),
		func(ctx context.Context) error { return m.pip.Install(ctx, name) })
}

func (m *Model) startUpgrade(names ...string) bool {
	return m.startMutation("upgrade", fmt.Sprintf("pip install --upgrade %s", strings.Join(names, " ")),
		func(ctx context.Context) error { return m.pip.Upgrade(ctx, names...) })
}

func (m *Model) startUninstall(name string) bool {
	return m.startMutation("uninstall", fmt.Sprintf("pip uninstall %s -y", name),
		func(ctx context.Context) error { return m.pip.Uninstall(ctx, name) })
}

// asParseWarning unwraps the soft-failure path: the operation succeeded
// but its output was unreadable, so the refresh proceeds empty with a
// status-line warning instead of aborting.
func asParseWarning(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var pw *pip.ParseWarning
	if errors.As(err, &pw) {
		return pw.Error(), true
	}
	return "", false
}
