package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipdeck/pipdeck/internal/history"
	"github.com/pipdeck/pipdeck/internal/log"
	"github.com/pipdeck/pipdeck/internal/model"
)

// Update handles messages. All view-state mutation happens here, on the
// UI loop; worker goroutines never touch the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case TickMsg:
		// Drain every available message in one tick so the backlog
		// stays bounded regardless of the poll interval.
		for _, task := range m.box.DrainAll() {
			m.applyTask(task)
		}
		m.clampCursor()
		return m, m.tick()
	}

	return m, nil
}

// applyTask dispatches one drained TaskMessage to the controller.
// Exhaustive over the TaskMessage variants; each message is applied
// exactly once, in enqueue order.
func (m *Model) applyTask(task TaskMessage) {
	m.tasksInFlight--
	if m.tasksInFlight < 0 {
		m.tasksInFlight = 0
	}

	switch msg := task.(type) {
	case ListLoadedMsg:
		switch {
		case msg.Err != nil:
			m.setStatus(statusError, "refresh failed: "+msg.Err.Error())
		case msg.Warning != "":
			m.ctrl.ApplyListLoaded(nil)
			m.setStatus(statusWarning, msg.Warning)
		default:
			m.ctrl.ApplyListLoaded(msg.Records)
			m.setStatus(statusInfo, fmt.Sprintf("%d packages installed", len(msg.Records)))
		}

	case DetailLoadedMsg:
		applied := m.ctrl.ApplyDetailLoaded(msg.Name, msg.Detail, msg.Err)
		if !applied {
			// Stale target: the row was removed by an intervening
			// refresh.
			log.Debug("dropping stale detail for %s", msg.Name)
			return
		}
		if msg.Err != nil {
			m.setStatus(statusError, fmt.Sprintf("details for %s failed: %v", msg.Name, msg.Err))
		}

	case OutdatedCheckedMsg:
		switch {
		case msg.Err != nil:
			m.setStatus(statusError, "update check failed: "+msg.Err.Error())
		case msg.Warning != "":
			m.setStatus(statusWarning, msg.Warning)
		case len(msg.Entries) == 0:
			m.setStatus(statusSuccess, "all packages are up to date")
		default:
			matched := m.ctrl.ApplyOutdatedChecked(msg.Entries)
			m.setStatus(statusWarning,
				fmt.Sprintf("%d packages can be upgraded — press U to upgrade all", matched))
		}

	case MutationCompletedMsg:
		m.mutationInFlight = false
		m.recordHistory(msg)
		if msg.Success {
			m.setStatus(statusSuccess, msg.Command+" succeeded")
			// A successful mutation invalidates the table; re-list.
			m.startListTask()
		} else {
			// The table is left untouched; the old listing is still
			// accurate when the mutation failed.
			m.setStatus(statusError, fmt.Sprintf("%s failed: %v", msg.Command, msg.Err))
		}
	}
}

// recordHistory appends the mutation outcome to the audit trail.
func (m *Model) recordHistory(msg MutationCompletedMsg) {
	if m.hist == nil {
		return
	}
	e := history.Entry{Command: msg.Command, Success: msg.Success}
	if msg.Err != nil {
		e.Detail = msg.Err.Error()
	}
	if err := m.hist.Append(e); err != nil {
		log.Warn("history append failed: %v", err)
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	// Modal on the stack gets keys first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	if m.inputActive {
		return m.handleInstallInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.PushModal(newHelpModal(m.keys))

	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.clampCursor()
	case key.Matches(msg, m.keys.End):
		m.cursor = m.ctrl.Len() - 1
		m.clampCursor()
	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= m.tableHeight()
		m.clampCursor()
	case key.Matches(msg, m.keys.PageDown):
		m.cursor += m.tableHeight()
		m.clampCursor()

	case key.Matches(msg, m.keys.Enter):
		m.requestDetailForSelection()

	case key.Matches(msg, m.keys.Refresh):
		m.setStatus(statusInfo, "refreshing...")
		m.startListTask()

	case key.Matches(msg, m.keys.Install):
		m.inputActive = true
		m.installInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.CheckOutdated):
		m.startOutdatedTask()

	case key.Matches(msg, m.keys.UpgradeOne):
		if name, ok := m.selectedName(); ok {
			m.startUpgrade(name)
		}

	case key.Matches(msg, m.keys.UpgradeAll):
		names := m.ctrl.OutdatedNames()
		if len(names) == 0 {
			m.setStatus(statusInfo, "no outdated packages tagged — run a check first (o)")
		} else {
			// One bulk task covering the whole set, not one per package.
			m.startUpgrade(names...)
		}

	case key.Matches(msg, m.keys.Uninstall):
		if name, ok := m.selectedName(); ok {
			m.PushModal(newConfirmModal(
				fmt.Sprintf("Uninstall %q?", name),
				func() { m.startUninstall(name) },
			))
		}

	case key.Matches(msg, m.keys.CycleSort):
		k := m.ctrl.CycleSort()
		m.clampCursor()
		m.setStatus(statusInfo, "sorted by "+k.String())

	case key.Matches(msg, m.keys.SizeChart):
		m.PushModal(newSizeChartModal(m.ctrl, m.chartTopN))

	case key.Matches(msg, m.keys.History):
		m.PushModal(newHistoryModal(m.hist))
	}

	return m, nil
}

// requestDetailForSelection issues a detail fetch for the row under the
// cursor, or opens the detail modal when the row is already loaded. The
// controller guard makes rapid re-selection idempotent: a row that is
// already Loading, Loaded, or Error never gets a second worker.
func (m *Model) requestDetailForSelection() {
	name, ok := m.selectedName()
	if !ok {
		return
	}
	if m.ctrl.State(name) == model.RowLoaded {
		if r, ok := m.ctrl.Row(m.cursor); ok {
			latest, _ := m.ctrl.LatestVersion(name)
			m.PushModal(newDetailModal(r, latest))
		}
		return
	}
	if !m.ctrl.RequestDetail(name) {
		return
	}
	m.startDetailTask(name)
}

func (m *Model) handleInstallInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.installInput.Value())
		m.inputActive = false
		m.installInput.Blur()
		m.installInput.SetValue("")
		if name != "" {
			m.startInstall(name)
		}
		return m, nil
	case "esc":
		m.inputActive = false
		m.installInput.Blur()
		m.installInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.installInput, cmd = m.installInput.Update(msg)
	return m, cmd
}
