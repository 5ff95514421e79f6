package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipdeck/pipdeck/internal/history"
)

const historyModalEntries = 50

// historyModal shows the most recent mutating operations.
type historyModal struct {
	vp      viewport.Model
	entries []history.Entry
	loadErr error
}

func newHistoryModal(hist *history.Log) *historyModal {
	m := &historyModal{vp: viewport.New(0, 0)}
	if hist == nil {
		return m
	}
	m.entries, m.loadErr = hist.Recent(historyModalEntries)
	return m
}

func (h *historyModal) ID() string { return "history" }

func (h *historyModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch keyMsg.String() {
	case "esc", "q", "H", "enter":
		return true, nil
	}
	var cmd tea.Cmd
	h.vp, cmd = h.vp.Update(msg)
	return false, cmd
}

func (h *historyModal) View(width, height int) string {
	var b strings.Builder
	b.WriteString(chartTitleStyle.Render("Operation History"))
	b.WriteString("\n\n")

	switch {
	case h.loadErr != nil:
		b.WriteString(errorStyle.Render("history unavailable: " + h.loadErr.Error()))
	case len(h.entries) == 0:
		b.WriteString(loadingStyle.Render("no operations recorded yet"))
	default:
		// Newest first.
		for i := len(h.entries) - 1; i >= 0; i-- {
			e := h.entries[i]
			mark := successStyle.Render("ok ")
			if !e.Success {
				mark = errorStyle.Render("err")
			}
			line := fmt.Sprintf("%s  %s  %s", e.At.Format("2006-01-02 15:04:05"), mark, e.Command)
			if e.Detail != "" {
				line += loadingStyle.Render("  (" + firstLine(e.Detail) + ")")
			}
			b.WriteString(line + "\n")
		}
	}

	content := b.String()
	h.vp.Width = max(20, width-12)
	h.vp.Height = max(5, height-8)
	h.vp.SetContent(content)

	return modalBorderStyle.Render(h.vp.View() + "\n\n" + loadingStyle.Render("esc to close"))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
