package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// helpModal lists every key binding with its help text.
type helpModal struct {
	keys KeyMap
}

func newHelpModal(keys KeyMap) *helpModal {
	return &helpModal{keys: keys}
}

func (h *helpModal) ID() string { return "help" }

func (h *helpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return true, nil
	}
	return false, nil
}

func (h *helpModal) View(width, height int) string {
	groups := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{
			h.keys.Up, h.keys.Down, h.keys.Home, h.keys.End,
			h.keys.PageUp, h.keys.PageDown, h.keys.Enter,
		}},
		{"Packages", []key.Binding{
			h.keys.Refresh, h.keys.Install, h.keys.CheckOutdated,
			h.keys.UpgradeOne, h.keys.UpgradeAll, h.keys.Uninstall,
		}},
		{"Display", []key.Binding{
			h.keys.CycleSort, h.keys.SizeChart, h.keys.History,
		}},
		{"General", []key.Binding{
			h.keys.Help, h.keys.Quit, h.keys.ForceQuit,
		}},
	}

	var b strings.Builder
	b.WriteString(chartTitleStyle.Render("Key Bindings"))
	b.WriteString("\n")
	for _, g := range groups {
		b.WriteString("\n" + tableHeaderStyle.Render(g.title) + "\n")
		for _, binding := range g.bindings {
			hk := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", hk.Key, hk.Desc))
		}
	}
	b.WriteString("\n" + loadingStyle.Render("press any key to close"))

	return modalBorderStyle.Render(b.String())
}
