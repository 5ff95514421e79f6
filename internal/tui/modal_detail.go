package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipdeck/pipdeck/internal/model"
)

// detailModal shows the full metadata for one loaded row.
type detailModal struct {
	record model.PackageRecord
	latest string // non-empty when the outdated check tagged this row
}

func newDetailModal(record model.PackageRecord, latest string) *detailModal {
	return &detailModal{record: record, latest: latest}
}

func (d *detailModal) ID() string { return "detail:" + d.record.Name }

func (d *detailModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return true, nil
	}
	return false, nil
}

func (d *detailModal) View(width, height int) string {
	var b strings.Builder
	b.WriteString(chartTitleStyle.Render(d.record.Name))
	b.WriteString("\n\n")

	row := func(label, value string) {
		if value == "" {
			value = "-"
		}
		b.WriteString(tableHeaderStyle.Render(label) + "  " + value + "\n")
	}

	version := d.record.Version
	if d.latest != "" {
		version += "  " + outdatedTagStyle.Render("→ "+d.latest)
	}
	row("Version ", version)
	row("Size    ", model.FormatSize(d.record.SizeBytes))
	row("Location", d.record.Location)
	row("Requires", strings.Join(d.record.Dependencies, ", "))

	b.WriteString("\n" + loadingStyle.Render("press any key to close"))
	return modalBorderStyle.Render(b.String())
}
