package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pipdeck/pipdeck/internal/model"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// chrome rows: header, column header, input/status lines.
const chromeHeight = 4

// View renders the dashboard. Called only on the UI loop, after all
// drained messages from the current tick have been applied.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "starting..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	if m.inputActive {
		b.WriteString("install> " + m.installInput.View())
	} else {
		b.WriteString(loadingStyle.Render("i to install, ? for help"))
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())

	view := b.String()
	if modal := m.TopModal(); modal != nil {
		return renderModalOverlay(modal, m.width, m.height)
	}
	return view
}

// renderHeader renders the branding line with package count and pip path.
func (m *Model) renderHeader() string {
	brand := renderBranding()
	info := fmt.Sprintf(" %d packages · %s · sort: %s", m.ctrl.Len(), m.pipPath, m.ctrl.Sort())
	line := brand + headerStyle.Render(info)
	pad := m.width - lipgloss.Width(line)
	if pad > 0 {
		line += headerStyle.Render(strings.Repeat(" ", pad))
	}
	return line
}

// renderBranding renders "pipdeck" with a per-letter gradient.
func renderBranding() string {
	colors := []string{
		"#49E209", "#3BDE2C", "#2DDA4F", "#1FD672", "#11D295", "#06CFB3", "#00CAC7",
	}
	chars := []string{"p", "i", "p", "d", "e", "c", "k"}

	var result string
	for i, char := range chars {
		style := lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(lipgloss.Color(colors[i])).Bold(true)
		result += style.Render(char)
	}
	return result
}

// tableHeight returns how many package rows fit on screen.
func (m *Model) tableHeight() int {
	h := m.height - chromeHeight - 1 // column header line
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) renderTable() string {
	nameW := max(16, m.width/4)
	versionW := 14
	sizeW := 10
	stateW := 18
	depsW := m.width - nameW - versionW - sizeW - stateW - 8
	if depsW < 10 {
		depsW = 10
	}

	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("  %-*s %-*s %*s  %-*s %s",
		nameW, "Name", versionW, "Version", sizeW, "Size", stateW, "Status", "Requires")))
	b.WriteString("\n")

	rows := m.ctrl.Rows()
	if len(rows) == 0 {
		b.WriteString(loadingStyle.Render("  no packages — r to refresh"))
		return b.String()
	}

	visible := m.tableHeight()
	end := min(m.offset+visible, len(rows))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(rows[i], i, nameW, versionW, sizeW, stateW, depsW))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	// Pad so the status line stays pinned to the bottom.
	for i := end - m.offset; i < visible; i++ {
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderRow(r model.PackageRecord, i, nameW, versionW, sizeW, stateW, depsW int) string {
	size := ""
	deps := ""
	state := m.ctrl.State(r.Name)
	switch state {
	case model.RowLoading:
		size = "..."
	case model.RowLoaded:
		size = model.FormatSize(r.SizeBytes)
		deps = truncate(strings.Join(r.Dependencies, ", "), depsW)
	case model.RowError:
		size = "?"
	}

	status := ""
	if latest, ok := m.ctrl.LatestVersion(r.Name); ok {
		status = truncate(r.Version+" → "+latest, stateW)
	} else if state == model.RowError {
		status = "detail failed"
	}

	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}
	line := fmt.Sprintf("%s%-*s %-*s %*s  %-*s %s",
		cursor,
		nameW, truncate(r.Name, nameW),
		versionW, truncate(r.Version, versionW),
		sizeW, size,
		stateW, status,
		deps)

	switch {
	case i == m.cursor:
		return selectedRowStyle.Render(padRight(line, m.width))
	case status != "" && state != model.RowError:
		return outdatedTagStyle.Render(line)
	case state == model.RowError:
		return errorStyle.Render(line)
	default:
		return line
	}
}

// renderStatusLine renders the bottom bar: status note on the left,
// spinner and clock on the right.
func (m *Model) renderStatusLine() string {
	left := m.status.text
	switch m.status.kind {
	case statusSuccess:
		left = successStyle.Render(left)
	case statusWarning:
		left = warningStyle.Render(left)
	case statusError:
		left = errorStyle.Render(left)
	}

	right := ""
	if m.tasksInFlight > 0 {
		frame := spinnerFrames[time.Now().UnixMilli()/120%int64(len(spinnerFrames))]
		right = fmt.Sprintf("%s %d running ", frame, m.tasksInFlight)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func truncate(s string, w int) string {
	if w <= 0 || len(s) <= w {
		return s
	}
	if w <= 1 {
		return s[:w]
	}
	return s[:w-1] + "…"
}

func padRight(s string, w int) string {
	if diff := w - lipgloss.Width(s); diff > 0 {
		return s + strings.Repeat(" ", diff)
	}
	return s
}
