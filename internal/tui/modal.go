package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is an overlay that captures input while on the stack.
type Modal interface {
	ID() string
	// Update handles one message; pop reports whether the modal should
	// be removed from the stack.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	View(width, height int) string
}

// renderModalOverlay centers the top modal over the dashboard.
func renderModalOverlay(modal Modal, width, height int) string {
	content := modal.View(width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// confirmModal asks a yes/no question before a destructive action.
type confirmModal struct {
	question string
	onYes    func()
}

func newConfirmModal(question string, onYes func()) *confirmModal {
	return &confirmModal{question: question, onYes: onYes}
}

func (c *confirmModal) ID() string { return "confirm" }

func (c *confirmModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch keyMsg.String() {
	case "y", "Y", "enter":
		if c.onYes != nil {
			c.onYes()
		}
		return true, nil
	case "n", "N", "esc", "q":
		return true, nil
	}
	return false, nil
}

func (c *confirmModal) View(width, height int) string {
	body := c.question + "\n\n" +
		successStyle.Render("y") + " confirm    " +
		errorStyle.Render("n") + " cancel"
	return modalBorderStyle.Render(body)
}
