package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipdeck/pipdeck/internal/history"
	"github.com/pipdeck/pipdeck/internal/mailbox"
	"github.com/pipdeck/pipdeck/internal/model"
	"github.com/pipdeck/pipdeck/internal/pip"
)

// statusKind classifies the status-line note for coloring.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

// statusNote is the transient message shown in the status bar.
type statusNote struct {
	text string
	kind statusKind
	at   time.Time
}

// pipClient is the slice of pip.Client the model needs; tests swap in
// a scripted fake.
type pipClient interface {
	List(ctx context.Context) ([]pip.ListedPackage, error)
	Outdated(ctx context.Context) ([]model.OutdatedEntry, error)
	Detail(ctx context.Context, name string) (pip.Detail, error)
	Install(ctx context.Context, name string) error
	Upgrade(ctx context.Context, names ...string) error
	Uninstall(ctx context.Context, name string) error
}

// Model is the top-level Bubble Tea model: one cooperative UI loop that
// polls the mailbox on a fixed tick and is the sole mutator of the
// package table. Worker goroutines only ever talk to it by value
// through TaskMessage payloads.
type Model struct {
	ctrl *Controller
	box  *mailbox.Mailbox[TaskMessage]
	pip  pipClient
	hist *history.Log // nil disables the audit trail
	keys KeyMap

	pollInterval time.Duration
	pipPath      string
	chartTopN    int

	// Window dimensions
	width  int
	height int

	// Table cursor and scroll offset
	cursor int
	offset int

	// Install input field
	installInput textinput.Model
	inputActive  bool

	// Single-slot guard: at most one mutating operation in flight.
	// Read-only tasks (list, detail, outdated) run freely in parallel.
	mutationInFlight bool

	// Count of workers spawned minus messages drained; drives the
	// spinner. Every worker posts exactly one message, so this never
	// leaks.
	tasksInFlight int

	status statusNote

	modalStack []Modal

	quitting bool
}

// Options configures a Model.
type Options struct {
	Client       *pip.Client
	PipPath      string
	PollInterval time.Duration
	History      *history.Log
	ChartTopN    int
}

// NewModel creates the dashboard model.
func NewModel(opts Options) *Model {
	input := textinput.New()
	input.Placeholder = "package to install (e.g. requests or requests==2.31.0)"
	input.CharLimit = 200

	interval := opts.PollInterval
	if interval <= 0 {
		interval = model.DefaultPollInterval
	}
	topN := opts.ChartTopN
	if topN <= 0 {
		topN = model.DefaultChartTopN
	}

	m := &Model{
		ctrl:         NewController(),
		box:          mailbox.New[TaskMessage](),
		keys:         DefaultKeyMap(),
		pollInterval: interval,
		pipPath:      opts.PipPath,
		chartTopN:    topN,
		installInput: input,
		hist:         opts.History,
	}
	if opts.Client != nil {
		m.pip = opts.Client
	}
	return m
}

// Init issues the startup listing and schedules the first poll tick.
func (m *Model) Init() tea.Cmd {
	m.startListTask()
	m.status = statusNote{text: "loading installed packages...", at: time.Now()}
	return m.tick()
}

// tick schedules the next mailbox drain.
func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// setStatus replaces the status-line note.
func (m *Model) setStatus(kind statusKind, text string) {
	m.status = statusNote{text: text, kind: kind, at: time.Now()}
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (m *Model) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *Model) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *Model) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// selectedName returns the package name under the cursor.
func (m *Model) selectedName() (string, bool) {
	r, ok := m.ctrl.Row(m.cursor)
	if !ok {
		return "", false
	}
	return r.Name, true
}

// clampCursor keeps the cursor and scroll offset inside the row set.
func (m *Model) clampCursor() {
	if m.cursor >= m.ctrl.Len() {
		m.cursor = m.ctrl.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	visible := m.tableHeight()
	if visible <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}
