package install

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"golang.org/x/term"

	applog "go.ontologyc.dev/compiler/log"
)

// logTailSize is the number of most recent log lines kept beneath the
// layer display.
const logTailSize = 5

var (
	styleLayerDone    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleLayerActive  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleLayerPending = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleWritten      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleSkipped      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleFailed       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// layerStatus tracks one layer's running counters for the progress view.
type layerStatus struct {
	active   bool
	done     bool
	written  int
	skipped  int
	failed   int
	lastErrs []string
}

// progressModel is the Bubble Tea model driving the installer's live
// progress display: it reads layer/entity events off one channel and,
// when a [applog.Publisher] subscription is attached, tails the most
// recent log lines off another -- both redraw on arrival rather than on
// a fixed frame tick.
type progressModel struct {
	events  <-chan Event
	logs    <-chan []byte
	layers  [5]layerStatus
	logTail []string
	width   int
	done    bool
	err     error
}

// eventMsg wraps one [Event] delivered to the Bubble Tea update loop.
type eventMsg struct {
	event Event
	ok    bool
}

// logMsg wraps one log line delivered by a [applog.Subscription].
type logMsg struct {
	line string
	ok   bool
}

func newProgressModel(events <-chan Event, logs <-chan []byte, width int) *progressModel {
	return &progressModel{events: events, logs: logs, width: width}
}

func (m *progressModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForEvent()}
	if m.logs != nil {
		cmds = append(cmds, m.waitForLog())
	}

	return tea.Batch(cmds...)
}

func (m *progressModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		e, ok := <-m.events
		return eventMsg{event: e, ok: ok}
	}
}

func (m *progressModel) waitForLog() tea.Cmd {
	return func() tea.Msg {
		b, ok := <-m.logs
		return logMsg{line: strings.TrimRight(string(b), "\n"), ok: ok}
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case eventMsg:
		if !msg.ok {
			m.done = true
			return m, tea.Quit
		}

		m.apply(msg.event)

		return m, m.waitForEvent()

	case logMsg:
		if !msg.ok {
			return m, nil
		}

		m.logTail = append(m.logTail, msg.line)
		if len(m.logTail) > logTailSize {
			m.logTail = m.logTail[len(m.logTail)-logTailSize:]
		}

		return m, m.waitForLog()
	}

	return m, nil
}

func (m *progressModel) apply(e Event) {
	idx := int(e.Layer)
	if idx < 0 || idx >= len(m.layers) {
		return
	}

	status := &m.layers[idx]

	switch e.Kind {
	case EventLayerStarted:
		status.active = true
	case EventEntityWritten:
		status.written++
	case EventEntitySkipped:
		status.skipped++
	case EventEntityFailed:
		status.failed++

		if e.Err != nil {
			status.lastErrs = append(status.lastErrs, fmt.Sprintf("%s: %v", e.Entity, e.Err))
		}
	case EventLayerDone:
		status.active = false
		status.done = true
	}
}

func (m *progressModel) View() string {
	var sb strings.Builder

	for i := 0; i < len(m.layers); i++ {
		layer := Layer(i)
		status := m.layers[i]

		label := fmt.Sprintf("%d. %s", i+1, layer)

		switch {
		case status.done:
			sb.WriteString(styleLayerDone.Render("✓ " + label))
		case status.active:
			sb.WriteString(styleLayerActive.Render("… " + label))
		default:
			sb.WriteString(styleLayerPending.Render("  " + label))
		}

		sb.WriteByte('\n')
		sb.WriteString(fmt.Sprintf("   %s %s %s\n",
			styleWritten.Render(fmt.Sprintf("%d written", status.written)),
			styleSkipped.Render(fmt.Sprintf("%d skipped", status.skipped)),
			styleFailed.Render(fmt.Sprintf("%d failed", status.failed)),
		))

		for _, msg := range status.lastErrs {
			sb.WriteString("   " + styleFailed.Render(msg) + "\n")
		}
	}

	if len(m.logTail) > 0 {
		sb.WriteByte('\n')

		for _, line := range m.logTail {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(line))
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// RunWithProgress runs in.Install while rendering a live terminal
// progress view: the model redraws each time an [Event] arrives, and,
// when logs is non-nil, tails the most recent lines written to it
// beneath the layer display instead of letting them scroll past
// underneath the TUI.
func RunWithProgress(ctx context.Context, in *Installer, input Input, logs *applog.Publisher) error {
	width, _, err := term.GetSize(0)
	if err != nil {
		width = 80
	}

	events := make(chan Event, 64)

	installErrCh := make(chan error, 1)

	go func() {
		installErrCh <- in.Install(ctx, input, events)
		close(events)
	}()

	var logCh <-chan []byte

	if logs != nil {
		sub := logs.Subscribe()
		defer sub.Close()

		logCh = sub.C()
	}

	program := tea.NewProgram(newProgressModel(events, logCh, width))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("install: progress display: %w", err)
	}

	return <-installErrCh
}
