package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/input"
	"github.com/vovakirdan/termsnake/internal/platform/keymap"
	"github.com/vovakirdan/termsnake/internal/session"
)

// ChromeRows is the number of terminal rows drawn around the board.
const ChromeRows = 2

// Model is the Bubble Tea model for one snake session.
type Model struct {
	session *session.Session
	tracker *input.Tracker
	keys    keymap.KeyMap
	help    help.Model
	theme   Theme
	outcome session.Outcome
	done    bool
}

// NewModel creates a model. tracker must be the keyboard source behind the
// session's sampler.
func NewModel(s *session.Session, tracker *input.Tracker, keys keymap.KeyMap) Model {
	return Model{
		session: s,
		tracker: tracker,
		keys:    keys,
		help:    help.New(),
		theme:   DefaultTheme(),
	}
}

// Outcome returns the session result once the model has finished.
func (m Model) Outcome() session.Outcome {
	return m.outcome
}

// Init starts sampling the first tick.
func (m Model) Init() tea.Cmd {
	return sampleCmd(m.session)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case SampledMsg:
		return m.handleSample(msg)
	}

	return m, nil
}

// handleKey records the press for the running sample window. Once the game
// has ended any key leaves.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, tea.Quit
	}
	m.tracker.Press(m.keys.Lookup(msg))
	return m, nil
}

// handleSample advances the session by one tick.
func (m Model) handleSample(msg SampledMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	out, done := m.session.Step(msg.Key)
	if !done {
		return m, sampleCmd(m.session)
	}

	m.outcome = out
	m.done = true
	if !out.GameOver() {
		return m, tea.Quit
	}
	// Keep the fatal frame on screen until a key is pressed.
	return m, nil
}

// View renders the HUD, the board and the help line.
func (m Model) View() string {
	if m.done && !m.outcome.GameOver() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(renderHUD(m.theme, m.session))
	sb.WriteString("\n")
	sb.WriteString(m.session.Body())
	if m.done {
		sb.WriteString(renderOverlay(m.theme, m.outcome))
	} else {
		sb.WriteString(m.help.View(m.keys))
	}
	return sb.String()
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(s *session.Session, tracker *input.Tracker, keys keymap.KeyMap, opts ...tea.ProgramOption) (session.Outcome, error) {
	s.Start()

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewModel(s, tracker, keys), opts...)

	final, err := p.Run()
	if err != nil {
		return session.Outcome{}, err
	}
	return final.(Model).Outcome(), nil
}
