package bubbletea

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/annotate"
	"go.uber.org/zap"
)

// Panel identifies which side's panel is active.
type Panel int

// Panel constants.
const (
	PanelA Panel = iota
	PanelB
)

// ChooseModel is the Bubble Tea model for A/B preference choosing. After a
// choice it jumps to the first unanswered pair, matching how the pairwise
// variant has always behaved.
type ChooseModel struct {
	// Data
	pairs   []annotate.Pair
	choices map[int]annotate.Choice
	current int

	// UI Components
	aViewport viewport.Model
	bViewport viewport.Model

	// State
	activePanel Panel
	ready       bool

	// Rendering
	width, height int
	styles        annotate.Styles

	// Persistence
	store      annotate.ChoiceStore
	outputPath string

	// Keybindings
	keymap ChooseKeyMap

	logger *zap.Logger
	now    func() time.Time
}

// ChooseModelOption configures a ChooseModel.
type ChooseModelOption func(*ChooseModel)

// WithChoiceStore sets the store used to autosave progress after every
// choice.
func WithChoiceStore(store annotate.ChoiceStore, outputPath string) ChooseModelOption {
	return func(m *ChooseModel) {
		m.store = store
		m.outputPath = outputPath
	}
}

// WithExistingChoices seeds previously recorded choices. The map is shared
// with the caller, so the final state is observable after the program exits.
func WithExistingChoices(choices map[int]annotate.Choice) ChooseModelOption {
	return func(m *ChooseModel) {
		m.choices = choices
	}
}

// WithChooseStyles sets the UI colors.
func WithChooseStyles(styles annotate.Styles) ChooseModelOption {
	return func(m *ChooseModel) {
		m.styles = styles
	}
}

// WithChooseLogger sets the logger for best-effort persistence failures.
func WithChooseLogger(logger *zap.Logger) ChooseModelOption {
	return func(m *ChooseModel) {
		m.logger = logger
	}
}

// WithChooseClock sets the time source for choice timestamps.
func WithChooseClock(now func() time.Time) ChooseModelOption {
	return func(m *ChooseModel) {
		m.now = now
	}
}

// NewChooseModel creates a new ChooseModel with the given pairs, starting at
// the first unanswered pair.
func NewChooseModel(pairs []annotate.Pair, opts ...ChooseModelOption) ChooseModel {
	m := ChooseModel{
		pairs:   pairs,
		choices: make(map[int]annotate.Choice),
		keymap:  DefaultChooseKeyMap(),
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.current = annotate.FirstUnanswered(m.pairs, m.choices)
	return m
}

// Init implements tea.Model.
func (m ChooseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ChooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeys(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	}

	var cmd tea.Cmd
	if m.activePanel == PanelA {
		m.aViewport, cmd = m.aViewport.Update(msg)
	} else {
		m.bViewport, cmd = m.bViewport.Update(msg)
	}
	return m, cmd
}

func (m ChooseModel) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.persist()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ChooseA):
		m.record("A")
		return m, nil

	case key.Matches(msg, m.keymap.ChooseB):
		m.record("B")
		return m, nil

	case key.Matches(msg, m.keymap.NextPair):
		if m.current < len(m.pairs)-1 {
			m.current++
			m.updateViewportContent()
		}
		return m, nil

	case key.Matches(msg, m.keymap.PrevPair):
		if m.current > 0 {
			m.current--
			m.updateViewportContent()
		}
		return m, nil

	case key.Matches(msg, m.keymap.SwitchPanel):
		if m.activePanel == PanelA {
			m.activePanel = PanelB
		} else {
			m.activePanel = PanelA
		}
		return m, nil

	case key.Matches(msg, m.keymap.HalfPageUp):
		if m.activePanel == PanelA {
			m.aViewport.HalfPageUp()
		} else {
			m.bViewport.HalfPageUp()
		}
		return m, nil

	case key.Matches(msg, m.keymap.HalfPageDown):
		if m.activePanel == PanelA {
			m.aViewport.HalfPageDown()
		} else {
			m.bViewport.HalfPageDown()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.activePanel == PanelA {
		m.aViewport, cmd = m.aViewport.Update(msg)
	} else {
		m.bViewport, cmd = m.bViewport.Update(msg)
	}
	return m, cmd
}

func (m *ChooseModel) record(value annotate.Value) {
	if m.current >= len(m.pairs) {
		return
	}
	p := m.pairs[m.current]
	m.choices[p.ID] = annotate.Choice{
		PairID:    p.ID,
		A:         p.A,
		B:         p.B,
		Value:     value,
		Timestamp: m.now().UTC(),
	}
	m.persist()
	m.current = annotate.FirstUnanswered(m.pairs, m.choices)
	m.updateViewportContent()
}

// persist autosaves the progress file. Errors are logged but don't block the
// UI.
func (m *ChooseModel) persist() {
	if m.store == nil || m.outputPath == "" {
		return
	}
	if err := m.store.Save(m.outputPath, m.pairs, m.choices); err != nil {
		m.logger.Warn("autosave failed", zap.String("path", m.outputPath), zap.Error(err))
	}
}

func (m ChooseModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Reserve: two panel headers (2), choice bar (1), status bar (1),
	// spacing (2)
	usableHeight := msg.Height - 6
	if usableHeight < 2 {
		usableHeight = 2
	}
	aHeight := usableHeight / 2
	bHeight := usableHeight - aHeight

	if !m.ready {
		m.aViewport = viewport.New(msg.Width, aHeight)
		m.bViewport = viewport.New(msg.Width, bHeight)
		m.updateViewportContent()
		m.ready = true
	} else {
		m.aViewport.Width = msg.Width
		m.aViewport.Height = aHeight
		m.bViewport.Width = msg.Width
		m.bViewport.Height = bHeight
	}

	return m, nil
}

func (m *ChooseModel) updateViewportContent() {
	if m.current >= len(m.pairs) {
		m.aViewport.SetContent("")
		m.bViewport.SetContent("")
		return
	}

	p := m.pairs[m.current]
	m.aViewport.SetContent(m.renderSide(p.A, p.AText, p.AResolved))
	m.aViewport.GotoTop()
	m.bViewport.SetContent(m.renderSide(p.B, p.BText, p.BResolved))
	m.bViewport.GotoTop()
}

// renderSide shows the resolved text, or an explicit error banner when the
// reference has no matching summary. Missing text is never blanked silently.
func (m *ChooseModel) renderSide(side annotate.Side, text string, resolved bool) string {
	if !resolved {
		banner := fmt.Sprintf("Summary not found for %s", side)
		style := lipgloss.NewStyle().Bold(true)
		if m.styles.Error.Foreground != "" {
			style = style.Foreground(lipgloss.Color(m.styles.Error.Foreground))
		}
		return style.Render(banner)
	}
	return text
}

// View implements tea.Model.
func (m ChooseModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.current >= len(m.pairs) {
		return m.renderCompletionView()
	}

	p := m.pairs[m.current]

	var s strings.Builder
	s.WriteString(m.renderPanelHeader(fmt.Sprintf("A  %s", p.A), m.activePanel == PanelA))
	s.WriteString("\n")
	s.WriteString(m.aViewport.View())
	s.WriteString("\n")
	s.WriteString(m.renderPanelHeader(fmt.Sprintf("B  %s", p.B), m.activePanel == PanelB))
	s.WriteString("\n")
	s.WriteString(m.bViewport.View())
	s.WriteString("\n")
	s.WriteString(m.renderChoiceBar(p))
	s.WriteString("\n")
	s.WriteString(m.renderStatusBar())

	return s.String()
}

func (m ChooseModel) renderCompletionView() string {
	answered := m.answered()
	var s strings.Builder
	s.WriteString("All pairs completed.\n\n")
	s.WriteString(fmt.Sprintf("Completed: %d / %d\n", answered, len(m.pairs)))
	s.WriteString("\n[N] previous pair  [q] quit")
	return s.String()
}

func (m ChooseModel) renderPanelHeader(name string, active bool) string {
	style := lipgloss.NewStyle().Bold(true)
	if active {
		return style.Render(fmt.Sprintf("%s [active]", name))
	}
	return style.Render(name)
}

func (m ChooseModel) renderChoiceBar(p annotate.Pair) string {
	aMarker, bMarker := "○", "○"
	if c, ok := m.choices[p.ID]; ok {
		switch c.Value {
		case "A":
			aMarker = "●"
		case "B":
			bMarker = "●"
		}
	}
	return fmt.Sprintf("%s Choose A  %s Choose B", aMarker, bMarker)
}

func (m ChooseModel) renderStatusBar() string {
	if len(m.pairs) == 0 {
		return "No pairs"
	}

	pairInfo := fmt.Sprintf("pair %d/%d", m.current+1, len(m.pairs))
	progress := fmt.Sprintf("%d/%d chosen", m.answered(), len(m.pairs))
	help := "[a/b]choose [n/N]nav [tab]panel [q]uit"

	bar := fmt.Sprintf("%s │ %s │ %s", pairInfo, progress, help)
	if m.styles.Muted.Foreground != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.Muted.Foreground)).Render(bar)
	}
	return bar
}

func (m ChooseModel) answered() int {
	count := 0
	for _, p := range m.pairs {
		if c, ok := m.choices[p.ID]; ok && c.Value != "" {
			count++
		}
	}
	return count
}
