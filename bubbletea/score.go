// Package bubbletea provides the terminal UI models for annotation sessions.
package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/annotate"
	"go.uber.org/zap"
)

// ScoreModel is the Bubble Tea model for scoring items one at a time. The
// just-scored item stays current and visible (sticky); the operator moves on
// explicitly.
type ScoreModel struct {
	// Data
	session *annotate.Session

	// UI Components
	viewport viewport.Model

	// State
	ready bool

	// Rendering
	width, height int
	styles        annotate.Styles
	tokenizer     annotate.Tokenizer
	categories    []string

	// Persistence
	store      annotate.ExportStore
	outputPath string

	// Keybindings
	keymap ScoreKeyMap

	logger *zap.Logger
}

// ScoreModelOption configures a ScoreModel.
type ScoreModelOption func(*ScoreModel)

// WithExportStore sets the store used to autosave the export document after
// every judgment.
func WithExportStore(store annotate.ExportStore, outputPath string) ScoreModelOption {
	return func(m *ScoreModel) {
		m.store = store
		m.outputPath = outputPath
	}
}

// WithScoreStyles sets the UI colors.
func WithScoreStyles(styles annotate.Styles) ScoreModelOption {
	return func(m *ScoreModel) {
		m.styles = styles
	}
}

// WithScoreTokenizer sets the payload highlighter.
func WithScoreTokenizer(tokenizer annotate.Tokenizer) ScoreModelOption {
	return func(m *ScoreModel) {
		m.tokenizer = tokenizer
	}
}

// WithCategories sets the reference category labels shown in the status area.
func WithCategories(categories []string) ScoreModelOption {
	return func(m *ScoreModel) {
		m.categories = categories
	}
}

// WithScoreLogger sets the logger for best-effort persistence failures.
func WithScoreLogger(logger *zap.Logger) ScoreModelOption {
	return func(m *ScoreModel) {
		m.logger = logger
	}
}

// NewScoreModel creates a new ScoreModel over the given session.
func NewScoreModel(session *annotate.Session, opts ...ScoreModelOption) ScoreModel {
	m := ScoreModel{
		session: session,
		keymap:  DefaultScoreKeyMap(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m ScoreModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeys(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ScoreModel) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.persist()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextItem):
		m.session.Advance()
		m.updateViewportContent()
		return m, nil

	case key.Matches(msg, m.keymap.PrevItem):
		m.session.Retreat()
		m.updateViewportContent()
		return m, nil

	case key.Matches(msg, m.keymap.FirstUnjudged):
		m.session.SeekFirstUnjudged()
		m.updateViewportContent()
		return m, nil

	case key.Matches(msg, m.keymap.ToggleHide):
		m.session.SetHideCompleted(!m.session.HideCompleted())
		m.session.SeekFirstUnjudged()
		m.updateViewportContent()
		return m, nil

	case key.Matches(msg, m.keymap.ScoreZero):
		m.record("0")
		return m, nil

	case key.Matches(msg, m.keymap.ScoreHalf):
		m.record("0.5")
		return m, nil

	case key.Matches(msg, m.keymap.ScoreOne):
		m.record("1")
		return m, nil

	case key.Matches(msg, m.keymap.HalfPageUp):
		m.viewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keymap.HalfPageDown):
		m.viewport.HalfPageDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *ScoreModel) record(value annotate.Value) {
	id, ok := m.session.Current()
	if !ok {
		return
	}
	if err := m.session.Record(id, value); err != nil {
		m.logger.Warn("judgment rejected", zap.String("item", id), zap.Error(err))
		return
	}
	m.persist()
	m.updateViewportContent()
}

// persist autosaves the export document. Errors are logged but don't block
// the UI.
func (m *ScoreModel) persist() {
	if m.store == nil || m.outputPath == "" {
		return
	}
	if err := m.store.Save(m.outputPath, m.session.Export()); err != nil {
		m.logger.Warn("autosave failed", zap.String("path", m.outputPath), zap.Error(err))
	}
}

func (m ScoreModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Reserve: item header (1), judgment bar (1), status bar (1), spacing (1)
	usableHeight := msg.Height - 4
	if usableHeight < 2 {
		usableHeight = 2
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, usableHeight)
		m.updateViewportContent()
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = usableHeight
	}

	return m, nil
}

func (m *ScoreModel) updateViewportContent() {
	id, ok := m.session.Current()
	if !ok {
		m.viewport.SetContent("No items to score")
		return
	}

	payload, _ := m.session.Payload(id)
	m.viewport.SetContent(m.renderPayload(payload))
	m.viewport.GotoTop()
}

// renderPayload renders structured payloads as highlighted JSON and scalars
// as plain text.
func (m *ScoreModel) renderPayload(payload annotate.Payload) string {
	display := payload.Display()
	if payload.Kind == annotate.PayloadScalar || m.tokenizer == nil {
		return display
	}
	tokens := m.tokenizer.Tokenize(display)
	if tokens == nil {
		return display
	}
	return renderTokens(tokens)
}

// renderTokens applies token styles with lipgloss.
func renderTokens(tokens []annotate.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		style := lipgloss.NewStyle()
		if tok.Style.Foreground != "" {
			style = style.Foreground(lipgloss.Color(tok.Style.Foreground))
		}
		if tok.Style.Bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(tok.Text))
	}
	return b.String()
}

// View implements tea.Model.
func (m ScoreModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(m.renderJudgmentBar())
	s.WriteString("\n")
	s.WriteString(m.renderStatusBar())

	return s.String()
}

func (m ScoreModel) renderHeader() string {
	style := lipgloss.NewStyle().Bold(true)
	if m.styles.Title.Foreground != "" {
		style = style.Foreground(lipgloss.Color(m.styles.Title.Foreground))
	}

	id, ok := m.session.Current()
	if !ok {
		return style.Render("ITEM (none)")
	}
	index, total := m.session.Position()
	header := fmt.Sprintf("ITEM %s  (%d of %d visible)", id, index+1, total)
	if m.session.HideCompleted() {
		header += "  [hiding scored]"
	}
	return style.Render(header)
}

func (m ScoreModel) renderJudgmentBar() string {
	id, ok := m.session.Current()
	if !ok {
		return ""
	}

	var current annotate.Value
	if j, judged := m.session.Judgment(id); judged {
		current = j.Value
	}

	var parts []string
	for _, v := range m.session.Allowed().Values() {
		marker := "○"
		if v == current {
			marker = "●"
		}
		parts = append(parts, fmt.Sprintf("%s %s", marker, v))
	}
	bar := strings.Join(parts, "  ")
	if len(m.categories) > 0 {
		bar += "    Labels: " + strings.Join(m.categories, ", ")
	}
	return bar
}

func (m ScoreModel) renderStatusBar() string {
	judged, total := m.session.Progress()
	if total == 0 {
		return "No items"
	}

	var indicators []string
	for _, id := range m.session.Order() {
		if m.session.Judged(id) {
			indicators = append(indicators, "✓")
		} else {
			indicators = append(indicators, "○")
		}
	}

	index, visible := m.session.Position()
	itemInfo := fmt.Sprintf("item %d/%d", index+1, visible)
	progress := fmt.Sprintf("%d/%d scored", judged, total)
	help := "[0/5/1]score [n/N]nav [u]unscored [h]ide [q]uit"

	bar := fmt.Sprintf("%s │ %s │ %s │ %s", itemInfo, progress, strings.Join(indicators, " "), help)
	if m.styles.Muted.Foreground != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.Muted.Foreground)).Render(bar)
	}
	return bar
}
