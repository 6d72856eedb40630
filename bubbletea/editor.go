// Package bubbletea provides a terminal live-editing surface for Markdown
// definition lists using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/deflist"
)

// Model is the Bubble Tea model for the editor. It owns the cursor and
// rebuilds the annotation directives from scratch on every render, so
// definition markers are hidden except when the cursor touches them.
type Model struct {
	lines []string
	row   int
	col   int // rune offset within the current line

	top    int // first visible row
	width  int
	height int
	ready  bool
	live   bool
	status string

	keymap    KeyMap
	styles    deflist.Styles
	renderer  *lipgloss.Renderer
	tokenizer deflist.Tokenizer
	clipboard deflist.Clipboard
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer  *lipgloss.Renderer
	theme     deflist.Theme
	tokenizer deflist.Tokenizer
	clipboard deflist.Clipboard
	keymap    *KeyMap
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t deflist.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// WithTokenizer sets the tokenizer used to highlight fenced code blocks.
func WithTokenizer(t deflist.Tokenizer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.tokenizer = t
	}
}

// WithClipboard sets the clipboard used by the copy-line binding.
func WithClipboard(c deflist.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithKeyMap sets custom key bindings.
func WithKeyMap(k KeyMap) ModelOption {
	return func(cfg *modelConfig) {
		cfg.keymap = &k
	}
}

// NewModel creates a Model editing the given text. The live-editing visual
// mode starts enabled.
func NewModel(text string, opts ...ModelOption) Model {
	var cfg modelConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var styles deflist.Styles
	if cfg.theme != nil {
		styles = cfg.theme.Styles()
	}
	keymap := DefaultKeyMap()
	if cfg.keymap != nil {
		keymap = *cfg.keymap
	}

	return Model{
		lines:     strings.Split(text, "\n"),
		live:      true,
		keymap:    keymap,
		styles:    styles,
		renderer:  cfg.renderer,
		tokenizer: cfg.tokenizer,
		clipboard: cfg.clipboard,
	}
}

// Text returns the current document text.
func (m Model) Text() string {
	return strings.Join(m.lines, "\n")
}

// Live reports whether the live-editing visual mode is enabled.
func (m Model) Live() bool {
	return m.live
}

// Cursor returns the cursor position as (row, rune column).
func (m Model) Cursor() (row, col int) {
	return m.row, m.col
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.scrollIntoView()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keymap.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keymap.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keymap.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keymap.LineStart):
		m.col = 0
	case key.Matches(msg, m.keymap.LineEnd):
		m.col = len([]rune(m.lines[m.row]))
	case key.Matches(msg, m.keymap.PageUp):
		m.moveCursor(-m.pageSize(), 0)
	case key.Matches(msg, m.keymap.PageDown):
		m.moveCursor(m.pageSize(), 0)
	case key.Matches(msg, m.keymap.Enter):
		m.splitLine()
	case key.Matches(msg, m.keymap.Backspace):
		m.deleteBack()
	case key.Matches(msg, m.keymap.ToggleLive):
		m.live = !m.live
	case key.Matches(msg, m.keymap.CopyLine):
		m.copyLine()
	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.insert(string(msg.Runes))
		case tea.KeySpace:
			m.insert(" ")
		case tea.KeyTab:
			m.insert("\t")
		}
	}

	m.scrollIntoView()
	return m, nil
}

func (m *Model) pageSize() int {
	if m.height <= 1 {
		return 1
	}
	return m.height - 1
}

func (m *Model) moveCursor(dRow, dCol int) {
	if dRow != 0 {
		m.row += dRow
		if m.row < 0 {
			m.row = 0
		}
		if m.row > len(m.lines)-1 {
			m.row = len(m.lines) - 1
		}
	}
	m.col += dCol
	if m.col < 0 {
		m.col = 0
	}
	if max := len([]rune(m.lines[m.row])); m.col > max {
		m.col = max
	}
}

func (m *Model) insert(s string) {
	runes := []rune(m.lines[m.row])
	m.lines[m.row] = string(runes[:m.col]) + s + string(runes[m.col:])
	m.col += len([]rune(s))
}

func (m *Model) splitLine() {
	runes := []rune(m.lines[m.row])
	before, after := string(runes[:m.col]), string(runes[m.col:])
	m.lines[m.row] = before
	rest := append([]string{after}, m.lines[m.row+1:]...)
	m.lines = append(m.lines[:m.row+1], rest...)
	m.row++
	m.col = 0
}

func (m *Model) deleteBack() {
	if m.col > 0 {
		runes := []rune(m.lines[m.row])
		m.lines[m.row] = string(runes[:m.col-1]) + string(runes[m.col:])
		m.col--
		return
	}
	if m.row == 0 {
		return
	}
	prev := m.lines[m.row-1]
	m.col = len([]rune(prev))
	m.lines[m.row-1] = prev + m.lines[m.row]
	m.lines = append(m.lines[:m.row], m.lines[m.row+1:]...)
	m.row--
}

func (m *Model) copyLine() {
	if m.clipboard == nil {
		m.status = "no clipboard available"
		return
	}
	if err := m.clipboard.Copy(m.lines[m.row]); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "line copied"
}

func (m *Model) scrollIntoView() {
	visible := m.pageSize()
	if m.row < m.top {
		m.top = m.row
	}
	if m.row >= m.top+visible {
		m.top = m.row - visible + 1
	}
	if m.top < 0 {
		m.top = 0
	}
}

// cursorOffset returns the cursor position as a byte offset into the
// document, for the annotation pass.
func (m Model) cursorOffset() int {
	offset := 0
	for i := 0; i < m.row; i++ {
		offset += len(m.lines[i]) + 1
	}
	return offset + m.byteCol()
}

// byteCol converts the rune column into a byte offset within the row.
func (m Model) byteCol() int {
	runes := []rune(m.lines[m.row])
	return len(string(runes[:m.col]))
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	doc := deflist.NewDocument(m.Text())
	caret := m.cursorOffset()
	directives := deflist.BuildDirectives(doc, []deflist.Range{{From: caret, To: caret}}, m.live)

	rendered := renderLines(renderConfig{
		doc:        doc,
		directives: directives,
		styles:     m.styles,
		renderer:   m.renderer,
		tokenizer:  m.tokenizer,
		live:       m.live,
		cursorRow:  m.row,
		cursorCol:  m.byteCol(),
		showCursor: true,
	})

	bottom := m.top + m.pageSize()
	if bottom > len(rendered) {
		bottom = len(rendered)
	}

	var sb strings.Builder
	for _, line := range rendered[m.top:bottom] {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	for i := bottom - m.top; i < m.pageSize(); i++ {
		sb.WriteString("\n")
	}
	sb.WriteString(m.statusBar())
	return sb.String()
}

func (m Model) statusBar() string {
	mode := "live"
	if !m.live {
		mode = "raw"
	}
	left := " " + mode
	if m.status != "" {
		left += " · " + m.status
	}
	right := "ctrl+p mode · ctrl+y copy · esc quit "

	style := styleFromColorPair(m.styles.StatusBar, m.renderer)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return style.Render(left + strings.Repeat(" ", gap) + right)
}

// Compile-time interface verification.
var _ deflist.Editor = (*Editor)(nil)

// Editor implements deflist.Editor using a Bubble Tea TUI.
type Editor struct {
	opts []ModelOption
}

// NewEditor creates an Editor. Options are applied to every Edit session.
func NewEditor(opts ...ModelOption) *Editor {
	return &Editor{opts: opts}
}

// Edit displays text in the editor and blocks until the user exits,
// returning the possibly modified document text.
func (e *Editor) Edit(ctx context.Context, text string) (string, error) {
	m := NewModel(text, e.opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		return text, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Text(), nil
	}
	return text, nil
}
