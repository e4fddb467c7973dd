// ABOUTME: Bubble Tea model for the chat TUI
// ABOUTME: Transcript viewport, prompt input, async turns with esc cancellation

package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ram095/axeesAI/internal/assistant"
	"github.com/Ram095/axeesAI/internal/dispatch"
	"github.com/Ram095/axeesAI/internal/render"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	minWrapWidth  = 20
	minViewLines  = 3
)

// entryKind discriminates transcript blocks for styling.
type entryKind int

const (
	entryUser entryKind = iota
	entryReport
	entryGuidance
	entryError
	entryInfo
)

// entry is one transcript block, kept raw so width changes re-render.
type entry struct {
	kind entryKind
	text string
}

// turnDoneMsg carries a finished turn back into the Update loop.
type turnDoneMsg struct {
	seq    int
	result assistant.TurnResult
}

// Model is the Bubble Tea model for the chat TUI.
type Model struct {
	deps Deps

	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model

	entries []entry
	busy    bool
	seq     int
	cancel  context.CancelFunc

	// Prompt history, newest last. Separate from the session's command
	// history: every submitted line lands here, even rejected ones.
	history   []string
	histIdx   int // -1 means not browsing
	savedLine string

	completion completionState

	width  int
	height int

	quitting bool

	md *render.Renderer
}

// New creates the chat model with the welcome block in the transcript.
func New(deps Deps) Model {
	ti := textinput.New()
	ti.Prompt = "❯ "
	ti.Placeholder = `Try "scan example.com" or /help`
	ti.CharLimit = 500
	ti.Width = defaultWidth - 4
	ti.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = spinnerStyle

	m := Model{
		deps:     deps,
		input:    ti,
		viewport: viewport.New(defaultWidth, defaultHeight-2),
		spin:     spin,
		histIdx:  -1,
		width:    defaultWidth,
		height:   defaultHeight,
		md:       render.NewRenderer(),
	}
	m.entries = append(m.entries, entry{kind: entryInfo, text: welcomeText(deps)})
	m.rebuildViewport()
	return m
}

func welcomeText(deps Deps) string {
	var b strings.Builder
	fmt.Fprintf(&b, "axees %s\n", deps.Version)
	fmt.Fprintf(&b, "Backend %s · session %s\n", deps.BaseURL, deps.SessionID)
	b.WriteString("Type a URL to scan it, ask a question, or /help for commands.")
	return b.String()
}

// Init starts the cursor blink and the spinner tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

// Update routes messages to the appropriate handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		m.layout()
		m.rebuildViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case turnDoneMsg:
		return m.finishTurn(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// View lays out viewport, input (or spinner while busy), the completion
// dropdown, and the key hint line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spin.View() + infoStyle.Render(" Working on it."))
	} else {
		b.WriteString(m.input.View())
	}
	if comp := m.completion.view(); comp != "" {
		b.WriteString("\n" + comp)
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) statusLine() string {
	if m.busy {
		return helpStyle.Render("  esc: cancel  ctrl+c: quit")
	}
	return helpStyle.Render("  enter: send  /: commands  up/down: history  pgup/pgdn: scroll  ctrl+c: quit")
}

// --- Key handling ---

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		if m.busy {
			m.cancelTurn()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "ctrl+d":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		if m.busy {
			m.cancelTurn()
			return m, nil
		}
		if m.completion.open {
			m.completion.close()
			m.layout()
		}
		return m, nil

	case "enter":
		if m.completion.open {
			m.acceptCompletion()
			m.layout()
			return m, nil
		}
		return m.submit()

	case "tab":
		if m.completion.open {
			m.acceptCompletion()
			m.layout()
		}
		return m, nil

	case "up":
		if m.completion.open {
			m.completion.move(-1)
			return m, nil
		}
		m.browseHistory(-1)
		return m, nil

	case "down":
		if m.completion.open {
			m.completion.move(1)
			return m, nil
		}
		m.browseHistory(1)
		return m, nil

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	wasOpen := m.completion.open
	m.refreshCompletion()
	if m.completion.open != wasOpen {
		m.layout()
	}
	return m, cmd
}

// --- Turn lifecycle ---

// submit starts a turn for the current input line.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" || m.busy {
		return m, nil
	}

	m.history = append(m.history, line)
	m.histIdx = -1
	m.savedLine = ""
	m.input.SetValue("")
	m.completion.close()

	m.entries = append(m.entries, entry{kind: entryUser, text: line})
	m.rebuildViewport()

	m.busy = true
	m.seq++
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.layout()
	return m, turnCmd(m.deps.Turner, ctx, line, m.seq)
}

// turnCmd runs one assistant turn off the Update loop.
func turnCmd(turner Turner, ctx context.Context, line string, seq int) tea.Cmd {
	return func() tea.Msg {
		return turnDoneMsg{seq: seq, result: turner.Turn(ctx, line)}
	}
}

// finishTurn appends the outcome to the transcript. Results from a
// canceled turn carry a stale sequence number and are dropped.
func (m Model) finishTurn(msg turnDoneMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil
	}
	m.busy = false
	m.cancel = nil

	out := msg.result.Outcome
	switch out.Kind {
	case dispatch.KindRendered:
		m.entries = append(m.entries, entry{kind: entryReport, text: out.Markdown})
	case dispatch.KindGuidance:
		m.entries = append(m.entries, entry{kind: entryGuidance, text: out.Message})
	default:
		m.entries = append(m.entries, entry{kind: entryError, text: out.Message})
	}
	m.rebuildViewport()
	m.layout()

	if m.deps.ExitRequested != nil && m.deps.ExitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// cancelTurn stops the in-flight turn and bumps the sequence so its
// late result is discarded.
func (m *Model) cancelTurn() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.busy = false
	m.seq++
	m.entries = append(m.entries, entry{kind: entryInfo, text: "Canceled."})
	m.rebuildViewport()
	m.layout()
}

// --- History browsing ---

func (m *Model) browseHistory(dir int) {
	if len(m.history) == 0 {
		return
	}
	switch {
	case dir < 0 && m.histIdx == -1:
		m.savedLine = m.input.Value()
		m.histIdx = len(m.history) - 1
	case dir < 0 && m.histIdx > 0:
		m.histIdx--
	case dir > 0 && m.histIdx >= 0:
		m.histIdx++
		if m.histIdx >= len(m.history) {
			m.histIdx = -1
		}
	default:
		return
	}

	if m.histIdx == -1 {
		m.input.SetValue(m.savedLine)
	} else {
		m.input.SetValue(m.history[m.histIdx])
	}
	m.input.CursorEnd()
	m.refreshCompletion()
}

// --- Completion ---

// refreshCompletion opens or updates the dropdown while the input holds
// an unfinished slash command.
func (m *Model) refreshCompletion() {
	line := m.input.Value()
	if m.busy || !strings.HasPrefix(line, "/") || strings.ContainsRune(line, ' ') {
		m.completion.close()
		return
	}
	m.completion.filter(line[1:], m.deps.Turner.Registry().List())
}

// acceptCompletion writes the selected command into the input for the
// user to finish and submit.
func (m *Model) acceptCompletion() {
	name := m.completion.selectedName()
	if name == "" {
		return
	}
	m.input.SetValue("/" + name + " ")
	m.input.CursorEnd()
	m.completion.close()
}

// --- Layout and rendering ---

// layout sizes the viewport around the fixed chrome: the input line,
// the hint line, and the completion dropdown when open.
func (m *Model) layout() {
	h := m.height - 2 - m.completion.rows()
	if h < minViewLines {
		h = minViewLines
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

// rebuildViewport re-renders the transcript and follows the tail.
func (m *Model) rebuildViewport() {
	blocks := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		blocks = append(blocks, m.renderEntry(e))
	}
	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
	m.viewport.GotoBottom()
}

// renderEntry styles one transcript block at the current width.
func (m *Model) renderEntry(e entry) string {
	switch e.kind {
	case entryUser:
		return userStyle.Render("❯ " + e.text)
	case entryReport:
		return strings.TrimRight(m.md.Render(e.text, m.contentWidth()), "\n")
	case entryGuidance:
		return guidanceStyle.Render(e.text)
	case entryError:
		return errorStyle.Render(e.text)
	default:
		return infoStyle.Render(e.text)
	}
}

func (m *Model) contentWidth() int {
	w := m.width - 2
	if w < minWrapWidth {
		w = minWrapWidth
	}
	return w
}
