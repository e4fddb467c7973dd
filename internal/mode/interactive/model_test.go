// ABOUTME: Tests for the chat TUI model
// ABOUTME: Drives Update with key and turn messages, asserts transcript and state

package interactive

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ram095/axeesAI/internal/assistant"
	"github.com/Ram095/axeesAI/internal/commands"
	"github.com/Ram095/axeesAI/internal/dispatch"
	"github.com/Ram095/axeesAI/internal/intent"
)

type fakeTurner struct {
	result   assistant.TurnResult
	inputs   []string
	registry *commands.Registry
}

func (f *fakeTurner) Turn(ctx context.Context, input string) assistant.TurnResult {
	f.inputs = append(f.inputs, input)
	return f.result
}

func (f *fakeTurner) Registry() *commands.Registry {
	return f.registry
}

func testDeps() (Deps, *fakeTurner) {
	ft := &fakeTurner{
		result: assistant.TurnResult{
			Outcome: dispatch.Rendered("# Scan Report\n\nFound 2 accessibility violations.", "scan https://example.com"),
			Intent:  intent.Scan("https://example.com", intent.SourceHeuristic, 0.8),
		},
		registry: commands.NewRegistry(),
	}
	deps := Deps{
		Turner:    ft,
		Version:   "1.2.3",
		BaseURL:   "http://localhost:8000",
		SessionID: "aabbccdd00112233",
	}
	return deps, ft
}

func lastEntry(t *testing.T, m Model) entry {
	t.Helper()
	if len(m.entries) == 0 {
		t.Fatal("transcript is empty")
	}
	return m.entries[len(m.entries)-1]
}

func TestNew_WelcomeBlock(t *testing.T) {
	deps, _ := testDeps()
	m := New(deps)

	if len(m.entries) != 1 {
		t.Fatalf("len(entries) = %d; want 1", len(m.entries))
	}
	e := m.entries[0]
	if e.kind != entryInfo {
		t.Errorf("kind = %v; want %v", e.kind, entryInfo)
	}
	for _, want := range []string{"1.2.3", "http://localhost:8000", "/help"} {
		if !strings.Contains(e.text, want) {
			t.Errorf("welcome = %q; want it to contain %q", e.text, want)
		}
	}
}

func TestModel_SubmitStartsTurn(t *testing.T) {
	deps, ft := testDeps()
	m := New(deps)
	m.input.SetValue("scan example.com")

	result, cmd := m.submit()
	model := result.(Model)

	if cmd == nil {
		t.Fatal("cmd = nil; want turn command")
	}
	if !model.busy {
		t.Error("busy = false; want true")
	}
	if model.input.Value() != "" {
		t.Errorf("input should be cleared; got %q", model.input.Value())
	}
	if len(model.history) != 1 || model.history[0] != "scan example.com" {
		t.Errorf("history = %v; want [scan example.com]", model.history)
	}
	if e := lastEntry(t, model); e.kind != entryUser || e.text != "scan example.com" {
		t.Errorf("last entry = %+v; want user echo", e)
	}

	// Run the turn and feed the result back.
	msg := cmd()
	done, ok := msg.(turnDoneMsg)
	if !ok {
		t.Fatalf("msg = %T; want turnDoneMsg", msg)
	}
	if len(ft.inputs) != 1 || ft.inputs[0] != "scan example.com" {
		t.Errorf("turner inputs = %v; want [scan example.com]", ft.inputs)
	}

	result2, _ := model.Update(done)
	model2 := result2.(Model)
	if model2.busy {
		t.Error("busy = true after turn; want false")
	}
	if e := lastEntry(t, model2); e.kind != entryReport || !strings.Contains(e.text, "Scan Report") {
		t.Errorf("last entry = %+v; want rendered report", e)
	}
}

func TestModel_SubmitEmptyNoOp(t *testing.T) {
	deps, _ := testDeps()
	m := New(deps)
	m.input.SetValue("   ")

	result, cmd := m.submit()
	model := result.(Model)

	if cmd != nil {
		t.Error("cmd != nil; want no turn for blank input")
	}
	if model.busy {
		t.Error("busy = true; want false")
	}
	if len(model.history) != 0 {
		t.Errorf("history = %v; want empty", model.history)
	}
}

func TestModel_SubmitWhileBusyIgnored(t *testing.T) {
	deps, _ := testDeps()
	m := New(deps)
	m.busy = true
	m.input.SetValue("fix 1")

	_, cmd := m.submit()
	if cmd != nil {
		t.Error("cmd != nil; want no second turn while busy")
	}
}

func TestModel_EscCancelsTurn(t *testing.T) {
	deps, _ := testDeps()
	m := New(deps)
	m.busy = true
	m.seq = 3
	canceled := false
	m.cancel = func() { canceled = true }

	result, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model := result.(Model)

	if !canceled {
		t.Error("cancel was not called")
	}
	if model.busy {
		t.Error("busy = true; want false")
	}
	if model.seq != 4 {
		t.Errorf("seq = %d; want 4", model.seq)
	}
	if e := lastEntry(t, model); e.kind != entryInfo || e.text != "Canceled." {
		t.Errorf("last entry = %+v; want cancellation notice", e)
	}
}

func TestModel_StaleTurnResultDiscarded(t *testing.T) {
	deps, _ := testDeps()
	m := New(deps)
	m.busy = true
	m.seq = 3
	m.cancel = func() {}

	result, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model := result.(Model)
	entriesBefore := len(model.entries)

	// The canceled turn finishes late with the old sequence number.
	stale := turnDoneMsg{
		seq:    3,
		result: assistant.TurnResult{Outcome: dispatch.Rendered("# Late Report", "scan https://late.example")},
	}
	result2, _ := model.Update(stale)
	model2 := result2.(Model)

	if len(model2.entries) != entriesBefore {
		t.Errorf("len(entries) = %d; want %d (stale result dropped)", len(model2.entries), entriesBefore)
	}
}

func TestModel_CtrlCQuitsWhenIdle(t *testing.T) {
	deps, _ := testDeps()
	m := New(deps)

	result, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	model := result.(Model)

	if !model.quitting {
		t.Error("quitting = false; want true")
	}
	if cmd == nil {
		t.Fatal("cmd = nil; want quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("cmd did not produce tea.QuitMsg")
	}
}

func TestModel_CtrlCCancelsWhenBusy(t *testing.T) {
	deps, _ := testDeps()
	m := New(deps)
	m.busy = true
	m.cancel = func() {}

	result, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	model := result.(Model)

	if model.quitting {
		t.Error("quitting = true; want false (first ctrl+c only cancels)")
	}
	if model.busy {
		t.Error("busy = true; want false")
	}
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("ctrl+c while busy should not quit")
		}
	}
}

func TestModel_SlashOpensCompletion(t *testing.T) {
	deps, _ := testDeps()
	m := New(deps)

	result, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	model := result.(Model)

	if !model.completion.open {
		t.Fatal("completion closed after typing /")
	}
	if got, want := len(model.completion.matches), len(deps.Turner.Registry().List()); got != want {
		t.Errorf("len(matches) = %d; want %d (all commands)", got, want)
	}

	// Narrowing the pattern filters the list.
	result2, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	model2 := result2.(Model)
	if len(model2.completion.matches) != 3 {
		t.Errorf("len(matches) = %d; want 3 (health, help, history)", len(model2.completion.matches))
	}
	for _, match := range model2.completion.matches {
		if !strings.Contains(match.Name, "h") {
			t.Errorf("match %q does not contain pattern", match.Name)
		}
	}
}

func TestModel_CompletionAcceptFillsInput(t *testing.T) {
	deps, _ := testDeps()
	m := New(deps)
	m.input.SetValue("/help")
	m.refreshCompletion()
	if !m.completion.open {
		t.Fatal("completion closed for /help")
	}

	result, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	model := result.(Model)

	if got := model.input.Value(); got != "/help " {
		t.Errorf("input = %q; want %q", got, "/help ")
	}
	if model.completion.open {
		t.Error("completion still open after accept")
	}
}

func TestModel_CompletionClosesOnSpace(t *testing.T) {
	deps, _ := testDeps()
	m := New(deps)
	m.input.SetValue("/scan")
	m.refreshCompletion()
	if !m.completion.open {
		t.Fatal("completion closed for /scan")
	}

	result, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	model := result.(Model)

	if model.completion.open {
		t.Error("completion open after space; want closed")
	}
}

func TestModel_HistoryBrowsing(t *testing.T) {
	deps, _ := testDeps()
	m := New(deps)
	m.history = []string{"scan https://example.com", "fix 1"}

	m.browseHistory(-1)
	if got := m.input.Value(); got != "fix 1" {
		t.Errorf("input = %q; want %q", got, "fix 1")
	}

	m.browseHistory(-1)
	if got := m.input.Value(); got != "scan https://example.com" {
		t.Errorf("input = %q; want %q", got, "scan https://example.com")
	}

	// Already at the oldest line; stays put.
	m.browseHistory(-1)
	if got := m.input.Value(); got != "scan https://example.com" {
		t.Errorf("input = %q; want %q", got, "scan https://example.com")
	}

	m.browseHistory(1)
	if got := m.input.Value(); got != "fix 1" {
		t.Errorf("input = %q; want %q", got, "fix 1")
	}

	// Walking past the newest line restores the draft.
	m.browseHistory(1)
	if got := m.input.Value(); got != "" {
		t.Errorf("input = %q; want empty draft", got)
	}
	if m.histIdx != -1 {
		t.Errorf("histIdx = %d; want -1", m.histIdx)
	}
}

func TestModel_FinishTurnOutcomeKinds(t *testing.T) {
	tests := []struct {
		name    string
		outcome dispatch.Outcome
		want    entryKind
	}{
		{"rendered", dispatch.Rendered("# Report", "scan https://example.com"), entryReport},
		{"guidance", dispatch.Guidance("Which issue should I fix?"), entryGuidance},
		{"failed", dispatch.Outcome{Kind: dispatch.KindFailed, Message: "The backend is not reachable."}, entryError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, _ := testDeps()
			m := New(deps)
			m.busy = true
			m.seq = 1

			result, _ := m.Update(turnDoneMsg{seq: 1, result: assistant.TurnResult{Outcome: tt.outcome}})
			model := result.(Model)

			if e := lastEntry(t, model); e.kind != tt.want {
				t.Errorf("entry kind = %v; want %v", e.kind, tt.want)
			}
		})
	}
}

func TestModel_ExitRequestedQuitsAfterTurn(t *testing.T) {
	deps, ft := testDeps()
	exit := false
	deps.ExitRequested = func() bool { return exit }
	ft.result = assistant.TurnResult{
		Outcome: dispatch.Rendered("Goodbye.", ""),
		Local:   true,
	}

	m := New(deps)
	m.busy = true
	m.seq = 1
	exit = true

	result, cmd := m.Update(turnDoneMsg{seq: 1, result: ft.result})
	model := result.(Model)

	if !model.quitting {
		t.Error("quitting = false; want true")
	}
	if cmd == nil {
		t.Fatal("cmd = nil; want quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("cmd did not produce tea.QuitMsg")
	}
}

func TestModel_WindowSizeRelayout(t *testing.T) {
	deps, _ := testDeps()
	m := New(deps)

	result, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model := result.(Model)

	if model.viewport.Width != 80 {
		t.Errorf("viewport.Width = %d; want 80", model.viewport.Width)
	}
	if model.viewport.Height != 22 {
		t.Errorf("viewport.Height = %d; want 22", model.viewport.Height)
	}
	if model.input.Width != 76 {
		t.Errorf("input.Width = %d; want 76", model.input.Width)
	}
}

func TestModel_ViewShowsSpinnerWhileBusy(t *testing.T) {
	deps, _ := testDeps()
	m := New(deps)
	m.busy = true

	view := m.View()
	if !strings.Contains(view, "Working on it.") {
		t.Errorf("view does not show the busy indicator")
	}

	m.busy = false
	view = m.View()
	if strings.Contains(view, "Working on it.") {
		t.Errorf("idle view still shows the busy indicator")
	}
}
