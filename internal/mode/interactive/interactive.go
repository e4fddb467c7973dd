// ABOUTME: Interactive chat mode entry point
// ABOUTME: Wires the assistant into a Bubble Tea program on the alternate screen

package interactive

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ram095/axeesAI/internal/assistant"
	"github.com/Ram095/axeesAI/internal/commands"
)

// Turner is the assistant surface the TUI drives. *assistant.Assistant
// satisfies it.
type Turner interface {
	Turn(ctx context.Context, input string) assistant.TurnResult
	Registry() *commands.Registry
}

// Deps wires the chat TUI.
type Deps struct {
	Turner    Turner
	Version   string
	BaseURL   string
	SessionID string

	// ExitRequested reports whether /exit ran during the last turn.
	// Polled after each turn completes.
	ExitRequested func() bool
}

// Run starts the chat TUI. Blocks until the user exits.
func Run(deps Deps) error {
	p := tea.NewProgram(New(deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running chat program: %w", err)
	}
	return nil
}
