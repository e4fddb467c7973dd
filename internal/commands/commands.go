// ABOUTME: Slash command registry shared by the interactive and print front ends
// ABOUTME: Local commands execute against a CommandContext; turn commands route to intent resolution

package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Ram095/axeesAI/internal/render"
)

// Command represents a slash command. Turn commands (scan, fix,
// explain) are listed for help and completion but dispatch through
// intent resolution, not through Execute.
type Command struct {
	Name        string
	Description string
	Turn        bool
	Execute     func(ctx *CommandContext, args string) (string, error)
}

// CommandContext provides access to app state for commands. Callbacks
// are nilable; commands report "not available" when theirs is nil.
type CommandContext struct {
	Version    string
	BaseURL    string
	IntentMode string
	StrictURLs bool
	SessionID  string
	CWD        string

	// History returns the session's resolved command lines, oldest first.
	History func() []string

	// ClearSession drops the scan record and command history.
	ClearSession func() error

	// CheckHealth probes the backend and returns a user-facing report.
	// Reachability problems come back as the report, not as an error.
	CheckHealth func() (string, error)

	// StoreKey persists an API key and applies it to the running client.
	StoreKey func(key string) error

	// ExitFn requests application shutdown.
	ExitFn func()
}

// Registry holds all registered slash commands.
type Registry struct {
	commands map[string]*Command
}

// NewRegistry creates a registry with all core commands registered.
func NewRegistry() *Registry {
	r := &Registry{commands: make(map[string]*Command)}
	r.registerCoreCommands()
	return r
}

// Get returns a command by name.
// The second return value indicates whether the name was found.
func (r *Registry) Get(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns all commands sorted by name for deterministic output.
func (r *Registry) List() []*Command {
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Dispatch parses a "/command args" input, looks up the command, and
// executes it. Turn commands are refused here; callers route them
// through intent resolution after checking Command.Turn.
func (r *Registry) Dispatch(ctx *CommandContext, input string) (string, error) {
	input = strings.TrimSpace(input)
	if !IsCommand(input) {
		return "", fmt.Errorf("not a command: %q", input)
	}

	name, args := Split(input)
	cmd, ok := r.commands[name]
	if !ok {
		return "", fmt.Errorf("unknown command: /%s", name)
	}
	if cmd.Turn {
		return "", fmt.Errorf("/%s dispatches through intent resolution", name)
	}
	return cmd.Execute(ctx, args)
}

// IsCommand returns true if input starts with '/'.
func IsCommand(input string) bool {
	return len(input) > 0 && input[0] == '/'
}

// Split breaks a "/command args" input into its name and trimmed args.
// The input must already satisfy IsCommand.
func Split(input string) (name, args string) {
	raw := strings.TrimSpace(input)[1:]
	parts := strings.SplitN(raw, " ", 2)
	if len(parts) > 1 {
		return parts[0], strings.TrimSpace(parts[1])
	}
	return parts[0], ""
}

// registerCoreCommands adds all built-in slash commands to the registry.
func (r *Registry) registerCoreCommands() {
	core := []*Command{
		{
			Name:        "scan",
			Description: "Scan a URL for accessibility violations",
			Turn:        true,
		},
		{
			Name:        "fix",
			Description: "Get remediation advice for a numbered issue",
			Turn:        true,
		},
		{
			Name:        "explain",
			Description: "Ask a free-form accessibility question",
			Turn:        true,
		},
		{
			Name:        "help",
			Description: "Show available commands",
			Execute: func(_ *CommandContext, _ string) (string, error) {
				var b strings.Builder
				b.WriteString("Available commands:\n")
				for _, cmd := range r.List() {
					fmt.Fprintf(&b, "  /%-8s %s\n", cmd.Name, cmd.Description)
				}
				b.WriteString("\nAnything without a slash is resolved from context.\n")
				return b.String(), nil
			},
		},
		{
			Name:        "health",
			Description: "Check that the backend is reachable",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.CheckHealth == nil {
					return "Health check not available.", nil
				}
				return ctx.CheckHealth()
			},
		},
		{
			Name:        "history",
			Description: "Show the session's resolved commands",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.History == nil {
					return "History not available.", nil
				}
				return render.HistoryReport(ctx.History()), nil
			},
		},
		{
			Name:        "clear",
			Description: "Drop scan results and command history",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.ClearSession == nil {
					return "Clear not available.", nil
				}
				if err := ctx.ClearSession(); err != nil {
					return "", fmt.Errorf("clearing session: %w", err)
				}
				return "Session cleared. Scan results and history dropped.", nil
			},
		},
		{
			Name:        "config",
			Description: "Show effective configuration",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				strict := "off"
				if ctx.StrictURLs {
					strict = "on"
				}
				return fmt.Sprintf(
					"Base URL:    %s\nIntent mode: %s\nStrict URLs: %s\nSession:     %s\nVersion:     %s\nCWD:         %s",
					ctx.BaseURL, ctx.IntentMode, strict, ctx.SessionID, ctx.Version, ctx.CWD,
				), nil
			},
		},
		{
			Name:        "key",
			Description: "Store the backend API key",
			Execute: func(ctx *CommandContext, args string) (string, error) {
				if ctx.StoreKey == nil {
					return "Key storage not available.", nil
				}
				if args == "" {
					return "Usage: /key <value>", nil
				}
				if err := ctx.StoreKey(args); err != nil {
					return "", fmt.Errorf("storing key: %w", err)
				}
				return "API key saved.", nil
			},
		},
		{
			Name:        "exit",
			Description: "Exit the application",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.ExitFn == nil {
					return "Exit not available.", nil
				}
				ctx.ExitFn()
				return "Goodbye.", nil
			},
		},
	}
	for _, cmd := range core {
		r.commands[cmd.Name] = cmd
	}
}
