// ABOUTME: One-shot print mode: run a single turn and print its outcome
// ABOUTME: Text output (styled on a TTY) or a JSON outcome envelope

package print

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Ram095/axeesAI/internal/assistant"
	"github.com/Ram095/axeesAI/internal/dispatch"
	"github.com/Ram095/axeesAI/internal/render"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrFailed reports a non-rendered outcome whose message was already
// printed. Callers map it to a nonzero exit without reprinting.
var ErrFailed = errors.New("command did not complete")

// Config configures one print run.
type Config struct {
	Output string // "text" (default) or "json"
	Styled bool   // style markdown for a terminal
	Width  int    // wrap width when styled; 0 uses the renderer default
}

// Turner runs one full user turn. *assistant.Assistant satisfies it.
type Turner interface {
	Turn(ctx context.Context, input string) assistant.TurnResult
}

// Deps provides print mode dependencies.
type Deps struct {
	Turner Turner
	Out    io.Writer // defaults to os.Stdout
	ErrOut io.Writer // defaults to os.Stderr
}

// AutoConfig fills a Config from the process terminal: markdown is
// styled only when stdout is a terminal, wrapped to its width.
func AutoConfig(output string) Config {
	cfg := Config{Output: output}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		cfg.Styled = true
		if w, _, err := term.GetSize(fd); err == nil {
			cfg.Width = w
		}
	}
	return cfg
}

// Run executes one turn and prints the outcome. A rendered outcome
// returns nil; guidance and failures return ErrFailed after printing.
func Run(ctx context.Context, cfg Config, deps Deps, utterance string) error {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := deps.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	res := deps.Turner.Turn(ctx, utterance)

	if cfg.Output == FormatJSON {
		return writeJSON(out, res)
	}
	return writeText(out, errOut, cfg, res.Outcome)
}

// writeText prints rendered markdown and guidance to out; failure
// messages go to errOut.
func writeText(out, errOut io.Writer, cfg Config, o dispatch.Outcome) error {
	switch o.Kind {
	case dispatch.KindRendered:
		md := o.Markdown
		if cfg.Styled {
			md = render.NewRenderer().Render(md, cfg.Width)
		}
		fmt.Fprintln(out, md)
		return nil
	case dispatch.KindGuidance:
		fmt.Fprintln(out, o.Message)
		return ErrFailed
	default:
		fmt.Fprintln(errOut, o.Message)
		return ErrFailed
	}
}

// jsonOutcome is the machine-readable envelope for --output json.
type jsonOutcome struct {
	Outcome   string      `json:"outcome"`
	Markdown  string      `json:"markdown,omitempty"`
	Message   string      `json:"message,omitempty"`
	Command   string      `json:"command,omitempty"`
	ErrorKind string      `json:"error_kind,omitempty"`
	Intent    *jsonIntent `json:"intent,omitempty"`
}

// jsonIntent echoes how the turn was resolved. Absent for local slash
// commands, which skip resolution.
type jsonIntent struct {
	Kind       string  `json:"kind"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
}

func writeJSON(out io.Writer, res assistant.TurnResult) error {
	env := jsonOutcome{
		Outcome:  res.Outcome.Kind.String(),
		Markdown: res.Outcome.Markdown,
		Message:  res.Outcome.Message,
		Command:  res.Outcome.Command,
	}
	if res.Outcome.Kind == dispatch.KindFailed {
		env.ErrorKind = res.Outcome.ErrKind.String()
	}
	if !res.Local {
		env.Intent = &jsonIntent{
			Kind:       res.Intent.Kind.String(),
			Source:     res.Intent.Source,
			Confidence: res.Intent.Confidence,
		}
	}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encoding outcome: %w", err)
	}
	fmt.Fprintln(out, string(data))

	if res.Outcome.Kind != dispatch.KindRendered {
		return ErrFailed
	}
	return nil
}
