// ABOUTME: Outcome variants returned by the dispatcher
// ABOUTME: Rendered output, corrective guidance, or a classified failure

package dispatch

import "github.com/Ram095/axeesAI/pkg/axees"

// Kind discriminates the dispatch outcome variants.
type Kind int

const (
	KindRendered Kind = iota // command ran; Markdown holds the report
	KindGuidance             // user can correct the input; Message says how
	KindFailed               // collaborator failure; Message and ErrKind say why
)

// String returns the journal name for the outcome kind.
func (k Kind) String() string {
	switch k {
	case KindRendered:
		return "rendered"
	case KindGuidance:
		return "guidance"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of dispatching one resolved intent.
type Outcome struct {
	Kind     Kind
	Markdown string          // Rendered: the report to style and print
	Message  string          // Guidance and Failed: user-facing text
	Command  string          // Rendered: the command line recorded in history
	ErrKind  axees.ErrorKind // Failed: classified cause
	Err      error           // Failed: underlying error
}

// Rendered builds a success outcome carrying the report and the
// command line that entered history.
func Rendered(markdown, command string) Outcome {
	return Outcome{Kind: KindRendered, Markdown: markdown, Command: command}
}

// Guidance builds an outcome asking the user to adjust their input.
func Guidance(message string) Outcome {
	return Outcome{Kind: KindGuidance, Message: message}
}

// Failed builds an outcome for a collaborator failure.
func Failed(message string, err error) Outcome {
	return Outcome{Kind: KindFailed, Message: message, ErrKind: axees.KindOf(err), Err: err}
}
