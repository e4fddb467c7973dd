// ABOUTME: Parameter and result payloads for the RPC methods
// ABOUTME: Converts intents and dispatch outcomes to and from their wire shapes

package rpc

import (
	"fmt"

	"github.com/Ram095/axeesAI/internal/dispatch"
	"github.com/Ram095/axeesAI/internal/intent"
)

// ResolveParams carries the utterance for the resolve method.
type ResolveParams struct {
	Utterance string `json:"utterance"`
}

// TurnParams carries one raw input line for the turn method.
type TurnParams struct {
	Input string `json:"input"`
}

// InitializeResult is the response payload for the initialize method.
type InitializeResult struct {
	Version    string `json:"version"`
	SessionID  string `json:"session_id"`
	BaseURL    string `json:"base_url"`
	IntentMode string `json:"intent_mode"`
}

// IntentPayload is a resolved intent on the wire. The dispatch method
// accepts the same shape back as its params.
type IntentPayload struct {
	Kind       string  `json:"kind"`
	URL        string  `json:"url,omitempty"`
	Issue      int     `json:"issue,omitempty"`
	Topic      string  `json:"topic,omitempty"`
	Reason     string  `json:"reason,omitempty"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
}

// OutcomePayload is a dispatch outcome on the wire. Command failures
// arrive as outcome "failed" with an error kind, not as RPC errors.
type OutcomePayload struct {
	Outcome   string `json:"outcome"`
	Markdown  string `json:"markdown,omitempty"`
	Message   string `json:"message,omitempty"`
	Command   string `json:"command,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// TurnResult is the response payload for the turn method. Intent is
// absent for local slash commands, which skip resolution.
type TurnResult struct {
	OutcomePayload
	Intent *IntentPayload `json:"intent,omitempty"`
}

// HealthResult is the response payload for the health method. Reachable
// reports whether the probe got an answer; Status is the backend's own
// verdict.
type HealthResult struct {
	Status    string `json:"status"`
	Reachable bool   `json:"reachable"`
}

// ShutdownResult is the response payload for the shutdown method.
type ShutdownResult struct {
	Stopping bool `json:"stopping"`
}

// intentPayload flattens a resolved intent for the wire.
func intentPayload(in intent.Intent) IntentPayload {
	return IntentPayload{
		Kind:       in.Kind.String(),
		URL:        in.URL,
		Issue:      in.IssueIndex,
		Topic:      in.Topic,
		Reason:     string(in.Reason),
		Source:     in.Source,
		Confidence: in.Confidence,
	}
}

// payloadIntent rebuilds an intent from its wire shape.
func payloadIntent(p IntentPayload) (intent.Intent, error) {
	kind, err := parseKind(p.Kind)
	if err != nil {
		return intent.Intent{}, err
	}
	return intent.Intent{
		Kind:       kind,
		URL:        p.URL,
		IssueIndex: p.Issue,
		Topic:      p.Topic,
		Reason:     intent.Reason(p.Reason),
		Source:     p.Source,
		Confidence: p.Confidence,
	}, nil
}

func parseKind(s string) (intent.Kind, error) {
	switch s {
	case "scan":
		return intent.KindScan, nil
	case "fix":
		return intent.KindFix, nil
	case "explain":
		return intent.KindExplain, nil
	case "rejected":
		return intent.KindRejected, nil
	default:
		return 0, fmt.Errorf("unknown intent kind %q", s)
	}
}

// outcomePayload flattens a dispatch outcome for the wire.
func outcomePayload(out dispatch.Outcome) OutcomePayload {
	p := OutcomePayload{
		Outcome:  out.Kind.String(),
		Markdown: out.Markdown,
		Message:  out.Message,
		Command:  out.Command,
	}
	if out.Kind == dispatch.KindFailed {
		p.ErrorKind = out.ErrKind.String()
	}
	return p
}
