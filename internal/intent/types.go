// ABOUTME: Intent types for routing user utterances to accessibility commands.
// ABOUTME: Defines the Kind enum, rejection reasons, and the resolved Intent variant.

package intent

import "fmt"

// Kind represents the resolved purpose of a user utterance.
type Kind int

const (
	KindScan     Kind = iota // Audit a URL for accessibility violations
	KindFix                  // Ask how to resolve one reported violation
	KindExplain              // Free-form accessibility question
	KindRejected             // Input too ambiguous or incomplete to dispatch
)

// String returns the command name for the kind.
func (k Kind) String() string {
	switch k {
	case KindScan:
		return "scan"
	case KindFix:
		return "fix"
	case KindExplain:
		return "explain"
	case KindRejected:
		return "rejected"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Reason is the closed set of rejection causes. Each maps to one
// guidance message naming the missing piece.
type Reason string

const (
	ReasonNotANumber    Reason = "not-a-number"
	ReasonEmptyTopic    Reason = "empty-topic"
	ReasonNoIssueNumber Reason = "no-issue-number"
	ReasonEmptyQuery    Reason = "empty-query"
)

// Resolution sources, recorded on every Intent for diagnostics.
const (
	SourceExplicit  = "explicit"  // user typed a slash command
	SourceHeuristic = "heuristic" // local URL/keyword/number rules
	SourceAnalyzer  = "analyzer"  // backend analyze-intent endpoint
)

// Intent is the resolved meaning of one utterance: a tagged variant over
// {Scan, Fix, Explain, Rejected} carrying the field its dispatch needs.
type Intent struct {
	Kind       Kind
	URL        string // Scan: target, exactly as extracted or typed
	IssueIndex int    // Fix: 1-based user-facing issue number
	Topic      string // Explain: the question text
	Reason     Reason // Rejected: why resolution could not complete

	Source     string  // which strategy produced this resolution
	Confidence float64 // 0.0-1.0
}

// Command returns the dispatchable command name, or "" for rejections.
func (in Intent) Command() string {
	if in.Kind == KindRejected {
		return ""
	}
	return in.Kind.String()
}

// Scan builds a scan intent for a URL candidate.
func Scan(url, source string, confidence float64) Intent {
	return Intent{Kind: KindScan, URL: url, Source: source, Confidence: confidence}
}

// Fix builds a fix intent for a 1-based issue number.
func Fix(issue int, source string, confidence float64) Intent {
	return Intent{Kind: KindFix, IssueIndex: issue, Source: source, Confidence: confidence}
}

// Explain builds an explain intent for a topic.
func Explain(topic, source string, confidence float64) Intent {
	return Intent{Kind: KindExplain, Topic: topic, Source: source, Confidence: confidence}
}

// Rejected builds a rejection with its cause. Rejections are normal
// resolution outcomes, never faults.
func Rejected(reason Reason, source string) Intent {
	return Intent{Kind: KindRejected, Reason: reason, Source: source}
}
