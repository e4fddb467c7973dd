// ABOUTME: Remote intent analysis via the backend's analyze-intent endpoint.
// ABOUTME: Validates the analyzer's output; any failure falls back to local heuristics.

package intent

import (
	"context"
	"strings"

	"github.com/Ram095/axeesAI/internal/log"
	"github.com/Ram095/axeesAI/internal/normalize"
	"github.com/Ram095/axeesAI/pkg/axees"
)

// Analyzer delegates utterance disambiguation to the backend. The
// axees client satisfies this directly.
type Analyzer interface {
	AnalyzeIntent(ctx context.Context, req axees.IntentRequest) (*axees.IntentResponse, error)
}

// analyze runs the remote strategy. The second return is false whenever
// the analyzer cannot be trusted (error, unknown command, confidence
// below threshold, unusable metadata), in which case the caller resolves
// heuristically instead.
func (r *Resolver) analyze(ctx context.Context, utterance, normalized string, history []string, scan *ScanContext) (Intent, bool) {
	req := axees.IntentRequest{
		Query: utterance,
		Context: axees.IntentContext{
			ScanResults:      scanResults(scan),
			PreviousCommands: previousCommands(history),
		},
	}

	resp, err := r.config.Analyzer.AnalyzeIntent(ctx, req)
	if err != nil {
		log.Debug("intent analyzer unavailable, using heuristics: %v", err)
		return Intent{}, false
	}
	if resp.Confidence < r.config.Threshold {
		log.Debug("intent analyzer confidence %.2f below threshold %.2f", resp.Confidence, r.config.Threshold)
		return Intent{}, false
	}

	switch resp.Command {
	case "scan":
		url := resp.Metadata.URL
		if url == "" {
			if u, ok := normalize.FirstURL(normalized); ok {
				url = u
			}
		}
		if url == "" {
			url = strings.TrimSpace(resp.Content)
		}
		if url == "" {
			return Intent{}, false
		}
		return Scan(url, SourceAnalyzer, resp.Confidence), true

	case "fix":
		// A number extracted from the utterance itself overrides the
		// analyzer's metadata; the user's wording is authoritative.
		number, ok := normalize.IssueNumber(normalized)
		if !ok {
			number = resp.Metadata.IssueNumber
		}
		if number <= 0 {
			return Rejected(ReasonNoIssueNumber, SourceAnalyzer), true
		}
		return Fix(number, SourceAnalyzer, resp.Confidence), true

	case "explain":
		topic := resp.Metadata.Topic
		if topic == "" {
			topic = strings.TrimSpace(resp.Content)
		}
		if topic == "" {
			topic = normalized
		}
		if topic == "" {
			return Rejected(ReasonEmptyQuery, SourceAnalyzer), true
		}
		return Explain(topic, SourceAnalyzer, resp.Confidence), true

	default:
		log.Debug("intent analyzer returned unknown command %q", resp.Command)
		return Intent{}, false
	}
}

// scanResults renders the last scan as analyzer context: the summary
// line followed by the numbered violations. The backend expects a list,
// empty when nothing was scanned yet.
func scanResults(scan *ScanContext) []string {
	if scan == nil {
		return []string{}
	}
	results := make([]string, 0, len(scan.Lines)+1)
	if scan.Summary != "" {
		results = append(results, scan.Summary)
	}
	return append(results, scan.Lines...)
}

// previousCommands guards against a nil history slice on the wire.
func previousCommands(history []string) []string {
	if history == nil {
		return []string{}
	}
	return history
}
