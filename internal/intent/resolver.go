// ABOUTME: Utterance resolution: explicit command, then URL, then fix signals, then explain.
// ABOUTME: First match wins; an explicit command is never overridden by guessing.

package intent

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/Ram095/axeesAI/internal/normalize"
)

// Heuristic confidence per rule, in decreasing order of evidence
// strength: a URL is near-certain scan intent, keyword/number mentions
// are fix-biased but weaker, and explain is the catch-all.
const (
	scanConfidence    = 0.8
	fixConfidence     = 0.7
	explainConfidence = 0.6
)

// fixSignalPattern matches the fix keyword set with common
// morphological suffixes. Input is already lowercased.
var fixSignalPattern = regexp.MustCompile(`\b(?:fix|issue|problem|error|violation)(?:es|s|ed|ing)?\b`)

// Config holds resolver configuration.
type Config struct {
	Analyzer  Analyzer // optional; nil resolves with local heuristics only
	Threshold float64  // min confidence accepted from the analyzer (default 0.6)
}

// Resolver turns utterances into dispatchable intents.
type Resolver struct {
	config Config
}

// NewResolver creates a resolver with the given config, applying defaults.
func NewResolver(cfg Config) *Resolver {
	if cfg.Threshold == 0 {
		cfg.Threshold = 0.6
	}
	return &Resolver{config: cfg}
}

// ScanContext summarizes the last scan for resolution and analyzer context.
type ScanContext struct {
	Summary string
	Lines   []string // numbered violation summaries, one per issue
}

// Resolve produces an Intent for one utterance.
//
// When explicit is non-empty the user typed that slash command and
// utterance holds only the remainder text; the intent is built directly
// from it with no further disambiguation. Otherwise resolution runs in
// fixed precedence: remote analyzer when configured (falling back on
// any failure), then URL detection, fix signals, and finally explain.
func (r *Resolver) Resolve(ctx context.Context, utterance, explicit string, history []string, scan *ScanContext) Intent {
	if explicit != "" {
		return resolveExplicit(explicit, utterance)
	}

	normalized := normalize.Utterance(utterance)

	if r.config.Analyzer != nil {
		if in, ok := r.analyze(ctx, utterance, normalized, history, scan); ok {
			return in
		}
	}

	return resolveHeuristic(normalized)
}

// resolveExplicit builds an intent from a recognized slash command and
// its raw remainder. Scan accepts any shape (validation happens at
// dispatch), fix requires a literal integer, explain a non-empty topic.
// An unrecognized command name degrades to free-form resolution of the
// remainder; the command registry owns that namespace and filters first.
func resolveExplicit(command, remainder string) Intent {
	remainder = strings.TrimSpace(remainder)
	switch command {
	case "scan":
		return Scan(remainder, SourceExplicit, 1.0)
	case "fix":
		n, err := strconv.Atoi(remainder)
		if err != nil {
			return Rejected(ReasonNotANumber, SourceExplicit)
		}
		return Fix(n, SourceExplicit, 1.0)
	case "explain":
		if remainder == "" {
			return Rejected(ReasonEmptyTopic, SourceExplicit)
		}
		return Explain(remainder, SourceExplicit, 1.0)
	default:
		return resolveHeuristic(normalize.Utterance(remainder))
	}
}

// resolveHeuristic applies the local rules to a normalized utterance.
func resolveHeuristic(normalized string) Intent {
	if normalized == "" {
		return Rejected(ReasonEmptyQuery, SourceHeuristic)
	}

	// A URL is unambiguous evidence of scan intent and beats every
	// other signal, including co-occurring fix keywords.
	if url, ok := normalize.FirstURL(normalized); ok {
		return Scan(url, SourceHeuristic, scanConfidence)
	}

	hasKeyword := fixSignalPattern.MatchString(normalized)
	number, hasNumber := normalize.IssueNumber(normalized)
	if hasKeyword || hasNumber {
		if !hasNumber {
			return Rejected(ReasonNoIssueNumber, SourceHeuristic)
		}
		return Fix(number, SourceHeuristic, fixConfidence)
	}

	return Explain(normalized, SourceHeuristic, explainConfidence)
}
