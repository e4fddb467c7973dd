// ABOUTME: ScanRecord: flattened, severity-ordered violations from the last scan
// ABOUTME: Owns the 1-based numbering users reference in fix requests

package session

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Ram095/axeesAI/pkg/axees"
)

// severityOrder fixes the flattening order for known impact levels.
// Severities the scanner does not document sort after these, by name.
var severityOrder = []string{"critical", "serious", "moderate", "minor"}

// Violation is one accessibility finding, numbered by its position in
// the flattened record.
type Violation struct {
	ID      string `json:"id"`
	Impact  string `json:"impact"`
	Help    string `json:"help"`
	HelpURL string `json:"help_url,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// ScanRecord holds the results of the most recent scan. Replacing it
// renumbers every violation; issue numbers never survive a rescan.
type ScanRecord struct {
	URL        string      `json:"url"`
	Summary    string      `json:"summary"`
	Violations []Violation `json:"violations,omitempty"`
}

// NewScanRecord flattens a scan response into severity order. A
// violation without help text rejects the whole response so a stale but
// usable record is never partially overwritten.
func NewScanRecord(resp *axees.ScanResponse) (*ScanRecord, error) {
	if resp == nil {
		return nil, fmt.Errorf("empty scan response")
	}

	rec := &ScanRecord{URL: resp.URL, Summary: strings.TrimSpace(resp.ScanResult)}
	for _, severity := range flattenOrder(resp.RawViolations) {
		for _, raw := range resp.RawViolations[severity] {
			if strings.TrimSpace(raw.Help) == "" {
				return nil, fmt.Errorf("violation %q has no help text", raw.ID)
			}
			rec.Violations = append(rec.Violations, Violation{
				ID:      raw.ID,
				Impact:  strings.ToLower(severity),
				Help:    raw.Help,
				HelpURL: raw.HelpURL,
				HTML:    raw.HTML,
			})
		}
	}

	if rec.Summary == "" {
		rec.Summary = synthesizeSummary(rec.Violations)
	}
	return rec, nil
}

// synthesizeSummary rebuilds the scanner's own summary format when the
// response carried none.
func synthesizeSummary(violations []Violation) string {
	if len(violations) == 0 {
		return "Found 0 accessibility violations"
	}
	counts := make(map[string]int, len(severityOrder))
	for _, v := range violations {
		counts[v.Impact]++
	}
	return fmt.Sprintf("Found %d accessibility violations (%d critical, %d serious, %d moderate, %d minor)",
		len(violations), counts["critical"], counts["serious"], counts["moderate"], counts["minor"])
}

// flattenOrder returns the severity keys of raw in presentation order.
func flattenOrder(raw map[string][]axees.RawViolation) []string {
	known := make(map[string]bool, len(severityOrder))
	var order []string
	for _, severity := range severityOrder {
		known[severity] = true
		if _, ok := raw[severity]; ok {
			order = append(order, severity)
		}
	}

	var extra []string
	for severity := range raw {
		if !known[severity] {
			extra = append(extra, severity)
		}
	}
	sort.Strings(extra)
	return append(order, extra...)
}

// Count returns the number of flattened violations.
func (r *ScanRecord) Count() int {
	return len(r.Violations)
}

// Violation returns the violation users refer to as issue n. Numbering
// starts at 1.
func (r *ScanRecord) Violation(n int) (Violation, bool) {
	if n < 1 || n > len(r.Violations) {
		return Violation{}, false
	}
	return r.Violations[n-1], true
}

// ContextLines returns numbered one-line summaries, suitable as scan
// context for remote intent analysis.
func (r *ScanRecord) ContextLines() []string {
	lines := make([]string, 0, len(r.Violations))
	for i, v := range r.Violations {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, v.Help))
	}
	return lines
}
