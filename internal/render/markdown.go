// ABOUTME: Markdown builders for scan, fix, explain, health, and history output
// ABOUTME: Pure string assembly; terminal styling happens in the glamour wrapper

package render

import (
	"fmt"
	"strings"

	"github.com/Ram095/axeesAI/internal/session"
	"github.com/Ram095/axeesAI/pkg/axees"
)

// snippetWidth caps the offending-markup line in scan listings.
const snippetWidth = 72

// ScanReport renders a scan record: the unnumbered summary first, then
// the numbered violations users reference in fix requests.
func ScanReport(rec *session.ScanRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Scan: %s\n\n", rec.URL)
	b.WriteString(rec.Summary)
	b.WriteString("\n")

	if len(rec.Violations) == 0 {
		b.WriteString("\nNothing to fix on this page.\n")
		return b.String()
	}

	for i, v := range rec.Violations {
		fmt.Fprintf(&b, "\n%d. **%s** (%s, `%s`)\n", i+1, v.Help, v.Impact, v.ID)
		if tag := ElementTag(v.HTML); tag != "" {
			fmt.Fprintf(&b, "   `%s`\n", Truncate(tag, snippetWidth))
		}
	}
	b.WriteString("\nUse `fix <number>` to get remediation advice for an issue.\n")
	return b.String()
}

// AnswerReport renders the four-part structured answer under a title.
func AnswerReport(title string, ans *axees.AnswerResponse) string {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}
	b.WriteString(ans.Answer)
	b.WriteString("\n\n## Explanation\n\n")
	b.WriteString(ans.Explanation)
	b.WriteString("\n\n## Guidelines\n\n")
	b.WriteString(ans.Guidelines)
	b.WriteString("\n\n## Examples\n\n")
	b.WriteString(ans.Examples)
	b.WriteString("\n")
	return b.String()
}

// FixReport renders a fix answer under the violation's heading, with
// the scanner's reference link when one was reported.
func FixReport(n int, v session.Violation, ans *axees.AnswerResponse) string {
	report := AnswerReport(fmt.Sprintf("Fix for issue %d: %s", n, v.Help), ans)
	if v.HelpURL != "" {
		report += fmt.Sprintf("\nReference: <%s>\n", v.HelpURL)
	}
	return report
}

// ExplainReport renders an explain answer under its topic.
func ExplainReport(topic string, ans *axees.AnswerResponse) string {
	return AnswerReport("Explain: "+topic, ans)
}

// HealthReport renders the backend health check result.
func HealthReport(resp *axees.HealthResponse, baseURL string) string {
	if resp.Healthy() {
		return fmt.Sprintf("Backend at %s is healthy.", baseURL)
	}
	return fmt.Sprintf("Backend at %s reports status %q.", baseURL, resp.Status)
}

// HistoryReport renders the session's command history, oldest first.
func HistoryReport(entries []string) string {
	if len(entries) == 0 {
		return "No commands in this session yet."
	}

	var b strings.Builder
	b.WriteString("# Command history\n\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. `%s`\n", i+1, e)
	}
	return b.String()
}
