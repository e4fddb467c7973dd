// ABOUTME: Executes resolved intents against the accessibility backend
// ABOUTME: Owns session mutation: scan replacement and history append on success

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Ram095/axeesAI/internal/intent"
	"github.com/Ram095/axeesAI/internal/log"
	"github.com/Ram095/axeesAI/internal/render"
	"github.com/Ram095/axeesAI/internal/session"
	"github.com/Ram095/axeesAI/pkg/axees"
)

// Backend is the slice of the API client the dispatcher calls.
type Backend interface {
	Scan(ctx context.Context, url string) (*axees.ScanResponse, error)
	Fix(ctx context.Context, query string) (*axees.AnswerResponse, error)
	Explain(ctx context.Context, query string) (*axees.AnswerResponse, error)
}

// Config holds dispatcher construction options.
type Config struct {
	Backend    Backend
	StrictURLs bool // reject scan targets without an explicit scheme
}

// Dispatcher turns resolved intents into outcomes. Session state
// changes only on success; guidance and failures leave it untouched.
type Dispatcher struct {
	backend    Backend
	strictURLs bool
}

// New creates a Dispatcher.
func New(cfg Config) *Dispatcher {
	return &Dispatcher{backend: cfg.Backend, strictURLs: cfg.StrictURLs}
}

// Dispatch executes one resolved intent against the backend.
func (d *Dispatcher) Dispatch(ctx context.Context, it intent.Intent, sess *session.Session) Outcome {
	switch it.Kind {
	case intent.KindScan:
		return d.scan(ctx, it.URL, sess)
	case intent.KindFix:
		return d.fix(ctx, it.IssueIndex, sess)
	case intent.KindExplain:
		return d.explain(ctx, it.Topic, sess)
	default:
		return Guidance(rejectionGuidance(it.Reason))
	}
}

func (d *Dispatcher) scan(ctx context.Context, rawURL string, sess *session.Session) Outcome {
	target, guidance := d.normalizeTarget(rawURL)
	if guidance != "" {
		return Guidance(guidance)
	}

	resp, err := d.backend.Scan(ctx, target)
	if err != nil {
		return Failed(failureMessage("scan", err), err)
	}

	rec, err := session.NewScanRecord(resp)
	if err != nil {
		return Guidance(fmt.Sprintf("The scanner response was unusable (%v). Keeping the previous results.", err))
	}

	if err := sess.ReplaceScan(rec); err != nil {
		log.Warn("session journal write failed: %v", err)
	}
	command := "scan " + target
	sess.History.Append(command)
	return Rendered(render.ScanReport(rec), command)
}

func (d *Dispatcher) fix(ctx context.Context, n int, sess *session.Session) Outcome {
	if sess.Scan == nil {
		return Guidance("No scan results in this session. Scan a page first, then pick an issue number.")
	}
	v, ok := sess.Scan.Violation(n)
	if !ok {
		return Guidance(fmt.Sprintf("Issue %d is out of range; the last scan found %d issues.", n, sess.Scan.Count()))
	}

	resp, err := d.backend.Fix(ctx, fixQuery(v))
	if err != nil {
		return Failed(failureMessage("fix", err), err)
	}
	if err := resp.Validate(); err != nil {
		return Guidance(fmt.Sprintf("The backend returned an incomplete answer (%v). Try again or rephrase.", err))
	}

	command := fmt.Sprintf("fix %d", n)
	sess.History.Append(command)
	return Rendered(render.FixReport(n, v, resp), command)
}

func (d *Dispatcher) explain(ctx context.Context, topic string, sess *session.Session) Outcome {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Guidance("Tell me what to explain, like `explain aria labels`.")
	}

	resp, err := d.backend.Explain(ctx, topic)
	if err != nil {
		return Failed(failureMessage("explain", err), err)
	}
	if err := resp.Validate(); err != nil {
		return Guidance(fmt.Sprintf("The backend returned an incomplete answer (%v). Try again or rephrase.", err))
	}

	command := "explain " + topic
	sess.History.Append(command)
	return Rendered(render.ExplainReport(topic, resp), command)
}

// normalizeTarget prepares a scan target. The second return value is a
// guidance message; when non-empty the target is unusable.
func (d *Dispatcher) normalizeTarget(raw string) (string, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", "Give me a URL to scan, like `scan https://example.com`."
	}

	if !strings.Contains(trimmed, "://") {
		if d.strictURLs {
			return "", fmt.Sprintf("%q has no scheme and strict URL checking is on. Spell out https://.", trimmed)
		}
		trimmed = "https://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return "", fmt.Sprintf("%q does not look like a URL I can scan.", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Sprintf("Only http and https pages can be scanned, not %q.", u.Scheme)
	}
	return trimmed, ""
}

// fixQuery phrases one violation as a question for the Q&A endpoint,
// embedding the offending markup as context.
func fixQuery(v session.Violation) string {
	var b strings.Builder
	b.WriteString("How do I fix this accessibility issue: ")
	b.WriteString(v.Help)
	if html := strings.Join(strings.Fields(v.HTML), " "); html != "" {
		b.WriteString(". Target HTML: ")
		b.WriteString(html)
	}
	return b.String()
}

// rejectionGuidance names the missing piece for each rejection reason.
func rejectionGuidance(reason intent.Reason) string {
	switch reason {
	case intent.ReasonNotANumber:
		return "That issue reference is not a number I can use. Try `fix 2` or `fix the second issue`."
	case intent.ReasonNoIssueNumber:
		return "Which issue should I fix? Give me a number from the scan list, like `fix 1`."
	case intent.ReasonEmptyTopic:
		return "Tell me what to explain, like `explain aria labels`."
	case intent.ReasonEmptyQuery:
		return "Type a URL to scan, an issue number to fix, or a topic to explain."
	default:
		return "I could not work out what you want. Try `scan <url>`, `fix <number>`, or `explain <topic>`."
	}
}

// failureMessage distinguishes collaborator failures by cause so the
// user knows which precondition to fix.
func failureMessage(op string, err error) string {
	var apiErr *axees.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Sprintf("The %s request failed: %v.", op, err)
	}

	switch apiErr.Kind {
	case axees.KindAuth:
		return "The backend rejected the API key. Set a valid key and try again."
	case axees.KindConnect:
		return "Could not reach the backend. Check that it is running and the base URL is right."
	case axees.KindServer:
		return fmt.Sprintf("The backend failed while handling the %s request (%s).", op, apiErr.Message)
	case axees.KindDecode:
		return fmt.Sprintf("The backend sent a response I could not parse for the %s request.", op)
	default:
		return fmt.Sprintf("The backend rejected the %s request: %s.", op, apiErr.Message)
	}
}
