// ABOUTME: Tests for intent dispatch: backend calls, outcomes, and session mutation
// ABOUTME: Uses a scripted fake backend; no network or journal involved

package dispatch

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Ram095/axeesAI/internal/intent"
	"github.com/Ram095/axeesAI/internal/session"
	"github.com/Ram095/axeesAI/pkg/axees"
)

// fakeBackend returns scripted responses and records every call.
type fakeBackend struct {
	scanResp    *axees.ScanResponse
	scanErr     error
	fixResp     *axees.AnswerResponse
	fixErr      error
	explainResp *axees.AnswerResponse
	explainErr  error

	scanURLs       []string
	fixQueries     []string
	explainQueries []string
}

func (f *fakeBackend) Scan(_ context.Context, url string) (*axees.ScanResponse, error) {
	f.scanURLs = append(f.scanURLs, url)
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	return f.scanResp, nil
}

func (f *fakeBackend) Fix(_ context.Context, query string) (*axees.AnswerResponse, error) {
	f.fixQueries = append(f.fixQueries, query)
	if f.fixErr != nil {
		return nil, f.fixErr
	}
	return f.fixResp, nil
}

func (f *fakeBackend) Explain(_ context.Context, query string) (*axees.AnswerResponse, error) {
	f.explainQueries = append(f.explainQueries, query)
	if f.explainErr != nil {
		return nil, f.explainErr
	}
	return f.explainResp, nil
}

func (f *fakeBackend) calls() int {
	return len(f.scanURLs) + len(f.fixQueries) + len(f.explainQueries)
}

func scanFixture() *axees.ScanResponse {
	return &axees.ScanResponse{
		URL:        "https://example.com",
		ScanResult: "Found 2 accessibility violations (1 critical, 0 serious, 1 moderate, 0 minor)",
		RawViolations: map[string][]axees.RawViolation{
			"moderate": {{
				ID:   "region",
				Help: "All page content should be contained by landmarks",
				HTML: `<div class="content">text</div>`,
			}},
			"critical": {{
				ID:      "image-alt",
				Help:    "Images must have alternate text",
				HelpURL: "https://dequeuniversity.com/rules/axe/4.4/image-alt",
				HTML:    "<img\n    src=\"logo.png\">",
			}},
		},
	}
}

func answerFixture() *axees.AnswerResponse {
	return &axees.AnswerResponse{
		Answer:      "Add an alt attribute describing the image.",
		Explanation: "Screen readers announce alt text in place of the image.",
		Guidelines:  "WCAG 2.1 Success Criterion 1.1.1 Non-text Content",
		Examples:    `<img src="logo.png" alt="Company logo">`,
	}
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.NewSession(session.Config{})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return sess
}

func TestDispatch_ScanSuccess(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{scanResp: scanFixture()}
	d := New(Config{Backend: backend})
	sess := newTestSession(t)

	out := d.Dispatch(context.Background(), intent.Scan("https://example.com", intent.SourceExplicit, 1.0), sess)

	if out.Kind != KindRendered {
		t.Fatalf("Kind = %v, want %v (message: %s)", out.Kind, KindRendered, out.Message)
	}
	if out.Command != "scan https://example.com" {
		t.Errorf("Command = %q, want %q", out.Command, "scan https://example.com")
	}
	if got := backend.scanURLs; !reflect.DeepEqual(got, []string{"https://example.com"}) {
		t.Errorf("backend scan URLs = %v, want the target passed through", got)
	}

	if sess.Scan == nil {
		t.Fatal("session scan record not replaced")
	}
	if got := sess.Scan.Count(); got != 2 {
		t.Errorf("scan record count = %d, want 2", got)
	}
	if v, _ := sess.Scan.Violation(1); v.ID != "image-alt" {
		t.Errorf("first violation = %q, want critical severity first", v.ID)
	}
	if got := sess.History.Entries(); !reflect.DeepEqual(got, []string{"scan https://example.com"}) {
		t.Errorf("history = %v, want the scan command", got)
	}

	for _, want := range []string{
		"# Scan: https://example.com",
		"Found 2 accessibility violations",
		"1. **Images must have alternate text** (critical, `image-alt`)",
		"2. **All page content should be contained by landmarks** (moderate, `region`)",
		"`<img src=\"logo.png\">`",
		"Use `fix <number>`",
	} {
		if !strings.Contains(out.Markdown, want) {
			t.Errorf("markdown missing %q:\n%s", want, out.Markdown)
		}
	}
}

func TestDispatch_ScanNormalizesBareDomain(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{scanResp: scanFixture()}
	d := New(Config{Backend: backend})
	sess := newTestSession(t)

	out := d.Dispatch(context.Background(), intent.Scan("example.com", intent.SourceHeuristic, 0.8), sess)

	if out.Kind != KindRendered {
		t.Fatalf("Kind = %v, want %v (message: %s)", out.Kind, KindRendered, out.Message)
	}
	if got := backend.scanURLs; !reflect.DeepEqual(got, []string{"https://example.com"}) {
		t.Errorf("backend scan URLs = %v, want https:// prepended", got)
	}
	if got := sess.History.Entries(); !reflect.DeepEqual(got, []string{"scan https://example.com"}) {
		t.Errorf("history = %v, want the normalized target", got)
	}
}

func TestDispatch_ScanStrictURLs(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{scanResp: scanFixture()}
	d := New(Config{Backend: backend, StrictURLs: true})
	sess := newTestSession(t)

	out := d.Dispatch(context.Background(), intent.Scan("example.com", intent.SourceHeuristic, 0.8), sess)

	if out.Kind != KindGuidance {
		t.Fatalf("Kind = %v, want %v", out.Kind, KindGuidance)
	}
	if !strings.Contains(out.Message, "strict URL checking") {
		t.Errorf("message = %q, want it to name strict checking", out.Message)
	}
	if backend.calls() != 0 {
		t.Errorf("backend called %d times, want 0", backend.calls())
	}
	if sess.Scan != nil || sess.History.Len() != 0 {
		t.Error("guidance outcome changed session state")
	}
}

func TestDispatch_ScanTargetGuidance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"empty", "", "Give me a URL to scan"},
		{"whitespace", "   ", "Give me a URL to scan"},
		{"wrong scheme", "ftp://example.com/files", "Only http and https"},
		{"no host", "https://", "does not look like a URL"},
		{"garbage", "what is wcag", "does not look like a URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := &fakeBackend{scanResp: scanFixture()}
			d := New(Config{Backend: backend})
			sess := newTestSession(t)

			out := d.Dispatch(context.Background(), intent.Scan(tt.url, intent.SourceExplicit, 1.0), sess)

			if out.Kind != KindGuidance {
				t.Fatalf("Kind = %v, want %v", out.Kind, KindGuidance)
			}
			if !strings.Contains(out.Message, tt.want) {
				t.Errorf("message = %q, want substring %q", out.Message, tt.want)
			}
			if backend.calls() != 0 {
				t.Errorf("backend called %d times, want 0", backend.calls())
			}
		})
	}
}

func TestDispatch_ScanBackendFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantKind axees.ErrorKind
		want     string
	}{
		{
			name:     "connect",
			err:      &axees.APIError{Kind: axees.KindConnect, Message: "dial tcp: connection refused"},
			wantKind: axees.KindConnect,
			want:     "Could not reach the backend",
		},
		{
			name:     "auth",
			err:      &axees.APIError{Kind: axees.KindAuth, Status: 401, Message: "invalid API key"},
			wantKind: axees.KindAuth,
			want:     "rejected the API key",
		},
		{
			name:     "server",
			err:      &axees.APIError{Kind: axees.KindServer, Status: 503, Message: "scanner pool exhausted"},
			wantKind: axees.KindServer,
			want:     "failed while handling the scan request",
		},
		{
			name:     "bad request",
			err:      &axees.APIError{Kind: axees.KindBadRequest, Status: 422, Message: "url unreachable"},
			wantKind: axees.KindBadRequest,
			want:     "rejected the scan request: url unreachable",
		},
		{
			name:     "decode",
			err:      &axees.APIError{Kind: axees.KindDecode, Message: "unexpected end of JSON input"},
			wantKind: axees.KindDecode,
			want:     "could not parse",
		},
		{
			name:     "foreign error",
			err:      errors.New("boom"),
			wantKind: axees.KindUnknown,
			want:     "The scan request failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := &fakeBackend{scanErr: tt.err}
			d := New(Config{Backend: backend})
			sess := newTestSession(t)

			out := d.Dispatch(context.Background(), intent.Scan("https://example.com", intent.SourceExplicit, 1.0), sess)

			if out.Kind != KindFailed {
				t.Fatalf("Kind = %v, want %v", out.Kind, KindFailed)
			}
			if out.ErrKind != tt.wantKind {
				t.Errorf("ErrKind = %v, want %v", out.ErrKind, tt.wantKind)
			}
			if !strings.Contains(out.Message, tt.want) {
				t.Errorf("message = %q, want substring %q", out.Message, tt.want)
			}
			if !errors.Is(out.Err, tt.err) {
				t.Error("outcome does not carry the backend error")
			}
			if sess.Scan != nil || sess.History.Len() != 0 {
				t.Error("failed outcome changed session state")
			}
		})
	}
}

func TestDispatch_ScanUnusableResponseKeepsPrevious(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{scanResp: scanFixture()}
	d := New(Config{Backend: backend})
	sess := newTestSession(t)

	if out := d.Dispatch(context.Background(), intent.Scan("https://example.com", intent.SourceExplicit, 1.0), sess); out.Kind != KindRendered {
		t.Fatalf("seed scan Kind = %v, want %v", out.Kind, KindRendered)
	}

	backend.scanResp = &axees.ScanResponse{
		URL: "https://example.com/about",
		RawViolations: map[string][]axees.RawViolation{
			"critical": {{ID: "image-alt", Help: "   "}},
		},
	}
	out := d.Dispatch(context.Background(), intent.Scan("https://example.com/about", intent.SourceExplicit, 1.0), sess)

	if out.Kind != KindGuidance {
		t.Fatalf("Kind = %v, want %v", out.Kind, KindGuidance)
	}
	if !strings.Contains(out.Message, "Keeping the previous results") {
		t.Errorf("message = %q, want it to promise the old record survives", out.Message)
	}
	if !strings.Contains(out.Message, "no help text") {
		t.Errorf("message = %q, want the validation cause", out.Message)
	}
	if sess.Scan == nil || sess.Scan.URL != "https://example.com" {
		t.Errorf("scan record = %+v, want the first scan kept", sess.Scan)
	}
	if got := sess.History.Entries(); !reflect.DeepEqual(got, []string{"scan https://example.com"}) {
		t.Errorf("history = %v, want only the first scan", got)
	}
}

func TestDispatch_FixWithoutScan(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{fixResp: answerFixture()}
	d := New(Config{Backend: backend})
	sess := newTestSession(t)

	out := d.Dispatch(context.Background(), intent.Fix(1, intent.SourceExplicit, 1.0), sess)

	if out.Kind != KindGuidance {
		t.Fatalf("Kind = %v, want %v", out.Kind, KindGuidance)
	}
	if !strings.Contains(out.Message, "No scan results") {
		t.Errorf("message = %q, want it to ask for a scan first", out.Message)
	}
	if backend.calls() != 0 {
		t.Errorf("backend called %d times, want 0", backend.calls())
	}
}

func TestDispatch_FixOutOfRange(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 3, -1} {
		backend := &fakeBackend{scanResp: scanFixture(), fixResp: answerFixture()}
		d := New(Config{Backend: backend})
		sess := newTestSession(t)
		d.Dispatch(context.Background(), intent.Scan("https://example.com", intent.SourceExplicit, 1.0), sess)

		out := d.Dispatch(context.Background(), intent.Fix(n, intent.SourceExplicit, 1.0), sess)

		if out.Kind != KindGuidance {
			t.Fatalf("Fix(%d) Kind = %v, want %v", n, out.Kind, KindGuidance)
		}
		if !strings.Contains(out.Message, "out of range") || !strings.Contains(out.Message, "found 2 issues") {
			t.Errorf("Fix(%d) message = %q, want range and count named", n, out.Message)
		}
		if len(backend.fixQueries) != 0 {
			t.Errorf("Fix(%d) reached the backend", n)
		}
		if got := sess.History.Len(); got != 1 {
			t.Errorf("Fix(%d) history length = %d, want 1", n, got)
		}
	}
}

func TestDispatch_FixSuccess(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{scanResp: scanFixture(), fixResp: answerFixture()}
	d := New(Config{Backend: backend})
	sess := newTestSession(t)
	d.Dispatch(context.Background(), intent.Scan("https://example.com", intent.SourceExplicit, 1.0), sess)

	out := d.Dispatch(context.Background(), intent.Fix(1, intent.SourceExplicit, 1.0), sess)

	if out.Kind != KindRendered {
		t.Fatalf("Kind = %v, want %v (message: %s)", out.Kind, KindRendered, out.Message)
	}
	if out.Command != "fix 1" {
		t.Errorf("Command = %q, want %q", out.Command, "fix 1")
	}

	if len(backend.fixQueries) != 1 {
		t.Fatalf("fix queries = %d, want 1", len(backend.fixQueries))
	}
	query := backend.fixQueries[0]
	if !strings.Contains(query, "How do I fix this accessibility issue: Images must have alternate text") {
		t.Errorf("query = %q, want the violation help text", query)
	}
	if !strings.Contains(query, `Target HTML: <img src="logo.png">`) {
		t.Errorf("query = %q, want whitespace-collapsed markup", query)
	}

	wantHistory := []string{"scan https://example.com", "fix 1"}
	if got := sess.History.Entries(); !reflect.DeepEqual(got, wantHistory) {
		t.Errorf("history = %v, want %v", got, wantHistory)
	}

	for _, want := range []string{
		"Fix for issue 1: Images must have alternate text",
		"Add an alt attribute describing the image.",
		"## Explanation",
		"## Guidelines",
		"## Examples",
		"Reference: <https://dequeuniversity.com/rules/axe/4.4/image-alt>",
	} {
		if !strings.Contains(out.Markdown, want) {
			t.Errorf("markdown missing %q:\n%s", want, out.Markdown)
		}
	}
}

func TestDispatch_FixSecondIssue(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{scanResp: scanFixture(), fixResp: answerFixture()}
	d := New(Config{Backend: backend})
	sess := newTestSession(t)
	d.Dispatch(context.Background(), intent.Scan("https://example.com", intent.SourceExplicit, 1.0), sess)

	out := d.Dispatch(context.Background(), intent.Fix(2, intent.SourceExplicit, 1.0), sess)

	if out.Kind != KindRendered {
		t.Fatalf("Kind = %v, want %v (message: %s)", out.Kind, KindRendered, out.Message)
	}
	query := backend.fixQueries[0]
	if !strings.Contains(query, "All page content should be contained by landmarks") {
		t.Errorf("query = %q, want the second violation's help text", query)
	}
	if !strings.Contains(out.Markdown, "Fix for issue 2:") {
		t.Errorf("markdown = %q, want the user-facing issue number", out.Markdown)
	}
	if strings.Contains(out.Markdown, "Reference:") {
		t.Error("markdown has a reference link; the second violation reported none")
	}
}

func TestDispatch_FixIncompleteAnswer(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		scanResp: scanFixture(),
		fixResp:  &axees.AnswerResponse{Answer: "Add alt text."},
	}
	d := New(Config{Backend: backend})
	sess := newTestSession(t)
	d.Dispatch(context.Background(), intent.Scan("https://example.com", intent.SourceExplicit, 1.0), sess)

	out := d.Dispatch(context.Background(), intent.Fix(1, intent.SourceExplicit, 1.0), sess)

	if out.Kind != KindGuidance {
		t.Fatalf("Kind = %v, want %v", out.Kind, KindGuidance)
	}
	if !strings.Contains(out.Message, "incomplete answer") {
		t.Errorf("message = %q, want it to name the incomplete answer", out.Message)
	}
	if !strings.Contains(out.Message, "explanation") {
		t.Errorf("message = %q, want the missing fields listed", out.Message)
	}
	if got := sess.History.Len(); got != 1 {
		t.Errorf("history length = %d, want the fix left out", got)
	}
}

func TestDispatch_ExplainSuccess(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{explainResp: answerFixture()}
	d := New(Config{Backend: backend})
	sess := newTestSession(t)

	out := d.Dispatch(context.Background(), intent.Explain("aria labels", intent.SourceHeuristic, 0.7), sess)

	if out.Kind != KindRendered {
		t.Fatalf("Kind = %v, want %v (message: %s)", out.Kind, KindRendered, out.Message)
	}
	if out.Command != "explain aria labels" {
		t.Errorf("Command = %q, want %q", out.Command, "explain aria labels")
	}
	if got := backend.explainQueries; !reflect.DeepEqual(got, []string{"aria labels"}) {
		t.Errorf("backend queries = %v, want the topic passed through", got)
	}
	if got := sess.History.Entries(); !reflect.DeepEqual(got, []string{"explain aria labels"}) {
		t.Errorf("history = %v, want the explain command", got)
	}
	if !strings.Contains(out.Markdown, "Explain: aria labels") {
		t.Errorf("markdown = %q, want the topic heading", out.Markdown)
	}
}

func TestDispatch_ExplainEmptyTopic(t *testing.T) {
	t.Parallel()

	for _, topic := range []string{"", "   "} {
		backend := &fakeBackend{explainResp: answerFixture()}
		d := New(Config{Backend: backend})
		sess := newTestSession(t)

		out := d.Dispatch(context.Background(), intent.Explain(topic, intent.SourceExplicit, 1.0), sess)

		if out.Kind != KindGuidance {
			t.Fatalf("Explain(%q) Kind = %v, want %v", topic, out.Kind, KindGuidance)
		}
		if !strings.Contains(out.Message, "what to explain") {
			t.Errorf("Explain(%q) message = %q", topic, out.Message)
		}
		if backend.calls() != 0 {
			t.Errorf("Explain(%q) called the backend", topic)
		}
	}
}

func TestDispatch_ExplainBackendFailure(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		explainErr: &axees.APIError{Kind: axees.KindServer, Status: 500, Message: "llm timeout"},
	}
	d := New(Config{Backend: backend})
	sess := newTestSession(t)

	out := d.Dispatch(context.Background(), intent.Explain("focus order", intent.SourceExplicit, 1.0), sess)

	if out.Kind != KindFailed {
		t.Fatalf("Kind = %v, want %v", out.Kind, KindFailed)
	}
	if out.ErrKind != axees.KindServer {
		t.Errorf("ErrKind = %v, want %v", out.ErrKind, axees.KindServer)
	}
	if !strings.Contains(out.Message, "explain request") {
		t.Errorf("message = %q, want the operation named", out.Message)
	}
	if sess.History.Len() != 0 {
		t.Error("failed outcome entered history")
	}
}

func TestDispatch_RejectedGuidance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reason intent.Reason
		want   string
	}{
		{intent.ReasonNotANumber, "not a number"},
		{intent.ReasonNoIssueNumber, "Which issue"},
		{intent.ReasonEmptyTopic, "what to explain"},
		{intent.ReasonEmptyQuery, "Type a URL to scan"},
		{intent.Reason("mystery"), "could not work out"},
	}
	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			t.Parallel()

			backend := &fakeBackend{}
			d := New(Config{Backend: backend})
			sess := newTestSession(t)

			out := d.Dispatch(context.Background(), intent.Rejected(tt.reason, intent.SourceHeuristic), sess)

			if out.Kind != KindGuidance {
				t.Fatalf("Kind = %v, want %v", out.Kind, KindGuidance)
			}
			if !strings.Contains(out.Message, tt.want) {
				t.Errorf("message = %q, want substring %q", out.Message, tt.want)
			}
			if backend.calls() != 0 {
				t.Errorf("rejection reached the backend")
			}
		})
	}
}

func TestDispatch_RescanRenumbersIssues(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{scanResp: scanFixture(), fixResp: answerFixture()}
	d := New(Config{Backend: backend})
	sess := newTestSession(t)
	d.Dispatch(context.Background(), intent.Scan("https://example.com", intent.SourceExplicit, 1.0), sess)

	backend.scanResp = &axees.ScanResponse{
		URL:        "https://example.com/about",
		ScanResult: "Found 1 accessibility violations (0 critical, 1 serious, 0 moderate, 0 minor)",
		RawViolations: map[string][]axees.RawViolation{
			"serious": {{ID: "link-name", Help: "Links must have discernible text", HTML: `<a href="/"></a>`}},
		},
	}
	if out := d.Dispatch(context.Background(), intent.Scan("https://example.com/about", intent.SourceExplicit, 1.0), sess); out.Kind != KindRendered {
		t.Fatalf("rescan Kind = %v, want %v", out.Kind, KindRendered)
	}

	out := d.Dispatch(context.Background(), intent.Fix(2, intent.SourceExplicit, 1.0), sess)
	if out.Kind != KindGuidance || !strings.Contains(out.Message, "found 1 issues") {
		t.Errorf("Fix(2) after rescan = %v %q, want out-of-range against the new record", out.Kind, out.Message)
	}

	out = d.Dispatch(context.Background(), intent.Fix(1, intent.SourceExplicit, 1.0), sess)
	if out.Kind != KindRendered {
		t.Fatalf("Fix(1) Kind = %v, want %v (message: %s)", out.Kind, KindRendered, out.Message)
	}
	if query := backend.fixQueries[0]; !strings.Contains(query, "Links must have discernible text") {
		t.Errorf("query = %q, want the rescanned violation", query)
	}
}
