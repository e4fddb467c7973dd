// ABOUTME: Wire types for the axees accessibility API
// ABOUTME: Health, Q&A, and intent-analysis request/response shapes

package axees

import (
	"fmt"
	"strings"
)

// HealthStatusUp is the status value the backend reports when operational.
const HealthStatusUp = "healthy"

// HealthResponse is the GET /health response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Healthy reports whether the backend considers itself operational.
func (h *HealthResponse) Healthy() bool {
	return h.Status == HealthStatusUp
}

// QueryRequest is the body for the fix and explain endpoints.
type QueryRequest struct {
	Query string `json:"query"`
}

// AnswerResponse is the structured Q&A payload returned by the fix and
// explain endpoints. All four fields are required; a missing field is a
// response-validation error, not a blank section.
type AnswerResponse struct {
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
	Guidelines  string `json:"guidelines"`
	Examples    string `json:"examples"`
}

// Validate reports the missing required fields, if any.
func (a *AnswerResponse) Validate() error {
	var missing []string
	if a.Answer == "" {
		missing = append(missing, "answer")
	}
	if a.Explanation == "" {
		missing = append(missing, "explanation")
	}
	if a.Guidelines == "" {
		missing = append(missing, "guidelines")
	}
	if a.Examples == "" {
		missing = append(missing, "examples")
	}
	if len(missing) > 0 {
		return fmt.Errorf("response missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// IntentContext carries conversational context for the intent analyzer.
type IntentContext struct {
	ScanResults      []string `json:"scan_results"`
	PreviousCommands []string `json:"previous_commands"`
}

// IntentRequest is the body for the analyze-intent endpoint.
type IntentRequest struct {
	Query   string        `json:"query"`
	Context IntentContext `json:"context"`
}

// IntentMetadata holds the analyzer's extracted parameters. Fields are
// populated according to the returned command.
type IntentMetadata struct {
	URL         string `json:"url,omitempty"`
	IssueNumber int    `json:"issue_number,omitempty"`
	Topic       string `json:"topic,omitempty"`
}

// IntentResponse is the analyze-intent result: a command name, the
// content it applies to, the analyzer's confidence, and metadata.
type IntentResponse struct {
	Command    string         `json:"command"`
	Content    string         `json:"content"`
	Confidence float64        `json:"confidence"`
	Metadata   IntentMetadata `json:"metadata"`
}
