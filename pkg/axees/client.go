// ABOUTME: HTTP client for the axees accessibility backend
// ABOUTME: Exponential backoff on 429/5xx; typed endpoint wrappers with error kinds

package axees

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mailru/easyjson"
)

// HeaderAPIKey is the authentication header the backend expects on every
// request.
const HeaderAPIKey = "X-Open-API-Key"

const (
	defaultTimeout = 120 * time.Second
	maxRetries     = 3
	baseBackoffMs  = 500
	maxBackoffMs   = 10000
)

// Client talks to one axees backend. It is safe for sequential use by a
// single session; create one Client per session.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// New creates a client for the backend at baseURL. Proxy support comes
// from the stdlib's default transport (HTTP_PROXY, HTTPS_PROXY).
func New(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   30 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// BaseURL returns the base URL configured on this client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetAPIKey replaces the key sent on subsequent requests.
func (c *Client) SetAPIKey(key string) {
	c.apiKey = key
}

// Health checks backend availability via GET /health.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	var out HealthResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Scan audits the given URL and returns the violations grouped by
// severity. Decoding goes through the generated easyjson path since scan
// payloads are by far the largest the backend returns.
func (c *Client) Scan(ctx context.Context, url string) (*ScanResponse, error) {
	body, err := easyjson.Marshal(ScanRequest{URL: url})
	if err != nil {
		return nil, newAPIError(KindDecode, 0, "encoding scan request", err)
	}
	resp, err := c.do(ctx, http.MethodPost, "/api/accessibility/scan", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out ScanResponse
	if err := easyjson.UnmarshalFromReader(resp.Body, &out); err != nil {
		return nil, newAPIError(KindDecode, resp.StatusCode, "decoding scan response", err)
	}
	return &out, nil
}

// Fix asks the backend how to resolve a specific violation.
func (c *Client) Fix(ctx context.Context, query string) (*AnswerResponse, error) {
	return c.answer(ctx, "fix", query)
}

// Explain asks the backend a general accessibility question.
func (c *Client) Explain(ctx context.Context, query string) (*AnswerResponse, error) {
	return c.answer(ctx, "explain", query)
}

func (c *Client) answer(ctx context.Context, command, query string) (*AnswerResponse, error) {
	body, err := json.Marshal(QueryRequest{Query: query})
	if err != nil {
		return nil, newAPIError(KindDecode, 0, "encoding query request", err)
	}
	resp, err := c.do(ctx, http.MethodPost, "/api/accessibility/"+command, body)
	if err != nil {
		return nil, err
	}
	var out AnswerResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeIntent delegates utterance disambiguation to the backend's
// intent analyzer.
func (c *Client) AnalyzeIntent(ctx context.Context, req IntentRequest) (*IntentResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, newAPIError(KindDecode, 0, "encoding intent request", err)
	}
	resp, err := c.do(ctx, http.MethodPost, "/api/accessibility/analyze-intent", body)
	if err != nil {
		return nil, err
	}
	var out IntentResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends the request with retry on 429 and 5xx, mapping failures to
// APIError kinds. A non-nil response always has a 2xx status.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var lastResp *http.Response

	for attempt := range maxRetries {
		resp, err := c.send(ctx, method, path, body)
		if err != nil {
			return nil, err
		}

		if !isRetryable(resp.StatusCode) {
			return c.checkStatus(resp)
		}

		// Drain the retryable response before the next attempt.
		resp.Body.Close()
		lastResp = resp

		if attempt < maxRetries-1 {
			if err := sleepWithContext(ctx, backoff(attempt)); err != nil {
				return nil, newAPIError(KindConnect, 0, "cancelled during retry backoff", err)
			}
		}
	}

	// Retries exhausted: one final attempt so the caller sees a readable
	// response or a status-mapped error.
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		if lastResp != nil {
			return nil, newAPIError(KindServer, lastResp.StatusCode, "backend unavailable after retries", err)
		}
		return nil, err
	}
	return c.checkStatus(resp)
}

// send performs a single HTTP attempt. The body is rebuilt per attempt,
// so retries never see a drained reader.
func (c *Client) send(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, newAPIError(KindBadRequest, 0, fmt.Sprintf("building request for %s %s", method, path), err)
	}
	req.Header.Set(HeaderAPIKey, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newAPIError(KindConnect, 0, fmt.Sprintf("requesting %s %s", method, path), err)
	}
	return resp, nil
}

// checkStatus maps a non-2xx response to a typed error, consuming the
// body for its detail message. 2xx responses pass through unread.
func (c *Client) checkStatus(resp *http.Response) (*http.Response, error) {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	detail := readDetail(resp.Body)
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, newAPIError(KindAuth, resp.StatusCode, detail, nil)
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, newAPIError(KindServer, resp.StatusCode, detail, nil)
	default:
		return nil, newAPIError(KindBadRequest, resp.StatusCode, detail, nil)
	}
}

// readDetail extracts the backend's error detail. The backend wraps
// errors as {"detail": ...} where detail is a string or a validation
// object; anything unparseable falls back to the raw body.
func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "no error detail"
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Detail) > 0 {
		var s string
		if err := json.Unmarshal(envelope.Detail, &s); err == nil {
			return s
		}
		return string(envelope.Detail)
	}
	return strings.TrimSpace(string(raw))
}

// decodeJSON decodes a 2xx response body, closing it.
func decodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return newAPIError(KindDecode, resp.StatusCode, "decoding response body", err)
	}
	return nil
}

// isRetryable returns true for status codes that warrant a retry.
func isRetryable(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

// backoff returns the backoff duration for the given attempt using exponential backoff.
func backoff(attempt int) time.Duration {
	ms := float64(baseBackoffMs) * math.Pow(2, float64(attempt))
	if ms > maxBackoffMs {
		ms = maxBackoffMs
	}
	return time.Duration(ms) * time.Millisecond
}

// sleepWithContext waits for the given duration or until the context is cancelled.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
