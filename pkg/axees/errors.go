// ABOUTME: Typed API error kinds for the axees backend client
// ABOUTME: Closed ErrorKind enumeration with errors.As-friendly wrappers

package axees

import (
	"errors"
	"fmt"
)

// ErrorKind classifies client failures so callers can branch on cause
// instead of inspecting message strings.
type ErrorKind int

const (
	KindUnknown    ErrorKind = iota
	KindAuth       // 401/403: invalid or missing API key
	KindBadRequest // other 4xx: the backend rejected the request
	KindServer     // 5xx after retries
	KindConnect    // transport failure, no HTTP response
	KindDecode     // malformed or incomplete response body
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindBadRequest:
		return "bad_request"
	case KindServer:
		return "server"
	case KindConnect:
		return "connect"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// APIError is the error type returned by all Client calls.
type APIError struct {
	Kind    ErrorKind
	Status  int    // HTTP status, 0 when no response arrived
	Message string // human-readable cause, backend detail when available
	err     error  // wrapped cause, may be nil
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("axees api: %s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("axees api: %s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.err
}

// newAPIError wraps a cause with a kind and message.
func newAPIError(kind ErrorKind, status int, message string, cause error) *APIError {
	return &APIError{Kind: kind, Status: status, Message: message, err: cause}
}

// KindOf extracts the ErrorKind from err, or KindUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsAuth reports whether err is an authentication failure.
func IsAuth(err error) bool {
	return KindOf(err) == KindAuth
}

// IsConnect reports whether err is a transport-level failure.
func IsConnect(err error) bool {
	return KindOf(err) == KindConnect
}

// IsDecode reports whether err is a response-validation failure.
func IsDecode(err error) bool {
	return KindOf(err) == KindDecode
}
