// ABOUTME: Scan request/response wire types for the axees accessibility API
// ABOUTME: Separated for easyjson codegen (zero-reflection decoding on the largest payload)

//go:generate easyjson -all scan_types.go

package axees

// ScanRequest is the body for the scan endpoint.
type ScanRequest struct {
	URL string `json:"url"`
}

// RawViolation is one accessibility defect as reported by the scanner,
// grouped under its severity in ScanResponse. HelpURL is optional; some
// scanner versions omit it.
type RawViolation struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Help        string `json:"help"`
	HelpURL     string `json:"helpUrl,omitempty"`
	HTML        string `json:"html"`
	Impact      string `json:"impact"`
}

// ScanResponse is the scan endpoint result: a human-readable summary and
// violations keyed by severity name.
type ScanResponse struct {
	URL           string                    `json:"url"`
	ScanResult    string                    `json:"scan_result"`
	RawViolations map[string][]RawViolation `json:"raw_violations"`
}
