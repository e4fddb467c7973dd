// ABOUTME: Wire frames for the JSONL RPC protocol
// ABOUTME: Request, response, and error types exchanged with editor integrations

package rpc

// Request is one JSONL frame from the client.
type Request struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

// Response is one JSONL frame back to the client.
type Response struct {
	ID     string `json:"id"`
	Result any    `json:"result,omitempty"`
	Error  *Error `json:"error,omitempty"`
}

// Error is the failure half of a response. It covers protocol faults
// only; command failures travel inside result payloads.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Methods
const (
	MethodInitialize = "initialize"
	MethodResolve    = "resolve"
	MethodDispatch   = "dispatch"
	MethodTurn       = "turn"
	MethodHealth     = "health"
	MethodShutdown   = "shutdown"
)
