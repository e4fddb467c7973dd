// ABOUTME: Handler implementations for the RPC methods
// ABOUTME: Routes requests to the assistant through injected function dependencies

package rpc

import (
	"encoding/json"

	"github.com/Ram095/axeesAI/internal/assistant"
	"github.com/Ram095/axeesAI/internal/dispatch"
	"github.com/Ram095/axeesAI/internal/intent"
	"github.com/Ram095/axeesAI/pkg/axees"
)

// HandlerFunc processes an RPC request's params and returns a Response.
type HandlerFunc func(params json.RawMessage) Response

// Router dispatches RPC requests to registered handlers by method name.
type Router struct {
	handlers map[string]HandlerFunc
}

// NewRouter creates a Router with an empty handler registry.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]HandlerFunc)}
}

// Register associates a method name with a handler function.
func (r *Router) Register(method string, handler HandlerFunc) {
	r.handlers[method] = handler
}

// Handle dispatches a request to the registered handler, or returns
// a method-not-found error if no handler is registered.
func (r *Router) Handle(req Request) Response {
	h, ok := r.handlers[req.Method]
	if !ok {
		return Response{
			ID:    req.ID,
			Error: NewMethodNotFoundError(req.Method),
		}
	}

	raw, err := marshalParams(req.Params)
	if err != nil {
		return Response{
			ID:    req.ID,
			Error: NewInvalidParamsError(err.Error()),
		}
	}

	resp := h(raw)
	resp.ID = req.ID
	return resp
}

// marshalParams converts the generic Params field into json.RawMessage
// so handlers can decode it themselves.
func marshalParams(params any) (json.RawMessage, error) {
	if params == nil {
		return nil, nil
	}
	if raw, ok := params.(json.RawMessage); ok {
		return raw, nil
	}
	return json.Marshal(params)
}

// Deps holds the assistant functions the handlers call into. The
// command-line wiring closes them over one assistant and one context.
type Deps struct {
	Version    func() string
	SessionID  func() string
	BaseURL    func() string
	IntentMode func() string
	Resolve    func(utterance string) intent.Intent
	Dispatch   func(in intent.Intent) dispatch.Outcome
	Turn       func(input string) assistant.TurnResult
	Health     func() (*axees.HealthResponse, error)
	Shutdown   func()
}

// RegisterHandlers wires every method handler into the given router.
func RegisterHandlers(r *Router, d *Deps) {
	r.Register(MethodInitialize, handleInitialize(d))
	r.Register(MethodResolve, handleResolve(d))
	r.Register(MethodDispatch, handleDispatch(d))
	r.Register(MethodTurn, handleTurn(d))
	r.Register(MethodHealth, handleHealth(d))
	r.Register(MethodShutdown, handleShutdown(d))
}

func handleInitialize(d *Deps) HandlerFunc {
	return func(_ json.RawMessage) Response {
		return Response{
			Result: InitializeResult{
				Version:    d.Version(),
				SessionID:  d.SessionID(),
				BaseURL:    d.BaseURL(),
				IntentMode: d.IntentMode(),
			},
		}
	}
}

func handleResolve(d *Deps) HandlerFunc {
	return func(params json.RawMessage) Response {
		var p ResolveParams
		if err := json.Unmarshal(params, &p); err != nil {
			return Response{Error: NewInvalidParamsError(err.Error())}
		}
		return Response{Result: intentPayload(d.Resolve(p.Utterance))}
	}
}

func handleDispatch(d *Deps) HandlerFunc {
	return func(params json.RawMessage) Response {
		var p IntentPayload
		if err := json.Unmarshal(params, &p); err != nil {
			return Response{Error: NewInvalidParamsError(err.Error())}
		}
		in, err := payloadIntent(p)
		if err != nil {
			return Response{Error: NewInvalidParamsError(err.Error())}
		}
		return Response{Result: outcomePayload(d.Dispatch(in))}
	}
}

func handleTurn(d *Deps) HandlerFunc {
	return func(params json.RawMessage) Response {
		var p TurnParams
		if err := json.Unmarshal(params, &p); err != nil {
			return Response{Error: NewInvalidParamsError(err.Error())}
		}
		res := d.Turn(p.Input)
		result := TurnResult{OutcomePayload: outcomePayload(res.Outcome)}
		if !res.Local {
			payload := intentPayload(res.Intent)
			result.Intent = &payload
		}
		return Response{Result: result}
	}
}

func handleHealth(d *Deps) HandlerFunc {
	return func(_ json.RawMessage) Response {
		resp, err := d.Health()
		if err != nil {
			return Response{Result: HealthResult{Status: "unreachable"}}
		}
		return Response{Result: HealthResult{Status: resp.Status, Reachable: true}}
	}
}

func handleShutdown(d *Deps) HandlerFunc {
	return func(_ json.RawMessage) Response {
		d.Shutdown()
		return Response{Result: ShutdownResult{Stopping: true}}
	}
}
