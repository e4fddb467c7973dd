// ABOUTME: Turn engine shared by the interactive, print, and RPC front ends
// ABOUTME: One turn: slash routing, resolution, configuration preflight, dispatch, journaling

package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Ram095/axeesAI/internal/commands"
	"github.com/Ram095/axeesAI/internal/config"
	"github.com/Ram095/axeesAI/internal/dispatch"
	"github.com/Ram095/axeesAI/internal/intent"
	"github.com/Ram095/axeesAI/internal/log"
	"github.com/Ram095/axeesAI/internal/render"
	"github.com/Ram095/axeesAI/internal/session"
	"github.com/Ram095/axeesAI/pkg/axees"
)

// Connection preconditions, checked before every backend command.
var (
	ErrNoBaseURL = errors.New("no backend base URL configured")
	ErrNoAPIKey  = errors.New("no API key configured")
)

// Client is the backend surface the assistant drives. *axees.Client
// satisfies it.
type Client interface {
	dispatch.Backend
	AnalyzeIntent(ctx context.Context, req axees.IntentRequest) (*axees.IntentResponse, error)
	Health(ctx context.Context) (*axees.HealthResponse, error)
	BaseURL() string
	SetAPIKey(key string)
}

// Config wires an Assistant.
type Config struct {
	Client   Client
	Session  *session.Session
	Settings *config.Settings  // nil uses defaults
	Auth     *config.AuthStore // optional; backs /key persistence
	APIKey   string            // key currently applied to the client
	Version  string
	CWD      string
	ExitFn   func() // optional; backs /exit
}

// Assistant runs turns for one session. Like the session it owns, it is
// not safe for concurrent use; front ends serialize turns.
type Assistant struct {
	client     Client
	sess       *session.Session
	settings   *config.Settings
	auth       *config.AuthStore
	resolver   *intent.Resolver
	dispatcher *dispatch.Dispatcher
	registry   *commands.Registry
	apiKey     string
	version    string
	cwd        string
	exitFn     func()
}

// New assembles the turn engine: resolver (with the remote analyzer
// strategy when configured), dispatcher, and slash registry.
func New(cfg Config) *Assistant {
	settings := cfg.Settings
	if settings == nil {
		settings = &config.Settings{}
	}

	var analyzer intent.Analyzer
	if settings.IntentMode() == config.IntentModeRemote {
		analyzer = cfg.Client
	}

	return &Assistant{
		client:   cfg.Client,
		sess:     cfg.Session,
		settings: settings,
		auth:     cfg.Auth,
		resolver: intent.NewResolver(intent.Config{
			Analyzer:  analyzer,
			Threshold: settings.IntentThreshold(),
		}),
		dispatcher: dispatch.New(dispatch.Config{
			Backend:    cfg.Client,
			StrictURLs: settings.StrictURLs,
		}),
		registry: commands.NewRegistry(),
		apiKey:   cfg.APIKey,
		version:  cfg.Version,
		cwd:      cfg.CWD,
		exitFn:   cfg.ExitFn,
	}
}

// Session returns the session this assistant mutates.
func (a *Assistant) Session() *session.Session {
	return a.sess
}

// Registry returns the slash command registry, for completion UIs.
func (a *Assistant) Registry() *commands.Registry {
	return a.registry
}

// Health probes the backend once.
func (a *Assistant) Health(ctx context.Context) (*axees.HealthResponse, error) {
	return a.client.Health(ctx)
}

// TurnResult carries everything a front end needs to show one turn.
type TurnResult struct {
	Outcome dispatch.Outcome
	Intent  intent.Intent
	Local   bool // handled by a local slash command; Intent is zero
}

// Turn runs one full user turn. Slash input routes to the command
// registry or, for scan/fix/explain, into intent resolution with the
// command as an explicit hint; everything else resolves free-form.
func (a *Assistant) Turn(ctx context.Context, input string) TurnResult {
	trimmed := strings.TrimSpace(input)
	if !commands.IsCommand(trimmed) {
		return a.run(ctx, trimmed, "", trimmed)
	}

	name, args := commands.Split(trimmed)
	cmd, ok := a.registry.Get(name)
	switch {
	case !ok:
		return TurnResult{
			Local:   true,
			Outcome: dispatch.Guidance(fmt.Sprintf("Unknown command /%s. Type /help for the list.", name)),
		}
	case cmd.Turn:
		return a.run(ctx, args, name, trimmed)
	default:
		out, err := cmd.Execute(a.commandContext(ctx), args)
		if err != nil {
			return TurnResult{
				Local:   true,
				Outcome: dispatch.Failed(fmt.Sprintf("Command /%s failed: %v.", name, err), err),
			}
		}
		return TurnResult{Local: true, Outcome: dispatch.Rendered(out, "")}
	}
}

// Resolve produces the intent for one utterance, supplying session
// context (history, last scan) to the resolver.
func (a *Assistant) Resolve(ctx context.Context, utterance, explicit string) intent.Intent {
	return a.resolver.Resolve(ctx, utterance, explicit, a.sess.History.Entries(), a.scanContext())
}

// Dispatch executes a resolved intent and journals the turn. The
// configuration preflight runs first: backend commands are uniformly
// blocked until a base URL and API key are present. The utterance is
// recorded as typed; it may be empty for callers without one.
func (a *Assistant) Dispatch(ctx context.Context, in intent.Intent, utterance string) dispatch.Outcome {
	if in.Kind != intent.KindRejected {
		if err := a.preflight(); err != nil {
			out := dispatch.Failed(configGuidance(err), err)
			a.journalTurn(utterance, out)
			return out
		}
	}

	out := a.dispatcher.Dispatch(ctx, in, a.sess)
	a.journalTurn(utterance, out)
	return out
}

func (a *Assistant) run(ctx context.Context, utterance, explicit, raw string) TurnResult {
	in := a.Resolve(ctx, utterance, explicit)
	out := a.Dispatch(ctx, in, raw)
	return TurnResult{Outcome: out, Intent: in}
}

// preflight enforces the connection preconditions shared by every
// backend command.
func (a *Assistant) preflight() error {
	if a.client.BaseURL() == "" {
		return ErrNoBaseURL
	}
	if a.apiKey == "" {
		return ErrNoAPIKey
	}
	return nil
}

// configGuidance names the missing connection piece.
func configGuidance(err error) string {
	if errors.Is(err, ErrNoAPIKey) {
		return "No API key is configured. Set AXEES_API_KEY or store one with /key <value>. Nothing was sent to the backend."
	}
	return "No backend base URL is configured. Set base_url in config or pass --base-url. Nothing was sent to the backend."
}

// journalTurn persists the turn record; replay derives history from it.
func (a *Assistant) journalTurn(utterance string, out dispatch.Outcome) {
	turn := session.TurnData{
		Utterance: utterance,
		Command:   out.Command,
		Outcome:   out.Kind.String(),
	}
	if out.Kind != dispatch.KindRendered {
		turn.Detail = out.Message
	}
	if err := a.sess.RecordTurn(turn); err != nil {
		log.Warn("turn journal write failed: %v", err)
	}
}

// scanContext summarizes the session's scan record for the resolver.
func (a *Assistant) scanContext() *intent.ScanContext {
	if a.sess.Scan == nil {
		return nil
	}
	return &intent.ScanContext{
		Summary: a.sess.Scan.Summary,
		Lines:   a.sess.Scan.ContextLines(),
	}
}

// commandContext wires session and client state into the slash registry.
func (a *Assistant) commandContext(ctx context.Context) *commands.CommandContext {
	return &commands.CommandContext{
		Version:    a.version,
		BaseURL:    a.client.BaseURL(),
		IntentMode: a.settings.IntentMode(),
		StrictURLs: a.settings.StrictURLs,
		SessionID:  a.sess.ID,
		CWD:        a.cwd,
		History: func() []string {
			return a.sess.History.Entries()
		},
		ClearSession: func() error {
			return a.sess.Reset()
		},
		CheckHealth: func() (string, error) {
			return a.healthReport(ctx)
		},
		StoreKey: a.storeKey,
		ExitFn:   a.exitFn,
	}
}

// healthReport probes the backend. Reachability problems become the
// report text; the health command itself never fails.
func (a *Assistant) healthReport(ctx context.Context) (string, error) {
	resp, err := a.client.Health(ctx)
	if err != nil {
		return fmt.Sprintf("Backend at %s is not reachable: %v.", a.client.BaseURL(), err), nil
	}
	return render.HealthReport(resp, a.client.BaseURL()), nil
}

// storeKey applies a new API key to the running client and persists it
// when an auth store is attached.
func (a *Assistant) storeKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("empty key")
	}
	if a.auth != nil {
		a.auth.SetKey(config.DefaultService, key)
		if err := a.auth.Save(); err != nil {
			return err
		}
	}
	a.apiKey = key
	a.client.SetAPIKey(key)
	return nil
}
