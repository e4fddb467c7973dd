// ABOUTME: CLI entry point for the axees accessibility client
// ABOUTME: Parses flags, loads config, builds the turn engine, dispatches to mode

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Ram095/axeesAI/internal/assistant"
	"github.com/Ram095/axeesAI/internal/config"
	"github.com/Ram095/axeesAI/internal/dispatch"
	"github.com/Ram095/axeesAI/internal/docstore"
	"github.com/Ram095/axeesAI/internal/intent"
	"github.com/Ram095/axeesAI/internal/log"
	"github.com/Ram095/axeesAI/internal/mode/interactive"
	"github.com/Ram095/axeesAI/internal/mode/print"
	"github.com/Ram095/axeesAI/internal/mode/rpc"
	"github.com/Ram095/axeesAI/internal/session"
	"github.com/Ram095/axeesAI/pkg/axees"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("axees %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		// print.ErrFailed means the outcome was already written; exit
		// nonzero without repeating it.
		if !errors.Is(err, print.ErrFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// run performs the full initialization sequence and dispatches to the
// selected mode.
func run(args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if args.verbose {
		log.SetLevel(log.LevelDebug)
	} else if cfg.LogLevel != "" {
		log.SetLevel(log.ParseLevel(cfg.LogLevel))
	}

	if args.output != print.FormatText && args.output != print.FormatJSON {
		return fmt.Errorf("unknown output format %q (want text or json)", args.output)
	}

	// Config env entries back-fill the process environment, so a project
	// config can carry AXEES_API_KEY. Real environment variables win.
	for k, v := range cfg.Env {
		if os.Getenv(k) == "" {
			os.Setenv(k, v)
		}
	}

	// Docstore commands are local and need no backend or session.
	if args.mode != "" {
		return runDocstore(args, cfg)
	}

	auth, err := config.LoadAuth()
	if err != nil {
		return fmt.Errorf("loading auth: %w", err)
	}
	if args.apiKey != "" {
		auth.SetRuntimeKey(args.apiKey)
	}

	baseURL := cfg.EffectiveBaseURL()
	if args.baseURL != "" {
		baseURL = args.baseURL
	}
	apiKey := auth.GetKey(config.DefaultService)

	client := axees.New(baseURL, apiKey)

	sess, err := openSession(args, baseURL)
	if err != nil {
		return err
	}
	defer sess.Close()
	log.Debug("session %s (base URL %s)", sess.ID, baseURL)

	exitRequested := false
	asst := assistant.New(assistant.Config{
		Client:   client,
		Session:  sess,
		Settings: cfg,
		Auth:     auth,
		APIKey:   apiKey,
		Version:  version,
		CWD:      cwd,
		ExitFn:   func() { exitRequested = true },
	})

	ctx := context.Background()
	utterance := strings.TrimSpace(args.query)
	if utterance == "" {
		utterance = strings.TrimSpace(strings.Join(args.remaining(), " "))
	}

	switch {
	case args.rpc:
		return runRPC(ctx, asst, cfg, baseURL)
	case args.interactive || utterance == "":
		return runInteractive(asst, baseURL, &exitRequested)
	}
	return print.Run(ctx, print.AutoConfig(args.output), print.Deps{Turner: asst}, utterance)
}

// openSession resumes the newest journal with --continue, otherwise
// starts a fresh journaled session.
func openSession(args cliArgs, baseURL string) (*session.Session, error) {
	dir := config.SessionsDir()
	if args.resume {
		sess, err := session.Resume(dir)
		if err != nil {
			return nil, fmt.Errorf("resuming session: %w", err)
		}
		return sess, nil
	}
	sess, err := session.NewSession(session.Config{BaseURL: baseURL, Dir: dir})
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return sess, nil
}

// runDocstore serves --mode index|query against the local store.
func runDocstore(args cliArgs, cfg *config.Settings) error {
	store := docstore.New(config.DocstoreDir())

	switch args.mode {
	case "index":
		if args.file == "" {
			return errors.New("--mode index requires --file")
		}
		n, err := store.Index(args.file)
		if err != nil {
			return err
		}
		fmt.Printf("Indexed %s as pack %q (%d chunks).\n", args.file, docstore.PackName(args.file), n)
		return nil

	case "query":
		query := strings.TrimSpace(args.query)
		if query == "" {
			query = strings.TrimSpace(strings.Join(args.remaining(), " "))
		}
		if query == "" {
			return errors.New("--mode query requires --query")
		}
		topK := args.topK
		if topK == 0 {
			topK = cfg.TopK
		}
		results, err := store.Query(query, topK)
		if err != nil {
			return err
		}
		fmt.Print(docstore.FormatResults(results))
		return nil

	default:
		return fmt.Errorf("unknown mode %q (want index or query)", args.mode)
	}
}

// runInteractive starts the Bubble Tea chat. The assistant's /exit
// callback flips exitRequested; the TUI polls it after each turn.
func runInteractive(asst *assistant.Assistant, baseURL string, exitRequested *bool) error {
	return interactive.Run(interactive.Deps{
		Turner:    asst,
		Version:   version,
		BaseURL:   baseURL,
		SessionID: asst.Session().ID,
		ExitRequested: func() bool {
			return *exitRequested
		},
	})
}

// runRPC serves the JSONL protocol on stdin/stdout until shutdown. The
// server is built before its handlers so the shutdown method can close
// over Stop.
func runRPC(ctx context.Context, asst *assistant.Assistant, cfg *config.Settings, baseURL string) error {
	router := rpc.NewRouter()
	srv := rpc.NewServer(router.Handle)
	rpc.RegisterHandlers(router, &rpc.Deps{
		Version:    func() string { return version },
		SessionID:  func() string { return asst.Session().ID },
		BaseURL:    func() string { return baseURL },
		IntentMode: cfg.IntentMode,
		Resolve: func(utterance string) intent.Intent {
			return asst.Resolve(ctx, utterance, "")
		},
		Dispatch: func(in intent.Intent) dispatch.Outcome {
			return asst.Dispatch(ctx, in, "")
		},
		Turn: func(input string) assistant.TurnResult {
			return asst.Turn(ctx, input)
		},
		Health: func() (*axees.HealthResponse, error) {
			return asst.Health(ctx)
		},
		Shutdown: srv.Stop,
	})
	return srv.Run()
}
