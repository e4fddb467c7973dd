// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --query, --mode, --interactive, --rpc, --output, --continue, --version

package main

import "flag"

type cliArgs struct {
	query       string
	mode        string
	file        string
	topK        int
	interactive bool
	rpc         bool
	output      string
	baseURL     string
	apiKey      string
	resume      bool
	verbose     bool
	version     bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.query, "query", "", "Question or docstore query text")
	flag.StringVar(&args.mode, "mode", "", "Docstore mode: index or query")
	flag.StringVar(&args.file, "file", "", "Document to index (with --mode index)")
	flag.IntVar(&args.topK, "top-k", 0, "Docstore results to return (default 3)")
	flag.BoolVar(&args.interactive, "i", false, "Interactive chat mode")
	flag.BoolVar(&args.interactive, "interactive", false, "Interactive chat mode")
	flag.BoolVar(&args.rpc, "rpc", false, "JSONL RPC mode over stdin/stdout")
	flag.StringVar(&args.output, "output", "text", "Print-mode output format: text or json")
	flag.StringVar(&args.baseURL, "base-url", "", "Backend base URL")
	flag.StringVar(&args.apiKey, "api-key", "", "API key for this invocation (not persisted)")
	flag.BoolVar(&args.resume, "continue", false, "Resume the most recent session")
	flag.BoolVar(&args.verbose, "verbose", false, "Debug logging to stderr")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
