// ABOUTME: Local lexical index over guideline documents
// ABOUTME: Token-overlap scoring, parallel across chunks; one JSON chunk file per pack

package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"
)

// DefaultTopK mirrors the retrieval default of the backend pipeline.
const DefaultTopK = 3

// Store is a directory of indexed guideline packs plus a manifest.
type Store struct {
	dir string
}

// New opens a store rooted at dir. The directory is created on first
// index, not here.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Result is one scored chunk from a query.
type Result struct {
	Pack  string
	Text  string
	Score float64
}

// Index chunks the file and saves it as a pack named after the file,
// replacing any previous version and updating the manifest. Returns
// the number of chunks stored.
func (s *Store) Index(file string) (int, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", file, err)
	}

	chunks := SplitText(string(data), ChunkSize, ChunkOverlap)
	if len(chunks) == 0 {
		return 0, fmt.Errorf("%s contains no indexable text", file)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating docstore directory: %w", err)
	}

	name := PackName(file)
	if err := s.writeChunks(name, chunks); err != nil {
		return 0, err
	}
	if err := s.updateManifest(name, file, len(chunks)); err != nil {
		return 0, err
	}
	return len(chunks), nil
}

// Query scores every chunk in every pack against the query tokens and
// returns the topK best, highest score first.
func (s *Store) Query(query string, topK int) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("empty query")
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	man, err := s.Manifest()
	if err != nil {
		return nil, err
	}
	if len(man.Packs) == 0 {
		return nil, errors.New("docstore is empty; index a file first")
	}

	queryTokens := tokenSet(query)
	if len(queryTokens) == 0 {
		return nil, errors.New("query has no scorable tokens")
	}

	var results []Result
	for _, p := range man.Packs {
		chunks, err := s.readChunks(p.Name)
		if err != nil {
			return nil, err
		}
		for _, c := range chunks {
			results = append(results, Result{Pack: p.Name, Text: c})
		}
	}

	// Each chunk scores into its own slot; no mutex is needed.
	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			results[i].Score = overlapScore(queryTokens, results[i].Text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// FormatResults renders query results as numbered blocks under a
// header, matching the retrieval demo's output.
func FormatResults(results []Result) string {
	var b strings.Builder
	b.WriteString("Query Results:\n==============\n")
	for i, r := range results {
		fmt.Fprintf(&b, "\nResult %d (Score: %.4f):\n%s\n", i+1, r.Score, r.Text)
	}
	return b.String()
}

// PackName derives a pack name from a file path: the base name without
// its extension.
func PackName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

type packFile struct {
	Name   string   `json:"name"`
	Chunks []string `json:"chunks"`
}

func (s *Store) chunkPath(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) writeChunks(name string, chunks []string) error {
	data, err := json.MarshalIndent(packFile{Name: name, Chunks: chunks}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding pack %s: %w", name, err)
	}
	if err := os.WriteFile(s.chunkPath(name), data, 0o644); err != nil {
		return fmt.Errorf("writing pack %s: %w", name, err)
	}
	return nil
}

func (s *Store) readChunks(name string) ([]string, error) {
	data, err := os.ReadFile(s.chunkPath(name))
	if err != nil {
		return nil, fmt.Errorf("reading pack %s: %w", name, err)
	}
	var p packFile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding pack %s: %w", name, err)
	}
	return p.Chunks, nil
}

// overlapScore is the fraction of query tokens present in the text.
func overlapScore(query map[string]struct{}, text string) float64 {
	if len(query) == 0 {
		return 0
	}
	hits := 0
	for tok := range tokenSet(text) {
		if _, ok := query[tok]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(query))
}

// tokenSet lowercases and splits on non-alphanumeric runes. Single-rune
// tokens are noise and dropped.
func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len(tok) < 2 {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}
