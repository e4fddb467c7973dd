// ABOUTME: Terminal markdown renderer wrapping glamour
// ABOUTME: Reuses one TermRenderer per width; caches output by content hash

package render

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// defaultWidth is the wrap width when the terminal width is unknown.
const defaultWidth = 80

// Renderer turns markdown into ANSI-styled terminal output. Not safe
// for concurrent use; turns are sequential.
type Renderer struct {
	byWidth map[int]*glamour.TermRenderer
	cache   map[string]string // "hash:width" -> rendered
}

// NewRenderer creates a Renderer with empty caches.
func NewRenderer() *Renderer {
	return &Renderer{
		byWidth: make(map[int]*glamour.TermRenderer),
		cache:   make(map[string]string),
	}
}

// Render returns the terminal-styled form of md wrapped to width.
// Returns the raw markdown when styling fails.
func (r *Renderer) Render(md string, width int) string {
	if md == "" {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}

	key := cacheKey(md, width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	tr, err := r.rendererFor(width)
	if err != nil {
		return md
	}
	rendered, err := tr.Render(md)
	if err != nil {
		return md
	}

	// Trim trailing whitespace that glamour adds
	rendered = strings.TrimRight(rendered, "\n ")

	r.cache[key] = rendered
	return rendered
}

func (r *Renderer) rendererFor(width int) (*glamour.TermRenderer, error) {
	if tr, ok := r.byWidth[width]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.byWidth[width] = tr
	return tr, nil
}

// cacheKey produces a string key from content hash and width.
func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
