// ABOUTME: Display-width measurement and truncation for plain-text snippets
// ABOUTME: Grapheme-aware via uniseg; East Asian and emoji widths via go-runewidth

package render

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const ellipsis = "..."

// VisibleWidth returns the display width of plain text. Grapheme
// clusters are measured as units; East Asian characters and emoji may
// occupy two cells.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	// Fast path: pure ASCII
	if isPlainASCII(s) {
		return len(s)
	}

	w := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		w += graphemeWidth(cluster)
		s = rest
		state = newState
	}
	return w
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// graphemeWidth returns the display width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	// Decode the first rune without allocating a []rune slice.
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// Truncate shortens s to at most max display columns, appending an
// ellipsis when anything was cut. Grapheme clusters are never split, so
// the result can come in under max but never over.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if VisibleWidth(s) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return ellipsis[:max]
	}

	budget := max - len(ellipsis)

	var b strings.Builder
	w := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		cw := graphemeWidth(cluster)
		if w+cw > budget {
			break
		}
		b.WriteString(cluster)
		w += cw
		s = rest
		state = newState
	}
	return b.String() + ellipsis
}
