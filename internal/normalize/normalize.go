// ABOUTME: Utterance normalization and literal sub-token extraction
// ABOUTME: Pure, stateless; NFC + Unicode space folding, URL/integer/ordinal patterns

package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	urlPattern     = regexp.MustCompile(`https?://[^\s]+`)
	integerPattern = regexp.MustCompile(`\b\d+\b`)
	ordinalPattern = regexp.MustCompile(`\b(\d+)(?:st|nd|rd|th)\b`)
)

// ordinalWords maps spelled-out ordinals to issue numbers. The backend
// recognizes first through tenth; beyond that users type digits anyway.
var ordinalWords = map[string]int{
	"first":   1,
	"second":  2,
	"third":   3,
	"fourth":  4,
	"fifth":   5,
	"sixth":   6,
	"seventh": 7,
	"eighth":  8,
	"ninth":   9,
	"tenth":   10,
}

// Utterance lowercases and trims raw input after folding Unicode variants:
// NFC composition and non-ASCII space characters to ASCII space.
func Utterance(s string) string {
	s = norm.NFC.String(s)
	s = foldSpaces(s)
	return strings.ToLower(strings.TrimSpace(s))
}

// foldSpaces replaces Unicode space characters with ASCII space (U+0020).
// Covered codepoints: U+00A0, U+2000-U+200A, U+202F, U+205F, U+3000.
func foldSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isUnicodeSpace(r) {
			b.WriteByte(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isUnicodeSpace reports whether r is a non-ASCII Unicode space character.
func isUnicodeSpace(r rune) bool {
	switch {
	case r == '\u00a0': // no-break space
		return true
	case r >= '\u2000' && r <= '\u200a': // en/em/thin/hair/etc. spaces
		return true
	case r == '\u202f': // narrow no-break space
		return true
	case r == '\u205f': // medium mathematical space
		return true
	case r == '\u3000': // ideographic space
		return true
	}
	return false
}

// FirstURL returns the first absolute http(s) URL token in s.
func FirstURL(s string) (string, bool) {
	m := urlPattern.FindString(s)
	if m == "" {
		return "", false
	}
	return m, true
}

// FirstInt returns the first bare integer token in s. Digits glued to
// letters (ordinal suffixes, identifiers) do not count.
func FirstInt(s string) (int, bool) {
	m := integerPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// OrdinalNumber extracts an issue number from ordinal phrasing: numeric
// ordinals ("2nd", "3rd") or spelled-out words ("first" through "tenth").
func OrdinalNumber(s string) (int, bool) {
	if m := ordinalPattern.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, true
		}
	}
	for _, word := range strings.Fields(s) {
		if n, ok := ordinalWords[strings.Trim(word, ".,!?")]; ok {
			return n, true
		}
	}
	return 0, false
}

// IssueNumber extracts an issue number from s, preferring a bare integer
// over ordinal phrasing.
func IssueNumber(s string) (int, bool) {
	if n, ok := FirstInt(s); ok {
		return n, true
	}
	return OrdinalNumber(s)
}

// LooksLikeURL reports whether a single token is plausibly a web address:
// an explicit http(s) scheme, a www. prefix, or a dotted host. Dispatch
// still validates properly; this only routes positional CLI arguments.
func LooksLikeURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return false
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return true
	}
	if strings.HasPrefix(s, "www.") {
		return true
	}
	host, _, _ := strings.Cut(s, "/")
	if !strings.Contains(host, ".") {
		return false
	}
	for _, r := range host {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == ':':
		default:
			return false
		}
	}
	return !strings.HasPrefix(host, ".") && !strings.HasSuffix(host, ".")
}
