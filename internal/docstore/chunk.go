// ABOUTME: Text chunking for the local document index
// ABOUTME: Recursive separator splitting with fixed chunk size and overlap

package docstore

import "strings"

// Chunking constants, matching the guideline packs prepared for the
// backend's retrieval pipeline.
const (
	ChunkSize    = 1000
	ChunkOverlap = 200
)

// separators, coarsest first. Paragraph breaks beat line breaks beat
// word breaks; a fixed-width cut is the last resort.
var separators = []string{"\n\n", "\n", " "}

// SplitText chunks text into pieces of at most size bytes, with
// adjacent chunks sharing up to overlap bytes of trailing context.
// Splitting prefers the coarsest separator present in the text and
// recurses into finer ones only for oversized pieces.
func SplitText(text string, size, overlap int) []string {
	if size <= 0 {
		return nil
	}
	if overlap >= size {
		overlap = size / 2
	}
	return splitRecursive(text, size, overlap, separators)
}

func splitRecursive(text string, size, overlap int, seps []string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	sep := ""
	var rest []string
	for i, s := range seps {
		if strings.Contains(text, s) {
			sep = s
			rest = seps[i+1:]
			break
		}
	}
	if sep == "" {
		return hardSplit(text, size, overlap)
	}

	var chunks, pending []string
	for _, part := range strings.Split(text, sep) {
		if part == "" {
			continue
		}
		if len(part) <= size {
			pending = append(pending, part)
			continue
		}
		// Flush what fits before recursing so chunk order follows
		// document order.
		chunks = append(chunks, merge(pending, sep, size, overlap)...)
		pending = nil
		chunks = append(chunks, splitRecursive(part, size, overlap, rest)...)
	}
	return append(chunks, merge(pending, sep, size, overlap)...)
}

// merge joins adjacent parts into chunks of at most size bytes,
// carrying a tail of up to overlap bytes into the next chunk.
func merge(parts []string, sep string, size, overlap int) []string {
	sepLen := len(sep)
	var chunks []string
	var window []string

	emit := func() {
		if c := strings.TrimSpace(strings.Join(window, sep)); c != "" {
			chunks = append(chunks, c)
		}
	}

	for _, part := range parts {
		if len(window) > 0 && joinedLen(window, sepLen)+sepLen+len(part) > size {
			emit()
			for len(window) > 0 && (joinedLen(window, sepLen) > overlap ||
				joinedLen(window, sepLen)+sepLen+len(part) > size) {
				window = window[1:]
			}
		}
		window = append(window, part)
	}
	emit()
	return chunks
}

func joinedLen(parts []string, sepLen int) int {
	if len(parts) == 0 {
		return 0
	}
	n := sepLen * (len(parts) - 1)
	for _, p := range parts {
		n += len(p)
	}
	return n
}

// hardSplit cuts at fixed width on rune boundaries when no separator
// is usable, still honoring the overlap between cuts.
func hardSplit(text string, size, overlap int) []string {
	runes := []rune(text)
	step := size - overlap
	if step <= 0 {
		step = size
	}
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}
