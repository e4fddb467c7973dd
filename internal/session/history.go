// ABOUTME: Bounded command history for a resolution session
// ABOUTME: Append-then-truncate keeps the most recent HistoryLimit entries

package session

// HistoryLimit caps how many dispatched commands a session remembers.
const HistoryLimit = 10

// CommandHistory keeps the most recent successfully dispatched command
// lines, oldest first. Rejected and failed turns are never recorded.
type CommandHistory struct {
	entries []string
}

// Append records a command line, discarding the oldest entry once the
// cap is exceeded.
func (h *CommandHistory) Append(cmd string) {
	h.entries = append(h.entries, cmd)
	if len(h.entries) > HistoryLimit {
		h.entries = h.entries[len(h.entries)-HistoryLimit:]
	}
}

// Entries returns a copy of the history, oldest first.
func (h *CommandHistory) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded commands.
func (h *CommandHistory) Len() int {
	return len(h.entries)
}

// Clear drops all recorded commands.
func (h *CommandHistory) Clear() {
	h.entries = h.entries[:0]
}
