// ABOUTME: Slash-command completion dropdown for the chat TUI
// ABOUTME: Fuzzy-filters the registry while the input holds an unfinished command

package interactive

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/Ram095/axeesAI/internal/commands"
)

const maxCompletionRows = 6

// completionState drives the dropdown under the input line.
type completionState struct {
	open     bool
	matches  []*commands.Command
	selected int
}

// filter ranks commands against the typed pattern. An empty pattern
// lists everything in registry order.
func (c *completionState) filter(pattern string, cmds []*commands.Command) {
	c.matches = c.matches[:0]
	if pattern == "" {
		c.matches = append(c.matches, cmds...)
	} else {
		names := make([]string, len(cmds))
		for i, cmd := range cmds {
			names[i] = cmd.Name
		}
		for _, match := range fuzzy.Find(pattern, names) {
			c.matches = append(c.matches, cmds[match.Index])
		}
	}
	c.open = len(c.matches) > 0
	if c.selected >= len(c.matches) {
		c.selected = 0
	}
}

// move shifts the selection with wrapping.
func (c *completionState) move(delta int) {
	if len(c.matches) == 0 {
		return
	}
	c.selected = (c.selected + delta + len(c.matches)) % len(c.matches)
}

func (c *completionState) close() {
	c.open = false
	c.matches = c.matches[:0]
	c.selected = 0
}

// selectedName returns the highlighted command name, or "".
func (c *completionState) selectedName() string {
	if !c.open || c.selected >= len(c.matches) {
		return ""
	}
	return c.matches[c.selected].Name
}

// rows reports how many dropdown lines the layout must reserve.
func (c *completionState) rows() int {
	if !c.open {
		return 0
	}
	if len(c.matches) > maxCompletionRows {
		return maxCompletionRows
	}
	return len(c.matches)
}

// view renders the dropdown with the viewport window kept around the
// selection.
func (c *completionState) view() string {
	if !c.open {
		return ""
	}

	start := 0
	if c.selected >= maxCompletionRows {
		start = c.selected - maxCompletionRows + 1
	}
	end := start + maxCompletionRows
	if end > len(c.matches) {
		end = len(c.matches)
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cmd := c.matches[i]
		line := fmt.Sprintf("  /%-8s %s", cmd.Name, cmd.Description)
		if i == c.selected {
			line = completionSelStyle.Render(line)
		} else {
			line = completionStyle.Render(line)
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}
