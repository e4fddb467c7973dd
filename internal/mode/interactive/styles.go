// ABOUTME: Lipgloss styles for the chat TUI
// ABOUTME: Standard ANSI colors so the user's terminal theme stays in charge

package interactive

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.ANSIColor(14) // bright cyan
	userColor   = lipgloss.ANSIColor(12) // bright blue
	warnColor   = lipgloss.ANSIColor(11) // bright yellow
	errColor    = lipgloss.ANSIColor(9)  // bright red
	dimColor    = lipgloss.ANSIColor(8)  // bright black (gray)

	// userStyle marks the echoed user line in the transcript.
	userStyle = lipgloss.NewStyle().
			Foreground(userColor).
			Bold(true)

	// guidanceStyle is for corrective guidance from the dispatcher.
	guidanceStyle = lipgloss.NewStyle().
			Foreground(warnColor)

	// errorStyle is for failed turns.
	errorStyle = lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true)

	// infoStyle is for the welcome block and cancellation notices.
	infoStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Italic(true)

	// helpStyle renders the bottom key hint line.
	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	// spinnerStyle colors the in-flight turn indicator.
	spinnerStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	// completionStyle and completionSelStyle render the slash dropdown.
	completionStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	completionSelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.ANSIColor(15)).
				Background(lipgloss.ANSIColor(4))
)
