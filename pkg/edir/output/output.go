// Package output holds the terminal styling and small rendering helpers
// shared by the CLI: prefixed warning/error lines, the end-of-run
// summary, and the history table.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color constants using the ANSI 256-color palette.
const (
	// ColorSuccess is used for positive status indicators (green).
	ColorSuccess = lipgloss.Color("42")

	// ColorWarning is used for warning messages (orange/yellow).
	ColorWarning = lipgloss.Color("214")

	// ColorDanger is used for errors (red).
	ColorDanger = lipgloss.Color("196")

	// ColorMuted is used for secondary text (gray).
	ColorMuted = lipgloss.Color("245")
)

var (
	errorPrefix   = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true).Render("error:")
	warningPrefix = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true).Render("warning:")

	// SummaryStyle renders the end-of-run summary line.
	SummaryStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	// MutedStyle renders secondary information such as dry-run notes.
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Errorf writes a styled error line.
func Errorf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", errorPrefix, fmt.Sprintf(format, args...))
}

// Warnf writes a styled warning line. Warnings never affect the exit
// code.
func Warnf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", warningPrefix, fmt.Sprintf(format, args...))
}

// Summary renders the one-line result of a run.
func Summary(renamed, deleted, kept, skipped, failed int, dryRun bool) string {
	s := fmt.Sprintf("%d renamed, %d deleted, %d kept, %d skipped", renamed, deleted, kept, skipped)
	if failed > 0 {
		s += fmt.Sprintf(", %d failed", failed)
	}
	if dryRun {
		return MutedStyle.Render(s + " (dry run)")
	}
	if failed > 0 {
		return lipgloss.NewStyle().Foreground(ColorDanger).Render(s)
	}
	return SummaryStyle.Render(s)
}
