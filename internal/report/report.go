// Package report renders the end-of-run summary and opens the remote
// repository in a local browser on request.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Data is everything the summary needs from a completed run.
type Data struct {
	ProjectName  string
	Owner        string
	RepoCreated  bool
	RemoteURL    string
	CommitHash   string
	FilesWritten int
}

// Render writes the styled run summary.
func Render(w io.Writer, data Data) {
	// LipGloss signature purple/pink palette
	var (
		headerColor = lipgloss.Color("#F780FF") // Bright pink/magenta
		labelColor  = lipgloss.Color("#BD93F9") // Purple
		valueColor  = lipgloss.Color("#E9E9F4") // Light purple/white
		accentColor = lipgloss.Color("#8BE9FD") // Cyan accent
	)

	headerStyle := lipgloss.NewStyle().
		Foreground(headerColor).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(labelColor).
		Width(14)

	valueStyle := lipgloss.NewStyle().
		Foreground(valueColor)

	urlStyle := lipgloss.NewStyle().
		Foreground(accentColor).
		Underline(true)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("✓ Project scaffold complete"))
	fmt.Fprintln(w)

	repoState := "created"
	if !data.RepoCreated {
		repoState = "existing (pushed into)"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Project", data.ProjectName},
		{"Owner", data.Owner},
		{"Files", fmt.Sprintf("%d templates written", data.FilesWritten)},
		{"Commit", shortHash(data.CommitHash)},
		{"Remote", repoState},
	}

	for _, row := range rows {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(row.label), valueStyle.Render(row.value))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, urlStyle.Render(data.RemoteURL))
	fmt.Fprintln(w)
}

// shortHash abbreviates a full commit hash for display.
func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

// Warn writes a styled non-fatal warning line.
func Warn(w io.Writer, format string, args ...interface{}) {
	warnStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFB86C")).
		Italic(true)

	fmt.Fprintln(w, warnStyle.Render("Warning: "+strings.TrimSpace(fmt.Sprintf(format, args...))))
}
