// Package prompt provides the interactive yes/no confirmation capability.
// The orchestrator depends only on the Confirmer interface, so runs can
// be driven non-interactively by substituting a fixed-answer implementation.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirmer asks the operator a yes/no question.
// Implementations must block until an answer is available.
type Confirmer interface {
	// Confirm asks the question and returns true for an affirmative answer.
	Confirm(question string) (bool, error)
}

// TerminalConfirmer reads answers line by line from an input stream,
// typically stdin.
type TerminalConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewTerminalConfirmer creates a confirmer reading from in and writing
// the styled question to out.
func NewTerminalConfirmer(in io.Reader, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

var questionStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#F780FF")).
	Bold(true)

// Confirm prints the question with a [y/N] suffix and reads one line.
// Only "y" and "yes" (case-insensitive) count as affirmative; anything
// else, including an empty line, is a refusal.
func (c *TerminalConfirmer) Confirm(question string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/N] ", questionStyle.Render(question))

	line, err := c.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
