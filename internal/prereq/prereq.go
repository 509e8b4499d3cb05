// Package prereq verifies that the external tools a freshly scaffolded
// project depends on are resolvable before anything touches the filesystem.
package prereq

import (
	"errors"
	"os/exec"
)

// ErrMissingTools indicates one or more prerequisite binaries could not
// be resolved on PATH.
var ErrMissingTools = errors.New("missing prerequisite tools")

// DefaultTools are the binaries a scaffolded project needs right away:
// git for the local repository, node and npm for the generated
// server/client packages.
func DefaultTools() []string {
	return []string{"git", "node", "npm"}
}

// Checker resolves prerequisite binaries on the execution path.
type Checker struct {
	// LookPath resolves a binary name to a path. Defaults to
	// exec.LookPath; tests substitute a stub.
	LookPath func(file string) (string, error)

	tools []string
}

// NewChecker creates a checker for the given binary names.
func NewChecker(tools ...string) *Checker {
	return &Checker{
		LookPath: exec.LookPath,
		tools:    tools,
	}
}

// Missing returns the names of all configured tools that do not resolve.
// The full list is reported in one pass so the operator can fix
// everything at once.
func (c *Checker) Missing() []string {
	var missing []string
	for _, tool := range c.tools {
		if _, err := c.LookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}
	return missing
}

// Tools returns the configured tool names.
func (c *Checker) Tools() []string {
	return c.tools
}
