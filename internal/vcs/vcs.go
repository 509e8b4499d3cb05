// Package vcs provides the local version-control capability for the
// scaffolder. The orchestrator depends on the VersionControl interface;
// the production implementation is go-git, with a mock for tests.
package vcs

import (
	"context"
	"errors"
)

// ErrNoRepository indicates an operation was attempted before Init.
var ErrNoRepository = errors.New("repository not initialized")

// Signature identifies the author of the snapshot commit.
type Signature struct {
	Name  string
	Email string
}

// VersionControl covers the narrow slice of git the procedure needs:
// init, best-effort identity config, a single stage-all commit, remote
// wiring, and a push per candidate branch name.
type VersionControl interface {
	// Init creates a repository at path with the given default branch.
	Init(path, defaultBranch string) error

	// SetIdentityIfUnset writes user.name/user.email into the repository
	// config when no identity is configured yet. Callers treat failures
	// as non-fatal.
	SetIdentityIfUnset(sig Signature) error

	// CommitAll stages every change under the worktree and creates one
	// commit, returning its hash.
	CommitAll(message string, author Signature) (string, error)

	// EnsureRemote makes the named remote point at url, replacing any
	// existing remote of the same name.
	EnsureRemote(name, url string) error

	// Push pushes the given branch to the named remote.
	Push(ctx context.Context, remote, branch string) error
}
