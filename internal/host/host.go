// Package host provides the remote Git-hosting capability: verifying
// the authenticated session, resolving the operator's identity, and
// creating the remote repository. The production implementation talks
// to the GitHub API; a mock covers orchestration tests.
package host

import (
	"context"
	"errors"
)

var (
	// ErrNoToken indicates no access token is available, so no session
	// can be established.
	ErrNoToken = errors.New("no access token configured")

	// ErrRepoExists indicates a repository with the requested name
	// already exists for the authenticated identity.
	ErrRepoExists = errors.New("repository already exists")
)

// Identity is the authenticated account the run operates as.
type Identity struct {
	// Login is the account handle; it is also the repository owner.
	Login string

	// Name is the display name, falling back to Login when unset.
	Name string

	// Email is the public email, falling back to the hosting service's
	// noreply address when unset.
	Email string
}

// Repository describes a remote repository.
type Repository struct {
	Owner    string
	Name     string
	CloneURL string
	HTMLURL  string
}

// RemoteHost defines the hosting-service operations the procedure needs.
type RemoteHost interface {
	// EnsureAuthenticated verifies the session and resolves the
	// authenticated identity. A missing or rejected token is fatal to
	// the run.
	EnsureAuthenticated(ctx context.Context) (*Identity, error)

	// CreateRepository creates a repository under the authenticated
	// identity. Returns ErrRepoExists when the name is taken.
	CreateRepository(ctx context.Context, name, description string, private bool) (*Repository, error)

	// GetRepository fetches an existing repository, used by the
	// fallback push path after ErrRepoExists.
	GetRepository(ctx context.Context, owner, name string) (*Repository, error)
}
