package vcs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v6"
	gitconfig "github.com/go-git/go-git/v6/config"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/plumbing/transport"
	githttp "github.com/go-git/go-git/v6/plumbing/transport/http"
)

// GoGit implements VersionControl with go-git, so no git binary is
// invoked for any repository operation.
type GoGit struct {
	repo *git.Repository
	auth transport.AuthMethod
}

// NewGoGit creates a go-git backed VersionControl. The token, when
// non-empty, authenticates pushes over HTTPS.
func NewGoGit(token string) *GoGit {
	g := &GoGit{}
	if token != "" {
		// GitHub accepts any username when a token is supplied.
		g.auth = &githttp.BasicAuth{Username: "git", Password: token}
	}
	return g
}

// Init creates a non-bare repository at path with the given default branch.
func (g *GoGit) Init(path, defaultBranch string) error {
	repo, err := git.PlainInit(path, false,
		git.WithDefaultBranch(plumbing.NewBranchReferenceName(defaultBranch)))
	if err != nil {
		return fmt.Errorf("failed to init repository at %s: %w", path, err)
	}
	g.repo = repo
	return nil
}

// SetIdentityIfUnset writes the signature into the repository config
// when no user identity is configured there yet.
func (g *GoGit) SetIdentityIfUnset(sig Signature) error {
	if g.repo == nil {
		return ErrNoRepository
	}

	cfg, err := g.repo.Config()
	if err != nil {
		return fmt.Errorf("failed to read repository config: %w", err)
	}
	if cfg.User.Name != "" {
		return nil
	}

	cfg.User.Name = sig.Name
	cfg.User.Email = sig.Email
	if err := g.repo.SetConfig(cfg); err != nil {
		return fmt.Errorf("failed to write repository config: %w", err)
	}
	return nil
}

// CommitAll stages all changes in the worktree and creates a single
// commit authored by sig, returning the commit hash.
func (g *GoGit) CommitAll(message string, author Signature) (string, error) {
	if g.repo == nil {
		return "", ErrNoRepository
	}

	wt, err := g.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return "", fmt.Errorf("failed to stage files: %w", err)
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  author.Name,
			Email: author.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}

	return hash.String(), nil
}

// EnsureRemote points the named remote at url, replacing any existing
// remote of the same name so the URL is authoritative.
func (g *GoGit) EnsureRemote(name, url string) error {
	if g.repo == nil {
		return ErrNoRepository
	}

	_, err := g.repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: name,
		URLs: []string{url},
	})
	if errors.Is(err, git.ErrRemoteExists) {
		if err := g.repo.DeleteRemote(name); err != nil {
			return fmt.Errorf("failed to replace remote %s: %w", name, err)
		}
		_, err = g.repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: name,
			URLs: []string{url},
		})
	}
	if err != nil {
		return fmt.Errorf("failed to create remote %s: %w", name, err)
	}
	return nil
}

// Push pushes the branch to the named remote. An already-up-to-date
// remote counts as success.
func (g *GoGit) Push(ctx context.Context, remote, branch string) error {
	if g.repo == nil {
		return ErrNoRepository
	}

	refSpec := gitconfig.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))
	err := g.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remote,
		RefSpecs:   []gitconfig.RefSpec{refSpec},
		Auth:       g.auth,
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}
	return nil
}

// IsClean reports whether the worktree has no staged or untracked changes.
func (g *GoGit) IsClean() (bool, error) {
	if g.repo == nil {
		return false, ErrNoRepository
	}

	wt, err := g.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get status: %w", err)
	}
	return status.IsClean(), nil
}
