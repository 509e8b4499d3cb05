// Package orchestrator runs the scaffolding procedure: prerequisite
// checks, authentication, directory provisioning, template emission,
// the snapshot commit, publishing, and the final report. Each step
// either succeeds and falls through to the next or aborts the run.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-git/go-billy/v6"
	"github.com/quran-reels/reelscaffold/internal/config"
	"github.com/quran-reels/reelscaffold/internal/host"
	"github.com/quran-reels/reelscaffold/internal/prereq"
	"github.com/quran-reels/reelscaffold/internal/prompt"
	"github.com/quran-reels/reelscaffold/internal/report"
	"github.com/quran-reels/reelscaffold/internal/scaffold"
	"github.com/quran-reels/reelscaffold/internal/vcs"
)

var (
	// ErrMissingPrerequisites indicates required tools are absent.
	ErrMissingPrerequisites = errors.New("missing prerequisites")

	// ErrCancelled indicates the operator declined a confirmation gate.
	// It is an intentional cancellation, not a defect.
	ErrCancelled = errors.New("cancelled by operator")
)

// Result summarizes a completed run.
type Result struct {
	Identity     *host.Identity
	Repo         *host.Repository
	RepoCreated  bool
	CommitHash   string
	FilesWritten int
}

// Runner holds the configuration and the capabilities the procedure
// needs. Every external effect goes through one of the injected
// interfaces so the whole run is testable without network or disk.
type Runner struct {
	Config  config.Config
	Fs      billy.Filesystem
	Prereqs *prereq.Checker
	Host    host.RemoteHost
	VCS     vcs.VersionControl
	Confirm prompt.Confirmer

	// Out receives progress and the final summary. Defaults to stdout.
	Out io.Writer

	// OpenBrowser opens a URL. Defaults to report.OpenBrowser.
	OpenBrowser func(url string) error

	// SkipBrowser suppresses the open-in-browser prompt entirely.
	SkipBrowser bool
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

// Run executes the full procedure. Nothing on the filesystem is touched
// until prerequisites and authentication have both passed.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled before run: %w", err)
	}

	// Step 1: prerequisite binaries.
	if missing := r.Prereqs.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingPrerequisites, strings.Join(missing, ", "))
	}

	// Step 2: authentication and identity resolution.
	identity, err := r.Host.EnsureAuthenticated(ctx)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled after authentication: %w", err)
	}

	// Step 3: directory provisioning, gated when the root pre-exists.
	layout := scaffold.DefaultLayout(r.Config.ProjectName)
	if err := r.provision(layout); err != nil {
		return nil, err
	}

	// Step 4: version-control init with best-effort identity config.
	sig := vcs.Signature{Name: identity.Name, Email: identity.Email}
	if err := r.VCS.Init(layout.Root, r.Config.DefaultBranch); err != nil {
		return nil, fmt.Errorf("failed to initialize repository: %w", err)
	}
	if err := r.VCS.SetIdentityIfUnset(sig); err != nil {
		// Identity config is cosmetic here; the commit carries an
		// explicit author either way.
		report.Warn(r.out(), "failed to configure identity: %v", err)
	}

	// Step 5: template emission.
	filesWritten, err := scaffold.WriteFiles(r.Fs, layout)
	if err != nil {
		return nil, fmt.Errorf("failed to write templates: %w", err)
	}

	// Step 6: snapshot commit.
	hash, err := r.VCS.CommitAll(r.Config.CommitMessage, sig)
	if err != nil {
		return nil, fmt.Errorf("failed to commit scaffold: %w", err)
	}

	// Step 7: publish.
	repo, created, err := r.publish(ctx, identity)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Identity:     identity,
		Repo:         repo,
		RepoCreated:  created,
		CommitHash:   hash,
		FilesWritten: filesWritten,
	}

	// Step 8: report.
	r.report(result)

	return result, nil
}

// provision creates the project tree, asking before destroying a
// pre-existing root. Declining aborts the run with ErrCancelled.
func (r *Runner) provision(layout scaffold.Layout) error {
	exists, err := scaffold.RootExists(r.Fs, layout)
	if err != nil {
		return err
	}

	if exists {
		question := fmt.Sprintf("Directory %s already exists. Delete and recreate it?", layout.Root)
		ok, err := r.Confirm.Confirm(question)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: %s left untouched", ErrCancelled, layout.Root)
		}
		if err := scaffold.Remove(r.Fs, layout); err != nil {
			return err
		}
	}

	return scaffold.CreateTree(r.Fs, layout)
}

// publish creates the remote repository and pushes. When the name is
// already taken the run falls back to pushing into the existing
// repository, trying the default branch and then the legacy one; the
// last push error propagates untranslated.
func (r *Runner) publish(ctx context.Context, identity *host.Identity) (*host.Repository, bool, error) {
	created := true
	repo, err := r.Host.CreateRepository(ctx, r.Config.RepoName, r.Config.Description, r.Config.IsPrivate())
	if errors.Is(err, host.ErrRepoExists) {
		report.Warn(r.out(), "repository %s already exists, pushing into it", r.Config.RepoName)
		created = false
		repo, err = r.Host.GetRepository(ctx, identity.Login, r.Config.RepoName)
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve remote repository: %w", err)
	}

	if err := r.VCS.EnsureRemote("origin", repo.CloneURL); err != nil {
		return nil, false, err
	}

	branches := []string{r.Config.DefaultBranch}
	if !created {
		branches = append(branches, r.Config.LegacyBranch)
	}

	var pushErr error
	for _, branch := range branches {
		pushErr = r.VCS.Push(ctx, "origin", branch)
		if pushErr == nil {
			break
		}
	}
	if pushErr != nil {
		return nil, false, pushErr
	}

	return repo, created, nil
}

// report renders the summary and offers to open the remote URL.
func (r *Runner) report(result *Result) {
	report.Render(r.out(), report.Data{
		ProjectName:  r.Config.ProjectName,
		Owner:        result.Identity.Login,
		RepoCreated:  result.RepoCreated,
		RemoteURL:    result.Repo.HTMLURL,
		CommitHash:   result.CommitHash,
		FilesWritten: result.FilesWritten,
	})

	if r.SkipBrowser {
		return
	}

	ok, err := r.Confirm.Confirm("Open the repository in your browser?")
	if err != nil || !ok {
		return
	}

	open := r.OpenBrowser
	if open == nil {
		open = report.OpenBrowser
	}
	if err := open(result.Repo.HTMLURL); err != nil {
		report.Warn(r.out(), "%v", err)
	}
}
