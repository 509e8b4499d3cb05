package vcs

import (
	"os"
	"path/filepath"
	"testing"
)

func initTestRepo(t *testing.T) (*GoGit, string) {
	t.Helper()
	dir := t.TempDir()

	g := NewGoGit("")
	if err := g.Init(dir, "main"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return g, dir
}

func TestInit_CreatesRepository(t *testing.T) {
	_, dir := initTestRepo(t)

	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		t.Errorf("Expected .git directory after Init: %v", err)
	}
}

func TestCommitAll_CreatesCommitAndCleanWorktree(t *testing.T) {
	g, dir := initTestRepo(t)

	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Test\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	hash, err := g.CommitAll("Initial project scaffold", Signature{Name: "Tester", Email: "tester@example.com"})
	if err != nil {
		t.Fatalf("CommitAll failed: %v", err)
	}
	if len(hash) != 40 {
		t.Errorf("Expected 40-char commit hash, got %q", hash)
	}

	clean, err := g.IsClean()
	if err != nil {
		t.Fatalf("IsClean failed: %v", err)
	}
	if !clean {
		t.Error("Expected clean worktree after CommitAll")
	}
}

func TestCommitAll_StagesUntrackedFilesInSubdirs(t *testing.T) {
	g, dir := initTestRepo(t)

	if err := os.MkdirAll(filepath.Join(dir, "server", "src"), 0755); err != nil {
		t.Fatalf("Failed to create dirs: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "server", "src", "index.ts"), []byte("export {};\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := g.CommitAll("snapshot", Signature{Name: "Tester", Email: "tester@example.com"}); err != nil {
		t.Fatalf("CommitAll failed: %v", err)
	}

	clean, err := g.IsClean()
	if err != nil {
		t.Fatalf("IsClean failed: %v", err)
	}
	if !clean {
		t.Error("Expected nested untracked files to be committed")
	}
}

func TestSetIdentityIfUnset(t *testing.T) {
	g, _ := initTestRepo(t)

	sig := Signature{Name: "reeluser", Email: "reeluser@users.noreply.github.com"}
	if err := g.SetIdentityIfUnset(sig); err != nil {
		t.Fatalf("SetIdentityIfUnset failed: %v", err)
	}

	cfg, err := g.repo.Config()
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if cfg.User.Name != "reeluser" {
		t.Errorf("Expected user.name reeluser, got %q", cfg.User.Name)
	}

	// A second call must not clobber the existing identity.
	if err := g.SetIdentityIfUnset(Signature{Name: "other", Email: "other@example.com"}); err != nil {
		t.Fatalf("SetIdentityIfUnset failed: %v", err)
	}
	cfg, err = g.repo.Config()
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if cfg.User.Name != "reeluser" {
		t.Errorf("Expected identity preserved, got %q", cfg.User.Name)
	}
}

func TestEnsureRemote_ReplacesExisting(t *testing.T) {
	g, _ := initTestRepo(t)

	if err := g.EnsureRemote("origin", "https://github.com/user/old.git"); err != nil {
		t.Fatalf("EnsureRemote failed: %v", err)
	}
	if err := g.EnsureRemote("origin", "https://github.com/user/new.git"); err != nil {
		t.Fatalf("EnsureRemote (replace) failed: %v", err)
	}

	remote, err := g.repo.Remote("origin")
	if err != nil {
		t.Fatalf("Failed to get remote: %v", err)
	}
	urls := remote.Config().URLs
	if len(urls) != 1 || urls[0] != "https://github.com/user/new.git" {
		t.Errorf("Expected replaced remote URL, got %v", urls)
	}
}

func TestOperationsBeforeInit(t *testing.T) {
	g := NewGoGit("")

	if err := g.SetIdentityIfUnset(Signature{}); err != ErrNoRepository {
		t.Errorf("Expected ErrNoRepository from SetIdentityIfUnset, got %v", err)
	}
	if _, err := g.CommitAll("msg", Signature{}); err != ErrNoRepository {
		t.Errorf("Expected ErrNoRepository from CommitAll, got %v", err)
	}
	if err := g.EnsureRemote("origin", "url"); err != ErrNoRepository {
		t.Errorf("Expected ErrNoRepository from EnsureRemote, got %v", err)
	}
}
