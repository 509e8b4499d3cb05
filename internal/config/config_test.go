package config

import "testing"

func TestDefault(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "test-token")

	cfg := Default()

	if cfg.ProjectName != "quran-reels-app" {
		t.Errorf("Expected project name quran-reels-app, got %s", cfg.ProjectName)
	}
	if cfg.RepoName != "quran-reels-generator" {
		t.Errorf("Expected repo name quran-reels-generator, got %s", cfg.RepoName)
	}
	if cfg.Visibility != Public {
		t.Errorf("Expected public visibility, got %s", cfg.Visibility)
	}
	if cfg.DefaultBranch != "main" || cfg.LegacyBranch != "master" {
		t.Errorf("Expected main/master branch pair, got %s/%s", cfg.DefaultBranch, cfg.LegacyBranch)
	}
	if cfg.CommitMessage == "" {
		t.Error("Expected a non-empty commit message")
	}
	if cfg.Token != "test-token" {
		t.Errorf("Expected token from GITHUB_TOKEN, got %q", cfg.Token)
	}
}

func TestIsPrivate(t *testing.T) {
	cfg := Config{Visibility: Public}
	if cfg.IsPrivate() {
		t.Error("Expected public config not to be private")
	}

	cfg.Visibility = Private
	if !cfg.IsPrivate() {
		t.Error("Expected private config to be private")
	}
}
