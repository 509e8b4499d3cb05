// Package config defines the fixed run configuration for the scaffolder.
// All variability lives here; the step functions never read ambient
// process state themselves.
package config

import "os"

// Visibility is the remote repository visibility setting.
type Visibility string

const (
	// Public makes the created repository visible to everyone.
	Public Visibility = "public"

	// Private restricts the created repository to the owner.
	Private Visibility = "private"
)

// Config holds everything a scaffolding run needs, resolved once at
// startup and threaded explicitly through each step.
type Config struct {
	// ProjectName is the root directory created in the working directory.
	ProjectName string

	// RepoName is the name of the remote repository to create.
	RepoName string

	// Description is the remote repository description.
	Description string

	// Visibility controls whether the remote repository is public or private.
	Visibility Visibility

	// DefaultBranch is the branch pushed first ("main").
	DefaultBranch string

	// LegacyBranch is the fallback branch name tried when pushing to
	// DefaultBranch fails ("master").
	LegacyBranch string

	// CommitMessage is the message used for the initial snapshot commit.
	CommitMessage string

	// Token is the GitHub personal access token, read from GITHUB_TOKEN.
	Token string
}

// Default returns the fixed configuration for the Quran Reels project,
// with the token resolved from the GITHUB_TOKEN environment variable.
func Default() Config {
	return Config{
		ProjectName:   "quran-reels-app",
		RepoName:      "quran-reels-generator",
		Description:   "Automated Quran reels video generation pipeline",
		Visibility:    Public,
		DefaultBranch: "main",
		LegacyBranch:  "master",
		CommitMessage: "Initial project scaffold",
		Token:         os.Getenv("GITHUB_TOKEN"),
	}
}

// IsPrivate reports whether the configured visibility is private.
func (c Config) IsPrivate() bool {
	return c.Visibility == Private
}
