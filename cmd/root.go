package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v6/osfs"
	"github.com/joho/godotenv"
	"github.com/quran-reels/reelscaffold/internal/config"
	"github.com/quran-reels/reelscaffold/internal/host"
	"github.com/quran-reels/reelscaffold/internal/orchestrator"
	"github.com/quran-reels/reelscaffold/internal/prereq"
	"github.com/quran-reels/reelscaffold/internal/prompt"
	"github.com/quran-reels/reelscaffold/internal/vcs"
	"github.com/spf13/cobra"
)

var (
	assumeYes bool
	noBrowser bool
)

var rootCmd = &cobra.Command{
	Use:   "reelscaffold",
	Short: "Scaffold and publish the Quran Reels project skeleton",
	Long: `Reelscaffold turns an empty working directory into a populated,
version-controlled, remotely-published project skeleton for the
Quran Reels video-generation app.

It checks prerequisites (git, node, npm), verifies GitHub
authentication, creates the server/client/docs tree with its
template files, commits the scaffold, creates the remote repository
and pushes.

Required environment variables:
  GITHUB_TOKEN - personal access token with repo scope

Examples:
  reelscaffold
  reelscaffold --yes --no-browser`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScaffold,
}

func init() {
	rootCmd.Flags().BoolVar(&assumeYes, "yes", false, "Answer yes to every confirmation prompt (destructive overwrites included)")
	rootCmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Do not offer to open the repository in a browser")
}

func runScaffold(cmd *cobra.Command, args []string) error {
	cfg := config.Default()

	var confirmer prompt.Confirmer
	if assumeYes {
		confirmer = prompt.NewFixedConfirmer(true)
	} else {
		confirmer = prompt.NewTerminalConfirmer(os.Stdin, os.Stdout)
	}

	runner := &orchestrator.Runner{
		Config:      cfg,
		Fs:          osfs.New("."),
		Prereqs:     prereq.NewChecker(prereq.DefaultTools()...),
		Host:        host.NewGitHub(cfg.Token),
		VCS:         vcs.NewGoGit(cfg.Token),
		Confirm:     confirmer,
		Out:         os.Stdout,
		SkipBrowser: noBrowser,
	}

	_, err := runner.Run(cmd.Context())
	return err
}

// Execute runs the root command and maps run outcomes to exit codes:
// 0 on success, 2 on operator cancellation, 1 on any other failure.
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, orchestrator.ErrCancelled) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
