package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/hk/internal/config"
	"github.com/raphi011/hk/internal/gitctx"
	"github.com/raphi011/hk/internal/log"
	"github.com/raphi011/hk/internal/output"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	globalScope bool

	// Shared state injected into commands
	cfg     *config.Config
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hk",
	Short: "Keep a small ordered list of file bookmarks per repository",
	Long: `hk maintains a short ordered list of file bookmarks ("hooks") per git
repository, with a global fallback list outside of repositories.

Add the handful of files you keep returning to, then get back to them by
position: hk jump 2, hk next, hk prev. The list is meant to stay small
enough that positions live in muscle memory.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now, so this is the earliest point the
		// logger they configure can exist.
		logger := log.New(cmd.ErrOrStderr(), verbose, quiet)
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))

		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// --global never touches git, so a missing binary is fine there
		if globalScope {
			return nil
		}
		return gitctx.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Get working directory
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hk: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The logger is attached in PersistentPreRunE, once flags are parsed.

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'hk -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().BoolVarP(&globalScope, "global", "g", false, "Use the global list, ignoring any enclosing repository")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newJumpCmd())
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newPrevCmd())
	rootCmd.AddCommand(newMvCmd())
	rootCmd.AddCommand(newEditCmd())

	// Utility commands
	rootCmd.AddCommand(newPickCmd())
	rootCmd.AddCommand(newClearCmd())
	rootCmd.AddCommand(newHookCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
