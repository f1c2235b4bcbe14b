//go:build integration

package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestVerbose_EchoesGitCommands verifies that -v enables the command echo
// for the git subprocess resolving the context. The logger must be built
// after flag parsing or the flag has no effect.
func TestVerbose_EchoesGitCommands(t *testing.T) {
	// Not parallel - modifies package state

	tmpDir := t.TempDir()
	repoPath := setupTestRepo(t, tmpDir, "myrepo")
	setupCommandEnv(t, repoPath)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetContext(testContext(t, &stdout))
	rootCmd.SetArgs([]string{"-v", "list"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		verbose = false
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("hk -v list failed: %v", err)
	}

	if !strings.Contains(stderr.String(), "git rev-parse --show-toplevel") {
		t.Errorf("verbose run did not echo the git command, stderr = %q", stderr.String())
	}
}

// TestQuiet_SuppressesDiagnostics verifies -q silences logger output while
// primary data still reaches stdout.
func TestQuiet_SuppressesDiagnostics(t *testing.T) {
	// Not parallel - modifies package state

	tmpDir := t.TempDir()
	repoPath := setupTestRepo(t, tmpDir, "myrepo")
	file := writeTestFile(t, repoPath, "a.go")

	setupCommandEnv(t, repoPath)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetContext(testContext(t, &stdout))
	rootCmd.SetArgs([]string{"-q", "add", file})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		quiet = false
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("hk -q add failed: %v", err)
	}

	if stderr.Len() != 0 {
		t.Errorf("quiet run wrote diagnostics: %q", stderr.String())
	}
}
