//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/raphi011/hk/internal/config"
	"github.com/raphi011/hk/internal/log"
	"github.com/raphi011/hk/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGitCommand runs a git command in dir, failing the test on error.
func runGitCommand(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
}

// setupTestRepo creates a git repo with an initial commit in dir/name.
// Returns the absolute path to the created repo (with symlinks resolved).
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)

	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0o755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCommand(t, repoPath, "git", "init")
	runGitCommand(t, repoPath, "git", "config", "user.email", "test@test.com")
	runGitCommand(t, repoPath, "git", "config", "user.name", "Test User")
	runGitCommand(t, repoPath, "git", "config", "commit.gpgsign", "false")

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}

	runGitCommand(t, repoPath, "git", "add", "README.md")
	runGitCommand(t, repoPath, "git", "commit", "-m", "Initial commit")

	return repoPath
}

// writeTestFile creates a hookable file under dir and returns its path.
func writeTestFile(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte("content of "+name+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// setupCommandEnv points the package-level command state at an isolated
// data dir and working directory. Tests using it must not run parallel.
func setupCommandEnv(t *testing.T, workIn string) string {
	t.Helper()

	dataDir := t.TempDir()
	t.Setenv("HK_DATA_DIR", dataDir)

	c := config.Default()
	cfg = &c
	workDir = workIn
	globalScope = false
	t.Cleanup(func() {
		cfg = nil
		workDir = ""
		globalScope = false
	})

	return dataDir
}

// testContext builds a command context with a quiet logger and the
// primary output captured in stdout.
func testContext(t *testing.T, stdout io.Writer) context.Context {
	t.Helper()

	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, true))
	if stdout == nil {
		stdout = &bytes.Buffer{}
	}
	ctx = output.WithPrinter(ctx, stdout)
	return ctx
}
