//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/hk/internal/config"
)

func TestChangeHook_FiresOnAdd(t *testing.T) {
	// Not parallel - modifies package state

	tmpDir := t.TempDir()
	repoPath := setupTestRepo(t, tmpDir, "myrepo")
	file := writeTestFile(t, repoPath, "a.go")

	setupCommandEnv(t, repoPath)

	marker := filepath.Join(t.TempDir(), "change-marker")
	cfg.Hooks = config.HooksConfig{Hooks: map[string]config.Hook{
		"mark": {
			Command: "echo {context} > " + marker,
			On:      []string{"change"},
		},
	}}

	cmd := newAddCmd()
	cmd.SetContext(testContext(t, nil))
	cmd.SetArgs([]string{file})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("change hook did not run: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != repoPath {
		t.Errorf("hook saw context %q, want %q", got, repoPath)
	}
}

func TestJumpHook_ReceivesPath(t *testing.T) {
	// Not parallel - modifies package state

	tmpDir := t.TempDir()
	repoPath := setupTestRepo(t, tmpDir, "myrepo")
	file := writeTestFile(t, repoPath, "a.go")

	setupCommandEnv(t, repoPath)
	addFiles(t, file)

	marker := filepath.Join(t.TempDir(), "jump-marker")
	cfg.Hooks = config.HooksConfig{Hooks: map[string]config.Hook{
		"mark": {
			Command: "echo {trigger} {path} > " + marker,
			On:      []string{"jump"},
		},
	}}

	if got := jumpOutput(t, "1"); got != file {
		t.Fatalf("jump printed %q, want %q", got, file)
	}

	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("jump hook did not run: %v", err)
	}
	got := strings.TrimSpace(string(data))
	if got != "jump "+file {
		t.Errorf("hook output = %q, want %q", got, "jump "+file)
	}
}

func TestNoHook_SuppressesJumpHooks(t *testing.T) {
	// Not parallel - modifies package state

	tmpDir := t.TempDir()
	repoPath := setupTestRepo(t, tmpDir, "myrepo")
	file := writeTestFile(t, repoPath, "a.go")

	setupCommandEnv(t, repoPath)
	addFiles(t, file)

	marker := filepath.Join(t.TempDir(), "marker")
	cfg.Hooks = config.HooksConfig{Hooks: map[string]config.Hook{
		"mark": {
			Command: "touch " + marker,
			On:      []string{"jump"},
		},
	}}

	cmd := newJumpCmd()
	cmd.SetContext(testContext(t, nil))
	cmd.SetArgs([]string{"1", "--no-hook"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("jump --no-hook failed: %v", err)
	}

	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Error("jump hook ran despite --no-hook")
	}
}

func TestHook_RunsNamedHook(t *testing.T) {
	// Not parallel - modifies package state

	tmpDir := t.TempDir()
	repoPath := setupTestRepo(t, tmpDir, "myrepo")
	file := writeTestFile(t, repoPath, "a.go")

	setupCommandEnv(t, repoPath)

	marker := filepath.Join(t.TempDir(), "marker")
	cfg.Hooks = config.HooksConfig{Hooks: map[string]config.Hook{
		"mark": {
			Command: "echo {path} {mode:-normal} > " + marker,
		},
	}}

	cmd := newHookCmd()
	cmd.SetContext(testContext(t, nil))
	cmd.SetArgs([]string{"mark", "-a", "mode=split", "--", file})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("hook failed: %v", err)
	}

	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("hook did not run: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != file+" split" {
		t.Errorf("hook output = %q, want %q", got, file+" split")
	}
}

func TestHook_UnknownName(t *testing.T) {
	// Not parallel - modifies package state

	tmpDir := t.TempDir()
	repoPath := setupTestRepo(t, tmpDir, "myrepo")

	setupCommandEnv(t, repoPath)
	cfg.Hooks = config.HooksConfig{Hooks: map[string]config.Hook{
		"mark": {Command: "true"},
	}}

	cmd := newHookCmd()
	cmd.SetContext(testContext(t, nil))
	cmd.SetArgs([]string{"nope"})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "unknown hook") {
		t.Fatalf("expected unknown hook error, got %v", err)
	}
}
