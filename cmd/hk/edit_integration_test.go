//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setFakeEditor installs a shell script as $EDITOR. The script receives
// the bulk edit temp file as $1.
func setFakeEditor(t *testing.T, script string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fake-editor.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("write fake editor: %v", err)
	}
	t.Setenv("EDITOR", path)
}

func TestEdit_ReorderAndRemove(t *testing.T) {
	// Not parallel - modifies package state

	tmpDir := t.TempDir()
	repoPath := setupTestRepo(t, tmpDir, "myrepo")
	a := writeTestFile(t, repoPath, "a.go")
	b := writeTestFile(t, repoPath, "b.go")
	c := writeTestFile(t, repoPath, "c.go")

	dataDir := setupCommandEnv(t, repoPath)
	addFiles(t, a, b, c)

	// keep c and a, drop b; bracket numbers are stale on purpose
	setFakeEditor(t, `printf '[9] = `+c+`\n[1] = `+a+`\n' > "$1"`)

	cmd := newEditCmd()
	cmd.SetContext(testContext(t, nil))
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	got := readStoredPaths(t, dataDir, repoPath)
	if len(got) != 2 || got[0] != c || got[1] != a {
		t.Errorf("stored paths = %v, want [%s %s]", got, c, a)
	}
}

func TestEdit_AddLine(t *testing.T) {
	// Not parallel - modifies package state

	tmpDir := t.TempDir()
	repoPath := setupTestRepo(t, tmpDir, "myrepo")
	a := writeTestFile(t, repoPath, "a.go")
	d := writeTestFile(t, repoPath, "d.go")

	dataDir := setupCommandEnv(t, repoPath)
	addFiles(t, a)

	setFakeEditor(t, `printf '[2] = `+d+`\n' >> "$1"`)

	cmd := newEditCmd()
	cmd.SetContext(testContext(t, nil))
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	got := readStoredPaths(t, dataDir, repoPath)
	if len(got) != 2 || got[0] != a || got[1] != d {
		t.Errorf("stored paths = %v, want [%s %s]", got, a, d)
	}
}

func TestEdit_InvalidLineRejectsWholeEdit(t *testing.T) {
	// Not parallel - modifies package state

	tmpDir := t.TempDir()
	repoPath := setupTestRepo(t, tmpDir, "myrepo")
	a := writeTestFile(t, repoPath, "a.go")

	dataDir := setupCommandEnv(t, repoPath)
	addFiles(t, a)

	// second line names a missing file; stdin is not a TTY in tests so
	// there is no re-edit offer
	setFakeEditor(t, `printf '[1] = `+a+`\n[2] = /does/not/exist.go\n' > "$1"`)

	cmd := newEditCmd()
	cmd.SetContext(testContext(t, nil))
	cmd.SetArgs(nil)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected edit with invalid line to fail")
	}
	if !strings.Contains(err.Error(), "invalid line") {
		t.Errorf("error = %v, want invalid line report", err)
	}

	// list unchanged
	got := readStoredPaths(t, dataDir, repoPath)
	if len(got) != 1 || got[0] != a {
		t.Errorf("stored paths = %v, want unchanged [%s]", got, a)
	}
}

func TestEdit_ClearAllLines(t *testing.T) {
	// Not parallel - modifies package state

	tmpDir := t.TempDir()
	repoPath := setupTestRepo(t, tmpDir, "myrepo")
	a := writeTestFile(t, repoPath, "a.go")

	dataDir := setupCommandEnv(t, repoPath)
	addFiles(t, a)

	setFakeEditor(t, `: > "$1"`)

	cmd := newEditCmd()
	cmd.SetContext(testContext(t, nil))
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	if got := readStoredPaths(t, dataDir, repoPath); len(got) != 0 {
		t.Errorf("stored paths = %v, want empty", got)
	}
}
