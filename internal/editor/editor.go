// Package editor launches the user's text editor on a file and supports
// the temp-file round trip behind `hk edit`.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned when neither the config nor $EDITOR name an editor.
var ErrNoEditor = errors.New("no editor configured: set editor in config or the EDITOR environment variable")

// Open runs editorCmd on file with the terminal attached, blocking until
// the editor exits. editorCmd may contain arguments ("code --wait"); the
// file path is appended shell-quoted.
func Open(ctx context.Context, editorCmd, file string) error {
	if editorCmd == "" {
		return ErrNoEditor
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", editorCmd+" "+shellQuote(file))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", editorCmd, err)
	}
	return nil
}

// Session is a temp file holding editable lines. The same file is reused
// across Edit calls, so a failed validation round trip keeps the user's
// changes in place for the next attempt.
type Session struct {
	Path string
}

// NewSession writes lines to a fresh temp file.
func NewSession(lines []string) (*Session, error) {
	f, err := os.CreateTemp("", "hk-edit-*.txt")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, err
	}

	return &Session{Path: f.Name()}, nil
}

// Edit opens the session file in editorCmd and returns its lines after
// the editor exits. A trailing final newline does not produce an empty
// last line.
func (s *Session) Edit(ctx context.Context, editorCmd string) ([]string, error) {
	if err := Open(ctx, editorCmd, s.Path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read temp file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// Remove deletes the session file.
func (s *Session) Remove() error {
	return os.Remove(s.Path)
}

// shellQuote wraps s in single quotes for safe interpolation into sh -c.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
