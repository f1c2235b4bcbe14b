package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.DataDir != "" {
		t.Errorf("expected empty data_dir, got %q", cfg.DataDir)
	}
	if cfg.Hooks.Hooks == nil {
		t.Error("expected initialized hooks map")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := loadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("loadFrom missing file should not error, got %v", err)
	}
	if cfg.DataDir != "" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `data_dir = [broken`)

	if _, err := loadFrom(path); err == nil {
		t.Error("expected parse error for invalid TOML")
	}
}

func TestLoadFromFull(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
data_dir = "/var/data/hk"
editor = "nvim"

[hooks.refresh]
command = "tmux refresh-client -S"
description = "Refresh tmux"
on = ["change"]

[hooks.open]
command = "code {path}"
on = ["jump", "all"]
`)

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() failed: %v", err)
	}

	if cfg.DataDir != "/var/data/hk" {
		t.Errorf("data_dir = %q, want /var/data/hk", cfg.DataDir)
	}
	if cfg.Editor != "nvim" {
		t.Errorf("editor = %q, want nvim", cfg.Editor)
	}

	refresh, ok := cfg.Hooks.Hooks["refresh"]
	if !ok {
		t.Fatal("missing hooks.refresh")
	}
	if refresh.Command != "tmux refresh-client -S" {
		t.Errorf("refresh.command = %q", refresh.Command)
	}
	if refresh.Description != "Refresh tmux" {
		t.Errorf("refresh.description = %q", refresh.Description)
	}
	if len(refresh.On) != 1 || refresh.On[0] != "change" {
		t.Errorf("refresh.on = %v, want [change]", refresh.On)
	}

	open, ok := cfg.Hooks.Hooks["open"]
	if !ok {
		t.Fatal("missing hooks.open")
	}
	if len(open.On) != 2 {
		t.Errorf("open.on = %v, want two events", open.On)
	}
}

func TestLoadFromRelativeDataDirRejected(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `data_dir = "./relative"`)

	if _, err := loadFrom(path); err == nil {
		t.Error("expected error for relative data_dir")
	}
}

func TestLoadFromExpandsTilde(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `data_dir = "~/hooks"`)

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() failed: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() failed: %v", err)
	}
	if want := filepath.Join(home, "hooks"); cfg.DataDir != want {
		t.Errorf("data_dir = %q, want %q", cfg.DataDir, want)
	}
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"", false},
		{"~", false},
		{"~/data", false},
		{"/absolute/path", false},
		{".", true},
		{"..", true},
		{"relative/path", true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.path, "data_dir")
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestEditorCommand(t *testing.T) {
	t.Setenv("EDITOR", "vi")

	cfg := Config{Editor: "nvim"}
	if got := cfg.EditorCommand(); got != "nvim" {
		t.Errorf("EditorCommand() = %q, want config editor to win", got)
	}

	cfg.Editor = ""
	if got := cfg.EditorCommand(); got != "vi" {
		t.Errorf("EditorCommand() = %q, want $EDITOR fallback", got)
	}
}

func TestDefaultConfigContentParses(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, DefaultConfigContent)

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("default config template must parse: %v", err)
	}
	// Template is all comments, so it must load as pure defaults
	if cfg.DataDir != "" || cfg.Editor != "" || len(cfg.Hooks.Hooks) != 0 {
		t.Errorf("template should produce defaults, got %+v", cfg)
	}
}
