package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Hook defines a shell command run on hk events
type Hook struct {
	Command     string   `toml:"command"`
	Description string   `toml:"description"`
	On          []string `toml:"on"` // events this hook runs on (empty = only via --hook)
}

// HooksConfig holds hook-related configuration
type HooksConfig struct {
	Hooks map[string]Hook `toml:"-"` // parsed from [hooks.NAME] sections
}

// Config holds the hk configuration
type Config struct {
	DataDir string      `toml:"data_dir"` // where per-context hook files live (default ~/.hk)
	Editor  string      `toml:"editor"`   // editor for `hk edit` (falls back to $EDITOR)
	Hooks   HooksConfig `toml:"-"`        // custom parsing needed
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Hooks: HooksConfig{Hooks: make(map[string]Hook)},
	}
}

// EditorCommand returns the editor to use: the config setting if set,
// otherwise $EDITOR. Empty means no editor is configured.
func (c *Config) EditorCommand() string {
	if c.Editor != "" {
		return c.Editor
	}
	return os.Getenv("EDITOR")
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	// Allow ~ paths
	if len(path) >= 1 && path[0] == '~' {
		return nil
	}
	// Must be absolute
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hk", "config.toml"), nil
}

// rawConfig is used for initial TOML parsing before processing hooks
type rawConfig struct {
	DataDir string                 `toml:"data_dir"`
	Editor  string                 `toml:"editor"`
	Hooks   map[string]interface{} `toml:"hooks"`
}

// Load reads config from ~/.config/hk/config.toml
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return loadFrom(path)
}

// loadFrom reads and validates a config file at an explicit path.
func loadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Config{
		DataDir: raw.DataDir,
		Editor:  raw.Editor,
		Hooks:   parseHooksConfig(raw.Hooks),
	}

	// Validate data_dir (must be absolute or start with ~)
	if err := ValidatePath(cfg.DataDir, "data_dir"); err != nil {
		return Default(), err
	}

	// Expand ~ in data_dir (shell doesn't expand in config files)
	if cfg.DataDir != "" {
		expanded, err := expandPath(cfg.DataDir)
		if err != nil {
			return Default(), fmt.Errorf("expand data_dir: %w", err)
		}
		cfg.DataDir = expanded
	}

	return cfg, nil
}

// parseHooksConfig extracts HooksConfig from raw TOML map
// Handles [hooks.NAME] sections
func parseHooksConfig(raw map[string]interface{}) HooksConfig {
	hc := HooksConfig{
		Hooks: make(map[string]Hook),
	}

	if raw == nil {
		return hc
	}

	for key, value := range raw {
		// Hook definitions are tables
		if hookMap, ok := value.(map[string]interface{}); ok {
			hook := Hook{}
			if cmd, ok := hookMap["command"].(string); ok {
				hook.Command = cmd
			}
			if desc, ok := hookMap["description"].(string); ok {
				hook.Description = desc
			}
			if on, ok := hookMap["on"].([]interface{}); ok {
				for _, v := range on {
					if s, ok := v.(string); ok {
						hook.On = append(hook.On, s)
					}
				}
			}
			hc.Hooks[key] = hook
		}
	}

	return hc
}

// DefaultConfigContent is the template written by `hk config init`.
const DefaultConfigContent = `# hk configuration

# Directory for per-context hook files (default: ~/.hk)
# data_dir = "~/.hk"

# Editor for 'hk edit' (default: $EDITOR)
# editor = "nvim"

# Hooks run shell commands on events. Placeholders: {path}, {context}, {trigger}.
# Events: "change" (list modified), "jump" (file jumped to), "all".
#
# [hooks.refresh]
# command = "tmux refresh-client -S"
# description = "Refresh tmux status line"
# on = ["change"]
#
# [hooks.open]
# command = "code {path}"
# description = "Open jumped file in VS Code"
# on = ["jump"]
`

// Init writes the default config file. Returns the path it wrote.
// Fails if the file exists unless force is set.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(DefaultConfigContent), 0o644); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}

	return path, nil
}
