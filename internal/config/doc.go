// Package config handles loading and validation of hk configuration.
//
// Configuration is read from ~/.config/hk/config.toml. A missing file is
// not an error; defaults apply.
//
// # Key Settings
//
//   - data_dir: Directory for per-context hook files (must be absolute or
//     ~/...; default ~/.hk, overridable via HK_DATA_DIR)
//   - editor: Editor command for "hk edit" and "hk jump --open"
//     (default: $EDITOR)
//
// # Hooks Configuration
//
// Hooks are defined in [hooks.NAME] sections:
//
//	[hooks.refresh]
//	command = "tmux refresh-client -S"
//	description = "Refresh tmux status line"
//	on = ["change"]  # auto-run when the hook list changes
//
// Hooks with "on" run automatically for matching events (change, jump).
// Hooks without "on" only run via an explicit --hook=name flag.
// The special value "all" matches every event.
//
// # Path Validation
//
// Directory paths must be absolute or start with ~ (no relative paths like
// "." or "..") to avoid confusion about the working directory.
package config
