// Package ui provides the interactive terminal components for hk.
//
// This package uses the Charm libraries (bubbletea, bubbles, lipgloss)
// together with sahilm/fuzzy for ranked filtering.
//
// The primary component is the fuzzy picker behind `hk pick`:
//
//   - [RunPicker]: full-screen fuzzy search over the hooked paths,
//     returning the chosen path and its 1-based position
//
// Entries render as "[<position>] <path>" so the picker mirrors the
// numbering used by `hk list` and `hk edit`. [Confirm] is the yes/no
// guard in front of destructive commands such as `hk clear`.
package ui
