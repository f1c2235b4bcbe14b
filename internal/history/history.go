// Package history tracks recently jumped-to hooks per context.
// The most recent entry for a context is the reference point for
// `hk next` and `hk prev` when no explicit position is given.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// maxEntries caps the history file size; the least recently
// accessed entries are evicted first.
const maxEntries = 50

// Entry records one jump target.
type Entry struct {
	Path        string    `json:"path"`
	ContextKey  string    `json:"context_key"`
	AccessCount int       `json:"access_count"`
	LastAccess  time.Time `json:"last_access"`
}

// History holds jump entries across all contexts.
type History struct {
	Entries []Entry `json:"entries"`
}

// DefaultPath returns the history file location inside the data directory.
func DefaultPath(dataDir string) string {
	return filepath.Join(dataDir, "history.json")
}

// Load reads the history from file. A missing file yields an empty
// history; unparsable content is an error.
func Load(file string) (*History, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return &History{}, nil
		}
		return nil, err
	}

	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Save writes the history to file atomically.
func (h *History) Save(file string) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}

	tempPath := file + ".tmp"

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tempPath, file)
}

// RecordJump loads the history in file, bumps the entry for path within
// contextKey (creating it if needed), and saves.
func RecordJump(path, contextKey, file string) error {
	h, err := Load(file)
	if err != nil {
		return err
	}
	h.Touch(path, contextKey)
	return h.Save(file)
}

// Touch bumps the entry for path within contextKey, creating it if
// needed and evicting the coldest entry when the cap is reached.
func (h *History) Touch(path, contextKey string) {
	now := time.Now()

	for i := range h.Entries {
		if h.Entries[i].Path == path && h.Entries[i].ContextKey == contextKey {
			h.Entries[i].AccessCount++
			h.Entries[i].LastAccess = now
			return
		}
	}

	if len(h.Entries) >= maxEntries {
		h.evictOldest()
	}

	h.Entries = append(h.Entries, Entry{
		Path:        path,
		ContextKey:  contextKey,
		AccessCount: 1,
		LastAccess:  now,
	})
}

func (h *History) evictOldest() {
	oldest := 0
	for i := range h.Entries {
		if h.Entries[i].LastAccess.Before(h.Entries[oldest].LastAccess) {
			oldest = i
		}
	}
	h.Entries = append(h.Entries[:oldest], h.Entries[oldest+1:]...)
}

// MostRecent returns the most recently jumped-to path within contextKey,
// or "" if the context has no history.
func (h *History) MostRecent(contextKey string) string {
	best := -1
	for i := range h.Entries {
		if h.Entries[i].ContextKey != contextKey {
			continue
		}
		if best == -1 || h.Entries[i].LastAccess.After(h.Entries[best].LastAccess) {
			best = i
		}
	}
	if best == -1 {
		return ""
	}
	return h.Entries[best].Path
}

// GetMostRecent loads file and returns the most recent path for
// contextKey. Returns "" when no history exists.
func GetMostRecent(contextKey, file string) (string, error) {
	h, err := Load(file)
	if err != nil {
		return "", err
	}
	return h.MostRecent(contextKey), nil
}

// FindByPath returns the entry for path within contextKey, or nil.
func (h *History) FindByPath(path, contextKey string) *Entry {
	for i := range h.Entries {
		if h.Entries[i].Path == path && h.Entries[i].ContextKey == contextKey {
			return &h.Entries[i]
		}
	}
	return nil
}

// RemoveByPath drops all entries for path within contextKey. Reports
// whether anything was removed.
func (h *History) RemoveByPath(path, contextKey string) bool {
	kept := h.Entries[:0]
	removed := false
	for _, e := range h.Entries {
		if e.Path == path && e.ContextKey == contextKey {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	h.Entries = kept
	return removed
}

// RemoveContext drops all entries for contextKey, returning the count.
func (h *History) RemoveContext(contextKey string) int {
	kept := h.Entries[:0]
	removed := 0
	for _, e := range h.Entries {
		if e.ContextKey == contextKey {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	h.Entries = kept
	return removed
}

// RemoveStale drops entries whose path no longer exists on disk,
// returning the count of removed entries.
func (h *History) RemoveStale() int {
	kept := h.Entries[:0]
	removed := 0
	for _, e := range h.Entries {
		if _, err := os.Stat(e.Path); os.IsNotExist(err) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	h.Entries = kept
	return removed
}
