package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/hk/internal/gitctx"
	"github.com/raphi011/hk/internal/slot"
	"github.com/raphi011/hk/internal/storage"
)

// StorageError indicates the persisted state for a context exists but
// could not be read or parsed. It is never silently repaired; the user
// decides whether to fix or delete the file.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("corrupt hook file %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Notifier receives a fire-and-forget event after every successful save.
type Notifier interface {
	Changed(contextKey string)
}

// Store owns the per-context hook lists. Lists are loaded lazily on first
// access, cached in memory for the process lifetime, and written back
// atomically after every mutation.
type Store struct {
	dir      string
	resolver gitctx.Resolver
	notifier Notifier
	lists    map[string]*slot.List
}

// New creates a store persisting under dir, resolving context keys with
// resolver. notifier may be nil.
func New(dir string, resolver gitctx.Resolver, notifier Notifier) *Store {
	return &Store{
		dir:      dir,
		resolver: resolver,
		notifier: notifier,
		lists:    make(map[string]*slot.List),
	}
}

// ResolveKey derives the context key for workDir.
func (s *Store) ResolveKey(ctx context.Context, workDir string) (string, error) {
	return s.resolver.Resolve(ctx, workDir)
}

// Path returns the data file for a context key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, SanitizeKey(key)+".json")
}

func (s *Store) lockPath(key string) string {
	return filepath.Join(s.dir, SanitizeKey(key)+".lock")
}

// SanitizeKey maps a context key to a flat filename: path separators and
// other unsafe runes become '%'. Keys stay human-readable enough to find
// the file for a given repository by eye.
func SanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '%'
		}
	}, key)
}

// List returns the hook list for a context key, loading it from disk on
// first access. A missing file initializes an empty list, which is
// persisted immediately so the context exists on disk. A present but
// unparsable file yields a *StorageError.
func (s *Store) List(key string) (*slot.List, error) {
	if l, ok := s.lists[key]; ok {
		return l, nil
	}

	path := s.Path(key)

	var paths []string
	err := storage.LoadJSON(path, &paths)
	switch {
	case err == nil:
		l := slot.New(paths)
		s.lists[key] = l
		return l, nil
	case errors.Is(err, os.ErrNotExist):
		l := slot.New(nil)
		s.lists[key] = l
		if err := s.persist(key, l); err != nil {
			delete(s.lists, key)
			return nil, err
		}
		return l, nil
	default:
		return nil, &StorageError{Path: path, Err: err}
	}
}

// Save persists the list for key and fires the change notification.
func (s *Store) Save(key string, l *slot.List) error {
	if err := s.persist(key, l); err != nil {
		return err
	}
	s.lists[key] = l
	if s.notifier != nil {
		s.notifier.Changed(key)
	}
	return nil
}

// persist writes the list atomically under the context's flock.
func (s *Store) persist(key string, l *slot.List) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	lock := newFileLock(s.lockPath(key))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock context %s: %w", key, err)
	}
	defer lock.Unlock()

	if err := storage.SaveJSON(s.Path(key), l.Paths()); err != nil {
		return fmt.Errorf("save hooks for %s: %w", key, err)
	}
	return nil
}

// Update applies fn to the persisted list for key and saves the result.
// The whole read-modify-write runs under the context's flock: the list is
// re-read from disk after the lock is taken, so concurrent hk invocations
// on the same context cannot lose each other's mutations. A failing fn
// skips the save, leaving the persisted state untouched.
func (s *Store) Update(key string, fn func(*slot.List) error) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	lock := newFileLock(s.lockPath(key))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock context %s: %w", key, err)
	}

	l, err := s.applyLocked(key, fn)
	lock.Unlock()
	if err != nil {
		return err
	}

	s.lists[key] = l
	if s.notifier != nil {
		s.notifier.Changed(key)
	}
	return nil
}

// applyLocked re-reads the list from disk, applies fn, and writes it
// back. Caller must hold the context lock. A missing file reads as an
// empty list.
func (s *Store) applyLocked(key string, fn func(*slot.List) error) (*slot.List, error) {
	path := s.Path(key)

	var paths []string
	err := storage.LoadJSON(path, &paths)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		paths = nil
	default:
		return nil, &StorageError{Path: path, Err: err}
	}

	l := slot.New(paths)
	if err := fn(l); err != nil {
		return nil, err
	}
	if err := storage.SaveJSON(path, l.Paths()); err != nil {
		return nil, fmt.Errorf("save hooks for %s: %w", key, err)
	}
	return l, nil
}
