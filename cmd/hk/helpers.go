package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/hk/internal/config"
	"github.com/raphi011/hk/internal/gitctx"
	"github.com/raphi011/hk/internal/history"
	"github.com/raphi011/hk/internal/hooks"
	"github.com/raphi011/hk/internal/slot"
	"github.com/raphi011/hk/internal/storage"
	"github.com/raphi011/hk/internal/store"
)

// hookNotifier fires configured change hooks after every successful save.
// Failures are warnings; a broken hook must not fail the user's operation.
type hookNotifier struct {
	cfg *config.Config
}

func (n hookNotifier) Changed(contextKey string) {
	matches, err := hooks.SelectHooks(n.cfg.Hooks, "", false, hooks.EventChange)
	if err != nil || len(matches) == 0 {
		return
	}
	hooks.RunAllNonFatal(matches, hooks.Context{
		ContextKey: contextKey,
		Trigger:    string(hooks.EventChange),
	})
}

// resolveDataDir picks the data directory: HK_DATA_DIR beats the config
// setting, which beats the ~/.hk default.
func resolveDataDir(cfg *config.Config) (string, error) {
	if os.Getenv("HK_DATA_DIR") == "" && cfg.DataDir != "" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return "", fmt.Errorf("create data directory: %w", err)
		}
		return cfg.DataDir, nil
	}
	return storage.DataDir()
}

// newStore builds the store for this invocation. With --global the git
// resolution is bypassed entirely.
func newStore(cfg *config.Config) (*store.Store, string, error) {
	dir, err := resolveDataDir(cfg)
	if err != nil {
		return nil, "", err
	}

	var resolver gitctx.Resolver = gitctx.GitResolver{}
	if globalScope {
		resolver = gitctx.Fixed(gitctx.GlobalKey)
	}

	return store.New(dir, resolver, hookNotifier{cfg: cfg}), dir, nil
}

// currentList resolves the context key for the working directory and
// loads its list.
func currentList(ctx context.Context, s *store.Store) (string, *slot.List, error) {
	key, err := s.ResolveKey(ctx, workDir)
	if err != nil {
		return "", nil, err
	}
	l, err := s.List(key)
	if err != nil {
		return "", nil, err
	}
	return key, l, nil
}

// normalizePath resolves a user-supplied path to an absolute one.
func normalizePath(arg string) (string, error) {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", arg, err)
	}
	return abs, nil
}

// resolveFileArg returns the file a position-less command operates on:
// the explicit argument if given, otherwise the most recently jumped-to
// path in this context.
func resolveFileArg(args []string, key, dataDir string) (string, error) {
	if len(args) > 0 {
		return normalizePath(args[0])
	}

	path, err := history.GetMostRecent(key, history.DefaultPath(dataDir))
	if err != nil {
		return "", fmt.Errorf("load history: %w", err)
	}
	if path == "" {
		return "", fmt.Errorf("no current file: pass a FILE or jump to one first")
	}
	return path, nil
}

// checkHookable verifies path names an existing regular file.
func checkHookable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: no such file", path)
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s: is a directory", path)
	}
	return nil
}
