package main

import (
	"context"

	"github.com/atotto/clipboard"

	"github.com/raphi011/hk/internal/editor"
	"github.com/raphi011/hk/internal/history"
	"github.com/raphi011/hk/internal/hooks"
	"github.com/raphi011/hk/internal/log"
	"github.com/raphi011/hk/internal/output"
)

// jumpOptions control the side effects of landing on a hook.
type jumpOptions struct {
	open     bool   // launch the editor on the target
	copyPath bool   // copy the target path to the clipboard
	hookName string // run this hook explicitly instead of the "on" matches
	noHook   bool   // suppress jump hooks
}

// jumpTo is the shared action behind jump, next, prev, and pick: print
// the target path for shell consumption, record it as the current file,
// then apply the requested side effects and jump hooks.
func jumpTo(ctx context.Context, key, dataDir, path string, opts jumpOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	out.Println(path)

	if err := history.RecordJump(path, key, history.DefaultPath(dataDir)); err != nil {
		l.Printf("Warning: failed to record history: %v\n", err)
	}

	if opts.copyPath {
		if err := clipboard.WriteAll(path); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	if opts.open {
		if err := editor.Open(ctx, cfg.EditorCommand(), path); err != nil {
			return err
		}
	}

	matches, err := hooks.SelectHooks(cfg.Hooks, opts.hookName, opts.noHook, hooks.EventJump)
	if err != nil {
		return err
	}
	hookCtx := hooks.Context{
		Path:       path,
		ContextKey: key,
		Trigger:    string(hooks.EventJump),
	}
	if opts.hookName != "" {
		// an explicitly requested hook is allowed to fail the command
		return hooks.RunAll(matches, hookCtx)
	}
	hooks.RunAllNonFatal(matches, hookCtx)
	return nil
}
