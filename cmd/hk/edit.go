package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/hk/internal/bulkedit"
	"github.com/raphi011/hk/internal/editor"
	"github.com/raphi011/hk/internal/log"
	"github.com/raphi011/hk/internal/slot"
	"github.com/raphi011/hk/internal/store"
	"github.com/raphi011/hk/internal/ui"
)

// maxEditRounds bounds the re-edit loop so a wedged editor script
// cannot spin forever.
const maxEditRounds = 10

// runEdit drives the bulk edit round trip: render the list to a temp
// file, open the editor, parse the result, and replace the list. On
// validation failure the same file is offered for re-editing so the
// user's changes are not lost (interactive terminals only).
func runEdit(ctx context.Context, s *store.Store) error {
	l := log.FromContext(ctx)

	key, list, err := currentList(ctx, s)
	if err != nil {
		return err
	}

	session, err := editor.NewSession(bulkedit.Render(list.Paths()))
	if err != nil {
		return err
	}
	defer session.Remove()

	editorCmd := cfg.EditorCommand()

	var paths []string
	for round := 0; ; round++ {
		lines, err := session.Edit(ctx, editorCmd)
		if err != nil {
			return err
		}

		var lineErrs []bulkedit.LineError
		paths, lineErrs = bulkedit.Parse(lines)
		if len(lineErrs) == 0 {
			break
		}

		l.Printf("Edit rejected, list unchanged:\n")
		for _, le := range lineErrs {
			l.Printf("  %v\n", le)
		}

		if round+1 >= maxEditRounds || !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("bulk edit failed: %d invalid line(s)", len(lineErrs))
		}

		res, err := ui.Confirm("Re-edit to fix these lines?")
		if err != nil {
			return err
		}
		if !res.Confirmed || res.Cancelled {
			return fmt.Errorf("bulk edit aborted, list unchanged")
		}
	}

	normalized := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := normalizePath(p)
		if err != nil {
			return err
		}
		normalized = append(normalized, abs)
	}

	err = s.Update(key, func(list *slot.List) error {
		list.Replace(normalized)
		return nil
	})
	if err != nil {
		return err
	}

	l.Printf("Updated %s: %d hook(s)\n", key, len(normalized))
	return nil
}
