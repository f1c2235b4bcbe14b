package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/hk/internal/history"
	"github.com/raphi011/hk/internal/log"
	"github.com/raphi011/hk/internal/slot"
	"github.com/raphi011/hk/internal/store"
	"github.com/raphi011/hk/internal/ui"
)

func newClearCmd() *cobra.Command {
	var (
		force bool
		stale bool
	)

	cmd := &cobra.Command{
		Use:     "clear",
		Short:   "Remove all hooks in the current context",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Remove every hook in the current context's list.

Asks for confirmation unless --force is given. Other contexts are
never touched. With --stale only hooks whose files no longer exist
are removed, without confirmation.`,
		Example: `  hk clear           # Clear after confirming
  hk clear --force   # Clear without asking
  hk clear --stale   # Drop hooks for deleted files only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			s, dataDir, err := newStore(cfg)
			if err != nil {
				return err
			}
			key, list, err := currentList(ctx, s)
			if err != nil {
				return err
			}

			if stale {
				return clearStale(s, key, dataDir, l)
			}

			if list.Len() == 0 {
				l.Printf("No hooks in %s\n", key)
				return nil
			}

			if !force {
				res, err := ui.Confirm(fmt.Sprintf("Remove all %d hook(s) in %s?", list.Len(), key))
				if err != nil {
					return err
				}
				if !res.Confirmed || res.Cancelled {
					l.Println("Aborted")
					return nil
				}
			}

			count := list.Len()
			err = s.Update(key, func(list *slot.List) error {
				list.Replace(nil)
				return nil
			})
			if err != nil {
				return err
			}

			// the cleared context's jump history is meaningless now
			histPath := history.DefaultPath(dataDir)
			if hist, histErr := history.Load(histPath); histErr == nil {
				if hist.RemoveContext(key) > 0 {
					if saveErr := hist.Save(histPath); saveErr != nil {
						l.Printf("Warning: failed to update history: %v\n", saveErr)
					}
				}
			}

			l.Printf("Removed %d hook(s) from %s\n", count, key)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	cmd.Flags().BoolVar(&stale, "stale", false, "Only remove hooks whose files no longer exist")

	return cmd
}

// clearStale drops hooks whose files no longer exist, plus any stale
// jump history. Nothing interactive: only dead entries go away.
func clearStale(s *store.Store, key, dataDir string, l *log.Logger) error {
	dropped := 0
	err := s.Update(key, func(list *slot.List) error {
		kept := make([]string, 0, list.Len())
		for _, p := range list.Paths() {
			if _, statErr := os.Stat(p); os.IsNotExist(statErr) {
				dropped++
				continue
			}
			kept = append(kept, p)
		}
		list.Replace(kept)
		return nil
	})
	if err != nil {
		return err
	}

	histPath := history.DefaultPath(dataDir)
	if hist, histErr := history.Load(histPath); histErr == nil {
		if hist.RemoveStale() > 0 {
			if saveErr := hist.Save(histPath); saveErr != nil {
				l.Printf("Warning: failed to update history: %v\n", saveErr)
			}
		}
	}

	l.Printf("Removed %d stale hook(s) from %s\n", dropped, key)
	return nil
}
