package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/raphi011/hk/internal/history"
	"github.com/raphi011/hk/internal/log"
	"github.com/raphi011/hk/internal/slot"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm [position|file]",
		Short:   "Unhook a file",
		Aliases: []string{"remove"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Unhook a file from the current context's list.

The argument is a 1-based position or a file path. With no argument the
most recently jumped-to file is unhooked. Later hooks shift down so
positions stay contiguous.`,
		Example: `  hk rm 2              # Unhook position 2
  hk rm src/main.go    # Unhook by path
  hk rm                # Unhook the current file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			s, dataDir, err := newStore(cfg)
			if err != nil {
				return err
			}
			key, err := s.ResolveKey(ctx, workDir)
			if err != nil {
				return err
			}

			var removed string
			err = s.Update(key, func(list *slot.List) error {
				if len(args) == 1 {
					if pos, convErr := strconv.Atoi(args[0]); convErr == nil {
						path, rmErr := list.RemoveAt(pos)
						if rmErr != nil {
							return rmErr
						}
						removed = path
						return nil
					}
				}

				path, err := resolveFileArg(args, key, dataDir)
				if err != nil {
					return err
				}
				if err := list.RemoveByPath(path); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				removed = path
				return nil
			})
			if err != nil {
				return err
			}

			// drop the history entry so rm/next without args can't land
			// on the path that was just removed
			histPath := history.DefaultPath(dataDir)
			if hist, histErr := history.Load(histPath); histErr == nil {
				if hist.RemoveByPath(removed, key) {
					if saveErr := hist.Save(histPath); saveErr != nil {
						l.Printf("Warning: failed to update history: %v\n", saveErr)
					}
				}
			}

			l.Printf("Unhooked %s\n", removed)
			return nil
		},
	}

	cmd.ValidArgsFunction = completeHookedPaths

	return cmd
}
