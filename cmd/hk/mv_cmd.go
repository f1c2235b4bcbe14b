package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/hk/internal/log"
	"github.com/raphi011/hk/internal/slot"
)

func newMvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "mv <left|right> [file]",
		Short:     "Swap a hook with its neighbor",
		GroupID:   GroupCore,
		ValidArgs: []string{"left", "right"},
		Args:      cobra.RangeArgs(1, 2),
		Long: `Swap a hook with its left or right neighbor. There is no wraparound:
moving the first hook left or the last hook right is an error.

The file to move is FILE if given, otherwise the most recently
jumped-to file.`,
		Example: `  hk mv left src/main.go   # Move src/main.go one position up
  hk mv right              # Move the current file one position down`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			var move func(*slot.List, string) error
			switch args[0] {
			case "left":
				move = (*slot.List).MoveLeft
			case "right":
				move = (*slot.List).MoveRight
			default:
				return fmt.Errorf("direction must be left or right, got %q", args[0])
			}

			s, dataDir, err := newStore(cfg)
			if err != nil {
				return err
			}
			key, err := s.ResolveKey(ctx, workDir)
			if err != nil {
				return err
			}

			path, err := resolveFileArg(args[1:], key, dataDir)
			if err != nil {
				return err
			}

			err = s.Update(key, func(list *slot.List) error {
				return move(list, path)
			})
			if errors.Is(err, slot.ErrBoundary) {
				return fmt.Errorf("%s is already at the %smost position", path, args[0])
			}
			if err != nil {
				return err
			}

			l.Printf("Moved %s %s\n", path, args[0])
			return nil
		},
	}

	return cmd
}
