package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newJumpCmd() *cobra.Command {
	var (
		open     bool
		copyPath bool
		hookName string
		noHook   bool
	)

	cmd := &cobra.Command{
		Use:     "jump <position>",
		Short:   "Print the path at a position",
		Aliases: []string{"j"},
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Print the hooked path at the given 1-based position.

Designed for shell integration: the path goes to stdout, everything else
to stderr. The target becomes the current file for hk next, hk prev and
hk rm without arguments.`,
		Example: `  vim $(hk jump 2)       # Open hook 2 in vim
  hk jump 2 --open       # Open hook 2 in the configured editor
  hk jump 2 --copy       # Copy the path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("position must be a number, got %q", args[0])
			}

			s, dataDir, err := newStore(cfg)
			if err != nil {
				return err
			}
			key, list, err := currentList(ctx, s)
			if err != nil {
				return err
			}

			path, err := list.At(pos)
			if err != nil {
				return err
			}

			return jumpTo(ctx, key, dataDir, path, jumpOptions{
				open:     open,
				copyPath: copyPath,
				hookName: hookName,
				noHook:   noHook,
			})
		},
	}

	cmd.Flags().BoolVarP(&open, "open", "o", false, "Open the file in the configured editor")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy path to clipboard")
	cmd.Flags().StringVar(&hookName, "hook", "", "Run a specific configured hook")
	cmd.Flags().BoolVar(&noHook, "no-hook", false, "Skip jump hooks")
	cmd.MarkFlagsMutuallyExclusive("hook", "no-hook")

	cmd.ValidArgsFunction = completePositions

	return cmd
}
