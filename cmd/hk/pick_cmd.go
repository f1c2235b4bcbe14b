package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/hk/internal/ui"
)

func newPickCmd() *cobra.Command {
	var (
		open     bool
		copyPath bool
	)

	cmd := &cobra.Command{
		Use:     "pick",
		Short:   "Fuzzy-pick a hook interactively",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Open an interactive fuzzy finder over the current context's hooks.

Selecting an entry behaves like hk jump on its position: the path is
printed, recorded as the current file, and jump hooks run.`,
		Example: `  vim $(hk pick)    # Fuzzy-search hooks, open the choice in vim
  hk pick --open    # Open the choice in the configured editor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, dataDir, err := newStore(cfg)
			if err != nil {
				return err
			}
			key, list, err := currentList(ctx, s)
			if err != nil {
				return err
			}

			if list.Len() == 0 {
				return fmt.Errorf("no hooks in %s (use 'hk add <file>')", key)
			}

			res, err := ui.RunPicker(list.Paths())
			if err != nil {
				return err
			}
			if res.Cancelled {
				os.Exit(1)
			}

			return jumpTo(ctx, key, dataDir, res.Path, jumpOptions{
				open:     open,
				copyPath: copyPath,
			})
		},
	}

	cmd.Flags().BoolVarP(&open, "open", "o", false, "Open the file in the configured editor")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy path to clipboard")

	return cmd
}
