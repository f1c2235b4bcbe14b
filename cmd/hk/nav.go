package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/hk/internal/history"
	"github.com/raphi011/hk/internal/log"
	"github.com/raphi011/hk/internal/slot"
)

// runNav implements the circular next/prev navigation. step selects the
// direction on the list. The reference point is the FILE argument or the
// most recently jumped-to file; an unknown or missing reference lands on
// the first hook.
func runNav(cmd *cobra.Command, args []string, step func(*slot.List, string) (string, error), opts jumpOptions) error {
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

	var current string
	if len(args) > 0 {
		current, err = normalizePath(args[0])
		if err != nil {
			return err
		}
	} else {
		current, err = history.GetMostRecent(key, history.DefaultPath(dataDir))
		if err != nil {
			return err
		}
	}

	l.Debug("navigating", "context", key, "from", current)

	target, err := step(list, current)
	if err != nil {
		return err
	}

	return jumpTo(ctx, key, dataDir, target, opts)
}

func newNextCmd() *cobra.Command {
	var (
		open     bool
		copyPath bool
	)

	cmd := &cobra.Command{
		Use:     "next [file]",
		Short:   "Print the hook after the current file",
		Aliases: []string{"n"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the hook following the current file, wrapping from the last
position back to the first.

The reference point is FILE if given, otherwise the most recently
jumped-to file. A reference that is not hooked lands on position 1.`,
		Example: `  vim $(hk next)            # Cycle forward through hooks
  vim $(hk next src/a.go)   # The hook after src/a.go`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNav(cmd, args, (*slot.List).Next, jumpOptions{open: open, copyPath: copyPath})
		},
	}

	cmd.Flags().BoolVarP(&open, "open", "o", false, "Open the file in the configured editor")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy path to clipboard")
	cmd.ValidArgsFunction = completeHookedPaths

	return cmd
}

func newPrevCmd() *cobra.Command {
	var (
		open     bool
		copyPath bool
	)

	cmd := &cobra.Command{
		Use:     "prev [file]",
		Short:   "Print the hook before the current file",
		Aliases: []string{"p"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the hook preceding the current file, wrapping from the first
position to the last.

The reference point is FILE if given, otherwise the most recently
jumped-to file. A reference that is not hooked lands on position 1.`,
		Example: `  vim $(hk prev)            # Cycle backward through hooks
  vim $(hk prev src/a.go)   # The hook before src/a.go`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNav(cmd, args, (*slot.List).Prev, jumpOptions{open: open, copyPath: copyPath})
		},
	}

	cmd.Flags().BoolVarP(&open, "open", "o", false, "Open the file in the configured editor")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy path to clipboard")
	cmd.ValidArgsFunction = completeHookedPaths

	return cmd
}
