package main

import (
	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit",
		Short:   "Edit the hook list in your editor",
		Aliases: []string{"e"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Open the current context's hook list as text in your editor.

Each line has the form "[<position>] = <path>". Reorder, delete, or add
lines, then save and quit; the list is replaced by the lines in file
order. The bracket numbers are informational only.

A line whose path does not name a readable file rejects the whole edit
and leaves the list unchanged. In a terminal you are offered the same
file again to fix the reported lines.`,
		Example: `  hk edit             # Edit the current context's list
  hk edit --global    # Edit the global list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newStore(cfg)
			if err != nil {
				return err
			}
			return runEdit(cmd.Context(), s)
		},
	}

	return cmd
}
