package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

// completeHookedPaths completes FILE arguments with the current
// context's hooked paths.
func completeHookedPaths(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	s, _, err := newStore(cfg)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	_, list, err := currentList(cmd.Context(), s)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return list.Paths(), cobra.ShellCompDirectiveNoFileComp
}

// completePositions completes index arguments with the valid 1-based
// positions, annotated with the path they refer to.
func completePositions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	s, _, err := newStore(cfg)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	_, list, err := currentList(cmd.Context(), s)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for i, path := range list.Paths() {
		completions = append(completions, strconv.Itoa(i+1)+"\t"+path)
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
