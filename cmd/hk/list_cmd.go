package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/hk/internal/history"
	"github.com/raphi011/hk/internal/log"
	"github.com/raphi011/hk/internal/output"
)

// HookDisplay holds one hooked file for display. Jump statistics come
// from the history file and are only present in --json output for paths
// that have been jumped to.
type HookDisplay struct {
	Position int        `json:"position"`
	Path     string     `json:"path"`
	Current  bool       `json:"current,omitempty"`
	Jumps    int        `json:"jumps,omitempty"`
	LastJump *time.Time `json:"last_jump,omitempty"`
}

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List hooked files",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List the current context's hooked files with their positions.

The most recently jumped-to file is marked with an asterisk.`,
		Example: `  hk list           # Numbered listing
  hk list --json    # Output as JSON
  hk list --global  # The global list, even inside a repo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			s, dataDir, err := newStore(cfg)
			if err != nil {
				return err
			}
			key, list, err := currentList(ctx, s)
			if err != nil {
				return err
			}

			hist, histErr := history.Load(history.DefaultPath(dataDir))
			var current string
			if histErr == nil {
				current = hist.MostRecent(key)
			}

			display := make([]HookDisplay, 0, list.Len())
			for i, path := range list.Paths() {
				d := HookDisplay{
					Position: i + 1,
					Path:     path,
					Current:  path == current,
				}
				if histErr == nil {
					if e := hist.FindByPath(path, key); e != nil {
						d.Jumps = e.AccessCount
						last := e.LastAccess
						d.LastJump = &last
					}
				}
				display = append(display, d)
			}

			if jsonOutput {
				return out.JSON(display)
			}

			if len(display) == 0 {
				l.Printf("No hooks in %s (use 'hk add <file>')\n", key)
				return nil
			}

			for _, d := range display {
				marker := " "
				if d.Current {
					marker = "*"
				}
				out.Printf("[%d]%s %s\n", d.Position, marker, d.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
