package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/hk/internal/log"
	"github.com/raphi011/hk/internal/slot"
)

func newAddCmd() *cobra.Command {
	var (
		front bool
		at    int
	)

	cmd := &cobra.Command{
		Use:     "add <file>...",
		Short:   "Hook files into the current context",
		Aliases: []string{"a"},
		GroupID: GroupCore,
		Args:    cobra.MinimumNArgs(1),
		Long: `Hook one or more files into the current context's list.

Files are appended at the end by default. A file that is already hooked
is an error; positions of existing hooks never change on add.`,
		Example: `  hk add src/main.go             # Hook at the end
  hk add --front src/main.go     # Hook at position 1
  hk add --at 2 src/main.go      # Insert at position 2
  hk add a.go b.go c.go          # Hook several files at once`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			if front && cmd.Flags().Changed("at") {
				return fmt.Errorf("--front and --at are mutually exclusive")
			}
			if cmd.Flags().Changed("at") && at < 1 {
				return fmt.Errorf("--at must be a positive position, got %d", at)
			}

			s, _, err := newStore(cfg)
			if err != nil {
				return err
			}
			key, err := s.ResolveKey(ctx, workDir)
			if err != nil {
				return err
			}

			paths := make([]string, 0, len(args))
			for _, arg := range args {
				path, err := normalizePath(arg)
				if err != nil {
					return err
				}
				if err := checkHookable(path); err != nil {
					return err
				}
				paths = append(paths, path)
			}

			l.Debug("adding hooks", "context", key, "count", len(paths))

			var added []addedHook
			err = s.Update(key, func(list *slot.List) error {
				for i, path := range paths {
					var err error
					switch {
					case front:
						// keep argument order when hooking several files at the front
						err = list.InsertAt(path, 1+i)
					case cmd.Flags().Changed("at"):
						err = list.InsertAt(path, at+i)
					default:
						err = list.AddBack(path)
					}
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					pos := list.Len()
					if front || cmd.Flags().Changed("at") {
						pos = positionOf(list, path)
					}
					added = append(added, addedHook{path: path, position: pos})
				}
				return nil
			})
			if err != nil {
				return err
			}

			for _, a := range added {
				l.Printf("Hooked [%d] %s\n", a.position, a.path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&front, "front", false, "Hook at position 1 instead of the end")
	cmd.Flags().IntVar(&at, "at", 0, "Insert at this position (clamped to the end)")

	return cmd
}

type addedHook struct {
	path     string
	position int
}

func positionOf(list *slot.List, path string) int {
	for i, p := range list.Paths() {
		if p == path {
			return i + 1
		}
	}
	return 0
}
