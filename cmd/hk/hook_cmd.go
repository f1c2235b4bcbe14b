package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/hk/internal/history"
	"github.com/raphi011/hk/internal/hooks"
	"github.com/raphi011/hk/internal/log"
)

func newHookCmd() *cobra.Command {
	var (
		env    []string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:               "hook <name>... [-- <file>]",
		Short:             "Run configured hooks manually",
		Aliases:           []string{"h"},
		GroupID:           GroupUtility,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeHookArg,
		Long: `Run one or more configured hooks.

Hooks are defined in config.toml and can use the {path}, {context} and
{trigger} placeholders plus custom variables set with -a. {path} expands
to the file named after --, falling back to the current file.`,
		Example: `  hk hook refresh                 # Run the 'refresh' hook
  hk hook refresh open            # Run multiple hooks
  hk hook open -- main.go         # Run with an explicit {path}
  hk hook open -a mode=split      # Set a custom {mode} variable
  hk hook open -d                 # Dry-run: print command without executing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			names, fileArgs := splitHookArgs(args, cmd.ArgsLenAtDash())
			if len(names) == 0 {
				return fmt.Errorf("no hook names given")
			}
			if len(fileArgs) > 1 {
				return fmt.Errorf("at most one file may follow --")
			}

			hookEnv, err := hooks.ParseEnvWithStdin(env)
			if err != nil {
				return err
			}

			var missing []string
			for _, name := range names {
				if _, ok := cfg.Hooks.Hooks[name]; !ok {
					missing = append(missing, name)
				}
			}
			if len(missing) > 0 {
				available := make([]string, 0, len(cfg.Hooks.Hooks))
				for name := range cfg.Hooks.Hooks {
					available = append(available, name)
				}
				if len(available) == 0 {
					return fmt.Errorf("unknown hook(s) %v (no hooks configured)", missing)
				}
				sort.Strings(available)
				return fmt.Errorf("unknown hook(s) %v (available: %v)", missing, available)
			}

			s, dataDir, err := newStore(cfg)
			if err != nil {
				return err
			}
			key, err := s.ResolveKey(ctx, workDir)
			if err != nil {
				return err
			}

			// {path} is best-effort here: a hook that doesn't use it can
			// run without any jump history.
			var path string
			if len(fileArgs) == 1 {
				if path, err = normalizePath(fileArgs[0]); err != nil {
					return err
				}
			} else if recent, histErr := history.GetMostRecent(key, history.DefaultPath(dataDir)); histErr == nil {
				path = recent
			}

			l.Debug("running hooks", "hooks", names, "path", path, "dryRun", dryRun)

			hookCtx := hooks.Context{
				Path:       path,
				ContextKey: key,
				Trigger:    "run",
				Env:        hookEnv,
				DryRun:     dryRun,
			}
			for _, name := range names {
				hook := cfg.Hooks.Hooks[name]
				if err := hooks.RunSingle(name, &hook, hookCtx); err != nil {
					return fmt.Errorf("hook %q failed: %w", name, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&env, "arg", "a", nil, "Set hook variable KEY=VALUE (VALUE of - reads stdin)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Print command without executing")
	cmd.RegisterFlagCompletionFunc("arg", cobra.NoFileCompletions)

	return cmd
}

// splitHookArgs splits args into hook names and the optional file target
// based on the -- position.
func splitHookArgs(args []string, dashIdx int) (names, fileArgs []string) {
	if dashIdx == -1 {
		return args, nil
	}
	return args[:dashIdx], args[dashIdx:]
}

// completeHookArg completes hook names before --, files after it.
func completeHookArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if cmd.ArgsLenAtDash() != -1 {
		return nil, cobra.ShellCompDirectiveDefault
	}

	var names []string
	for name := range cfg.Hooks.Hooks {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, cobra.ShellCompDirectiveNoFileComp
}
