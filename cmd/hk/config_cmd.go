package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/hk/internal/config"
	"github.com/raphi011/hk/internal/log"
	"github.com/raphi011/hk/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage hk configuration.

Config location: ~/.config/hk/config.toml`,
		Example: `  hk config init    # Create default config
  hk config show    # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  hk config init       # Create config at ~/.config/hk/config.toml
  hk config init -f    # Overwrite existing config
  hk config init -s    # Print default config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stdout {
				output.FromContext(cmd.Context()).Print(config.DefaultConfigContent)
				return nil
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}

			log.FromContext(cmd.Context()).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Example: `  hk config show          # Show effective config
  hk config show --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if jsonOutput {
				return out.JSON(cfg)
			}

			dataDir, err := resolveDataDir(cfg)
			if err != nil {
				return err
			}

			out.Printf("Config file: ~/.config/hk/config.toml\n\n")
			out.Printf("data_dir: %s\n", dataDir)
			out.Printf("editor: %s\n", cfg.EditorCommand())
			out.Printf("hooks: %d configured\n", len(cfg.Hooks.Hooks))
			for name, hook := range cfg.Hooks.Hooks {
				out.Printf("\n%s:\n", name)
				out.Printf("  command: %s\n", hook.Command)
				if hook.Description != "" {
					out.Printf("  description: %s\n", hook.Description)
				}
				if len(hook.On) > 0 {
					out.Printf("  on: %v\n", hook.On)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
