package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raphi011/gitlink/internal/config"
	"github.com/raphi011/gitlink/internal/git"
	"github.com/raphi011/gitlink/internal/log"
	"github.com/raphi011/gitlink/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage gitlink configuration.

Global config: ~/.config/gitlink/config.toml (override with $GITLINK_CONFIG)
Local config:  .gitlink.toml (in the repository root)`,
		Example: `  gitlink config init          # Create default global config
  gitlink config init --local  # Create local repo config
  gitlink config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates the global config.
With --local, creates .gitlink.toml in the current repository root.`,
		Example: `  gitlink config init           # Create global config
  gitlink config init --local   # Create local repo config
  gitlink config init -f        # Overwrite existing config
  gitlink config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			content := config.DefaultContent()
			if local {
				content = config.DefaultLocalContent()
			}
			if stdout {
				out.Printf("%s", content)
				return nil
			}

			path, err := configInitPath(ctx, local)
			if err != nil {
				return err
			}
			if err := config.Init(path, content, force); err != nil {
				return err
			}

			log.FromContext(ctx).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create per-repo .gitlink.toml instead of global config")

	return cmd
}

func configInitPath(ctx context.Context, local bool) (string, error) {
	if !local {
		return config.Path()
	}
	root, err := currentRepoRoot(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, config.LocalConfigFileName), nil
}

// currentRepoRoot returns the top-level of the repository containing the
// working directory.
func currentRepoRoot(ctx context.Context) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	top := git.TopLevel(ctx, cwd)
	if !top.OK() {
		return "", fmt.Errorf("not in a git repository: %s", cwd)
	}
	return filepath.FromSlash(top.Value), nil
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration as TOML.

Inside a repository the .gitlink.toml overrides are merged in.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			cfg := config.FromContext(ctx)
			globalPath, err := config.Path()
			if err != nil {
				globalPath = "(unknown)"
			}
			out.Printf("# global: %s\n", globalPath)

			if root, err := currentRepoRoot(ctx); err == nil {
				merged, err := config.ForWorkspace(cfg, root)
				if err != nil {
					l.Printf("Warning: %v (using global config)\n", err)
				} else {
					if merged != cfg {
						out.Printf("# local:  %s\n", filepath.Join(root, config.LocalConfigFileName))
					}
					cfg = merged
				}
			}
			out.Println()

			return toml.NewEncoder(out.Writer()).Encode(cfg)
		},
	}

	return cmd
}
