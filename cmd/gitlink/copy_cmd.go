package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitlink/internal/config"
	"github.com/raphi011/gitlink/internal/selection"
)

// EnvWorkspace overrides the workspace root, like --workspace.
const EnvWorkspace = "GITLINK_WORKSPACE"

func newCopyCmd() *cobra.Command {
	var (
		lines       string
		zeroBased   bool
		workspace   string
		remoteName  string
		ref         string
		printOnly   bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "copy [FILE[:LINES]]",
		Short:   "Copy a permalink to lines of a file",
		Aliases: []string{"cp"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Copy a permalink to a range of lines in a file.

The link is pinned to the commit the ref resolves to (HEAD by default) and
points at the remote's browsable URL. It is printed to stdout and copied to
the clipboard.

LINES can be a single line (10), a range (10-20) or anchor style (L10-L20).
With --zero-based, LINES are editor indices and 0-9 selects lines 1-10.

The workspace root is --workspace, then $GITLINK_WORKSPACE, then the
repository containing the current directory.`,
		Example: `  gitlink copy src/main.go:10-20     # Copy link to lines 10-20
  gitlink copy src/main.go -l L5      # Copy link to line 5
  gitlink copy -p main.go:3           # Print only, leave the clipboard alone
  gitlink copy --remote upstream x:1  # Link into the upstream remote
  gitlink copy -i                     # Pick the file and lines interactively`,
		ValidArgsFunction: completeTrackedFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Empty flags fall back to config, which is validated on load.
			if remoteName != "" {
				if err := config.ValidateRemote(remoteName); err != nil {
					return fmt.Errorf("--remote: %w", err)
				}
			}
			if ref != "" {
				if err := config.ValidateRef(ref); err != nil {
					return fmt.Errorf("--ref: %w", err)
				}
			}

			opts := copyOptions{
				workspace:   workspace,
				remote:      remoteName,
				ref:         ref,
				printOnly:   printOnly,
				interactive: interactive,
			}
			if opts.workspace == "" {
				opts.workspace = os.Getenv(EnvWorkspace)
			}

			var file, argLines string
			if len(args) > 0 {
				file, argLines = selection.SplitTarget(args[0])
			}
			if lines == "" {
				lines = argLines
			}
			opts.target = selection.Target{File: file, Lines: lines, ZeroBased: zeroBased}

			return runCopy(cmd.Context(), opts, defaultCopyDeps())
		},
	}

	cmd.Flags().StringVarP(&lines, "lines", "l", "", "Line range (N, N-M, LN-LM)")
	cmd.Flags().BoolVar(&zeroBased, "zero-based", false, "Line numbers are 0-based editor indices")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (env "+EnvWorkspace+")")
	cmd.Flags().StringVar(&remoteName, "remote", "", "Git remote to link to (default from config, origin)")
	cmd.Flags().StringVar(&ref, "ref", "", "Revision to pin the link to (default from config, HEAD)")
	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Print the link without copying it")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick the file and lines interactively")

	cmd.MarkFlagDirname("workspace")
	cmd.RegisterFlagCompletionFunc("remote", completeRemotes)

	return cmd
}
