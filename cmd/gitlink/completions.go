package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitlink/internal/git"
)

func completionContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// completeTrackedFiles completes the FILE argument with files git tracks
// below the current directory.
func completeTrackedFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}
	files, err := git.TrackedFiles(completionContext(cmd), cwd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}
	return files, cobra.ShellCompDirectiveNoFileComp
}

// completeRemotes completes --remote with the repository's remotes.
func completeRemotes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	remotes, err := git.Remotes(completionContext(cmd), cwd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return remotes, cobra.ShellCompDirectiveNoFileComp
}
