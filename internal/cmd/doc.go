// Package cmd runs the git subprocesses behind every link.
//
// Each call runs in an explicit directory, so the workspace decides which
// repository answers rather than the process working directory. On failure
// the trimmed stderr becomes the error text, which is what gets shown when a
// commit or remote lookup fails:
//
//	out, err := cmd.OutputContext(ctx, root, "git", "rev-parse", "HEAD")
//	// err: "fatal: not a git repository (or any of the parent directories): .git"
//
// With --verbose each call is echoed to stderr through the context logger
// as "[dir] $ git args (duration)".
//
// git is invoked as a binary so the user's remotes, insteadOf rewrites and
// worktrees resolve exactly as on the command line.
package cmd
