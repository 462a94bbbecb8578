// Package git answers the handful of repository questions gitlink needs by
// calling the git CLI.
//
// All operations use [os/exec.Command] to call the git CLI directly rather than
// using Go git libraries. This ensures compatibility with user configurations
// (url.insteadOf rewrites, worktrees, safe.directory).
//
// # Queries
//
//   - [CommitHash]: "git rev-parse <ref>" for the commit to pin the link to
//   - [RemoteURL]: "git remote get-url <name>" for the hosting URL
//   - [TopLevel]: "git rev-parse --show-toplevel" for workspace discovery
//   - [TrackedFiles]: "git ls-files -z" for the interactive picker
//   - [Remotes]: "git remote" for shell completion
//
// Queries return a [Lookup] rather than an error: a directory that is not a
// repository, a missing remote or a missing git binary are expected outcomes
// that callers branch on.
package git
