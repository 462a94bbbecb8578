// Package link builds permalinks to line ranges of files in a repository.
//
// A permalink pins a file to a commit so it keeps pointing at the same code
// after the branch moves on:
//
//	https://github.com/org/repo/blob/<commit>/<path>#L<start>-L<end>
//
// [Compose] is the pure string transform. [Build] runs the whole pipeline
// over an explicit [Request]: it reads the selection, resolves the document
// against the workspace root, asks an [Inspector] for the commit and the
// remote, and composes the URL. [Copy] additionally hands the result to a
// clipboard, and only when every step succeeded.
//
// Each missing input maps to one sentinel error, so callers can report it
// with [errors.Is]:
//
//   - [ErrNoSelection]: no document or no line range
//   - [ErrNoWorkspace]: no workspace root, or the document is outside it
//   - [ErrNoCommitHash]: the commit could not be resolved
//   - [ErrNoRemote]: the remote URL could not be read
package link
