package git

import (
	"context"
	"strings"
)

// DefaultRef is the revision pinned when none is configured.
const DefaultRef = "HEAD"

// DefaultRemote is the remote read when none is configured.
const DefaultRemote = "origin"

// Lookup is the outcome of a single git query: either a value or the reason
// it could not be obtained. A failed query is an expected condition (not a
// repository, no such remote, git missing) and is never returned as an error.
type Lookup struct {
	Value string
	Err   error
}

// OK reports whether the lookup produced a non-empty value.
func (l Lookup) OK() bool {
	return l.Err == nil && l.Value != ""
}

func lookup(ctx context.Context, dir string, args ...string) Lookup {
	out, err := outputGit(ctx, dir, args...)
	if err != nil {
		return Lookup{Err: err}
	}
	return Lookup{Value: strings.TrimSpace(string(out))}
}

// CommitHash resolves ref (HEAD when empty) to a full commit hash
// via "git rev-parse".
func CommitHash(ctx context.Context, dir, ref string) Lookup {
	if ref == "" {
		ref = DefaultRef
	}
	return lookup(ctx, dir, "rev-parse", "--verify", ref+"^{commit}")
}

// RemoteURL returns the configured URL of the named remote (origin when empty)
// via "git remote get-url".
func RemoteURL(ctx context.Context, dir, name string) Lookup {
	if name == "" {
		name = DefaultRemote
	}
	return lookup(ctx, dir, "remote", "get-url", name)
}

// TopLevel returns the root of the work tree containing dir.
func TopLevel(ctx context.Context, dir string) Lookup {
	return lookup(ctx, dir, "rev-parse", "--show-toplevel")
}

// TrackedFiles lists files tracked in the work tree at dir, relative to dir.
// Paths are read NUL-separated so non-ASCII names are not C-quoted.
func TrackedFiles(ctx context.Context, dir string) ([]string, error) {
	out, err := outputGit(ctx, dir, "ls-files", "-z")
	if err != nil {
		return nil, err
	}
	var files []string
	for _, name := range strings.Split(string(out), "\x00") {
		if name != "" {
			files = append(files, name)
		}
	}
	return files, nil
}

// CLI answers repository queries by shelling out to the git binary.
type CLI struct{}

// CommitHash implements link.Inspector.
func (CLI) CommitHash(ctx context.Context, dir, ref string) Lookup {
	return CommitHash(ctx, dir, ref)
}

// RemoteURL implements link.Inspector.
func (CLI) RemoteURL(ctx context.Context, dir, name string) Lookup {
	return RemoteURL(ctx, dir, name)
}

// Remotes lists the names of the remotes configured for the repository at dir.
func Remotes(ctx context.Context, dir string) ([]string, error) {
	out, err := outputGit(ctx, dir, "remote")
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(out)), nil
}
