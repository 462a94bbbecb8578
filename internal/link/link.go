package link

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/gitlink/internal/clipboard"
	"github.com/raphi011/gitlink/internal/git"
	"github.com/raphi011/gitlink/internal/log"
	"github.com/raphi011/gitlink/internal/remote"
	"github.com/raphi011/gitlink/internal/selection"
	"github.com/raphi011/gitlink/internal/workspace"
)

var (
	// ErrNoSelection indicates there is no document or no line range.
	ErrNoSelection = errors.New("no selection")

	// ErrNoWorkspace indicates there is no workspace root or the document lies outside it.
	ErrNoWorkspace = workspace.ErrNoWorkspace

	// ErrNoCommitHash indicates the commit could not be resolved
	// (not a repository, unknown ref, git failed or missing).
	ErrNoCommitHash = errors.New("no commit hash")

	// ErrNoRemote indicates the remote URL could not be read.
	ErrNoRemote = errors.New("no remote url")
)

// Inspector answers the two repository questions a link needs.
// Failures are reported in the Lookup, never as errors.
type Inspector interface {
	CommitHash(ctx context.Context, dir, ref string) git.Lookup
	RemoteURL(ctx context.Context, dir, name string) git.Lookup
}

// Request is everything the pipeline needs, read from the environment once
// per invocation.
type Request struct {
	Target    selection.Target
	Workspace string            // workspace root; empty when none is open
	Base      string            // directory relative document paths are resolved against
	Remote    string            // remote name, origin when empty
	Ref       string            // revision to pin, HEAD when empty
	Hosts     map[string]string // host -> forge name overrides
}

// Link is a composed permalink and the values it was built from.
type Link struct {
	URL       string
	RemoteURL string // browsable repository URL
	Commit    string
	Path      string // workspace-relative, slash separated
	Lines     selection.LineRange
	Forge     string
}

// Build resolves every input of req and composes the permalink.
func Build(ctx context.Context, req Request, insp Inspector) (Link, error) {
	l := log.FromContext(ctx)

	sel, ok, err := selection.Read(req.Target)
	if err != nil {
		return Link{}, err
	}
	if !ok {
		return Link{}, ErrNoSelection
	}

	if req.Workspace == "" {
		return Link{}, ErrNoWorkspace
	}
	rel, ok := workspace.Relative(sel.File, req.Workspace, req.Base)
	if !ok {
		return Link{}, fmt.Errorf("%w: %s is not inside %s", ErrNoWorkspace, sel.File, req.Workspace)
	}

	commit := insp.CommitHash(ctx, req.Workspace, req.Ref)
	if !commit.OK() {
		l.Debug("commit lookup failed", "dir", req.Workspace, "ref", req.Ref, "error", commit.Err)
		return Link{}, ErrNoCommitHash
	}

	origin := insp.RemoteURL(ctx, req.Workspace, req.Remote)
	if !origin.OK() {
		l.Debug("remote lookup failed", "dir", req.Workspace, "remote", req.Remote, "error", origin.Err)
		return Link{}, ErrNoRemote
	}

	browsable := remote.ToHTTPS(origin.Value)
	style := remote.DetectStyle(origin.Value, req.Hosts)
	l.Debug("composing link", "remote", browsable, "commit", commit.Value, "path", rel, "forge", style.Name)

	return Link{
		URL:       ComposeStyle(style, browsable, commit.Value, rel, sel.Lines),
		RemoteURL: browsable,
		Commit:    commit.Value,
		Path:      rel,
		Lines:     sel.Lines,
		Forge:     style.Name,
	}, nil
}

// Copy builds the permalink and writes it to the clipboard.
// The clipboard is only written when Build succeeds.
func Copy(ctx context.Context, req Request, insp Inspector, cb clipboard.Copier) (Link, error) {
	lnk, err := Build(ctx, req, insp)
	if err != nil {
		return Link{}, err
	}
	if err := cb.Copy(lnk.URL); err != nil {
		return lnk, fmt.Errorf("copy to clipboard: %w", err)
	}
	return lnk, nil
}
