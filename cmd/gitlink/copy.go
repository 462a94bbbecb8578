package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/gitlink/internal/clipboard"
	"github.com/raphi011/gitlink/internal/config"
	"github.com/raphi011/gitlink/internal/git"
	"github.com/raphi011/gitlink/internal/link"
	"github.com/raphi011/gitlink/internal/log"
	"github.com/raphi011/gitlink/internal/output"
	"github.com/raphi011/gitlink/internal/selection"
	"github.com/raphi011/gitlink/internal/ui"
	"github.com/raphi011/gitlink/internal/ui/picker"
	"github.com/raphi011/gitlink/internal/ui/prompt"
	"github.com/raphi011/gitlink/internal/workspace"
)

// errCancelled is returned when the user aborts an interactive prompt.
var errCancelled = errors.New("cancelled")

type copyOptions struct {
	target      selection.Target
	workspace   string // explicit root from flag or environment
	remote      string
	ref         string
	printOnly   bool
	interactive bool
}

// copyDeps are the side effects of the copy command.
type copyDeps struct {
	inspector link.Inspector
	clipboard clipboard.Copier
	topLevel  func(ctx context.Context, dir string) git.Lookup
	getwd     func() (string, error)
	pickFile  func(ctx context.Context, root string) (string, error)
	pickLines func(file string) (selection.LineRange, error)
}

func defaultCopyDeps() copyDeps {
	return copyDeps{
		inspector: git.CLI{},
		clipboard: clipboard.System{},
		topLevel:  git.TopLevel,
		getwd:     os.Getwd,
		pickFile:  pickFile,
		pickLines: pickLines,
	}
}

func runCopy(ctx context.Context, opts copyOptions, deps copyDeps) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	cwd, err := deps.getwd()
	if err != nil {
		l.Debug("working directory unavailable", "error", err)
		cwd = ""
	}

	root, rootErr := workspace.Root(opts.workspace, cwd, func(dir string) (string, bool) {
		top := deps.topLevel(ctx, dir)
		return top.Value, top.OK()
	})
	if rootErr != nil {
		l.Debug("no workspace root", "error", rootErr)
	}
	l.Debug("resolved workspace", "root", root, "cwd", cwd)

	cfg := config.FromContext(ctx)
	if root != "" {
		merged, err := config.ForWorkspace(cfg, root)
		if err != nil {
			l.Printf("Warning: %v (using global config)\n", err)
		} else {
			cfg = merged
		}
	}

	target := opts.target
	if opts.interactive && root != "" {
		if target, err = completeTarget(ctx, target, root, deps); err != nil {
			return err
		}
	}

	req := link.Request{
		Target:    target,
		Workspace: root,
		Base:      cwd,
		Remote:    firstNonEmpty(opts.remote, cfg.Remote),
		Ref:       firstNonEmpty(opts.ref, cfg.Ref),
		Hosts:     cfg.Hosts,
	}

	var lnk link.Link
	if opts.printOnly {
		lnk, err = link.Build(ctx, req, deps.inspector)
	} else {
		lnk, err = link.Copy(ctx, req, deps.inspector, deps.clipboard)
	}

	// Copy returns the link when only the clipboard write failed.
	if lnk.URL != "" {
		out.Link(lnk.URL, cfg.Hyperlink)
	}

	if err != nil {
		switch {
		case errors.Is(err, link.ErrNoWorkspace) && rootErr != nil:
			return rootErr
		case errors.Is(err, link.ErrNoCommitHash):
			return diagnoseCommit(ctx, err, root)
		}
		return err
	}

	if !opts.printOnly {
		ui.NewNotifier(l.Writer(), l.IsQuiet()).Success("Copied permalink to %s", lnk.RemoteURL)
	}
	return nil
}

// completeTarget fills the file and line range the user left out by prompting.
func completeTarget(ctx context.Context, t selection.Target, root string, deps copyDeps) (selection.Target, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return t, fmt.Errorf("--interactive requires a terminal")
	}

	if t.File == "" {
		file, err := deps.pickFile(ctx, root)
		if err != nil {
			return t, err
		}
		t.File = file
	}
	if t.Lines == "" {
		lines, err := deps.pickLines(t.File)
		if err != nil {
			return t, err
		}
		t.Lines = lines.String()
		t.ZeroBased = false
	}
	return t, nil
}

// diagnoseCommit adds the most likely reason to a failed commit lookup.
func diagnoseCommit(ctx context.Context, err error, root string) error {
	if gitErr := git.CheckGit(); gitErr != nil {
		return fmt.Errorf("%w: %w", err, gitErr)
	}
	if !git.IsInsideRepoPath(ctx, root) {
		return fmt.Errorf("%w: %s is not a git repository", err, root)
	}
	return err
}

func pickFile(ctx context.Context, root string) (string, error) {
	files, err := git.TrackedFiles(ctx, root)
	if err != nil {
		return "", fmt.Errorf("list files: %w", err)
	}
	res, err := picker.Run("Pick a file", files)
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", errCancelled
	}
	return filepath.Join(root, filepath.FromSlash(res.File)), nil
}

func pickLines(file string) (selection.LineRange, error) {
	res, err := prompt.Lines("Lines of " + filepath.Base(file))
	if err != nil {
		return selection.LineRange{}, err
	}
	if res.Cancelled {
		return selection.LineRange{}, errCancelled
	}
	return res.Lines, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
