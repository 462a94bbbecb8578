package main

import (
	"errors"

	"github.com/raphi011/gitlink/internal/clipboard"
	"github.com/raphi011/gitlink/internal/link"
	"github.com/raphi011/gitlink/internal/selection"
	"github.com/raphi011/gitlink/internal/ui"
)

// errorHint returns a suggestion for fixing err, or "" if there is none.
func errorHint(err error) string {
	switch {
	case errors.Is(err, link.ErrNoSelection):
		return "Pass a file and line range: gitlink copy src/main.go:10-20 (or -i to pick)"
	case errors.Is(err, selection.ErrInvalidRange):
		return "Lines are N, N-M or LN-LM, 1-based and in ascending order"
	case errors.Is(err, link.ErrNoWorkspace):
		return "Run inside a git repository or pass --workspace"
	case errors.Is(err, link.ErrNoCommitHash):
		return "The workspace must be a git repository with at least one commit"
	case errors.Is(err, link.ErrNoRemote):
		return "Add the remote with: git remote add origin <url> (or pass --remote)"
	case errors.Is(err, clipboard.ErrUnavailable):
		return "Use --print to skip the clipboard"
	case errors.Is(err, errCancelled):
		return ""
	}
	return "Run 'gitlink -h' for help"
}

// reportError writes err and a hint for fixing it.
func reportError(n *ui.Notifier, err error) {
	n.Error("%v", err)
	if hint := errorHint(err); hint != "" {
		n.Hint("%s", hint)
	}
}
