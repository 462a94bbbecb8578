// Package workspace locates the workspace root and expresses documents
// relative to it.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoWorkspace indicates that no usable workspace root could be determined.
var ErrNoWorkspace = errors.New("no workspace")

// TopLevelFunc returns the repository root containing dir, or false.
type TopLevelFunc func(dir string) (string, bool)

// Root picks the workspace root. An explicit root (flag or environment) wins
// and must be an existing directory. Otherwise the repository top-level of
// cwd is used when topLevel finds one, and cwd itself as a last resort.
func Root(explicit, cwd string, topLevel TopLevelFunc) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(expandHome(explicit))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoWorkspace, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoWorkspace, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("%w: %s is not a directory", ErrNoWorkspace, abs)
		}
		return abs, nil
	}

	if cwd == "" {
		return "", ErrNoWorkspace
	}
	if topLevel != nil {
		if top, ok := topLevel(cwd); ok {
			return filepath.FromSlash(top), nil
		}
	}
	return cwd, nil
}

// Relative returns doc relative to root using forward slashes and without a
// leading slash. The bool is false when either path is empty or doc lies
// outside root. Relative paths in doc are resolved against base.
func Relative(doc, root, base string) (string, bool) {
	if doc == "" || root == "" {
		return "", false
	}
	if !filepath.IsAbs(doc) {
		doc = filepath.Join(base, doc)
	}

	docAbs, err := filepath.Abs(doc)
	if err != nil {
		return "", false
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	// Only the directory is resolved: a symlinked file keeps its own name.
	docAbs = filepath.Join(resolve(filepath.Dir(docAbs)), filepath.Base(docAbs))
	rootAbs = resolve(rootAbs)

	rel, err := filepath.Rel(rootAbs, docAbs)
	if err != nil {
		return "", false
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return strings.TrimLeft(filepath.ToSlash(rel), "/"), true
}

// resolve follows symlinks where possible so /var and /private/var compare
// equal on macOS. Paths that do not exist are returned cleaned.
func resolve(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return filepath.Clean(path)
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}
