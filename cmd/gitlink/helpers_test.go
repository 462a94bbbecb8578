package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/raphi011/gitlink/internal/config"
	"github.com/raphi011/gitlink/internal/git"
	"github.com/raphi011/gitlink/internal/log"
	"github.com/raphi011/gitlink/internal/output"
	"github.com/raphi011/gitlink/internal/selection"
)

// testContext returns a context carrying cfg, a logger writing to stderr and
// a printer writing to stdout.
func testContext(t *testing.T, cfg config.Config) (ctx context.Context, stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}
	ctx = config.WithConfig(context.Background(), &cfg)
	ctx = log.WithLogger(ctx, log.New(stderr, false, false))
	ctx = output.WithPrinter(ctx, stdout)
	return ctx, stdout, stderr
}

// fakeInspector returns canned lookups and records what it was asked.
type fakeInspector struct {
	commit  git.Lookup
	remote  git.Lookup
	refs    []string
	remotes []string
}

func (f *fakeInspector) CommitHash(_ context.Context, _, ref string) git.Lookup {
	f.refs = append(f.refs, ref)
	return f.commit
}

func (f *fakeInspector) RemoteURL(_ context.Context, _, name string) git.Lookup {
	f.remotes = append(f.remotes, name)
	return f.remote
}

// fakeClipboard records every write.
type fakeClipboard struct {
	writes []string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, text)
	return nil
}

// setupWorkspace creates a resolved workspace root containing src/index.ts.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "src"), 0755); err != nil {
		t.Fatalf("failed to create src dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "src", "index.ts"), []byte("x\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return root
}

// testDeps returns copy deps rooted at cwd with no repository discovery
// and no interactive prompts.
func testDeps(cwd string, insp *fakeInspector, cb *fakeClipboard) copyDeps {
	return copyDeps{
		inspector: insp,
		clipboard: cb,
		topLevel: func(context.Context, string) git.Lookup {
			return git.Lookup{Err: errors.New("not a git repository")}
		},
		getwd: func() (string, error) {
			if cwd == "" {
				return "", errors.New("no working directory")
			}
			return cwd, nil
		},
		pickFile: func(context.Context, string) (string, error) {
			return "", errors.New("unexpected file prompt")
		},
		pickLines: func(string) (selection.LineRange, error) {
			return selection.LineRange{}, errors.New("unexpected lines prompt")
		},
	}
}

func okInspector() *fakeInspector {
	return &fakeInspector{
		commit: git.Lookup{Value: "abc123"},
		remote: git.Lookup{Value: "git@github.com:org/repo.git"},
	}
}
