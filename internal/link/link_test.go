package link

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/gitlink/internal/git"
	"github.com/raphi011/gitlink/internal/log"
	"github.com/raphi011/gitlink/internal/selection"
)

// fakeInspector returns canned lookups and counts calls.
type fakeInspector struct {
	commit git.Lookup
	remote git.Lookup
	calls  int
	dirs   []string
}

func (f *fakeInspector) CommitHash(_ context.Context, dir, _ string) git.Lookup {
	f.calls++
	f.dirs = append(f.dirs, dir)
	return f.commit
}

func (f *fakeInspector) RemoteURL(_ context.Context, dir, _ string) git.Lookup {
	f.calls++
	f.dirs = append(f.dirs, dir)
	return f.remote
}

func okInspector() *fakeInspector {
	return &fakeInspector{
		commit: git.Lookup{Value: "abc123"},
		remote: git.Lookup{Value: "git@github.com:org/repo.git"},
	}
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

// setupWorkspace creates a workspace root containing src/index.ts.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "src", "index.ts"), []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestBuild(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ssh remote", func(t *testing.T) {
		t.Parallel()
		root := setupWorkspace(t)
		insp := okInspector()
		req := Request{
			Target:    selection.Target{File: filepath.Join(root, "src", "index.ts"), Lines: "10-20"},
			Workspace: root,
		}

		got, err := Build(ctx, req, insp)
		if err != nil {
			t.Fatalf("Build() = %v", err)
		}
		want := "https://github.com/org/repo/blob/abc123/src/index.ts#L10-L20"
		if got.URL != want {
			t.Errorf("Build().URL = %q, want %q", got.URL, want)
		}
		if got.RemoteURL != "https://github.com/org/repo" {
			t.Errorf("Build().RemoteURL = %q, want %q", got.RemoteURL, "https://github.com/org/repo")
		}
		if got.Path != "src/index.ts" || got.Commit != "abc123" || got.Lines != (selection.LineRange{Start: 10, End: 20}) {
			t.Errorf("Build() = %+v, unexpected fields", got)
		}
		for _, dir := range insp.dirs {
			if dir != root {
				t.Errorf("inspector ran in %q, want workspace root %q", dir, root)
			}
		}
	})

	t.Run("relative document resolved against base", func(t *testing.T) {
		t.Parallel()
		root := setupWorkspace(t)
		req := Request{
			Target:    selection.Target{File: "index.ts", Lines: "L5"},
			Workspace: root,
			Base:      filepath.Join(root, "src"),
		}
		got, err := Build(ctx, req, okInspector())
		if err != nil {
			t.Fatalf("Build() = %v", err)
		}
		if want := "https://github.com/org/repo/blob/abc123/src/index.ts#L5-L5"; got.URL != want {
			t.Errorf("Build().URL = %q, want %q", got.URL, want)
		}
	})

	t.Run("host map selects forge layout", func(t *testing.T) {
		t.Parallel()
		root := setupWorkspace(t)
		insp := okInspector()
		insp.remote = git.Lookup{Value: "git@code.corp:team/repo.git"}
		req := Request{
			Target:    selection.Target{File: filepath.Join(root, "src", "index.ts"), Lines: "1-2"},
			Workspace: root,
			Hosts:     map[string]string{"code.corp": "gitlab"},
		}
		got, err := Build(ctx, req, insp)
		if err != nil {
			t.Fatalf("Build() = %v", err)
		}
		if want := "https://code.corp/team/repo/-/blob/abc123/src/index.ts#L1-2"; got.URL != want {
			t.Errorf("Build().URL = %q, want %q", got.URL, want)
		}
		if got.Forge != "gitlab" {
			t.Errorf("Build().Forge = %q, want gitlab", got.Forge)
		}
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		root := setupWorkspace(t)
		file := filepath.Join(root, "src", "index.ts")

		failing := errors.New("fatal: not a git repository")
		tests := []struct {
			name    string
			req     Request
			insp    *fakeInspector
			wantErr error
		}{
			{
				name:    "no file",
				req:     Request{Target: selection.Target{Lines: "1"}, Workspace: root},
				insp:    okInspector(),
				wantErr: ErrNoSelection,
			},
			{
				name:    "no lines",
				req:     Request{Target: selection.Target{File: file}, Workspace: root},
				insp:    okInspector(),
				wantErr: ErrNoSelection,
			},
			{
				name:    "malformed lines",
				req:     Request{Target: selection.Target{File: file, Lines: "9-1"}, Workspace: root},
				insp:    okInspector(),
				wantErr: selection.ErrInvalidRange,
			},
			{
				name:    "no workspace",
				req:     Request{Target: selection.Target{File: file, Lines: "1"}},
				insp:    okInspector(),
				wantErr: ErrNoWorkspace,
			},
			{
				name:    "document outside workspace",
				req:     Request{Target: selection.Target{File: "/elsewhere/file.go", Lines: "1"}, Workspace: root},
				insp:    okInspector(),
				wantErr: ErrNoWorkspace,
			},
			{
				name:    "commit lookup fails",
				req:     Request{Target: selection.Target{File: file, Lines: "1"}, Workspace: root},
				insp:    &fakeInspector{commit: git.Lookup{Err: failing}, remote: git.Lookup{Value: "git@github.com:o/r.git"}},
				wantErr: ErrNoCommitHash,
			},
			{
				name:    "remote lookup fails",
				req:     Request{Target: selection.Target{File: file, Lines: "1"}, Workspace: root},
				insp:    &fakeInspector{commit: git.Lookup{Value: "abc"}, remote: git.Lookup{Err: failing}},
				wantErr: ErrNoRemote,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				_, err := Build(ctx, tt.req, tt.insp)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
				}
			})
		}
	})

	t.Run("inspector not called without selection", func(t *testing.T) {
		t.Parallel()
		insp := okInspector()
		if _, err := Build(ctx, Request{Workspace: setupWorkspace(t)}, insp); !errors.Is(err, ErrNoSelection) {
			t.Fatalf("Build() error = %v, want ErrNoSelection", err)
		}
		if insp.calls != 0 {
			t.Errorf("inspector called %d times, want 0", insp.calls)
		}
	})
}

func TestBuild_VerboseDiagnostics(t *testing.T) {
	t.Parallel()

	root := setupWorkspace(t)
	file := filepath.Join(root, "src", "index.ts")

	tests := []struct {
		name    string
		insp    *fakeInspector
		wantErr error
		want    string
	}{
		{
			name:    "commit lookup failed",
			insp:    &fakeInspector{commit: git.Lookup{Err: errors.New("fatal: bad revision 'v9'")}},
			wantErr: ErrNoCommitHash,
			want:    "commit lookup failed dir=" + root + " ref=v9 error=fatal: bad revision 'v9'\n",
		},
		{
			name:    "remote lookup failed",
			insp:    &fakeInspector{commit: git.Lookup{Value: "abc123"}, remote: git.Lookup{Err: errors.New("error: No such remote 'fork'")}},
			wantErr: ErrNoRemote,
			want:    "remote lookup failed dir=" + root + " remote=fork error=error: No such remote 'fork'\n",
		},
		{
			name: "composing link",
			insp: okInspector(),
			want: "composing link remote=https://github.com/org/repo commit=abc123 path=src/index.ts forge=github\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))
			req := Request{
				Target:    selection.Target{File: file, Lines: "1"},
				Workspace: root,
				Ref:       "v9",
				Remote:    "fork",
			}

			_, err := Build(ctx, req, tt.insp)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("verbose log = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("silent without verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := log.WithLogger(context.Background(), log.New(&buf, false, false))
		insp := &fakeInspector{commit: git.Lookup{Err: errors.New("fatal: not a git repository")}}
		if _, err := Build(ctx, Request{Target: selection.Target{File: file, Lines: "1"}, Workspace: root}, insp); !errors.Is(err, ErrNoCommitHash) {
			t.Fatalf("Build() error = %v, want ErrNoCommitHash", err)
		}
		if strings.Contains(buf.String(), "lookup failed") {
			t.Errorf("log = %q, want nothing without verbose", buf.String())
		}
	})
}

func TestCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("writes link once", func(t *testing.T) {
		t.Parallel()
		root := setupWorkspace(t)
		cb := &fakeClipboard{}
		req := Request{Target: selection.Target{File: filepath.Join(root, "src", "index.ts"), Lines: "10-20"}, Workspace: root}

		got, err := Copy(ctx, req, okInspector(), cb)
		if err != nil {
			t.Fatalf("Copy() = %v", err)
		}
		if len(cb.writes) != 1 || cb.writes[0] != got.URL {
			t.Errorf("clipboard writes = %v, want [%q]", cb.writes, got.URL)
		}
	})

	t.Run("no workspace writes nothing", func(t *testing.T) {
		t.Parallel()
		cb := &fakeClipboard{}
		req := Request{Target: selection.Target{File: "src/index.ts", Lines: "1"}}
		if _, err := Copy(ctx, req, okInspector(), cb); !errors.Is(err, ErrNoWorkspace) {
			t.Fatalf("Copy() error = %v, want ErrNoWorkspace", err)
		}
		if len(cb.writes) != 0 {
			t.Errorf("clipboard writes = %v, want none", cb.writes)
		}
	})

	t.Run("no selection writes nothing", func(t *testing.T) {
		t.Parallel()
		root := setupWorkspace(t)
		cb := &fakeClipboard{}
		req := Request{Target: selection.Target{File: filepath.Join(root, "src", "index.ts")}, Workspace: root}
		if _, err := Copy(ctx, req, okInspector(), cb); !errors.Is(err, ErrNoSelection) {
			t.Fatalf("Copy() error = %v, want ErrNoSelection", err)
		}
		if len(cb.writes) != 0 {
			t.Errorf("clipboard writes = %v, want none", cb.writes)
		}
	})

	t.Run("failed commit lookup writes nothing", func(t *testing.T) {
		t.Parallel()
		root := setupWorkspace(t)
		cb := &fakeClipboard{}
		insp := &fakeInspector{commit: git.Lookup{Err: errors.New("git: not found")}}
		req := Request{Target: selection.Target{File: filepath.Join(root, "src", "index.ts"), Lines: "1"}, Workspace: root}
		if _, err := Copy(ctx, req, insp, cb); !errors.Is(err, ErrNoCommitHash) {
			t.Fatalf("Copy() error = %v, want ErrNoCommitHash", err)
		}
		if len(cb.writes) != 0 {
			t.Errorf("clipboard writes = %v, want none", cb.writes)
		}
	})

	t.Run("clipboard failure keeps link", func(t *testing.T) {
		t.Parallel()
		root := setupWorkspace(t)
		cb := &fakeClipboard{err: errors.New("no display")}
		req := Request{Target: selection.Target{File: filepath.Join(root, "src", "index.ts"), Lines: "1"}, Workspace: root}
		got, err := Copy(ctx, req, okInspector(), cb)
		if err == nil {
			t.Fatal("Copy() = nil error, want clipboard failure")
		}
		if got.URL == "" {
			t.Error("Copy() dropped the link on clipboard failure")
		}
	})
}
