package local

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/Ning0612/lstree/internal/adapter"
	"github.com/Ning0612/lstree/internal/domain"
	"github.com/Ning0612/lstree/internal/testutil"
)

func layout(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	testutil.Tree(t, root, map[string]string{
		".gitignore":      "*.log\nbuild/\n",
		".hidden/":        "",
		".hidden/secret":  "x",
		"a.txt":           "a",
		"debug.log":       "noise",
		"build/":          "",
		"build/out.bin":   "bin",
		"src/":            "",
		"src/main.go":     "package main",
		"src/pkg/":        "",
		"src/pkg/lib.go":  "package pkg",
		"src/pkg/lib.log": "noise",
	})
	return root
}

func relPaths(t *testing.T, root string, entries []adapter.Entry) []string {
	t.Helper()

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		rel, err := filepath.Rel(root, e.Path())
		if err != nil {
			t.Fatalf("Rel error = %v", err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestAdapter_WalkDefaults(t *testing.T) {
	root := layout(t)

	a, err := New(root, Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	entries, err := a.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	expected := []string{".", "a.txt", "src", "src/main.go", "src/pkg", "src/pkg/lib.go"}
	if got := relPaths(t, root, entries); !slices.Equal(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	depths := map[string]int{}
	for _, e := range entries {
		depths[e.Name()] = e.Depth()
	}
	if depths["a.txt"] != 1 || depths["lib.go"] != 3 {
		t.Errorf("Unexpected depths: %v", depths)
	}
	if entries[0].Depth() != 0 || !entries[0].FileType().IsDir() {
		t.Errorf("Expected root first at depth 0, got %+v", entries[0])
	}
}

func TestAdapter_WalkHiddenNoIgnore(t *testing.T) {
	root := layout(t)

	a, err := New(root, Options{Hidden: true, NoIgnore: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	entries, err := a.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	got := relPaths(t, root, entries)
	for _, want := range []string{".gitignore", ".hidden/secret", "debug.log", "build/out.bin", "src/pkg/lib.log"} {
		if !slices.Contains(got, want) {
			t.Errorf("Expected %s in %v", want, got)
		}
	}
}

func TestAdapter_WalkMaxDepth(t *testing.T) {
	root := layout(t)

	a, err := New(root, Options{MaxDepth: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	entries, err := a.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	expected := []string{".", "a.txt", "src"}
	if got := relPaths(t, root, entries); !slices.Equal(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestAdapter_WalkStopsOnCallbackError(t *testing.T) {
	root := layout(t)

	a, err := New(root, Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	stop := errors.New("stop")
	calls := 0
	err = a.Walk(context.Background(), func(adapter.Entry) error {
		calls++
		if calls == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || calls != 2 {
		t.Errorf("Expected walk to stop after 2 calls with stop error, got %d calls, err %v", calls, err)
	}
}

func TestAdapter_WalkCancelled(t *testing.T) {
	root := layout(t)

	a, err := New(root, Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.Collect(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestNew_MissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"), Options{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestNewEntry(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateTestFile(t, dir, "file.txt", []byte("hello"))
	link := testutil.CreateSymlink(t, path, filepath.Join(dir, "link"))

	e, err := NewEntry(path, 1)
	if err != nil {
		t.Fatalf("NewEntry() error = %v", err)
	}
	if e.Name() != "file.txt" || e.Depth() != 1 || e.FileType() != domain.FileTypeRegular {
		t.Errorf("Unexpected entry: %s %d %s", e.Name(), e.Depth(), e.FileType())
	}
	info, err := e.Info()
	if err != nil || info.Size() != 5 {
		t.Errorf("Expected size 5, got %v (err %v)", info, err)
	}

	le, err := NewEntry(link, 1)
	if err != nil {
		t.Fatalf("NewEntry(link) error = %v", err)
	}
	if le.FileType() != domain.FileTypeSymlink {
		t.Errorf("Expected symlink type, got %s", le.FileType())
	}
	if target, ok := adapter.SymlinkTarget(le); !ok || target != path {
		t.Errorf("Expected target %s, got %s", path, target)
	}

	if _, err := NewEntry(filepath.Join(dir, "missing"), 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestTargetName(t *testing.T) {
	tests := []struct {
		target string
		name   string
		ok     bool
	}{
		{"/usr/lib/libc.so", "libc.so", true},
		{"relative/file.rs", "file.rs", true},
		{"/", "", false},
		{"..", "", false},
	}

	for _, tt := range tests {
		name, ok := adapter.TargetName(tt.target)
		if name != tt.name || ok != tt.ok {
			t.Errorf("TargetName(%q) = %q, %v; expected %q, %v", tt.target, name, ok, tt.name, tt.ok)
		}
	}
}
