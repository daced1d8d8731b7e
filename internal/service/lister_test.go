package service

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Ning0612/lstree/internal/config"
	"github.com/Ning0612/lstree/internal/domain"
	"github.com/Ning0612/lstree/internal/platform"
	"github.com/Ning0612/lstree/internal/progress"
	"github.com/Ning0612/lstree/internal/testutil"
)

func testConfig(t *testing.T, dir string) *config.Context {
	t.Helper()

	cfg := config.Default()
	cfg.Dir = dir
	cfg.DisableColor = true
	cfg.Threads = 4
	cfg.Platform = platform.Unsupported{}
	cfg.IsTTY = func() bool { return false }
	if err := cfg.Resolve(); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return cfg
}

func TestNewListService_NilConfig(t *testing.T) {
	if _, err := NewListService(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestListService_Run(t *testing.T) {
	dir := t.TempDir()
	testutil.Tree(t, dir, map[string]string{
		".gitignore":  "*.tmp\n",
		"notes.txt":   strings.Repeat("x", 1536),
		"scratch.tmp": "ignored",
		"src/":        "",
		"src/main.go": "package main\n",
	})

	svc, err := NewListService(testConfig(t, dir))
	if err != nil {
		t.Fatalf("NewListService() error = %v", err)
	}

	var buf bytes.Buffer
	stats, err := svc.Run(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"  1.50 KiB ├── notes.txt", "└── src", "    └── main.go", "1 directory, 2 files"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "scratch.tmp") || strings.Contains(out, ".gitignore") {
		t.Errorf("Expected ignored and hidden files filtered:\n%s", out)
	}
	if strings.Contains(out, "\x1b") {
		t.Errorf("Expected no escape sequences:\n%s", out)
	}
	if stats.Dirs != 1 || stats.Files != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestListService_Level(t *testing.T) {
	dir := t.TempDir()
	testutil.Tree(t, dir, map[string]string{
		"a/":      "",
		"a/b/":    "",
		"a/b/c":   "deep",
		"top.txt": "t",
	})

	cfg := testConfig(t, dir)
	cfg.Level = 1

	svc, err := NewListService(cfg)
	if err != nil {
		t.Fatalf("NewListService() error = %v", err)
	}
	tr, err := svc.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := len(tr.Children(tr.Root())); got != 2 {
		t.Errorf("Expected 2 children at depth 1, got %d", got)
	}
	if got := len(tr.Children(tr.Children(tr.Root())[0])); got != 0 {
		t.Errorf("Expected nothing below the level limit, got %d", got)
	}
}

func TestListService_Progress(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		testutil.CreateTestFile(t, dir, name, []byte(name))
	}

	svc, err := NewListService(testConfig(t, dir))
	if err != nil {
		t.Fatalf("NewListService() error = %v", err)
	}

	var mu sync.Mutex
	var last progress.Update
	built := 0
	svc.SetProgressReporter(progress.NewCallbackReporter(func(u progress.Update) {
		mu.Lock()
		defer mu.Unlock()
		if u.Type == progress.UpdateBuilt {
			built++
		}
		last = u
	}))

	if _, err := svc.Build(context.Background()); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if built != 6 {
		t.Errorf("Expected 6 built entries (root included), got %d", built)
	}
	if last.Type != progress.UpdateDone || last.Total != 6 || last.Completed != 6 {
		t.Errorf("Unexpected final update: %+v", last)
	}
}

func TestListService_MissingDir(t *testing.T) {
	svc, err := NewListService(testConfig(t, filepath.Join(t.TempDir(), "missing")))
	if err != nil {
		t.Fatalf("NewListService() error = %v", err)
	}

	if _, err := svc.Run(context.Background(), &bytes.Buffer{}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListService_Cancelled(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateTestFile(t, dir, "a", nil)

	svc, err := NewListService(testConfig(t, dir))
	if err != nil {
		t.Fatalf("NewListService() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Build(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
