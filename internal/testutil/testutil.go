package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with the given content, creating
// parent directories as needed
func CreateTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	return path
}

// CreateTestFileWithSize creates a test file of exactly size bytes
func CreateTestFileWithSize(t *testing.T, dir, name string, size int64) string {
	t.Helper()

	path := CreateTestFile(t, dir, name, nil)
	if err := os.Truncate(path, size); err != nil {
		t.Fatalf("failed to size test file: %v", err)
	}

	return path
}

// CreateSymlink creates newname pointing at target, skipping the test where
// the platform or user cannot create links
func CreateSymlink(t *testing.T, target, newname string) string {
	t.Helper()

	if err := os.Symlink(target, newname); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	return newname
}

// Tree lays out a directory tree under root. Keys ending in "/" are
// directories; every other key is a file holding its value.
func Tree(t *testing.T, root string, layout map[string]string) {
	t.Helper()

	keys := make([]string, 0, len(layout))
	for k := range layout {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if strings.HasSuffix(k, "/") {
			if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(k)), 0755); err != nil {
				t.Fatalf("failed to create dir %s: %v", k, err)
			}
			continue
		}
		CreateTestFile(t, root, filepath.FromSlash(k), []byte(layout[k]))
	}
}
