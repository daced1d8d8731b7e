package adapter

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Ning0612/lstree/internal/domain"
)

// Entry is a directory entry discovered by a traversal. Implementations
// must cache the file type at discovery time; only Info touches the
// filesystem again.
type Entry interface {
	// Path is the full path of the entry as discovered
	Path() string

	// Name is the last element of Path; for a symlink it is the name of
	// the link, not of its target
	Name() string

	// Depth is 0 for the root of the traversal, 1 for its children, ...
	Depth() int

	// FileType is the type observed during traversal, without following
	// symlinks
	FileType() domain.FileType

	// Info fetches the entry's metadata without following symlinks. This
	// is the only fallible operation of an entry.
	Info() (fs.FileInfo, error)
}

// SymlinkTarget returns the target of e if it is a symbolic link whose
// target can be read. A failed read is reported the same as "not a link".
func SymlinkTarget(e Entry) (string, bool) {
	if !e.FileType().IsSymlink() {
		return "", false
	}
	target, err := os.Readlink(e.Path())
	if err != nil || target == "" {
		return "", false
	}
	return target, true
}

// TargetName returns the last element of a symlink target, or false when
// the target has no file name (for example "/" or "..").
func TargetName(target string) (string, bool) {
	base := filepath.Base(target)
	switch base {
	case ".", "..", string(filepath.Separator):
		return "", false
	}
	return base, true
}
