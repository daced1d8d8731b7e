package local

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"

	"github.com/Ning0612/lstree/internal/adapter"
	"github.com/Ning0612/lstree/internal/domain"
	"github.com/Ning0612/lstree/internal/logger"
)

// Options controls which entries a walk yields
type Options struct {
	// Hidden includes dotfiles and dot-directories
	Hidden bool

	// NoIgnore disables .gitignore filtering
	NoIgnore bool

	// MaxDepth stops descending below this depth, 0 for unlimited
	MaxDepth int
}

// Adapter walks a directory tree on the local filesystem
type Adapter struct {
	root   string
	opts   Options
	ignore gitignore.IgnoreMatcher
}

// New creates a new local filesystem adapter rooted at root, which must
// exist. A root that is a file yields a single entry.
func New(root string, opts Options) (*Adapter, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	if _, err := os.Lstat(absRoot); err != nil {
		return nil, mapError(err)
	}

	a := &Adapter{root: absRoot, opts: opts}

	if !opts.NoIgnore {
		gitIgnorePath := filepath.Join(absRoot, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			matcher, err := gitignore.NewGitIgnore(gitIgnorePath, absRoot)
			if err != nil {
				logger.Get().Warn("could not parse .gitignore", "path", gitIgnorePath, "error", err)
			} else {
				a.ignore = matcher
			}
		}
	}

	return a, nil
}

// Root returns the absolute root path of this adapter
func (a *Adapter) Root() string {
	return a.root
}

// Walk calls fn for every entry under the root in lexical order, the root
// included. Unreadable directories are logged and skipped; an error
// returned by fn or a cancelled ctx stops the walk.
func (a *Adapter) Walk(ctx context.Context, fn func(adapter.Entry) error) error {
	log := logger.With("component", "walker")

	return filepath.WalkDir(a.root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if d == nil {
				// The root itself could not be read.
				return mapError(err)
			}
			log.Warn("skipping unreadable directory", "path", path, "error", err)
			return nil
		}

		depth := a.depth(path)
		if depth > 0 {
			if skip := a.skip(path, d); skip {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
		}

		if err := fn(newEntry(path, d, depth)); err != nil {
			return err
		}

		if d.IsDir() && a.opts.MaxDepth > 0 && depth >= a.opts.MaxDepth {
			return fs.SkipDir
		}
		return nil
	})
}

// Collect walks the tree and returns every entry.
func (a *Adapter) Collect(ctx context.Context) ([]adapter.Entry, error) {
	var entries []adapter.Entry
	err := a.Walk(ctx, func(e adapter.Entry) error {
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (a *Adapter) skip(path string, d fs.DirEntry) bool {
	if !a.opts.Hidden && strings.HasPrefix(d.Name(), ".") {
		return true
	}
	if a.ignore != nil && a.ignore.Match(path, d.IsDir()) {
		return true
	}
	return false
}

func (a *Adapter) depth(path string) int {
	rel, err := filepath.Rel(a.root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// entry implements adapter.Entry on top of fs.DirEntry
type entry struct {
	path     string
	name     string
	depth    int
	fileType domain.FileType
	dirEntry fs.DirEntry
}

func newEntry(path string, d fs.DirEntry, depth int) *entry {
	return &entry{
		path:     path,
		name:     d.Name(),
		depth:    depth,
		fileType: domain.FileTypeFromMode(d.Type()),
		dirEntry: d,
	}
}

// NewEntry builds an entry for a single path, fetching its type eagerly.
func NewEntry(path string, depth int) (adapter.Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, mapError(err)
	}
	return newEntry(path, fs.FileInfoToDirEntry(info), depth), nil
}

func (e *entry) Path() string              { return e.path }
func (e *entry) Name() string              { return e.name }
func (e *entry) Depth() int                { return e.depth }
func (e *entry) FileType() domain.FileType { return e.fileType }

// Info returns the lstat metadata of the entry
func (e *entry) Info() (fs.FileInfo, error) {
	info, err := e.dirEntry.Info()
	if err != nil {
		return nil, mapError(err)
	}
	return info, nil
}

// mapError converts OS errors to domain errors, keeping the original in
// the chain
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return errors.Join(domain.ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return errors.Join(domain.ErrPermissionDenied, err)
	}
	return err
}
