// Package node turns a discovered directory entry into a display-ready
// value: metadata, size, style, icon, symlink target, inode and extended
// attributes are resolved once at construction. Only the size may change
// afterwards, and only once.
package node

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/Ning0612/lstree/internal/adapter"
	"github.com/Ning0612/lstree/internal/config"
	"github.com/Ning0612/lstree/internal/disk"
	"github.com/Ning0612/lstree/internal/domain"
	"github.com/Ning0612/lstree/internal/fsmode"
	"github.com/Ning0612/lstree/internal/platform"
	"github.com/Ning0612/lstree/internal/styles"
)

// Node is one filesystem entry ready for display
type Node struct {
	entry adapter.Entry
	info  fs.FileInfo

	style  *styles.Color
	icon   *icon
	target string // empty unless the entry is a readable symlink
	inode  *platform.Inode

	// xattrs is nil when the platform cannot list attributes or the
	// listing is not in long format
	xattrs []string

	mu        sync.RWMutex
	size      *disk.FileSize
	finalized bool
}

// New builds a Node from entry. Fetching metadata is the only step that can
// fail; it returns a *domain.MetadataError. Every other lookup degrades to
// absence.
func New(entry adapter.Entry, ctx *config.Context) (*Node, error) {
	path := entry.Path()

	target, _ := adapter.SymlinkTarget(entry)

	info, err := entry.Info()
	if err != nil {
		return nil, &domain.MetadataError{Path: path, Err: err}
	}

	n := &Node{
		entry:  entry,
		info:   info,
		target: target,
	}

	n.style = resolveStyle(path, info, ctx)

	if entry.FileType().IsFile() && !ctx.SuppressSize {
		n.size = resolveSize(info, ctx)
	}

	if ctx.Icons && ctx.IconTable != nil {
		n.icon = computeIcon(entry, target, n.style, ctx)
	}

	if ctx.Platform != nil {
		if ino, ok := ctx.Platform.Inode(info); ok {
			n.inode = &ino
		}
		if ctx.Long {
			if names, ok := ctx.Platform.Xattrs(path); ok {
				n.xattrs = names
			}
		}
	}

	return n, nil
}

func resolveStyle(path string, info fs.FileInfo, ctx *config.Context) *styles.Color {
	if ctx.NoColor() || ctx.Styles == nil {
		return nil
	}
	c, ok := ctx.Styles.StyleFor(path, info)
	if !ok || c.IsZero() {
		return nil
	}
	return &c
}

func resolveSize(info fs.FileInfo, ctx *config.Context) *disk.FileSize {
	if ctx.DiskUsage == disk.Physical {
		if ctx.Platform == nil {
			return nil
		}
		return disk.FromBlocks(info, ctx.Platform, ctx.Unit, ctx.Scale)
	}
	size := disk.FromInfo(info, ctx.Unit, ctx.Scale)
	return &size
}

// Name is the file name of the entry; for a symlink, the name of the link
func (n *Node) Name() string {
	return n.entry.Name()
}

// Path is the full path of the entry
func (n *Node) Path() string {
	return n.entry.Path()
}

// ParentPath is the directory containing the entry
func (n *Node) ParentPath() string {
	return filepath.Dir(n.entry.Path())
}

// Depth is 0 for the root of the listing
func (n *Node) Depth() int {
	return n.entry.Depth()
}

// FileType is the type recorded at discovery, without following symlinks
func (n *Node) FileType() domain.FileType {
	return n.entry.FileType()
}

// Info is the metadata snapshot taken at construction
func (n *Node) Info() fs.FileInfo {
	return n.info
}

func (n *Node) IsDir() bool {
	return n.entry.FileType().IsDir()
}

// IsSymlink reports whether the entry is a symlink whose target was read.
// A link with an unreadable target is indistinguishable from a plain file.
func (n *Node) IsSymlink() bool {
	return n.target != ""
}

// SymlinkTarget returns the raw link target
func (n *Node) SymlinkTarget() (string, bool) {
	return n.target, n.target != ""
}

// SymlinkTargetName returns the last element of the link target
func (n *Node) SymlinkTargetName() (string, bool) {
	if n.target == "" {
		return "", false
	}
	return adapter.TargetName(n.target)
}

// FileSize returns the size of the entry, if it has one
func (n *Node) FileSize() (disk.FileSize, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.size == nil {
		return disk.FileSize{}, false
	}
	return *n.size, true
}

// SetFileSize assigns the size computed after construction, for instance a
// directory's aggregate. It may be called once; later calls return
// domain.ErrSizeFinalized and leave the size unchanged.
func (n *Node) SetFileSize(size disk.FileSize) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.finalized {
		return domain.ErrSizeFinalized
	}
	n.size = &size
	n.finalized = true
	return nil
}

// Icon returns the rendered icon, painted when colour applied at
// construction
func (n *Node) Icon() (string, bool) {
	if n.icon == nil {
		return "", false
	}
	return n.icon.text, true
}

// Inode returns the platform inode of the entry, if any
func (n *Node) Inode() (platform.Inode, bool) {
	if n.inode == nil {
		return platform.Inode{}, false
	}
	return *n.inode, true
}

// Mode returns the `ls -l` symbolic notation of the entry's mode bits.
func (n *Node) Mode() (string, error) {
	mode, err := fsmode.Symbolic(n.info.Mode())
	if err != nil {
		var pe *domain.PermissionDecodeError
		if errors.As(err, &pe) {
			pe.Path = n.Path()
		}
		return "", err
	}
	return mode, nil
}

// HasXattrs reports whether the entry has at least one extended attribute.
// Always false outside long format and on platforms without xattrs.
func (n *Node) HasXattrs() bool {
	return len(n.xattrs) > 0
}

// FileTypeIdentifier returns the `ls -l` type character (d, -, l, p, s, c, b)
func (n *Node) FileTypeIdentifier() (string, bool) {
	return n.entry.FileType().Identifier()
}
