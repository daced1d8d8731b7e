// Package tree assembles nodes into a hierarchy, totals directory sizes and
// renders the listing with branch connectors.
package tree

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/Ning0612/lstree/internal/config"
	"github.com/Ning0612/lstree/internal/disk"
	"github.com/Ning0612/lstree/internal/domain"
	"github.com/Ning0612/lstree/internal/logger"
	"github.com/Ning0612/lstree/internal/node"
	"github.com/Ning0612/lstree/internal/platform"
)

// Branch connectors
const (
	Branch = "├── "
	Last   = "└── "
	Pipe   = "│   "
	Blank  = "    "
)

// ErrNoRoot is returned when no depth-0 node was supplied
var ErrNoRoot = errors.New("tree has no root")

// Stats summarises a listing, the root excluded
type Stats struct {
	Dirs  int
	Files int

	// Size is the aggregate size of the root, absent when sizes are
	// suppressed
	Size    disk.FileSize
	HasSize bool
}

// Tree is an ordered hierarchy of nodes
type Tree struct {
	root     *node.Node
	children map[string][]*node.Node
	ctx      *config.Context
	log      logger.Logger
	stats    Stats
}

// New arranges nodes under their parents, sorts siblings according to ctx,
// and assigns every directory the total size of its descendants. Nodes
// whose parent is missing (e.g. skipped for unreadable metadata) are
// dropped.
func New(nodes []*node.Node, ctx *config.Context) (*Tree, error) {
	t := &Tree{
		children: make(map[string][]*node.Node),
		ctx:      ctx,
		log:      logger.With("component", "tree"),
	}

	present := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if n.Depth() == 0 {
			t.root = n
		}
		present[n.Path()] = true
	}
	if t.root == nil {
		return nil, ErrNoRoot
	}

	for _, n := range nodes {
		if n == t.root {
			continue
		}
		parent := n.ParentPath()
		if !present[parent] {
			t.log.Debug("dropping orphaned entry", "path", n.Path())
			continue
		}
		t.children[parent] = append(t.children[parent], n)
	}

	t.count(t.root)

	// Sizes first: sorting by size needs directory totals, and hard links
	// are attributed to the first name in walk order.
	if !ctx.SuppressSize {
		seen := make(map[platform.Inode]bool)
		size := t.aggregate(t.root, seen)
		t.stats.Size, t.stats.HasSize = size, true
	}

	if cmp := comparator(ctx); cmp != nil {
		for _, siblings := range t.children {
			slices.SortStableFunc(siblings, cmp)
		}
	}

	return t, nil
}

func comparator(ctx *config.Context) node.Compare {
	var cmp node.Compare
	switch ctx.Sort {
	case config.SortName:
		cmp = node.ByName
	case config.SortSize:
		cmp = node.BySize
	}
	if ctx.DirsFirst {
		if cmp == nil {
			cmp = func(*node.Node, *node.Node) int { return 0 }
		}
		cmp = node.DirsFirst(cmp)
	}
	return cmp
}

func (t *Tree) count(n *node.Node) {
	for _, c := range t.children[n.Path()] {
		if c.IsDir() {
			t.stats.Dirs++
			t.count(c)
		} else {
			t.stats.Files++
		}
	}
}

// aggregate returns the size of n, assigning directories the sum of their
// children first. A hard-linked file counts once however many names it has.
func (t *Tree) aggregate(n *node.Node, seen map[platform.Inode]bool) disk.FileSize {
	empty := disk.New(0, t.ctx.DiskUsage, t.ctx.Unit, t.ctx.Scale)

	if !n.IsDir() {
		size, ok := n.FileSize()
		if !ok {
			return empty
		}
		if ino, ok := n.Inode(); ok && ino.Nlink > 1 {
			key := platform.Inode{Ino: ino.Ino, Dev: ino.Dev}
			if seen[key] {
				return empty
			}
			seen[key] = true
		}
		return size
	}

	total := empty
	for _, c := range t.children[n.Path()] {
		total = total.Add(t.aggregate(c, seen))
	}
	if err := n.SetFileSize(total); err != nil {
		t.log.Warn("directory size already set", "path", n.Path(), "error", err)
	}
	return total
}

// Root returns the depth-0 node
func (t *Tree) Root() *node.Node {
	return t.root
}

// Children returns the ordered children of n
func (t *Tree) Children(n *node.Node) []*node.Node {
	return t.children[n.Path()]
}

// Stats returns directory and file counts and the total size
func (t *Tree) Stats() Stats {
	return t.stats
}

// Render writes one line per node, depth-first. A line whose permissions
// cannot be decoded is written with a placeholder and logged; only write
// errors stop rendering.
func (t *Tree) Render(w io.Writer) error {
	return t.render(w, t.root, "", "")
}

func (t *Tree) render(w io.Writer, n *node.Node, connector, indent string) error {
	if err := t.line(w, n, indent+connector); err != nil {
		return err
	}

	children := t.children[n.Path()]
	childIndent := indent
	if n != t.root {
		if connector == Last {
			childIndent += Blank
		} else {
			childIndent += Pipe
		}
	}

	for i, c := range children {
		conn := Branch
		if i == len(children)-1 {
			conn = Last
		}
		if err := t.render(w, c, conn, childIndent); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) line(w io.Writer, n *node.Node, prefix string) error {
	err := n.Display(w, prefix, t.ctx)
	var pe *domain.PermissionDecodeError
	if errors.As(err, &pe) {
		t.log.Warn("could not decode permissions", "path", pe.Path, "mode", fmt.Sprintf("%#o", uint32(pe.Mode)))
		err = nil
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// WriteSummary writes the footer, e.g. "3 directories, 12 files, 4.1 MiB".
func (t *Tree) WriteSummary(w io.Writer) error {
	s := t.stats
	line := fmt.Sprintf("\n%d %s, %d %s", s.Dirs, plural(s.Dirs, "directory", "directories"), s.Files, plural(s.Files, "file", "files"))
	if s.HasSize {
		line += ", " + s.Size.Format(false)
	}
	_, err := io.WriteString(w, line+"\n")
	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
