package node

import (
	"io"
	"strings"

	"github.com/Ning0612/lstree/internal/config"
	"github.com/Ning0612/lstree/internal/disk"
	"github.com/Ning0612/lstree/internal/fsmode"
	"github.com/Ning0612/lstree/internal/styles"
)

// Display writes one line, without a trailing newline:
//
//	[<perm><@| >  ]<size> <prefix><icon><name>
//
// prefix is the tree connector supplied by the caller. In long format an
// undecodable mode is shown as a placeholder; the line is still written and
// the *domain.PermissionDecodeError is returned afterwards.
func (n *Node) Display(w io.Writer, prefix string, ctx *config.Context) error {
	var b strings.Builder
	var modeErr error

	if ctx.Long {
		perm, err := n.permissions(ctx)
		if err != nil {
			modeErr = err
		}
		b.WriteString(perm)
		b.WriteString("  ")
	}

	if size, ok := n.FileSize(); ok {
		b.WriteString(size.Format(true))
	} else {
		b.WriteString(disk.EmptyString(ctx.Scale))
	}
	b.WriteByte(' ')
	b.WriteString(prefix)

	if n.icon != nil {
		b.WriteString(n.icon.padded())
	}

	b.WriteString(n.displayName(ctx))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	return modeErr
}

// permissions returns the mode string followed by the xattr marker
func (n *Node) permissions(ctx *config.Context) (string, error) {
	marker := " "
	if n.HasXattrs() {
		marker = "@"
	}

	mode, err := n.Mode()
	if err != nil {
		return strings.Repeat("?", fsmode.SymbolicWidth) + marker, err
	}

	if !ctx.NoColor() && ctx.PermTheme != nil {
		mode = ctx.PermTheme.Paint(mode)
	}
	return mode + marker, nil
}

func (n *Node) displayName(ctx *config.Context) string {
	name := n.Name()
	if ctx.NoColor() {
		return name
	}

	styled := n.stylize(name)
	if targetName, ok := n.SymlinkTargetName(); ok {
		return styled + " " + styles.Red.Paint("→ "+targetName)
	}
	return styled
}

func (n *Node) stylize(s string) string {
	if n.style == nil {
		return s
	}
	return n.style.PaintBold(s)
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}
