package node

import (
	"github.com/Ning0612/lstree/internal/adapter"
	"github.com/Ning0612/lstree/internal/config"
	"github.com/Ning0612/lstree/internal/icons"
	"github.com/Ning0612/lstree/internal/styles"
)

// iconColumn is the number of cells an icon and its padding occupy
const iconColumn = 3

type icon struct {
	text  string // glyph, possibly wrapped in escape sequences
	width int    // display width of the bare glyph
}

// padded returns the icon followed by enough spaces to fill the icon column
func (i *icon) padded() string {
	pad := iconColumn - i.width
	if pad < 1 {
		pad = 1
	}
	return i.text + spaces(pad)
}

// computeIcon picks an icon by file type, then extension, then file name,
// then the default. For a symlink with a known target the extension is taken
// from the target.
//
// Type and name icons are painted with the entry's style; extension and
// default icons carry their own colour. Nothing is painted unless colour is
// enabled and stdout is a terminal.
func computeIcon(entry adapter.Entry, target string, style *styles.Color, ctx *config.Context) *icon {
	table := ctx.IconTable
	colorize := !ctx.NoColor() && ctx.IsTTY != nil && ctx.IsTTY()

	withStyle := func(ic icons.Icon) *icon {
		text := ic.Glyph
		if colorize && style != nil {
			text = style.PaintBold(ic.Glyph)
		}
		return &icon{text: text, width: icons.Width(ic.Glyph)}
	}
	withOwnColor := func(ic icons.Icon) *icon {
		text := ic.Glyph
		if colorize {
			text = ic.Paint()
		}
		return &icon{text: text, width: icons.Width(ic.Glyph)}
	}

	if ic, ok := table.FromFileType(entry.FileType()); ok {
		return withStyle(ic)
	}

	extPath := entry.Path()
	if target != "" && entry.FileType().IsSymlink() {
		extPath = target
	}
	if ic, ok := table.FromExt(icons.Ext(extPath)); ok {
		return withOwnColor(ic)
	}

	if ic, ok := table.FromFileName(entry.Name()); ok {
		return withStyle(ic)
	}

	return withOwnColor(table.Default)
}
