// Package icons holds the glyph lookup tables used to decorate entries.
// Glyphs are Nerd Font code points; colours are xterm 256-colour indices.
package icons

import (
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Ning0612/lstree/internal/domain"
	"github.com/Ning0612/lstree/internal/styles"
)

// Icon is a glyph with the fixed colour it is painted with when it is not
// painted with an entry's own style.
type Icon struct {
	Code  uint8
	Glyph string
}

// Color returns the icon's fixed colour.
func (i Icon) Color() styles.Color {
	return styles.Fixed(i.Code)
}

// Paint returns the glyph painted in its fixed colour.
func (i Icon) Paint() string {
	return i.Color().Paint(i.Glyph)
}

// Width returns the number of terminal cells the glyph occupies.
func Width(glyph string) int {
	return runewidth.StringWidth(glyph)
}

// Table is a read-only set of icon lookups. It is safe for concurrent use
// as long as nobody mutates the maps after construction.
type Table struct {
	ByType     map[domain.FileType]Icon
	ByExt      map[string]Icon
	ByFileName map[string]Icon
	Default    Icon
}

// FromFileType looks up an icon by entry type.
func (t *Table) FromFileType(ft domain.FileType) (Icon, bool) {
	icon, ok := t.ByType[ft]
	return icon, ok
}

// FromExt looks up an icon by extension, given with or without the dot.
// Matching ignores case.
func (t *Table) FromExt(ext string) (Icon, bool) {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return Icon{}, false
	}
	icon, ok := t.ByExt[strings.ToLower(ext)]
	return icon, ok
}

// FromFileName looks up an icon by exact file name.
func (t *Table) FromFileName(name string) (Icon, bool) {
	icon, ok := t.ByFileName[name]
	return icon, ok
}

// Ext returns the extension of path without the leading dot, the way the
// extension tables are keyed. Dotfiles such as ".bashrc" have none.
func Ext(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 || idx == len(base)-1 {
		return ""
	}
	return base[idx+1:]
}
