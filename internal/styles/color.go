// Package styles resolves the terminal colours used when rendering entries:
// the LS_COLORS style table, the permission theme and colour parsing.
package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/colorstring"

	"github.com/Ning0612/lstree/internal/domain"
)

// Color is a foreground colour. It is a small value type so the same
// resolved colour can be copied into every place that renders with it.
type Color struct {
	seq [5]color.Attribute
	n   uint8
}

// Basic returns one of the 16 standard foreground colours, given as its SGR
// code (30-37, 90-97) or 39 for the terminal default.
func Basic(code int) Color {
	return Color{seq: [5]color.Attribute{color.Attribute(code)}, n: 1}
}

// Fixed returns a colour from the xterm 256-colour palette.
func Fixed(n uint8) Color {
	return Color{seq: [5]color.Attribute{38, 5, color.Attribute(n)}, n: 3}
}

// RGB returns a 24-bit colour.
func RGB(r, g, b uint8) Color {
	return Color{
		seq: [5]color.Attribute{38, 2, color.Attribute(r), color.Attribute(g), color.Attribute(b)},
		n:   5,
	}
}

// Common colours used for fixed decorations.
var (
	Red    = Basic(31)
	Green  = Basic(32)
	Yellow = Basic(33)
	Blue   = Basic(34)
	Purple = Basic(35)
	Cyan   = Basic(36)
	Gray   = Basic(90)
)

// IsZero reports whether c carries no colour at all.
func (c Color) IsZero() bool {
	return c.n == 0
}

// Paint wraps s in the escape sequences for c.
func (c Color) Paint(s string) string {
	return c.paint(s, false)
}

// PaintBold wraps s in the escape sequences for c in bold.
func (c Color) PaintBold(s string) string {
	return c.paint(s, true)
}

// SGR returns the parameter list of the colour, e.g. "38;5;208".
func (c Color) SGR() string {
	parts := make([]string, c.n)
	for i := range parts {
		parts[i] = strconv.Itoa(int(c.seq[i]))
	}
	return strings.Join(parts, ";")
}

func (c Color) paint(s string, bold bool) string {
	if c.IsZero() {
		return s
	}
	p := color.New()
	if bold {
		p.Add(color.Bold)
	}
	p.Add(c.seq[:c.n]...)
	// Whether colour is wanted is decided by the caller, not by the
	// library's own tty detection.
	p.EnableColor()
	return p.Sprint(s)
}

// ParseColor parses a colour written in a config file. Accepted forms are
// colorstring names ("red", "light_blue"), "#rrggbb" hex and 256-palette
// indices ("208").
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Color{}, fmt.Errorf("%w: empty", domain.ErrInvalidColor)

	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", domain.ErrInvalidColor, s, err)
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil

	case isDigits(s):
		n, err := strconv.Atoi(s)
		if err != nil || n > 255 {
			return Color{}, fmt.Errorf("%w: palette index %q out of range", domain.ErrInvalidColor, s)
		}
		return Fixed(uint8(n)), nil
	}

	code, ok := colorstring.DefaultColors[strings.ToLower(s)]
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown color name %q", domain.ErrInvalidColor, s)
	}
	n, err := strconv.Atoi(code)
	if err != nil || !isForegroundCode(n) {
		return Color{}, fmt.Errorf("%w: %q is not a foreground color", domain.ErrInvalidColor, s)
	}
	return Basic(n), nil
}

// foregroundOf extracts the foreground colour from an SGR parameter list
// such as "01;38;5;208" or "40;33". Attributes and backgrounds are ignored.
func foregroundOf(sgr string) (Color, bool) {
	var params []int
	for _, field := range strings.Split(sgr, ";") {
		if field == "" {
			params = append(params, 0)
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return Color{}, false
		}
		params = append(params, n)
	}

	var fg Color
	found := false
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 38 && i+2 < len(params) && params[i+1] == 5:
			if n := params[i+2]; inByteRange(n) {
				fg, found = Fixed(uint8(n)), true
			} else {
				fg, found = Color{}, false
			}
			i += 2
		case p == 38 && i+4 < len(params) && params[i+1] == 2:
			r, g, b := params[i+2], params[i+3], params[i+4]
			if inByteRange(r) && inByteRange(g) && inByteRange(b) {
				fg, found = RGB(uint8(r), uint8(g), uint8(b)), true
			} else {
				fg, found = Color{}, false
			}
			i += 4
		case p == 48 && i+1 < len(params):
			// Skip background extended colours.
			if params[i+1] == 5 {
				i += 2
			} else if params[i+1] == 2 {
				i += 4
			}
		case isForegroundCode(p) && p != 39:
			fg, found = Basic(p), true
		case p == 39 || p == 0:
			fg, found = Color{}, false
		}
	}
	return fg, found
}

func inByteRange(n int) bool {
	return n >= 0 && n <= 255
}

func isForegroundCode(n int) bool {
	return (n >= 30 && n <= 37) || n == 39 || (n >= 90 && n <= 97)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
