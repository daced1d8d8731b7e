package styles

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Ning0612/lstree/internal/domain"
)

// PermissionTheme maps each character of a symbolic permission string to
// the colour it is painted with.
type PermissionTheme map[rune]Color

// DefaultPermissionTheme returns the built-in theme. It covers every
// character the symbolic notation can produce.
func DefaultPermissionTheme() PermissionTheme {
	return PermissionTheme{
		'-': Gray,
		'd': Blue,
		'l': Cyan,
		'p': Yellow,
		's': Purple,
		'c': Yellow,
		'b': Yellow,
		'r': Green,
		'w': Yellow,
		'x': Red,
		'S': Purple,
		't': Purple,
		'T': Purple,
	}
}

// Paint colours s character by character. Characters without a theme
// entry are dropped rather than printed unstyled.
func (t PermissionTheme) Paint(s string) string {
	var b strings.Builder
	for _, ch := range s {
		c, ok := t[ch]
		if !ok {
			continue
		}
		b.WriteString(c.Paint(string(ch)))
	}
	return b.String()
}

// WithOverrides returns a copy of t with entries replaced from config
// entries of the form "char=colour", e.g. "T=light_red".
func (t PermissionTheme) WithOverrides(entries []string) (PermissionTheme, error) {
	out := make(PermissionTheme, len(t)+len(entries))
	for k, v := range t {
		out[k] = v
	}

	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("%w: theme entry %q must be char=colour", domain.ErrConfigInvalid, entry)
		}
		key = strings.TrimSpace(key)
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("%w: theme key %q must be a single character", domain.ErrConfigInvalid, key)
		}
		c, err := ParseColor(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("theme key %q: %w", key, err)
		}
		r, _ := utf8.DecodeRuneInString(key)
		out[r] = c
	}

	return out, nil
}
