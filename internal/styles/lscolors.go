package styles

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLSColors is used when LS_COLORS is not set. It is a subset of the
// GNU dircolors defaults.
const DefaultLSColors = "rs=0:di=01;34:ln=01;36:mh=00:pi=40;33:so=01;35:do=01;35:" +
	"bd=40;33;01:cd=40;33;01:or=40;31;01:mi=00:su=37;41:sg=30;43:ca=00:" +
	"tw=30;42:ow=34;42:st=37;44:ex=01;32:" +
	"*.tar=01;31:*.tgz=01;31:*.zip=01;31:*.gz=01;31:*.bz2=01;31:*.xz=01;31:" +
	"*.zst=01;31:*.7z=01;31:*.rar=01;31:*.deb=01;31:*.rpm=01;31:*.jar=01;31:" +
	"*.jpg=01;35:*.jpeg=01;35:*.gif=01;35:*.png=01;35:*.svg=01;35:*.bmp=01;35:" +
	"*.webp=01;35:*.mp4=01;35:*.mkv=01;35:*.webm=01;35:*.mov=01;35:" +
	"*.mp3=00;36:*.flac=00;36:*.wav=00;36:*.ogg=00;36"

// Table resolves the style of an entry from its path and metadata.
type Table interface {
	StyleFor(path string, info fs.FileInfo) (Color, bool)
}

// rule is one parsed LS_COLORS value. A rule without a foreground still
// matches; it resolves to "no style".
type rule struct {
	fg    Color
	hasFg bool
}

type suffixRule struct {
	suffix string
	rule   rule
}

// LSColors is a parsed LS_COLORS database. It is immutable after parsing
// and safe for concurrent lookups.
type LSColors struct {
	indicators map[string]rule
	suffixes   []suffixRule
	linkTarget bool
}

// LSColorsFromEnv parses $LS_COLORS, falling back to DefaultLSColors.
func LSColorsFromEnv() *LSColors {
	if v, ok := os.LookupEnv("LS_COLORS"); ok && v != "" {
		return ParseLSColors(v)
	}
	return ParseLSColors(DefaultLSColors)
}

// ParseLSColors parses a colon separated LS_COLORS string. Malformed
// entries are skipped.
func ParseLSColors(s string) *LSColors {
	ls := &LSColors{indicators: make(map[string]rule)}

	for _, entry := range strings.Split(s, ":") {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}

		if key == "ln" && value == "target" {
			ls.linkTarget = true
			continue
		}

		fg, hasFg := foregroundOf(value)
		r := rule{fg: fg, hasFg: hasFg}

		if strings.HasPrefix(key, "*") {
			ls.suffixes = append(ls.suffixes, suffixRule{
				suffix: strings.ToLower(key[1:]),
				rule:   r,
			})
			continue
		}
		if len(key) == 2 {
			ls.indicators[key] = r
		}
	}

	return ls
}

// StyleFor returns the foreground colour for an entry, following the GNU
// ls precedence: type indicators first, then name suffixes for plain
// files. ok is false when nothing matched or the match has no foreground.
func (ls *LSColors) StyleFor(path string, info fs.FileInfo) (Color, bool) {
	if info == nil {
		return Color{}, false
	}

	key := ls.indicatorFor(path, info)

	if key == "ln" && ls.linkTarget {
		if target, err := os.Stat(path); err == nil {
			return ls.StyleFor(path, target)
		}
	}

	if key == "fi" {
		if r, ok := ls.matchSuffix(filepath.Base(path)); ok {
			return r.fg, r.hasFg
		}
	}

	for _, k := range fallbackChain(key) {
		if r, ok := ls.indicators[k]; ok {
			return r.fg, r.hasFg
		}
	}
	return Color{}, false
}

func (ls *LSColors) indicatorFor(path string, info fs.FileInfo) string {
	mode := info.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		if _, err := os.Stat(path); err != nil {
			return "or"
		}
		return "ln"
	case mode.IsDir():
		sticky := mode&fs.ModeSticky != 0
		otherWritable := mode.Perm()&0o002 != 0
		switch {
		case sticky && otherWritable:
			return "tw"
		case otherWritable:
			return "ow"
		case sticky:
			return "st"
		}
		return "di"
	case mode&fs.ModeNamedPipe != 0:
		return "pi"
	case mode&fs.ModeSocket != 0:
		return "so"
	case mode&fs.ModeCharDevice != 0:
		return "cd"
	case mode&fs.ModeDevice != 0:
		return "bd"
	case mode&fs.ModeSetuid != 0:
		return "su"
	case mode&fs.ModeSetgid != 0:
		return "sg"
	case mode.Perm()&0o111 != 0:
		return "ex"
	}
	return "fi"
}

// matchSuffix checks suffix rules, later definitions taking precedence
// like repeated keys do in GNU ls.
func (ls *LSColors) matchSuffix(name string) (rule, bool) {
	lower := strings.ToLower(name)
	for i := len(ls.suffixes) - 1; i >= 0; i-- {
		if strings.HasSuffix(lower, ls.suffixes[i].suffix) {
			return ls.suffixes[i].rule, true
		}
	}
	return rule{}, false
}

func fallbackChain(key string) []string {
	switch key {
	case "su", "sg", "ex":
		return []string{key, "fi"}
	case "tw", "ow", "st":
		return []string{key, "di"}
	case "or":
		return []string{key, "ln"}
	default:
		return []string{key}
	}
}
