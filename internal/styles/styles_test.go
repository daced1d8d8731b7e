package styles

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ning0612/lstree/internal/domain"
)

func TestColor_Paint(t *testing.T) {
	got := Blue.Paint("x")
	if !strings.HasPrefix(got, "\x1b[34m") || !strings.Contains(got, "x") {
		t.Errorf("Expected blue escape around x, got %q", got)
	}

	bold := Fixed(208).PaintBold("y")
	if !strings.HasPrefix(bold, "\x1b[1;38;5;208m") {
		t.Errorf("Expected bold 256-colour escape, got %q", bold)
	}

	if got := (Color{}).Paint("plain"); got != "plain" {
		t.Errorf("Expected zero colour to leave text untouched, got %q", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"red", "31"},
		{"light_blue", "94"},
		{"208", "38;5;208"},
		{"#ff8800", "38;2;255;136;0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor() error = %v", err)
			}
			if c.SGR() != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, c.SGR())
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "chartreuse-ish", "256", "#zzzzzz", "bold", "_red_"} {
		if _, err := ParseColor(in); !errors.Is(err, domain.ErrInvalidColor) {
			t.Errorf("ParseColor(%q): expected ErrInvalidColor, got %v", in, err)
		}
	}
}

func TestForegroundOf(t *testing.T) {
	tests := []struct {
		sgr    string
		want   string
		wantOK bool
	}{
		{"01;34", "34", true},
		{"40;33;01", "33", true},
		{"38;5;208", "38;5;208", true},
		{"01;38;2;1;2;3", "38;2;1;2;3", true},
		{"48;5;12;32", "32", true},
		{"00", "", false},
		{"01", "", false},
		{"oops", "", false},
		{"38;5;300", "", false},
		{"38;2;1;256;3", "", false},
		{"38;5;-1", "", false},
		{"38;5;300;32", "32", true},
	}

	for _, tt := range tests {
		c, ok := foregroundOf(tt.sgr)
		if ok != tt.wantOK {
			t.Errorf("foregroundOf(%q) ok = %v, want %v", tt.sgr, ok, tt.wantOK)
			continue
		}
		if ok && c.SGR() != tt.want {
			t.Errorf("foregroundOf(%q) = %s, want %s", tt.sgr, c.SGR(), tt.want)
		}
	}
}

func TestLSColors_StyleFor(t *testing.T) {
	dir := t.TempDir()
	ls := ParseLSColors("di=01;34:ln=01;36:or=40;31;01:ex=01;32:fi=00:*.rs=38;5;208:*.TAR=01;31")

	mustWrite := func(name string, perm os.FileMode) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte("x"), perm); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
		if err := os.Chmod(p, perm); err != nil {
			t.Fatalf("failed to chmod %s: %v", name, err)
		}
		return p
	}

	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	rs := mustWrite("main.rs", 0644)
	tar := mustWrite("backup.tar", 0644)
	plain := mustWrite("notes.txt", 0644)
	script := mustWrite("run.rs", 0755)

	link := filepath.Join(dir, "link")
	if err := os.Symlink(rs, link); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}
	orphan := filepath.Join(dir, "orphan")
	if err := os.Symlink(filepath.Join(dir, "missing"), orphan); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	tests := []struct {
		name   string
		path   string
		want   string
		wantOK bool
	}{
		{"directory", sub, "34", true},
		{"extension", rs, "38;5;208", true},
		{"extension ignores case", tar, "31", true},
		{"fi without foreground", plain, "", false},
		{"executable beats extension", script, "32", true},
		{"symlink", link, "36", true},
		{"orphan symlink", orphan, "31", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := os.Lstat(tt.path)
			if err != nil {
				t.Fatalf("Lstat() error = %v", err)
			}
			c, ok := ls.StyleFor(tt.path, info)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && c.SGR() != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, c.SGR())
			}
		})
	}
}

func TestLSColors_LinkTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "sub")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	ls := ParseLSColors("di=01;34:ln=target")
	info, _ := os.Lstat(link)
	c, ok := ls.StyleFor(link, info)
	if !ok || c.SGR() != "34" {
		t.Errorf("Expected link styled as its directory target, got %s (%v)", c.SGR(), ok)
	}
}

func TestParseLSColors_SkipsMalformed(t *testing.T) {
	ls := ParseLSColors("garbage:=01;31:di=01;34::toolong=01;32")
	if len(ls.indicators) != 1 {
		t.Errorf("Expected only di to be parsed, got %v", ls.indicators)
	}
}

func TestPermissionTheme_Paint(t *testing.T) {
	theme := PermissionTheme{'r': Green, 'w': Yellow}

	got := theme.Paint("rwx")
	if strings.Contains(got, "x") {
		t.Errorf("Expected unthemed x to be dropped, got %q", got)
	}
	if !strings.Contains(got, Green.Paint("r")) || !strings.Contains(got, Yellow.Paint("w")) {
		t.Errorf("Expected r and w painted, got %q", got)
	}
}

func TestDefaultPermissionTheme_CoversSymbolicAlphabet(t *testing.T) {
	theme := DefaultPermissionTheme()
	for _, ch := range "-dlpscbrwxSTt" {
		if _, ok := theme[ch]; !ok {
			t.Errorf("Expected theme entry for %q", ch)
		}
	}
}

func TestPermissionTheme_WithOverrides(t *testing.T) {
	base := DefaultPermissionTheme()

	theme, err := base.WithOverrides([]string{"x=#00ff00", " T = red "})
	if err != nil {
		t.Fatalf("WithOverrides() error = %v", err)
	}
	if theme['x'].SGR() != "38;2;0;255;0" {
		t.Errorf("Expected override for x, got %s", theme['x'].SGR())
	}
	if theme['T'] != Red || theme['t'] != Purple {
		t.Errorf("Expected only uppercase T overridden, got T=%s t=%s", theme['T'].SGR(), theme['t'].SGR())
	}
	if base['x'].SGR() != "31" {
		t.Error("WithOverrides must not modify the receiver")
	}

	if _, err := base.WithOverrides([]string{"rw=red"}); !errors.Is(err, domain.ErrConfigInvalid) {
		t.Errorf("Expected ErrConfigInvalid for multi-char key, got %v", err)
	}
	if _, err := base.WithOverrides([]string{"x"}); !errors.Is(err, domain.ErrConfigInvalid) {
		t.Errorf("Expected ErrConfigInvalid for entry without '=', got %v", err)
	}
}
