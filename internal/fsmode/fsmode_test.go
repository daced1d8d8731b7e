package fsmode

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/Ning0612/lstree/internal/domain"
)

func TestPermissions_Triplets(t *testing.T) {
	got := Permissions(0o754)
	if got != "rwxr-xr--" {
		t.Errorf("Expected rwxr-xr--, got %q", got)
	}
}

func TestSymbolic(t *testing.T) {
	tests := []struct {
		name string
		mode fs.FileMode
		want string
	}{
		{"regular", 0o644, "-rw-r--r--"},
		{"directory", fs.ModeDir | 0o755, "drwxr-xr-x"},
		{"symlink", fs.ModeSymlink | 0o777, "lrwxrwxrwx"},
		{"fifo", fs.ModeNamedPipe | 0o600, "prw-------"},
		{"socket", fs.ModeSocket | 0o755, "srwxr-xr-x"},
		{"char device", fs.ModeDevice | fs.ModeCharDevice | 0o666, "crw-rw-rw-"},
		{"block device", fs.ModeDevice | 0o660, "brw-rw----"},
		{"setuid with exec", fs.ModeSetuid | 0o755, "-rwsr-xr-x"},
		{"setuid without exec", fs.ModeSetuid | 0o644, "-rwSr--r--"},
		{"setgid", fs.ModeSetgid | 0o755, "-rwxr-sr-x"},
		{"sticky dir", fs.ModeDir | fs.ModeSticky | 0o777, "drwxrwxrwt"},
		{"sticky no exec", fs.ModeDir | fs.ModeSticky | 0o776, "drwxrwxrwT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Symbolic(tt.mode)
			if err != nil {
				t.Fatalf("Symbolic() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			if len(got) != SymbolicWidth {
				t.Errorf("Expected width %d, got %d", SymbolicWidth, len(got))
			}
		})
	}
}

func TestSymbolic_DecodeError(t *testing.T) {
	modes := []fs.FileMode{
		fs.ModeIrregular | 0o644,
		fs.ModeDir | fs.ModeSymlink | 0o755,
	}

	for _, mode := range modes {
		_, err := Symbolic(mode)
		if !errors.Is(err, domain.ErrPermissionDecode) {
			t.Errorf("mode %v: expected ErrPermissionDecode, got %v", mode, err)
		}
		var decodeErr *domain.PermissionDecodeError
		if !errors.As(err, &decodeErr) || decodeErr.Mode != mode {
			t.Errorf("mode %v: expected PermissionDecodeError carrying the mode, got %v", mode, err)
		}
	}
}
