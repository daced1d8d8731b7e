// Package fsmode renders permission bits in the symbolic notation used by
// `ls -l`.
package fsmode

import (
	"io/fs"

	"github.com/Ning0612/lstree/internal/domain"
)

// SymbolicWidth is the length of a string returned by Symbolic.
const SymbolicWidth = 10

// typeBits are the mode bits that describe the kind of entry.
const typeBits = fs.ModeDir | fs.ModeSymlink | fs.ModeNamedPipe | fs.ModeSocket |
	fs.ModeDevice | fs.ModeCharDevice | fs.ModeIrregular

// Symbolic returns the ten character `drwxr-xr-x` form of mode, including
// setuid, setgid and sticky patching of the execute slots.
//
// Irregular entries and unknown combinations of type bits have no symbolic
// form and return a *domain.PermissionDecodeError.
// See https://github.com/golang/go/issues/27452 for why FileMode.String
// is not used.
func Symbolic(mode fs.FileMode) (string, error) {
	iden, ok := identifier(mode)
	if !ok {
		return "", &domain.PermissionDecodeError{Mode: mode}
	}

	b := make([]byte, 0, SymbolicWidth)
	b = append(b, iden)
	b = append(b, Permissions(mode)...)

	return string(b), nil
}

// Permissions returns the nine character rwx triplets of mode.
func Permissions(mode fs.FileMode) string {
	const rwx = "rwxrwxrwx"

	b := []byte("---------")
	perm := mode.Perm()
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			b[i] = rwx[i]
		}
	}

	patch := func(slot int, set bool, lower, upper byte) {
		if !set {
			return
		}
		if b[slot] == 'x' {
			b[slot] = lower
		} else {
			b[slot] = upper
		}
	}
	patch(2, mode&fs.ModeSetuid != 0, 's', 'S')
	patch(5, mode&fs.ModeSetgid != 0, 's', 'S')
	patch(8, mode&fs.ModeSticky != 0, 't', 'T')

	return string(b)
}

func identifier(mode fs.FileMode) (byte, bool) {
	switch mode & typeBits {
	case 0:
		return '-', true
	case fs.ModeDir:
		return 'd', true
	case fs.ModeSymlink:
		return 'l', true
	case fs.ModeNamedPipe:
		return 'p', true
	case fs.ModeSocket:
		return 's', true
	case fs.ModeDevice | fs.ModeCharDevice:
		return 'c', true
	case fs.ModeDevice:
		return 'b', true
	default:
		return 0, false
	}
}
