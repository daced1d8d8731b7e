//go:build linux

package platform

import (
	"bytes"
	"errors"

	"golang.org/x/sys/unix"
)

// maxListAttempts bounds retries when attributes are added between sizing
// the buffer and reading into it.
const maxListAttempts = 3

func listXattrs(path string) ([]string, bool) {
	for attempt := 0; attempt < maxListAttempts; attempt++ {
		size, err := unix.Llistxattr(path, nil)
		if err != nil {
			return nil, false
		}
		if size == 0 {
			return []string{}, true
		}

		buf := make([]byte, size)
		n, err := unix.Llistxattr(path, buf)
		if errors.Is(err, unix.ERANGE) {
			continue
		}
		if err != nil {
			return nil, false
		}
		return splitNames(buf[:n]), true
	}
	return nil, false
}

// splitNames splits the NUL separated list returned by listxattr(2).
func splitNames(buf []byte) []string {
	var names []string
	for _, name := range bytes.Split(buf, []byte{0}) {
		if len(name) > 0 {
			names = append(names, string(name))
		}
	}
	return names
}
