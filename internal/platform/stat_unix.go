//go:build unix

package platform

import (
	"io/fs"
	"syscall"
)

// blockSize is the unit of Stat_t.Blocks, fixed by POSIX regardless of the
// filesystem block size.
const blockSize = 512

func inodeOf(info fs.FileInfo) (Inode, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return Inode{}, false
	}
	return Inode{
		Ino:   uint64(stat.Ino),
		Dev:   uint64(stat.Dev),
		Nlink: uint64(stat.Nlink),
	}, true
}

func blocksOf(info fs.FileInfo) (uint64, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok || stat.Blocks < 0 {
		return 0, false
	}
	return uint64(stat.Blocks) * blockSize, true
}
