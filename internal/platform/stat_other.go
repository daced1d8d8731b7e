//go:build !unix

package platform

import "io/fs"

func inodeOf(fs.FileInfo) (Inode, bool) {
	return Inode{}, false
}

func blocksOf(fs.FileInfo) (uint64, bool) {
	return 0, false
}
