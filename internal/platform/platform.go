// Package platform exposes filesystem capabilities that only some operating
// systems have: inode identity, physical block usage and extended attributes.
//
// Callers never branch on the OS. They ask a Provider, and a provider that
// lacks a capability reports it as absent.
package platform

import "io/fs"

// Inode identifies a file on a device. Nlink is carried so that hard links
// can be recognised when sizes are aggregated.
type Inode struct {
	Ino   uint64
	Dev   uint64
	Nlink uint64
}

// Provider answers platform-specific questions about an entry. Every method
// reports ok=false when the capability is missing or the query failed; the
// two cases are deliberately indistinguishable.
type Provider interface {
	// Inode extracts the inode identity from already fetched metadata.
	Inode(info fs.FileInfo) (Inode, bool)

	// PhysicalSize returns the bytes actually allocated on disk.
	PhysicalSize(info fs.FileInfo) (uint64, bool)

	// Xattrs lists the names of the extended attributes of path without
	// following a final symlink.
	Xattrs(path string) ([]string, bool)
}

// Native returns the provider for the platform the binary was built for.
func Native() Provider {
	return native{}
}

type native struct{}

func (native) Inode(info fs.FileInfo) (Inode, bool) {
	return inodeOf(info)
}

func (native) PhysicalSize(info fs.FileInfo) (uint64, bool) {
	return blocksOf(info)
}

func (native) Xattrs(path string) ([]string, bool) {
	return listXattrs(path)
}

// Unsupported is a Provider with no capabilities at all.
type Unsupported struct{}

func (Unsupported) Inode(fs.FileInfo) (Inode, bool)       { return Inode{}, false }
func (Unsupported) PhysicalSize(fs.FileInfo) (uint64, bool) { return 0, false }
func (Unsupported) Xattrs(string) ([]string, bool)         { return nil, false }
