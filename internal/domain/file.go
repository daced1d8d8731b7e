package domain

import "io/fs"

// FileType represents the type of a filesystem entry
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeRegular
	FileTypeDirectory
	FileTypeSymlink
	FileTypeNamedPipe
	FileTypeSocket
	FileTypeCharDevice
	FileTypeBlockDevice
)

// FileTypeFromMode classifies an entry by the type bits of its mode.
// Symlinks are classified as links, never as their target.
func FileTypeFromMode(mode fs.FileMode) FileType {
	switch {
	case mode&fs.ModeSymlink != 0:
		return FileTypeSymlink
	case mode.IsDir():
		return FileTypeDirectory
	case mode&fs.ModeNamedPipe != 0:
		return FileTypeNamedPipe
	case mode&fs.ModeSocket != 0:
		return FileTypeSocket
	case mode&fs.ModeCharDevice != 0:
		return FileTypeCharDevice
	case mode&fs.ModeDevice != 0:
		return FileTypeBlockDevice
	case mode.IsRegular():
		return FileTypeRegular
	default:
		return FileTypeUnknown
	}
}

// IsDir returns true if this is a directory
func (t FileType) IsDir() bool {
	return t == FileTypeDirectory
}

// IsFile returns true if this is a regular file
func (t FileType) IsFile() bool {
	return t == FileTypeRegular
}

// IsSymlink returns true if this is a symbolic link
func (t FileType) IsSymlink() bool {
	return t == FileTypeSymlink
}

// Identifier returns the single-character type marker used by `ls -l`.
// ok is false for unknown types.
func (t FileType) Identifier() (iden string, ok bool) {
	switch t {
	case FileTypeDirectory:
		return "d", true
	case FileTypeRegular:
		return "-", true
	case FileTypeSymlink:
		return "l", true
	case FileTypeNamedPipe:
		return "p", true
	case FileTypeSocket:
		return "s", true
	case FileTypeCharDevice:
		return "c", true
	case FileTypeBlockDevice:
		return "b", true
	default:
		return "", false
	}
}

// String returns a readable name, mostly for logs
func (t FileType) String() string {
	switch t {
	case FileTypeRegular:
		return "file"
	case FileTypeDirectory:
		return "directory"
	case FileTypeSymlink:
		return "symlink"
	case FileTypeNamedPipe:
		return "fifo"
	case FileTypeSocket:
		return "socket"
	case FileTypeCharDevice:
		return "char-device"
	case FileTypeBlockDevice:
		return "block-device"
	default:
		return "unknown"
	}
}
