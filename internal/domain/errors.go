package domain

import (
	"errors"
	"fmt"
	"io/fs"
)

// Adapter errors - 檔案系統適配器層錯誤
var (
	// ErrNotFound indicates the requested path does not exist
	ErrNotFound = errors.New("path not found")

	// ErrPermissionDenied indicates insufficient permissions
	ErrPermissionDenied = errors.New("permission denied")
)

// Node errors - 節點建構與顯示錯誤
var (
	// ErrMetadata indicates the metadata (stat) of an entry could not be read
	ErrMetadata = errors.New("metadata unavailable")

	// ErrPermissionDecode indicates mode bits could not be turned into symbolic notation
	ErrPermissionDecode = errors.New("permission bits could not be decoded")

	// ErrSizeFinalized indicates a node's size was already assigned after construction
	ErrSizeFinalized = errors.New("file size already finalized")
)

// Config errors - 設定檔錯誤
var (
	// ErrConfigNotFound indicates config file not found
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalid indicates config file is malformed
	ErrConfigInvalid = errors.New("invalid config")

	// ErrInvalidUnit indicates an unknown size unit
	ErrInvalidUnit = errors.New("invalid size unit")

	// ErrInvalidDiskUsage indicates an unknown disk usage mode
	ErrInvalidDiskUsage = errors.New("invalid disk usage mode")

	// ErrInvalidColor indicates a theme color that cannot be parsed
	ErrInvalidColor = errors.New("invalid color")
)

// MetadataError is returned when a node cannot be built because its
// metadata could not be fetched. It is the only construction failure.
type MetadataError struct {
	Path string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Path, ErrMetadata, e.Err)
}

func (e *MetadataError) Unwrap() []error {
	return []error{ErrMetadata, e.Err}
}

// PermissionDecodeError reports mode bits that have no symbolic form.
type PermissionDecodeError struct {
	Path string
	Mode fs.FileMode
}

func (e *PermissionDecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: mode %#o", ErrPermissionDecode, uint32(e.Mode))
	}
	return fmt.Sprintf("%s: %v: mode %#o", e.Path, ErrPermissionDecode, uint32(e.Mode))
}

func (e *PermissionDecodeError) Unwrap() error {
	return ErrPermissionDecode
}
