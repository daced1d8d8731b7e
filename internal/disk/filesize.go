// Package disk computes and formats the sizes shown next to each entry.
package disk

import (
	"fmt"
	"io/fs"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Ning0612/lstree/internal/domain"
	"github.com/Ning0612/lstree/internal/platform"
)

// Unit selects the prefix family used to scale byte counts.
type Unit string

const (
	// UnitBinary uses powers of 1024 (KiB, MiB, ...)
	UnitBinary Unit = "bin"
	// UnitSI uses powers of 1000 (KB, MB, ...)
	UnitSI Unit = "si"
)

// ParseUnit parses a unit name (case-sensitive, as written in config files)
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitBinary, UnitSI:
		return Unit(s), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidUnit, s)
	}
}

func (u Unit) base() float64 {
	if u == UnitSI {
		return 1000
	}
	return 1024
}

func (u Unit) prefixes() []string {
	if u == UnitSI {
		return []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}
	}
	return []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
}

// DiskUsage selects between apparent and allocated size.
type DiskUsage string

const (
	// Logical is the size reported by metadata
	Logical DiskUsage = "logical"
	// Physical is the space actually allocated in blocks
	Physical DiskUsage = "physical"
)

// ParseDiskUsage parses a disk usage mode
func ParseDiskUsage(s string) (DiskUsage, error) {
	switch DiskUsage(s) {
	case Logical, Physical:
		return DiskUsage(s), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidDiskUsage, s)
	}
}

// unitWidth is the column reserved for the unit suffix.
const unitWidth = 3

// maxIntegerDigits is the widest integer part a scaled value may have.
// Values that would round to 1000 or more move to the next prefix.
const maxIntegerDigits = 3

// FileSize is a byte count together with how it should be displayed.
type FileSize struct {
	bytes uint64
	usage DiskUsage
	unit  Unit
	scale int
}

// New creates a FileSize from a raw byte count.
func New(bytes uint64, usage DiskUsage, unit Unit, scale int) FileSize {
	if scale < 0 {
		scale = 0
	}
	return FileSize{bytes: bytes, usage: usage, unit: unit, scale: scale}
}

// FromInfo returns the logical size of an entry.
func FromInfo(info fs.FileInfo, unit Unit, scale int) FileSize {
	size := info.Size()
	if size < 0 {
		size = 0
	}
	return New(uint64(size), Logical, unit, scale)
}

// FromBlocks returns the physical size of an entry, or nil when the
// platform cannot report allocated blocks.
func FromBlocks(info fs.FileInfo, provider platform.Provider, unit Unit, scale int) *FileSize {
	bytes, ok := provider.PhysicalSize(info)
	if !ok {
		return nil
	}
	size := New(bytes, Physical, unit, scale)
	return &size
}

// Bytes returns the raw byte count
func (f FileSize) Bytes() uint64 {
	return f.bytes
}

// Usage returns whether this is a logical or physical size
func (f FileSize) Usage() DiskUsage {
	return f.usage
}

// Add returns a size holding the sum of f and other, formatted like f.
func (f FileSize) Add(other FileSize) FileSize {
	f.bytes += other.bytes
	return f
}

// Format renders the size. When align is true the result has a fixed width
// for a given unit and scale, e.g. "  1.50 KiB" for 1536 bytes at scale 2.
// Otherwise a compact human form is used.
func (f FileSize) Format(align bool) string {
	if !align {
		if f.unit == UnitSI {
			return humanize.Bytes(f.bytes)
		}
		return humanize.IBytes(f.bytes)
	}

	width := numberWidth(f.scale)
	value, prefix := f.scaled()
	if prefix == "B" {
		return fmt.Sprintf("%*d %*s", width, f.bytes, unitWidth, prefix)
	}
	return fmt.Sprintf("%*.*f %*s", width, f.scale, value, unitWidth, prefix)
}

// String implements fmt.Stringer with the aligned form.
func (f FileSize) String() string {
	return f.Format(true)
}

// EmptyString returns blanks as wide as an aligned size, used when an entry
// has no size so that columns still line up.
func EmptyString(scale int) string {
	if scale < 0 {
		scale = 0
	}
	return strings.Repeat(" ", numberWidth(scale)+1+unitWidth)
}

func (f FileSize) scaled() (float64, string) {
	base := f.unit.base()
	prefixes := f.unit.prefixes()

	value := float64(f.bytes)
	i := 0
	for i < len(prefixes)-1 && roundTo(value, f.scale) >= math.Pow10(maxIntegerDigits) {
		value /= base
		i++
	}
	return value, prefixes[i]
}

func numberWidth(scale int) int {
	if scale == 0 {
		return maxIntegerDigits
	}
	return maxIntegerDigits + 1 + scale
}

func roundTo(v float64, scale int) float64 {
	p := math.Pow10(scale)
	return math.Round(v*p) / p
}
