package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Ning0612/lstree/internal/disk"
	"github.com/Ning0612/lstree/internal/domain"
	"github.com/Ning0612/lstree/internal/icons"
	"github.com/Ning0612/lstree/internal/platform"
	"github.com/Ning0612/lstree/internal/styles"
	"github.com/Ning0612/lstree/internal/tty"
)

// SortKey selects how siblings are ordered
type SortKey string

const (
	SortName SortKey = "name"
	SortSize SortKey = "size"
	SortNone SortKey = "none"
)

// LogConfig configures diagnostics written to stderr or a log file
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Context is the rendering configuration shared by every node of a listing.
//
// The tagged fields come from flags, environment and the config file. The
// untagged fields are the read-only collaborators (style table, icon table,
// platform provider, permission theme, tty probe) filled in by Resolve.
type Context struct {
	// Dir is the root of the listing
	Dir string `mapstructure:"dir"`

	// Level is the maximum depth to descend, 0 for unlimited
	Level int `mapstructure:"level"`

	Hidden   bool `mapstructure:"hidden"`
	NoIgnore bool `mapstructure:"no_ignore"`

	Icons        bool `mapstructure:"icons"`
	Long         bool `mapstructure:"long"`
	DisableColor bool `mapstructure:"no_color"`
	SuppressSize bool `mapstructure:"suppress_size"`

	DiskUsage disk.DiskUsage `mapstructure:"disk_usage"`
	Unit      disk.Unit      `mapstructure:"unit"`
	Scale     int            `mapstructure:"scale"`

	Sort      SortKey `mapstructure:"sort"`
	DirsFirst bool    `mapstructure:"dirs_first"`

	// Threads bounds parallel node construction, 0 for one per CPU
	Threads int `mapstructure:"threads"`

	// LSColors overrides $LS_COLORS when set
	LSColors string `mapstructure:"ls_colors"`

	// Theme overrides permission colours as char=colour entries,
	// e.g. ["x=light_red", "T=red"]. Map keys would be case-folded.
	Theme []string `mapstructure:"theme"`

	Log LogConfig `mapstructure:"log"`

	Styles    styles.Table           `mapstructure:"-"`
	IconTable *icons.Table           `mapstructure:"-"`
	Platform  platform.Provider      `mapstructure:"-"`
	PermTheme styles.PermissionTheme `mapstructure:"-"`
	IsTTY     func() bool            `mapstructure:"-"`

	envNoColor bool
}

// Default returns a Context holding the default configuration, not yet
// resolved.
func Default() *Context {
	return &Context{
		Dir:       ".",
		DiskUsage: disk.Logical,
		Unit:      disk.UnitBinary,
		Scale:     2,
		Sort:      SortName,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// NoColor reports whether colour output is globally disabled, either by
// flag or by the NO_COLOR convention.
func (c *Context) NoColor() bool {
	return c.DisableColor || c.envNoColor
}

// Validate checks if the configuration is complete and consistent
func (c *Context) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("%w: dir cannot be empty", domain.ErrConfigInvalid)
	}
	if c.Level < 0 {
		return fmt.Errorf("%w: level must not be negative: %d", domain.ErrConfigInvalid, c.Level)
	}
	if c.Scale < 0 || c.Scale > 9 {
		return fmt.Errorf("%w: scale must be between 0 and 9: %d", domain.ErrConfigInvalid, c.Scale)
	}
	if c.Threads < 0 {
		return fmt.Errorf("%w: threads must not be negative: %d", domain.ErrConfigInvalid, c.Threads)
	}
	if _, err := disk.ParseUnit(string(c.Unit)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}
	if _, err := disk.ParseDiskUsage(string(c.DiskUsage)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}
	switch c.Sort {
	case SortName, SortSize, SortNone:
	default:
		return fmt.Errorf("%w: unknown sort key: %s", domain.ErrConfigInvalid, c.Sort)
	}
	return nil
}

// Resolve fills in the runtime collaborators that are not part of the
// serialized configuration. It is called once, before any node is built.
func (c *Context) Resolve() error {
	if c.Threads == 0 {
		c.Threads = runtime.NumCPU()
	}
	c.Dir = ExpandPath(c.Dir)

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.envNoColor = true
	}

	if c.Styles == nil {
		if c.LSColors != "" {
			c.Styles = styles.ParseLSColors(c.LSColors)
		} else {
			c.Styles = styles.LSColorsFromEnv()
		}
	}
	if c.IconTable == nil {
		c.IconTable = icons.DefaultTable()
	}
	if c.Platform == nil {
		c.Platform = platform.Native()
	}
	if c.PermTheme == nil {
		theme, err := styles.DefaultPermissionTheme().WithOverrides(c.Theme)
		if err != nil {
			return err
		}
		c.PermTheme = theme
	}
	if c.IsTTY == nil {
		c.IsTTY = tty.StdoutIsTTY
	}
	return nil
}

// ExpandPath expands ~ and environment variables in a path
func ExpandPath(path string) string {
	// Expand ~ to home directory
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			if len(path) > 1 && (path[1] == '/' || path[1] == filepath.Separator) {
				path = filepath.Join(home, path[2:])
			} else if len(path) == 1 {
				path = home
			}
		}
	}
	// Expand environment variables
	path = os.ExpandEnv(path)
	return filepath.Clean(path)
}
