package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Ning0612/lstree/internal/domain"
)

// EnvPrefix is the prefix of environment variables read by Load,
// e.g. LSTREE_ICONS=true
const EnvPrefix = "LSTREE"

// DefaultConfigPaths returns the default paths to search for config files
func DefaultConfigPaths() []string {
	paths := []string{
		".",
	}

	// Add user config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "lstree"))
	}

	// Add home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", "lstree"))
	}

	return paths
}

// Load builds a Context from defaults, an optional config file, LSTREE_*
// environment variables and, when flags is not nil, command-line flags, in
// increasing order of precedence.
//
// If path is empty, default locations are searched for lstree.yaml and a
// missing file is not an error. An explicit path that does not exist
// returns domain.ErrConfigNotFound.
func Load(path string, flags *pflag.FlagSet) (*Context, error) {
	v := newViper()

	if path != "" {
		// Use specific file
		v.SetConfigFile(path)
	} else {
		// Search default paths
		v.SetConfigName("lstree")
		v.SetConfigType("yaml")
		for _, p := range DefaultConfigPaths() {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Defaults, environment and flags still apply.
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			return nil, domain.ErrConfigNotFound
		default:
			return nil, fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	return decode(v)
}

// LoadFromString parses configuration from a YAML string
func LoadFromString(yamlContent string) (*Context, error) {
	v := newViper()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(strings.NewReader(yamlContent)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	def := Default()
	v.SetDefault("dir", def.Dir)
	v.SetDefault("level", def.Level)
	v.SetDefault("hidden", def.Hidden)
	v.SetDefault("no_ignore", def.NoIgnore)
	v.SetDefault("icons", def.Icons)
	v.SetDefault("long", def.Long)
	v.SetDefault("no_color", def.DisableColor)
	v.SetDefault("suppress_size", def.SuppressSize)
	v.SetDefault("dirs_first", def.DirsFirst)
	v.SetDefault("ls_colors", def.LSColors)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("disk_usage", string(def.DiskUsage))
	v.SetDefault("unit", string(def.Unit))
	v.SetDefault("scale", def.Scale)
	v.SetDefault("sort", string(def.Sort))
	v.SetDefault("threads", def.Threads)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// bindFlags binds every flag to the config key of the same name, with
// dashes turned into underscores (--no-color -> no_color).
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Name == "config" || f.Name == "help" {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if strings.HasPrefix(key, "log_") {
			key = "log." + strings.TrimPrefix(key, "log_")
		}
		bindErr = v.BindPFlag(key, f)
	})
	return bindErr
}

func decode(v *viper.Viper) (*Context, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
