// Package config resolves envmodules settings from defaults, an optional
// YAML file, ENVMODULES_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jakoblorz/go-envmodules/internal/manager"
	"github.com/jakoblorz/go-envmodules/internal/metadata"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name
	AppName = "envmodules"
	// ConfigFileName is the config file looked up in ConfigDir
	ConfigFileName = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. ENVMODULES_MODULES_DIR
	EnvPrefix = "ENVMODULES"

	// DefaultModulesDir is where modules are installed on the cluster
	DefaultModulesDir = "/genesandhealth/library-red/modules"
)

// Config holds the resolved settings. Only paths and presentation are
// configurable; the module-manager protocol itself has no options.
type Config struct {
	ModulesDir   string        `mapstructure:"modules_dir"`
	Manager      string        `mapstructure:"manager"`
	MetadataFile string        `mapstructure:"metadata_file"`
	Timeout      time.Duration `mapstructure:"timeout"`
	LogLevel     string        `mapstructure:"log_level"`
	LogFile      string        `mapstructure:"log_file"`
	Watch        bool          `mapstructure:"watch"`
}

// flagKeys maps config keys to the flags that override them
var flagKeys = map[string]string{
	"modules_dir":   "modules-dir",
	"manager":       "manager",
	"metadata_file": "metadata-file",
	"timeout":       "timeout",
	"log_level":     "log-level",
	"log_file":      "log-file",
	"watch":         "watch",
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() *Config {
	return &Config{
		ModulesDir:   DefaultModulesDir,
		Manager:      manager.DefaultPath,
		MetadataFile: metadata.DefaultFileName,
		Timeout:      0,
		LogLevel:     "warn",
		LogFile:      "",
		Watch:        false,
	}
}

// LoadOptions controls where Load looks for settings
type LoadOptions struct {
	// ConfigFilePath is used exclusively when set; it must exist
	ConfigFilePath string
	// ConfigDirPath overrides ConfigDir
	ConfigDirPath string
	// Flags are bound on top of everything else when set
	Flags *pflag.FlagSet
}

// ConfigDir returns $XDG_CONFIG_HOME/envmodules, defaulting to ~/.config
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}

// Load resolves the configuration. It returns the config file that was read,
// or "" when only defaults, environment and flags applied.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("modules_dir", defaults.ModulesDir)
	v.SetDefault("manager", defaults.Manager)
	v.SetDefault("metadata_file", defaults.MetadataFile)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("watch", defaults.Watch)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	resolvedPath, err := readConfigFile(v, opts)
	if err != nil {
		return nil, "", err
	}

	if opts.Flags != nil {
		for key, name := range flagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, "", fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, resolvedPath, nil
}

func readConfigFile(v *viper.Viper, opts LoadOptions) (string, error) {
	path := opts.ConfigFilePath
	if path == "" {
		dir := opts.ConfigDirPath
		if dir == "" {
			var err error
			dir, err = ConfigDir()
			if err != nil {
				// no home directory: defaults still apply
				return "", nil
			}
		}

		path = filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return path, nil
}

// Validate checks settings that would make every operation fail
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ModulesDir) == "" {
		return fmt.Errorf("modules_dir must not be empty")
	}
	if strings.TrimSpace(c.Manager) == "" {
		return fmt.Errorf("manager must not be empty")
	}
	if c.MetadataFile == "" || strings.ContainsRune(c.MetadataFile, filepath.Separator) {
		return fmt.Errorf("metadata_file must be a plain file name, got %q", c.MetadataFile)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}
