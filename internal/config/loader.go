package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"task-manager/internal/logging"
)

// EnvConfigFile names the variable that points at an alternative config file
const EnvConfigFile = "TM_CONFIG"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
	path   string
}

// NewLoader creates a loader reading the default config file location
func NewLoader() *Loader {
	return NewLoaderWithFile(DefaultConfigPath())
}

// NewLoaderWithFile creates a loader reading the YAML file at path.
// An empty path skips the file layer.
func NewLoaderWithFile(path string) *Loader {
	return &Loader{
		config: DefaultConfig(),
		path:   path,
	}
}

// DefaultConfigPath returns $TM_CONFIG or ~/.tm/config.yaml
func DefaultConfigPath() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tm", "config.yaml")
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFile(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if err := config.ApplyOverrides(overrides); err != nil {
		return nil, err
	}

	return config, nil
}

// loadFile merges the YAML file over the defaults. A missing file is not an error.
func (l *Loader) loadFile() error {
	if l.path == "" {
		return nil
	}
	if _, err := os.Stat(l.path); errors.Is(err, fs.ErrNotExist) {
		logging.Debugf("no config file at %s\n", l.path)
		return nil
	}

	v := viper.New()
	v.SetConfigFile(l.path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return &ConfigError{Field: "file", Message: fmt.Sprintf("cannot read %s: %v", l.path, err)}
	}
	if err := v.Unmarshal(l.config); err != nil {
		return &ConfigError{Field: "file", Message: fmt.Sprintf("cannot decode %s: %v", l.path, err)}
	}

	logging.Debugf("loaded config file %s\n", l.path)
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Workspace overrides
	WorkspaceDir      *string
	WorkspaceFilename *string
	QueryTimeout      *time.Duration
	WriteTimeout      *time.Duration

	// Import/export overrides
	ImportPath          *string
	ExportDefaultFormat *string

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// ApplyOverrides applies command line overrides and re-validates the result
func (c *Config) ApplyOverrides(overrides *ConfigOverrides) error {
	if overrides == nil {
		return nil
	}

	if overrides.WorkspaceDir != nil {
		c.Workspace.Dir = *overrides.WorkspaceDir
	}
	if overrides.WorkspaceFilename != nil {
		c.Workspace.Filename = *overrides.WorkspaceFilename
	}
	if overrides.QueryTimeout != nil {
		c.Workspace.QueryTimeout = *overrides.QueryTimeout
	}
	if overrides.WriteTimeout != nil {
		c.Workspace.WriteTimeout = *overrides.WriteTimeout
	}

	if overrides.ImportPath != nil {
		c.Import.Path = *overrides.ImportPath
	}
	if overrides.ExportDefaultFormat != nil {
		c.Export.DefaultFormat = *overrides.ExportDefaultFormat
	}

	if overrides.Timeout != nil {
		c.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		c.Application.Verbose = *overrides.Verbose
	}

	return c.Validate()
}
