package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the task manager
type Config struct {
	Workspace   WorkspaceConfig   `yaml:"workspace" mapstructure:"workspace"`
	Import      ImportConfig      `yaml:"import" mapstructure:"import"`
	Export      ExportConfig      `yaml:"export" mapstructure:"export"`
	Validation  ValidationConfig  `yaml:"validation" mapstructure:"validation"`
	Application ApplicationConfig `yaml:"application" mapstructure:"application"`
}

// WorkspaceConfig locates the SQLite snapshot kept between invocations
type WorkspaceConfig struct {
	Dir            string        `yaml:"dir" mapstructure:"dir" env:"TM_WORKSPACE_DIR"`
	Filename       string        `yaml:"filename" mapstructure:"filename" env:"TM_WORKSPACE_FILENAME"`
	QueryTimeout   time.Duration `yaml:"query_timeout" mapstructure:"query_timeout" env:"TM_WORKSPACE_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" mapstructure:"write_timeout" env:"TM_WORKSPACE_WRITE_TIMEOUT"`
	DirPermissions uint32        `yaml:"dir_permissions" mapstructure:"dir_permissions" env:"TM_WORKSPACE_DIR_PERMISSIONS"`
}

// ImportConfig names the pipe-delimited file loaded into an empty workspace
type ImportConfig struct {
	Path string `yaml:"path" mapstructure:"path" env:"TM_IMPORT_PATH"`
}

// ExportConfig holds the defaults offered by the export command
type ExportConfig struct {
	DefaultFormat   string `yaml:"default_format" mapstructure:"default_format" env:"TM_EXPORT_DEFAULT_FORMAT"`
	DefaultFilename string `yaml:"default_filename" mapstructure:"default_filename" env:"TM_EXPORT_DEFAULT_FILENAME"`
}

// ValidationConfig holds form validation limits
type ValidationConfig struct {
	MaxFieldLength int `yaml:"max_field_length" mapstructure:"max_field_length" env:"TM_VALIDATION_MAX_FIELD_LENGTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" env:"TM_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" mapstructure:"verbose" env:"TM_APP_VERBOSE"`
}

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Workspace: WorkspaceConfig{
			Dir:            filepath.Join(homeDir, ".tm"),
			Filename:       "tm.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Import: ImportConfig{
			Path: "Tareas.txt",
		},
		Export: ExportConfig{
			DefaultFormat:   "csv",
			DefaultFilename: "tareas export.csv",
		},
		Validation: ValidationConfig{
			MaxFieldLength: 255,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the workspace database
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Workspace.Dir, c.Workspace.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Workspace.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Workspace.WriteTimeout
}

// YAML renders the effective configuration in config file syntax
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// LoadFromEnvironment overrides values with TM_* environment variables.
// Unparsable values are ignored.
func (c *Config) LoadFromEnvironment() error {
	// Workspace configuration
	if dir := os.Getenv("TM_WORKSPACE_DIR"); dir != "" {
		c.Workspace.Dir = dir
	}
	if filename := os.Getenv("TM_WORKSPACE_FILENAME"); filename != "" {
		c.Workspace.Filename = filename
	}
	if timeout := os.Getenv("TM_WORKSPACE_QUERY_TIMEOUT"); timeout != "" {
		c.Workspace.QueryTimeout = ParseDurationWithFallback(timeout, c.Workspace.QueryTimeout)
	}
	if timeout := os.Getenv("TM_WORKSPACE_WRITE_TIMEOUT"); timeout != "" {
		c.Workspace.WriteTimeout = ParseDurationWithFallback(timeout, c.Workspace.WriteTimeout)
	}
	if perms := os.Getenv("TM_WORKSPACE_DIR_PERMISSIONS"); perms != "" {
		c.Workspace.DirPermissions = ParseUint32WithFallback(perms, 8, c.Workspace.DirPermissions)
	}

	// Import and export
	if path, ok := os.LookupEnv("TM_IMPORT_PATH"); ok {
		c.Import.Path = path
	}
	if format := os.Getenv("TM_EXPORT_DEFAULT_FORMAT"); format != "" {
		c.Export.DefaultFormat = format
	}
	if filename := os.Getenv("TM_EXPORT_DEFAULT_FILENAME"); filename != "" {
		c.Export.DefaultFilename = filename
	}

	// Validation
	if maxLen := os.Getenv("TM_VALIDATION_MAX_FIELD_LENGTH"); maxLen != "" {
		c.Validation.MaxFieldLength = ParseIntWithFallback(maxLen, c.Validation.MaxFieldLength)
	}

	// Application configuration
	if timeout := os.Getenv("TM_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TM_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns the first problem found
func (c *Config) Validate() error {
	if c.Workspace.Dir == "" {
		return &ConfigError{Field: "workspace.dir", Message: "workspace directory cannot be empty"}
	}
	if c.Workspace.Filename == "" {
		return &ConfigError{Field: "workspace.filename", Message: "workspace filename cannot be empty"}
	}
	if c.Workspace.QueryTimeout <= 0 {
		return &ConfigError{Field: "workspace.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Workspace.WriteTimeout <= 0 {
		return &ConfigError{Field: "workspace.write_timeout", Message: "write timeout must be positive"}
	}

	switch c.Export.DefaultFormat {
	case "csv", "pdf", "pipe":
	default:
		return &ConfigError{Field: "export.default_format", Message: "default format must be csv, pdf or pipe"}
	}
	if c.Export.DefaultFilename == "" {
		return &ConfigError{Field: "export.default_filename", Message: "default export filename cannot be empty"}
	}

	if c.Validation.MaxFieldLength < 1 {
		return &ConfigError{Field: "validation.max_field_length", Message: "maximum field length must be at least 1"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
