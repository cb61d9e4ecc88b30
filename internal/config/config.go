package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	appName   = "skatelog"
	envPrefix = "SKATELOG"

	BackendSQLite = "sqlite"
	BackendFile   = "file"

	sqliteFileName = "skatelog.db"
	jsonFileName   = "skating_data.json"
)

var ErrInvalidConfig = errors.New("invalid config")

// StorageConfig selects where tracker state lives.
type StorageConfig struct {
	// Backend is "sqlite" or "file".
	Backend string `mapstructure:"backend" yaml:"backend"`

	// Path is the database or JSON file. Empty means the default file for
	// Backend inside DataDir.
	Path string `mapstructure:"path" yaml:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// Config is the top-level application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Export  ExportConfig  `mapstructure:"export" yaml:"export"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/skatelog/config.yaml, falling
// back to ~/.config/skatelog/config.yaml.
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", appName, "config.yaml")
}

// DataDir returns $XDG_DATA_HOME/skatelog, falling back to
// ~/.local/share/skatelog.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(home, ".local", "share", appName)
}

// Load reads the YAML file at path, or DefaultConfigPath when path is empty,
// then applies SKATELOG_* environment overrides. A missing default file
// yields the defaults; a missing explicit file is an error. The result is
// validated.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can resolve it on Unmarshal.
	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("storage.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("export.dir", ".")

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &pathErr) || errors.As(err, &notFound)
		if explicit || !missing {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Storage.Path == "" {
		name := sqliteFileName
		if c.Storage.Backend == BackendFile {
			name = jsonFileName
		}
		c.Storage.Path = filepath.Join(DataDir(), name)
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "."
	}
}

// Validate rejects unknown backend, level and format values.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("%w: storage.backend %q (want sqlite or file)", ErrInvalidConfig, c.Storage.Backend)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, s)
}

// NewLogger builds the process logger described by c, writing to w.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
