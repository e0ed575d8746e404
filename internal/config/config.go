package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/starsep/refreshVersions/internal/versionsfile"
)

const (
	// DefaultVersionsFile is the versions file read when no path is configured.
	DefaultVersionsFile = "versions.properties"

	// YAMLConfigFile is looked up first in the working directory.
	YAMLConfigFile = ".refreshversions.yaml"

	// TOMLConfigFile is used when no YAML config file exists.
	TOMLConfigFile = ".refreshversions.toml"

	// PathEnvVar overrides the configured versions file path.
	PathEnvVar = "REFRESHVERSIONS_PATH"
)

var (
	// ValidLogLevels lists the accepted log.level values.
	ValidLogLevels = []string{"debug", "info", "warn", "error"}

	// ValidLogFormats lists the accepted log.format values.
	ValidLogFormats = []string{"text", "json"}
)

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level,omitempty" toml:"level,omitempty"`
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`
}

// Config is the main configuration structure for refreshversions.
type Config struct {
	Path               string     `yaml:"path" toml:"path"`
	VersionKeyPrefixes []string   `yaml:"version-key-prefixes,omitempty" toml:"version-key-prefixes,omitempty"`
	Log                *LogConfig `yaml:"log,omitempty" toml:"log,omitempty"`
	Theme              string     `yaml:"theme,omitempty" toml:"theme,omitempty"`

	// Source is the config file the values were read from, empty for defaults.
	Source string `yaml:"-" toml:"-"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// LoadConfigFn is a function variable so tests can stub configuration loading.
var LoadConfigFn = loadConfig

func loadConfig() (*Config, error) {
	cfg, err := loadConfigFile()
	if err != nil {
		return nil, err
	}

	// Highest priority: ENV variable
	if envPath := os.Getenv(PathEnvVar); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", PathEnvVar)
		}
		if cfg == nil {
			cfg = Default()
		}
		cfg.Path = cleanPath
	}

	return cfg, nil
}

// loadConfigFile reads the YAML config, falling back to TOML. It returns
// nil, nil when neither file exists.
func loadConfigFile() (*Config, error) {
	data, err := os.ReadFile(YAMLConfigFile)
	if err == nil {
		return decodeYAML(data)
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %q: %w", YAMLConfigFile, err)
	}

	data, err = os.ReadFile(TOMLConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // fallback to default
		}
		return nil, fmt.Errorf("failed to read %q: %w", TOMLConfigFile, err)
	}
	return decodeTOML(data)
}

func decodeYAML(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %q: %w", YAMLConfigFile, err)
	}
	cfg.Source = YAMLConfigFile
	applyDefaults(&cfg)
	return &cfg, nil
}

func decodeTOML(data []byte) (*Config, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", TOMLConfigFile, err)
	}
	cfg.Source = TOMLConfigFile
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Path == "" {
		cfg.Path = DefaultVersionsFile
	}
	if len(cfg.VersionKeyPrefixes) == 0 {
		cfg.VersionKeyPrefixes = slices.Clone(versionsfile.DefaultVersionKeyPrefixes)
	}
	if cfg.Log == nil {
		cfg.Log = &LogConfig{}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// NormalizeVersionsPath ensures the path is a file, not just a directory.
func NormalizeVersionsPath(path string) string {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return filepath.Join(path, DefaultVersionsFile)
	}

	// If it doesn't exist or is already a file, return as-is
	return path
}
