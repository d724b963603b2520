// Package config loads and validates depscope configuration from
// .depscope/config.yaml, falling back to defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the depscope configuration file
const ConfigFileName = "config.yaml"

// ConfigDirName is the name of the depscope configuration directory
const ConfigDirName = ".depscope"

// Config holds all depscope configuration
type Config struct {
	Scan   ScanConfig   `yaml:"scan"`
	Groups GroupsConfig `yaml:"groups"`
	Output OutputConfig `yaml:"output"`
	Cache  CacheConfig  `yaml:"cache"`
}

// ScanConfig holds configuration for the inventory walk
type ScanConfig struct {
	// MaxFiles caps the inventory size; files past the cap are dropped
	// after a stable sort by path.
	MaxFiles int `yaml:"max_files"`
	// MaxFileSizeBytes caps per-file content reads. Larger files stay in
	// the graph but skip extraction.
	MaxFileSizeBytes int64 `yaml:"max_file_size_bytes"`
	// IgnoreFiles names the gitignore-style rule files honored during the
	// walk, e.g. .depscopeignore and .gitignore.
	IgnoreFiles []string `yaml:"ignore_files"`
	// Workers bounds the extraction worker pool. Zero means one worker
	// per CPU.
	Workers int `yaml:"workers"`
}

// GroupsConfig holds configuration for functional grouping
type GroupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// CacheConfig holds configuration for the cross-run extraction cache
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ErrConfigNotFound is returned when no config file can be found
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config from .depscope/config.yaml, falling back to defaults.
// It searches for the config directory starting from workDir and walking up
// the directory tree. If no config is found, returns defaults.
func Load(workDir string) (*Config, error) {
	configDir, err := FindConfigDir(workDir)
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFromPath(filepath.Join(configDir, ConfigFileName))
}

// LoadFromPath reads config from a specific path.
// Merges loaded config with defaults and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	merged := Merge(loaded, DefaultConfig())
	if err := Validate(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// FindConfigDir locates the .depscope directory by walking up from startDir.
// Returns the path to the .depscope directory if found.
func FindConfigDir(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	currentDir := absDir
	for {
		configDir := filepath.Join(currentDir, ConfigDirName)
		info, err := os.Stat(configDir)
		if err == nil && info.IsDir() {
			return configDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", ErrConfigNotFound
		}
		currentDir = parentDir
	}
}

// EnsureConfigDir creates the .depscope directory if it doesn't exist.
// Returns the path to the .depscope directory.
func EnsureConfigDir(workDir string) (string, error) {
	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	configDir := filepath.Join(absDir, ConfigDirName)
	info, err := os.Stat(configDir)
	if err == nil {
		if info.IsDir() {
			return configDir, nil
		}
		return "", fmt.Errorf("%s exists but is not a directory", configDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return configDir, nil
}

// Validate checks that config values are valid.
// Returns an error if validation fails.
func Validate(cfg *Config) error {
	if cfg.Scan.MaxFiles <= 0 {
		return fmt.Errorf("%w: max_files must be positive, got %d",
			ErrInvalidConfig, cfg.Scan.MaxFiles)
	}
	if cfg.Scan.MaxFileSizeBytes <= 0 {
		return fmt.Errorf("%w: max_file_size_bytes must be positive, got %d",
			ErrInvalidConfig, cfg.Scan.MaxFileSizeBytes)
	}
	if cfg.Scan.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d",
			ErrInvalidConfig, cfg.Scan.Workers)
	}
	if cfg.Output.DefaultFormat != "yaml" && cfg.Output.DefaultFormat != "json" {
		return fmt.Errorf("%w: default_format must be yaml or json, got %q",
			ErrInvalidConfig, cfg.Output.DefaultFormat)
	}
	return nil
}

// SaveDefault writes the default configuration to .depscope/config.yaml in
// workDir. Creates the .depscope directory if it doesn't exist.
func SaveDefault(workDir string) (string, error) {
	configDir, err := EnsureConfigDir(workDir)
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists: %s", configPath)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}

	header := "# depscope configuration\n\n"
	data = append([]byte(header), data...)

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}
	return configPath, nil
}
