// Package config holds the tool-wide configuration shared by every
// subcommand.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the global configuration.
type Config struct {
	// CacheDir is the directory assets are fetched into when neither
	// the manifest nor the --dir flag names one.
	CacheDir string `yaml:"cacheDir"`
	// TempDir overrides the system temp directory when set.
	TempDir string `yaml:"tempDir"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{CacheDir: "assets"}
	c.Logging.Level = "info"
	return c
}

// Load reads a YAML config file over the defaults. An empty path or an
// absent file yields the defaults; any other failure propagates.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if c.CacheDir == "" {
		c.CacheDir = Default().CacheDir
	}
	if c.Logging.Level == "" {
		c.Logging.Level = Default().Logging.Level
	}
	return c, nil
}

// CacheDirAbs returns the absolute path to the cache directory.
func (c *Config) CacheDirAbs() (string, error) {
	return filepath.Abs(c.CacheDir)
}

// CreateCacheDir ensures the cache directory exists.
func (c *Config) CreateCacheDir() error {
	dir, err := c.CacheDirAbs()
	if err != nil {
		return fmt.Errorf("resolving cache directory: %w", err)
	}
	return createDirIfNotExists(dir)
}

// ResolvedTempDir returns the temporary directory path.
func (c *Config) ResolvedTempDir() string {
	if c.TempDir == "" {
		return os.TempDir()
	}
	return c.TempDir
}

// IsDebugMode returns true if debug logging is enabled.
func (c *Config) IsDebugMode() bool {
	return c.Logging.Level == "debug"
}

// Helper function to create directories
func createDirIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
