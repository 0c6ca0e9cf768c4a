package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'internmatch config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the config file, falling back to defaults when it
// does not exist
func LoadOrDefault(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	if _, err := os.Stat(expandedPath); os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.expandPaths(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return Load(path)
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Catalog.Path, err = expandPath(c.Catalog.Path)
	if err != nil {
		return err
	}

	c.Catalog.CareersPath, err = expandPath(c.Catalog.CareersPath)
	if err != nil {
		return err
	}

	c.Database.Path, err = expandPath(c.Database.Path)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	switch c.Catalog.Source {
	case "file", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("catalog.source must be 'file' or 'sqlite', got '%s'", c.Catalog.Source))
	}
	if c.Catalog.Source == "file" && c.Catalog.Path == "" {
		errs = append(errs, errors.New("catalog.path is required when catalog.source is 'file'"))
	}
	if c.Catalog.Source == "sqlite" && c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required when catalog.source is 'sqlite'"))
	}

	if c.Classifier.Port < 1 || c.Classifier.Port > 65535 {
		errs = append(errs, errors.New("classifier.port must be between 1 and 65535"))
	}

	if err := c.Weights.ToWeights().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("weights: %w", err))
	}

	if c.Hybrid.TopN < 1 {
		errs = append(errs, errors.New("hybrid.top_n must be at least 1"))
	}
	if err := c.Hybrid.ToHybrid().Boost.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("hybrid: %w", err))
	}

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates the directories backing the catalog and
// database paths
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Database.Path),
		filepath.Dir(c.Catalog.Path),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
