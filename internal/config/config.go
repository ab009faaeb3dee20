// Package config resolves strandctl configuration from defaults, optional
// configuration files, and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config captures the strand configuration resolved from defaults, optional
// files, and environment overrides.
type Config struct {
	RecipeDir    string `yaml:"recipe_dir" toml:"recipe_dir"`
	OutputFormat string `yaml:"output_format" toml:"output_format"`
}

// Default returns the built-in configuration. The recipe directory lives
// under the user's home when one can be determined.
func Default() Config {
	recipeDir := ".strand/recipes"
	if home, err := os.UserHomeDir(); err == nil {
		recipeDir = filepath.Join(home, ".strand", "recipes")
	}
	return Config{
		RecipeDir:    recipeDir,
		OutputFormat: "text",
	}
}

// Load resolves the configuration using defaults, configuration files, and
// environment overrides. The lookup order for configuration files is:
//  1. ~/.strand/config.toml (TOML)
//  2. ./strand.yml (YAML)
//
// Environment variables prefixed with STRAND_ have the highest precedence.
func Load() (Config, error) {
	cfg := Default()

	if err := loadHomeConfig(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadLocalConfig(&cfg); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.OutputFormat {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", c.OutputFormat)
	}
}

// fileConfig mirrors Config with pointer fields so keys absent from a file
// keep their previously resolved values.
type fileConfig struct {
	RecipeDir    *string `yaml:"recipe_dir" toml:"recipe_dir"`
	OutputFormat *string `yaml:"output_format" toml:"output_format"`
}

func loadHomeConfig(cfg *Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	path := filepath.Join(home, ".strand", "config.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := applyFileConfig(cfg, data, "toml"); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func loadLocalConfig(cfg *Config) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}
	path := filepath.Join(wd, "strand.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := applyFileConfig(cfg, data, "yaml"); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyFileConfig(cfg *Config, data []byte, format string) error {
	var fc fileConfig
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return err
		}
	case "toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	if fc.RecipeDir != nil {
		cfg.RecipeDir = strings.TrimSpace(*fc.RecipeDir)
	}
	if fc.OutputFormat != nil {
		cfg.OutputFormat = strings.TrimSpace(*fc.OutputFormat)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if val := strings.TrimSpace(os.Getenv("STRAND_RECIPE_DIR")); val != "" {
		cfg.RecipeDir = val
	}
	if val := strings.TrimSpace(os.Getenv("STRAND_OUTPUT_FORMAT")); val != "" {
		cfg.OutputFormat = val
	}
}
