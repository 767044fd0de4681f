// Package config loads the themekit command configuration from a YAML file,
// an optional .env file, and THEMEKIT_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvMaxDepth     = "THEMEKIT_MAX_DEPTH"
	EnvTheme        = "THEMEKIT_THEME"
	EnvVariant      = "THEMEKIT_VARIANT"
	EnvPlaceholders = "THEMEKIT_PLACEHOLDERS"
	EnvThemesDir    = "THEMEKIT_THEMES_DIR"
)

// Defaults applied when neither the file nor the environment set a value.
const (
	DefaultMaxDepth = 64
	DefaultTheme    = "liquid-glass"
	DefaultTitle    = "themekit"
	DefaultLang     = "en"
)

// Config represents the command configuration.
type Config struct {
	Theme        string       `yaml:"theme"`
	Variant      string       `yaml:"variant,omitempty"`
	MaxDepth     int          `yaml:"max_depth,omitempty"`
	Placeholders bool         `yaml:"placeholders"`
	ThemesDir    string       `yaml:"themes_dir,omitempty"`
	Document     DocumentMeta `yaml:"document"`
}

// DocumentMeta configures the HTML document the rendered page is wrapped in.
type DocumentMeta struct {
	Title string `yaml:"title"`
	Lang  string `yaml:"lang"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads path, applies .env and environment overrides, fills defaults and
// validates the result. A missing file is not an error: defaults and the
// environment still apply.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{}
	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if value, ok := lookup(EnvTheme); ok && strings.TrimSpace(value) != "" {
		c.Theme = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvVariant); ok {
		c.Variant = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvThemesDir); ok && strings.TrimSpace(value) != "" {
		c.ThemesDir = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvMaxDepth); ok && strings.TrimSpace(value) != "" {
		depth, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvMaxDepth, err)
		}
		c.MaxDepth = depth
	}
	if value, ok := lookup(EnvPlaceholders); ok && strings.TrimSpace(value) != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvPlaceholders, err)
		}
		c.Placeholders = enabled
	}
	return nil
}

func (c *Config) applyDefaults() {
	c.Theme = strings.TrimSpace(c.Theme)
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if strings.TrimSpace(c.Document.Title) == "" {
		c.Document.Title = DefaultTitle
	}
	if strings.TrimSpace(c.Document.Lang) == "" {
		c.Document.Lang = DefaultLang
	}
}

// Validate reports values that cannot be used.
func (c *Config) Validate() error {
	var problems []string
	if c.MaxDepth < 1 {
		problems = append(problems, fmt.Sprintf("max_depth must be positive, got %d", c.MaxDepth))
	}
	if c.ThemesDir != "" {
		info, err := os.Stat(c.ThemesDir)
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("themes_dir %q: %v", c.ThemesDir, err))
		case !info.IsDir():
			problems = append(problems, fmt.Sprintf("themes_dir %q is not a directory", c.ThemesDir))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
