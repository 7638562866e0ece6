// Package config loads the optional sudoq TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"sudoq/internal/model"
)

// HTTP configures upstream fetching.
type HTTP struct {
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserAgent      string `toml:"user_agent"`
}

// PresetEntry adds or overrides one upstream preset.
type PresetEntry struct {
	Desc    string `toml:"desc"`
	URL     string `toml:"url"`
	Letters bool   `toml:"letters"`
}

// Config is the full file shape. Every field has a working default;
// the file itself is optional.
type Config struct {
	Workspace string                 `toml:"workspace"`
	HTTP      HTTP                   `toml:"http"`
	Presets   map[string]PresetEntry `toml:"presets"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HTTP: HTTP{TimeoutSeconds: 30},
	}
}

// DefaultPath returns the conventional config location.
func DefaultPath() string {
	if env := os.Getenv("SUDOQ_CONFIG"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sudoq", "config.toml")
}

// Load reads and validates the file at path. The file must exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the conventional config, tolerating its absence.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) validate() error {
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be positive, got %d", c.HTTP.TimeoutSeconds)
	}
	for key, p := range c.Presets {
		if strings.TrimSpace(key) == "" {
			return errors.New("preset key cannot be empty")
		}
		if !strings.HasPrefix(p.URL, "http://") && !strings.HasPrefix(p.URL, "https://") {
			return fmt.Errorf("preset %q: url must be http(s), got %q", key, p.URL)
		}
	}
	return nil
}

// Timeout returns the fetch timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// ResolveWorkspace picks the workspace directory: explicit flag, then
// $SUDOQ_WORKSPACE, then the config file, then ~/.sudoq.
func (c *Config) ResolveWorkspace(flag string) string {
	if flag != "" {
		return expandHome(flag)
	}
	if env := os.Getenv("SUDOQ_WORKSPACE"); env != "" {
		return expandHome(env)
	}
	if c.Workspace != "" {
		return expandHome(c.Workspace)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sudoq"
	}
	return filepath.Join(home, ".sudoq")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

// MergedPresets layers file-defined presets over the built-in table.
func (c *Config) MergedPresets() map[string]model.Preset {
	merged := make(map[string]model.Preset, len(model.Presets)+len(c.Presets))
	for k, p := range model.Presets {
		merged[k] = p
	}
	for k, e := range c.Presets {
		merged[k] = model.Preset{Key: k, Desc: e.Desc, URL: e.URL, Letters: e.Letters}
	}
	return merged
}
