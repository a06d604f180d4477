package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides where the config file is looked up.
const EnvConfigPath = "BGPCHART_CONFIG"

// compiled-in defaults, used when no config file is present
const (
	DefaultBaseURL        = "https://bgp.he.net/cgi-bin/bgpchart.cgi"
	DefaultUserAgent      = "Mozilla/5.0 (X11; ; Linux i686; rv:1.9.2.20) Gecko/20110805"
	DefaultTimeoutSeconds = 30
)

// Config carries the values of the remote service contract: where the
// chart endpoint lives, what User-Agent to present and how long to
// wait for an answer. Everything else about the tool is fixed.
type Config struct {
	BaseURL        string `yaml:"base_url"`
	UserAgent      string `yaml:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Default returns a Config holding the compiled-in defaults.
func Default() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		UserAgent:      DefaultUserAgent,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load locates and reads the optional config file. The BGPCHART_CONFIG
// environment variable takes precedence; otherwise the file is looked
// up under the user config directory. A missing file is not an error,
// the defaults apply.
func Load() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return LoadFile(path)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return Default(), nil
	}

	return LoadFile(filepath.Join(dir, "bgpchart", "config.yaml"))
}

// LoadFile reads one config file. Keys absent from the file keep their
// default values; a missing file yields the defaults unchanged.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}
