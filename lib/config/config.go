// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/tinder/tinder"
)

// Environment selects which override section of the file applies.
type Environment string

const (
	// Development is for work against a local or stub API.
	Development Environment = "development"
	// Staging is for a non-production API deployment.
	Staging Environment = "staging"
	// Production is the real API.
	Production Environment = "production"
)

// Config is the tinder CLI configuration.
type Config struct {
	// Environment selects the override section (default production).
	Environment Environment `yaml:"environment"`

	// API configures the remote endpoints and request behavior.
	API APIConfig `yaml:"api"`

	// Identity overrides the client fingerprint headers. Empty fields
	// keep the library defaults.
	Identity tinder.Identity `yaml:"identity"`

	// Session configures session persistence.
	Session SessionConfig `yaml:"session"`

	// Log configures the CLI logger.
	Log LogConfig `yaml:"log"`

	// Per-environment overrides, applied after the base config.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	API     *APIConfig     `yaml:"api,omitempty"`
	Session *SessionConfig `yaml:"session,omitempty"`
	Log     *LogConfig     `yaml:"log,omitempty"`
}

// APIConfig configures the remote API.
type APIConfig struct {
	// URL is the origin of the JSON endpoints.
	// Default: https://api.gotinder.com
	URL string `yaml:"url"`

	// ImageURL is the origin of the picture upload endpoint.
	// Default: https://imageupload.gotinder.com
	ImageURL string `yaml:"image_url"`

	// Timeout bounds each request, as a Go duration string.
	// Default: 10s
	Timeout string `yaml:"timeout"`

	// OnlineTimeout bounds the "online" check.
	// Default: 5s
	OnlineTimeout string `yaml:"online_timeout"`

	// Locale is sent as Accept-Language.
	// Default: en
	Locale string `yaml:"locale"`
}

// SessionConfig configures where the CLI keeps its session.
type SessionConfig struct {
	// File holds the auth token, user id and last activity time, mode
	// 0600. Empty means $TINDER_SESSION_FILE, then
	// $XDG_CONFIG_HOME/tinder/session.json or ~/.config/tinder/session.json.
	File string `yaml:"file"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Default: info
	Level string `yaml:"level"`
}

// Default returns the default configuration: the production API and the
// stock client identity.
func Default() *Config {
	return &Config{
		Environment: Production,
		API: APIConfig{
			URL:           tinder.DefaultAPIURL,
			ImageURL:      tinder.DefaultImageURL,
			Timeout:       tinder.DefaultTimeout.String(),
			OnlineTimeout: tinder.DefaultOnlineTimeout.String(),
			Locale:        tinder.DefaultLocale,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the file named by TINDER_CONFIG, or
// returns the expanded defaults when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv("TINDER_CONFIG")
	if configPath == "" {
		cfg := Default()
		cfg.expandVariables()
		return cfg, nil
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Fields absent
// from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

// applyEnvironmentOverrides applies the section matching Environment.
// Only non-empty override values replace base values.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}

	if overrides == nil {
		return
	}

	if overrides.API != nil {
		overrideString(&c.API.URL, overrides.API.URL)
		overrideString(&c.API.ImageURL, overrides.API.ImageURL)
		overrideString(&c.API.Timeout, overrides.API.Timeout)
		overrideString(&c.API.OnlineTimeout, overrides.API.OnlineTimeout)
		overrideString(&c.API.Locale, overrides.API.Locale)
	}

	if overrides.Session != nil {
		overrideString(&c.Session.File, overrides.Session.File)
	}

	if overrides.Log != nil {
		overrideString(&c.Log.Level, overrides.Log.Level)
	}
}

func overrideString(target *string, value string) {
	if value != "" {
		*target = value
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in URL and
// path fields.
func (c *Config) expandVariables() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	vars := map[string]string{
		"HOME":       os.Getenv("HOME"),
		"CONFIG_DIR": configDir,
	}

	c.API.URL = expandVars(c.API.URL, vars)
	c.API.ImageURL = expandVars(c.API.ImageURL, vars)
	c.Session.File = expandVars(c.Session.File, vars)
}

// varPattern matches ${NAME} and ${NAME:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if err := validateOrigin(c.API.URL); err != nil {
		errs = append(errs, fmt.Errorf("api.url: %w", err))
	}
	if err := validateOrigin(c.API.ImageURL); err != nil {
		errs = append(errs, fmt.Errorf("api.image_url: %w", err))
	}

	if _, err := parsePositiveDuration(c.API.Timeout); err != nil {
		errs = append(errs, fmt.Errorf("api.timeout: %w", err))
	}
	if _, err := parsePositiveDuration(c.API.OnlineTimeout); err != nil {
		errs = append(errs, fmt.Errorf("api.online_timeout: %w", err))
	}

	levels := []string{"debug", "info", "warn", "error"}
	if !contains(levels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", levels))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func validateOrigin(value string) error {
	if value == "" {
		return errors.New("required")
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%q: scheme must be http or https", value)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%q: missing host", value)
	}
	return nil
}

func parsePositiveDuration(value string) (time.Duration, error) {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if duration <= 0 {
		return 0, fmt.Errorf("%s must be positive", value)
	}
	return duration, nil
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

// OnlineTimeout returns the parsed api.online_timeout. Call after Validate.
func (c *Config) OnlineTimeout() time.Duration {
	duration, err := parsePositiveDuration(c.API.OnlineTimeout)
	if err != nil {
		return tinder.DefaultOnlineTimeout
	}
	return duration
}

// ClientConfig translates the configuration into a tinder.Config. The
// caller adds the session, clock, HTTP client and logger.
func (c *Config) ClientConfig() (tinder.Config, error) {
	timeout, err := parsePositiveDuration(c.API.Timeout)
	if err != nil {
		return tinder.Config{}, fmt.Errorf("api.timeout: %w", err)
	}
	return tinder.Config{
		APIURL:   c.API.URL,
		ImageURL: c.API.ImageURL,
		Timeout:  timeout,
		Locale:   c.API.Locale,
		Identity: c.Identity,
	}, nil
}
