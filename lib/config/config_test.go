// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/tinder/tinder"
)

// writeConfig writes content to a tinder.yaml in a fresh temp dir and
// returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "tinder.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Environment != Production {
		t.Errorf("expected environment=production, got %s", cfg.Environment)
	}
	if cfg.API.URL != "https://api.gotinder.com" {
		t.Errorf("expected api.url=https://api.gotinder.com, got %s", cfg.API.URL)
	}
	if cfg.API.ImageURL != "https://imageupload.gotinder.com" {
		t.Errorf("expected api.image_url=https://imageupload.gotinder.com, got %s", cfg.API.ImageURL)
	}
	if cfg.API.Timeout != "10s" {
		t.Errorf("expected api.timeout=10s, got %s", cfg.API.Timeout)
	}
	if cfg.API.Locale != "en" {
		t.Errorf("expected api.locale=en, got %s", cfg.API.Locale)
	}
}

func TestLoad_WithoutTinderConfig(t *testing.T) {
	t.Setenv("TINDER_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.API.URL != tinder.DefaultAPIURL {
		t.Errorf("expected default api.url, got %s", cfg.API.URL)
	}
	if cfg.Session.File != "" {
		t.Errorf("expected empty session.file so the CLI resolves it, got %s", cfg.Session.File)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoad_WithTinderConfig(t *testing.T) {
	configPath := writeConfig(t, `
environment: staging
api:
  url: https://staging.example.com
`)
	t.Setenv("TINDER_CONFIG", configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Environment != Staging {
		t.Errorf("expected environment=staging, got %s", cfg.Environment)
	}
	if cfg.API.URL != "https://staging.example.com" {
		t.Errorf("expected api.url=https://staging.example.com, got %s", cfg.API.URL)
	}
	if cfg.API.ImageURL != tinder.DefaultImageURL {
		t.Errorf("expected default image_url to survive, got %s", cfg.API.ImageURL)
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, `
environment: production

api:
  timeout: 30s
  online_timeout: 2s
  locale: fr

identity:
  user_agent: Tinder/11.4.0 (iPhone; iOS 15.0)
  platform: ios

session:
  file: /var/lib/tinder/session.json

log:
  level: debug
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.API.Timeout != "30s" {
		t.Errorf("expected timeout=30s, got %s", cfg.API.Timeout)
	}
	if cfg.OnlineTimeout() != 2*time.Second {
		t.Errorf("expected online timeout 2s, got %v", cfg.OnlineTimeout())
	}
	if cfg.API.Locale != "fr" {
		t.Errorf("expected locale=fr, got %s", cfg.API.Locale)
	}
	if cfg.Identity.Platform != "ios" || cfg.Identity.OSVersion != "" {
		t.Errorf("unexpected identity %+v", cfg.Identity)
	}
	if cfg.Session.File != "/var/lib/tinder/session.json" {
		t.Errorf("expected session.file=/var/lib/tinder/session.json, got %s", cfg.Session.File)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log.level=debug, got %s", cfg.Log.Level)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "absent.yaml") {
		t.Errorf("error does not name the file: %v", err)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	configPath := writeConfig(t, "api: [unclosed")
	if _, err := LoadFile(configPath); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	configPath := writeConfig(t, `
environment: development

api:
  url: https://api.gotinder.com
  timeout: 10s

log:
  level: info

development:
  api:
    url: http://127.0.0.1:8080
    image_url: http://127.0.0.1:8081
  log:
    level: debug

production:
  api:
    timeout: 1s
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.API.URL != "http://127.0.0.1:8080" {
		t.Errorf("expected development api.url, got %s", cfg.API.URL)
	}
	if cfg.API.ImageURL != "http://127.0.0.1:8081" {
		t.Errorf("expected development api.image_url, got %s", cfg.API.ImageURL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log.level=debug, got %s", cfg.Log.Level)
	}
	if cfg.API.Timeout != "10s" {
		t.Errorf("production section leaked into development: timeout=%s", cfg.API.Timeout)
	}
}

func TestEnvVarsDoNotOverride(t *testing.T) {
	t.Setenv("TINDER_API_URL", "https://env.example.com")

	configPath := writeConfig(t, `
api:
  url: https://file.example.com
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.API.URL != "https://file.example.com" {
		t.Errorf("expected api.url from file, got %s (env vars should not override)", cfg.API.URL)
	}
}

func TestVariableExpansion(t *testing.T) {
	t.Setenv("HOME", "/home/ada")
	t.Setenv("TINDER_STUB_PORT", "9090")

	configPath := writeConfig(t, `
api:
  url: http://localhost:${TINDER_STUB_PORT:-8080}
  image_url: http://localhost:${TINDER_IMAGE_PORT:-8081}
session:
  file: ${HOME}/tinder/session.json
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.API.URL != "http://localhost:9090" {
		t.Errorf("expected api.url=http://localhost:9090, got %s", cfg.API.URL)
	}
	if cfg.API.ImageURL != "http://localhost:8081" {
		t.Errorf("expected api.image_url=http://localhost:8081, got %s", cfg.API.ImageURL)
	}
	if cfg.Session.File != "/home/ada/tinder/session.json" {
		t.Errorf("expected session.file=/home/ada/tinder/session.json, got %s", cfg.Session.File)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/tinder",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/tinder",
		},
		{
			input:    "${TINDER_TEST_MISSING:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "${A}/${B}",
			vars:     map[string]string{"A": "first", "B": "second"},
			expected: "first/second",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "invalid environment",
			modify:  func(c *Config) { c.Environment = "invalid" },
			wantErr: true,
		},
		{
			name:    "empty api url",
			modify:  func(c *Config) { c.API.URL = "" },
			wantErr: true,
		},
		{
			name:    "non-http image url",
			modify:  func(c *Config) { c.API.ImageURL = "ftp://images.example.com" },
			wantErr: true,
		},
		{
			name:    "unparseable timeout",
			modify:  func(c *Config) { c.API.Timeout = "soon" },
			wantErr: true,
		},
		{
			name:    "zero online timeout",
			modify:  func(c *Config) { c.API.OnlineTimeout = "0s" },
			wantErr: true,
		},
		{
			name:    "explicit session file",
			modify:  func(c *Config) { c.Session.File = "/tmp/session.json" },
			wantErr: false,
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClientConfig(t *testing.T) {
	cfg := Default()
	cfg.API.Timeout = "3s"
	cfg.Identity.AppVersion = "2000"

	clientConfig, err := cfg.ClientConfig()
	if err != nil {
		t.Fatalf("ClientConfig: %v", err)
	}
	if clientConfig.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", clientConfig.Timeout)
	}
	if clientConfig.APIURL != tinder.DefaultAPIURL || clientConfig.ImageURL != tinder.DefaultImageURL {
		t.Errorf("origins = %s %s", clientConfig.APIURL, clientConfig.ImageURL)
	}
	if clientConfig.Identity.AppVersion != "2000" {
		t.Errorf("Identity.AppVersion = %q, want 2000", clientConfig.Identity.AppVersion)
	}

	cfg.API.Timeout = "-1s"
	if _, err := cfg.ClientConfig(); err == nil {
		t.Error("expected error for negative timeout")
	}
}
