package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "id3tag.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_OverlaysDefinedKeys(t *testing.T) {
	path := writeConfig(t, `
log_level = " debug "
padding = 0
backup = true
http_timeout = "5s"
`)

	cfg, err := LoadFile(path, Default())
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	def := Default()
	if cfg.LogLevel != "debug" || cfg.Padding != 0 || !cfg.Backup || cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("got %+v", cfg)
	}
	if cfg.CopyBufferSize != def.CopyBufferSize || cfg.LegacyFallback != def.LegacyFallback || cfg.Workers != def.Workers {
		t.Errorf("undefined keys changed: %+v", cfg)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "paddding = 10\n", "unknown key"},
		{"bad duration", `http_timeout = "soon"` + "\n", "parse http_timeout"},
		{"bad toml", "padding = \n", "load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body), Default())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_EnvironmentWins(t *testing.T) {
	path := writeConfig(t, "padding = 10\nlegacy_fallback = true\n")
	t.Setenv(EnvPadding, "2048")
	t.Setenv(EnvLegacyFallback, "false")
	t.Setenv(EnvHTTPTimeout, "1m")
	t.Setenv(EnvWorkers, "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Padding != 2048 || cfg.LegacyFallback || cfg.HTTPTimeout != time.Minute || cfg.Workers != 3 {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoad_BadEnvironment(t *testing.T) {
	t.Setenv(EnvCopyBufferSize, "lots")

	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), EnvCopyBufferSize) {
		t.Fatalf("expected %s parse error, got %v", EnvCopyBufferSize, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative padding", func(c *Config) { c.Padding = -1 }},
		{"zero copy buffer", func(c *Config) { c.CopyBufferSize = 0 }},
		{"negative timeout", func(c *Config) { c.HTTPTimeout = -time.Second }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
