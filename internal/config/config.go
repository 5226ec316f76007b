// Package config loads settings for the command line tools from a TOML
// file, a .env file and ID3TAG_* environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override the file.
const (
	EnvLogLevel        = "ID3TAG_LOG_LEVEL"
	EnvPadding         = "ID3TAG_PADDING"
	EnvCopyBufferSize  = "ID3TAG_COPY_BUFFER_SIZE"
	EnvBackup          = "ID3TAG_BACKUP"
	EnvPreserveModTime = "ID3TAG_PRESERVE_MODTIME"
	EnvLegacyFallback  = "ID3TAG_LEGACY_FALLBACK"
	EnvHTTPTimeout     = "ID3TAG_HTTP_TIMEOUT"
	EnvWorkers         = "ID3TAG_WORKERS"
)

// Config holds the tool settings.
type Config struct {
	LogLevel        string
	Padding         int
	CopyBufferSize  int
	Backup          bool
	PreserveModTime bool
	LegacyFallback  bool
	HTTPTimeout     time.Duration
	Workers         int
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		LogLevel:       "info",
		Padding:        1024,
		CopyBufferSize: 32 * 1024,
		LegacyFallback: true,
		HTTPTimeout:    30 * time.Second,
		Workers:        runtime.NumCPU(),
	}
}

type fileConfig struct {
	LogLevel        string `toml:"log_level"`
	Padding         int    `toml:"padding"`
	CopyBufferSize  int    `toml:"copy_buffer_size"`
	Backup          bool   `toml:"backup"`
	PreserveModTime bool   `toml:"preserve_mod_time"`
	LegacyFallback  bool   `toml:"legacy_fallback"`
	HTTPTimeout     string `toml:"http_timeout"`
	Workers         int    `toml:"workers"`
}

// Load builds the configuration. An empty path skips the TOML file; a
// missing .env file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path, cfg); err != nil {
			return Config{}, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the keys defined in the TOML file at path onto base.
func LoadFile(path string, base Config) (Config, error) {
	cfg := base

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("padding") {
		cfg.Padding = raw.Padding
	}
	if meta.IsDefined("copy_buffer_size") {
		cfg.CopyBufferSize = raw.CopyBufferSize
	}
	if meta.IsDefined("backup") {
		cfg.Backup = raw.Backup
	}
	if meta.IsDefined("preserve_mod_time") {
		cfg.PreserveModTime = raw.PreserveModTime
	}
	if meta.IsDefined("legacy_fallback") {
		cfg.LegacyFallback = raw.LegacyFallback
	}
	if meta.IsDefined("http_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.HTTPTimeout))
		if err != nil {
			return Config{}, fmt.Errorf("parse http_timeout: %w", err)
		}
		cfg.HTTPTimeout = d
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if err := envInt(EnvPadding, &cfg.Padding); err != nil {
		return err
	}
	if err := envInt(EnvCopyBufferSize, &cfg.CopyBufferSize); err != nil {
		return err
	}
	if err := envBool(EnvBackup, &cfg.Backup); err != nil {
		return err
	}
	if err := envBool(EnvPreserveModTime, &cfg.PreserveModTime); err != nil {
		return err
	}
	if err := envBool(EnvLegacyFallback, &cfg.LegacyFallback); err != nil {
		return err
	}
	if err := envInt(EnvWorkers, &cfg.Workers); err != nil {
		return err
	}
	if v, ok := lookup(EnvHTTPTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvHTTPTimeout, err)
		}
		cfg.HTTPTimeout = d
	}
	return nil
}

func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func envInt(key string, dst *int) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = n
	return nil
}

func envBool(key string, dst *bool) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = b
	return nil
}

// Validate rejects settings the library would refuse.
func (c Config) Validate() error {
	switch {
	case c.Padding < 0:
		return fmt.Errorf("padding must not be negative, got %d", c.Padding)
	case c.CopyBufferSize <= 0:
		return fmt.Errorf("copy buffer size must be positive, got %d", c.CopyBufferSize)
	case c.HTTPTimeout < 0:
		return fmt.Errorf("http timeout must not be negative, got %v", c.HTTPTimeout)
	case c.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}
