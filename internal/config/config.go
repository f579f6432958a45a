// Package config loads console and CLI configuration from defaults, an
// optional YAML file and GLAM_* environment variables, in that order.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds configuration for the GlamGiant web console.
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"GLAM_ADDR, overwrite"`
	LogLevel        string        `yaml:"log_level" env:"GLAM_LOG_LEVEL, overwrite"`
	LogFormat       string        `yaml:"log_format" env:"GLAM_LOG_FORMAT, overwrite"`
	DBPath          string        `yaml:"db_path" env:"GLAM_DB_PATH, overwrite"` // default ~/.glamgiant/console.db, ":memory:" for testing
	APIURL          string        `yaml:"api_url" env:"GLAM_API_URL, overwrite"`
	APITimeout      time.Duration `yaml:"api_timeout" env:"GLAM_API_TIMEOUT, overwrite"`
	SessionTTL      time.Duration `yaml:"session_ttl" env:"GLAM_SESSION_TTL, overwrite"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"GLAM_CLEANUP_INTERVAL, overwrite"`
	SecureCookies   bool          `yaml:"secure_cookies" env:"GLAM_SECURE_COOKIES, overwrite"`
	PageSize        int           `yaml:"page_size" env:"GLAM_PAGE_SIZE, overwrite"`
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            ":8080",
		LogLevel:        "info",
		LogFormat:       "text",
		APIURL:          "http://localhost:3000",
		APITimeout:      10 * time.Second,
		SessionTTL:      24 * time.Hour,
		CleanupInterval: 10 * time.Minute,
		PageSize:        10,
	}
}

// CLIConfig holds configuration for glamctl.
type CLIConfig struct {
	APIURL    string `yaml:"api_url" env:"GLAM_API_URL, overwrite"`
	StateDir  string `yaml:"state_dir" env:"GLAM_STATE_DIR, overwrite"` // default ~/.glamgiant
	LogLevel  string `yaml:"log_level" env:"GLAM_LOG_LEVEL, overwrite"`
	LogFormat string `yaml:"log_format" env:"GLAM_LOG_FORMAT, overwrite"`
	PageSize  int    `yaml:"page_size" env:"GLAM_PAGE_SIZE, overwrite"`
}

// DefaultCLIConfig returns sensible defaults.
func DefaultCLIConfig() CLIConfig {
	return CLIConfig{
		APIURL:    "http://localhost:3000",
		LogLevel:  "warn",
		LogFormat: "text",
		PageSize:  10,
	}
}

// LoadServer builds a ServerConfig from defaults, the YAML file at path
// (skipped when empty) and the process environment.
func LoadServer(ctx context.Context, path string) (ServerConfig, error) {
	return loadServer(ctx, path, envconfig.OsLookuper())
}

func loadServer(ctx context.Context, path string, lookuper envconfig.Lookuper) (ServerConfig, error) {
	cfg := DefaultServerConfig()
	if err := load(ctx, path, lookuper, &cfg); err != nil {
		return cfg, err
	}
	if cfg.PageSize <= 0 {
		return cfg, fmt.Errorf("page_size must be positive, got %d", cfg.PageSize)
	}
	if cfg.SessionTTL <= 0 {
		return cfg, fmt.Errorf("session_ttl must be positive, got %s", cfg.SessionTTL)
	}
	return cfg, nil
}

// LoadCLI builds a CLIConfig from defaults, the YAML file at path (a
// missing file is ignored) and the process environment.
func LoadCLI(ctx context.Context, path string) (CLIConfig, error) {
	return loadCLI(ctx, path, envconfig.OsLookuper())
}

func loadCLI(ctx context.Context, path string, lookuper envconfig.Lookuper) (CLIConfig, error) {
	cfg := DefaultCLIConfig()
	if err := load(ctx, path, lookuper, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(ctx context.Context, path string, lookuper envconfig.Lookuper, target any) error {
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, target); err != nil {
				return fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   target,
		Lookuper: lookuper,
	}); err != nil {
		return fmt.Errorf("environment config: %w", err)
	}
	return nil
}

// StateDir returns dir, or ~/.glamgiant when dir is empty, creating it.
func StateDir(dir string) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".glamgiant")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}
