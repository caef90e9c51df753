package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// CredentialsPolicy decides what happens when the CMS credentials are missing.
type CredentialsPolicy string

const (
	// PolicyFallback logs a warning and serves embedded placeholder data.
	PolicyFallback CredentialsPolicy = "fallback"
	// PolicyFail refuses to start.
	PolicyFail CredentialsPolicy = "fail"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	CMS      CMSConfig      `yaml:"cms"`
	Sync     SyncConfig     `yaml:"sync"`
	Database DatabaseConfig `yaml:"database"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// CMSConfig holds the connection settings for the headless CMS.
type CMSConfig struct {
	ServiceDomain  string            `yaml:"service_domain"`
	APIKey         string            `yaml:"api_key"`
	BaseURL        string            `yaml:"base_url"` // Overrides https://{service_domain}.microcms.io when set
	HTTPProxy      string            `yaml:"http_proxy"`
	TimeoutSeconds int               `yaml:"timeout_seconds"`
	Timeout        time.Duration     `yaml:"-"`
	Policy         CredentialsPolicy `yaml:"credentials_policy"`
}

// HasCredentials reports whether both the service domain and API key are set.
func (c CMSConfig) HasCredentials() bool {
	return strings.TrimSpace(c.ServiceDomain) != "" && strings.TrimSpace(c.APIKey) != ""
}

// SyncConfig controls the periodic snapshot sync into the database.
type SyncConfig struct {
	Enabled         bool          `yaml:"enabled"`
	IntervalSeconds int           `yaml:"interval_seconds"`
	Interval        time.Duration `yaml:"-"`
	PageSize        int           `yaml:"page_size"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// Load reads the configuration from the given path and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	var cfg Config

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		// An empty file decodes to io.EOF.
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config.Load: decode %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Warn().Str("path", path).Msg("config file not found; using defaults and environment")
	default:
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	c.CMS.ServiceDomain = firstEnv(c.CMS.ServiceDomain, "SERVICE_DOMAIN", "MICROCMS_SERVICE_DOMAIN")
	c.CMS.APIKey = firstEnv(c.CMS.APIKey, "API_KEY", "MICROCMS_API_KEY")
	if v := os.Getenv("CMS_CREDENTIALS_POLICY"); v != "" {
		c.CMS.Policy = CredentialsPolicy(strings.ToLower(strings.TrimSpace(v)))
	}
	c.Database.DSN = firstEnv(c.Database.DSN, "DATABASE_DSN")

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing PORT=%q as int: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("SYNC_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing SYNC_ENABLED=%q as bool: %w", v, err)
		}
		c.Sync.Enabled = enabled
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port <= 0 {
		c.Server.Port = 8080
	}
	if c.Server.RateLimitPerSec <= 0 {
		c.Server.RateLimitPerSec = 10
	}
	if c.Server.RateLimitBurst <= 0 {
		c.Server.RateLimitBurst = 20
	}
	if c.Server.CacheTTLSeconds <= 0 {
		c.Server.CacheTTLSeconds = 60
	}

	if c.CMS.Policy == "" {
		c.CMS.Policy = PolicyFallback
	}
	if c.CMS.TimeoutSeconds <= 0 {
		c.CMS.TimeoutSeconds = 10
	}
	c.CMS.Timeout = time.Duration(c.CMS.TimeoutSeconds) * time.Second

	if c.Sync.IntervalSeconds <= 0 {
		c.Sync.IntervalSeconds = 300
	}
	c.Sync.Interval = time.Duration(c.Sync.IntervalSeconds) * time.Second
	if c.Sync.PageSize <= 0 {
		c.Sync.PageSize = 100
	}

	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = 5
	}
	if c.Database.MaxIdleConns <= 0 {
		c.Database.MaxIdleConns = 2
	}
}

func (c *Config) validate() error {
	switch c.CMS.Policy {
	case PolicyFallback, PolicyFail:
	default:
		return fmt.Errorf("cms.credentials_policy must be %q or %q, got %q", PolicyFallback, PolicyFail, c.CMS.Policy)
	}
	if c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Sync.Enabled && c.Database.DSN == "" {
		log.Warn().Msg("sync.enabled is set but database.dsn is empty; snapshot sync will not run")
	}
	return nil
}

// firstEnv returns the first non-empty environment variable among keys,
// falling back to current.
func firstEnv(current string, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return current
}
