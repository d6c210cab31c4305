// Package config loads application configuration. Defaults cover local
// development; a YAML file referenced by CONFIG_PATH and individual
// environment variables override them, in that order.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "article-api/pkg/config"
)

// ServerConfig represents the HTTP server configuration.
type ServerConfig struct {
	Server struct {
		Addr            string        `yaml:"addr"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		IdleTimeout     time.Duration `yaml:"idle_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	} `yaml:"server"`

	Store struct {
		// Seed populates the in-memory store with sample articles on startup.
		Seed bool `yaml:"seed"`
	} `yaml:"store"`

	Search struct {
		// RateLimit is the sustained quick-search requests per second per client IP.
		RateLimit float64 `yaml:"rate_limit"`
		// RateBurst is the burst allowance above the sustained rate.
		RateBurst int `yaml:"rate_burst"`
	} `yaml:"search"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *ServerConfig {
	cfg := &ServerConfig{}
	cfg.Server.Addr = ":8080"
	cfg.Server.ReadTimeout = 10 * time.Second
	cfg.Server.WriteTimeout = 10 * time.Second
	cfg.Server.IdleTimeout = 60 * time.Second
	cfg.Server.ShutdownTimeout = 10 * time.Second
	cfg.Server.MaxBodyBytes = 1 << 20 // 1 MiB
	cfg.Store.Seed = true
	cfg.Search.RateLimit = 10
	cfg.Search.RateBurst = 20
	return cfg
}

// Load builds the server configuration. When CONFIG_PATH is set the YAML
// file it names is applied over the defaults; environment variables are
// applied last.
func Load() (*ServerConfig, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFile merges a YAML file into the configuration.
// The path is expected to come from a trusted source (CONFIG_PATH), not user input.
func (c *ServerConfig) loadFile(path string) error {
	// #nosec G304 -- path comes from the operator-controlled CONFIG_PATH variable
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

func (c *ServerConfig) applyEnv() {
	c.Server.Addr = pkgconfig.GetEnvString("SERVER_ADDR", c.Server.Addr)
	c.Server.ReadTimeout = pkgconfig.GetEnvDuration("SERVER_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = pkgconfig.GetEnvDuration("SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.IdleTimeout = pkgconfig.GetEnvDuration("SERVER_IDLE_TIMEOUT", c.Server.IdleTimeout)
	c.Server.ShutdownTimeout = pkgconfig.GetEnvDuration("SERVER_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.Server.MaxBodyBytes = int64(pkgconfig.GetEnvInt("SERVER_MAX_BODY_BYTES", int(c.Server.MaxBodyBytes)))
	c.Store.Seed = pkgconfig.GetEnvBool("STORE_SEED", c.Store.Seed)
	c.Search.RateLimit = float64(pkgconfig.GetEnvInt("SEARCH_RATE_LIMIT", int(c.Search.RateLimit)))
	c.Search.RateBurst = pkgconfig.GetEnvInt("SEARCH_RATE_BURST", c.Search.RateBurst)
}

func (c *ServerConfig) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}
	if c.Search.RateLimit <= 0 {
		return fmt.Errorf("search rate_limit must be positive")
	}
	if c.Search.RateBurst <= 0 {
		return fmt.Errorf("search rate_burst must be positive")
	}
	return nil
}
