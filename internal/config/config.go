// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

// Package config loads layered application configuration with Koanf v2:
// built-in defaults, then an optional YAML file, then GIFTWISE_-prefixed
// environment variables, each layer overriding the previous one.
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
	Database DatabaseConfig `koanf:"database"`
	Suggest  SuggestConfig  `koanf:"suggest"`
	API      APIConfig      `koanf:"api"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DatabaseConfig holds feedback store settings.
type DatabaseConfig struct {
	// Path is the DuckDB file. Empty means in-memory.
	Path string `koanf:"path"`
}

// SuggestConfig holds suggestion engine tuning.
type SuggestConfig struct {
	Seed              int64         `koanf:"seed"`
	DefaultCreativity float64       `koanf:"default_creativity"`
	DefaultMaxResults int           `koanf:"default_max_results"`
	MaxMaxResults     int           `koanf:"max_max_results"`
	LookbackDays      int           `koanf:"lookback_days"`
	RejectionTTL      time.Duration `koanf:"rejection_ttl"`
	PurgeInterval     time.Duration `koanf:"purge_interval"`
}

// APIConfig holds HTTP API settings.
type APIConfig struct {
	RateLimitRPM int      `koanf:"rate_limit_rpm"`
	CORSOrigins  []string `koanf:"cors_origins"`
}

// defaultConfig returns the built-in defaults, applied before the config
// file and environment layers.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8317,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Database: DatabaseConfig{
			Path: "/data/giftwise.duckdb",
		},
		Suggest: SuggestConfig{
			Seed:              42,
			DefaultCreativity: 0.5,
			DefaultMaxResults: 20,
			MaxMaxResults:     100,
			LookbackDays:      365,
			RejectionTTL:      4380 * time.Hour,
			PurgeInterval:     24 * time.Hour,
		},
		API: APIConfig{
			RateLimitRPM: 120,
			CORSOrigins:  []string{"*"},
		},
	}
}

// Validate checks cross-field constraints not expressible per-field.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Suggest.DefaultCreativity < 0 || c.Suggest.DefaultCreativity > 1 {
		return fmt.Errorf("suggest.default_creativity %f must be in [0, 1]", c.Suggest.DefaultCreativity)
	}
	if c.Suggest.DefaultMaxResults < 1 {
		return fmt.Errorf("suggest.default_max_results must be positive")
	}
	if c.Suggest.MaxMaxResults < c.Suggest.DefaultMaxResults {
		return fmt.Errorf("suggest.max_max_results %d below default %d",
			c.Suggest.MaxMaxResults, c.Suggest.DefaultMaxResults)
	}
	if c.Suggest.LookbackDays < 0 {
		return fmt.Errorf("suggest.lookback_days must not be negative")
	}
	if c.API.RateLimitRPM < 0 {
		return fmt.Errorf("api.rate_limit_rpm must not be negative")
	}
	return nil
}
