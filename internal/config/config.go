// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package config

import (
	"time"
)

// DefaultMongoURI is the local development connection string. It carries no
// credentials and is rejected when ENVIRONMENT=production.
const DefaultMongoURI = "mongodb://localhost:27017"

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Mongo     MongoConfig     `koanf:"mongo"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// MongoConfig holds the document store connection settings.
// The catalog is read from Database.Collection.
type MongoConfig struct {
	URI            string        `koanf:"uri" validate:"required,mongodb_uri"`
	Database       string        `koanf:"database" validate:"required"`
	Collection     string        `koanf:"collection" validate:"required"`
	ConnectTimeout time.Duration `koanf:"connect_timeout" validate:"gt=0"`
	QueryTimeout   time.Duration `koanf:"query_timeout" validate:"gt=0"`
}

// RecommendConfig holds lookup and snapshot settings.
type RecommendConfig struct {
	// TopK is the maximum number of recommendations per response.
	TopK int `koanf:"top_k" validate:"gte=1"`

	// ReloadInterval re-reads the catalog periodically when positive.
	// Zero keeps the startup snapshot for the life of the process.
	ReloadInterval time.Duration `koanf:"reload_interval" validate:"gte=0"`
}

// ReloadEnabled reports whether periodic catalog reloads are configured.
func (r RecommendConfig) ReloadEnabled() bool {
	return r.ReloadInterval > 0
}

// SecurityConfig holds cross-origin and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes file:line in each entry.
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs with production checks.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from, in increasing priority:
//  1. Built-in defaults
//  2. Config file (config.yaml if present, or the path in CONFIG_PATH)
//  3. Environment variables
//
// See LoadWithKoanf for details.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
