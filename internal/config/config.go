// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

// Package config loads and validates service configuration from layered
// sources: built-in defaults, an optional YAML file, and environment
// variables, with environment variables taking the highest priority.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the recommendation service.
type Config struct {
	Server    ServerConfig    `koanf:"server" json:"server"`
	API       APIConfig       `koanf:"api" json:"api"`
	Models    ModelsConfig    `koanf:"models" json:"models"`
	Recommend RecommendConfig `koanf:"recommend" json:"recommend"`
	Logging   LoggingConfig   `koanf:"logging" json:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Default: 0.0.0.0
	Host string `koanf:"host" json:"host"`

	// Port is the listen port. Default: 8080
	Port int `koanf:"port" json:"port"`

	// ReadTimeout bounds the time spent reading a request.
	ReadTimeout time.Duration `koanf:"read_timeout" json:"read_timeout"`

	// WriteTimeout bounds the time spent writing a response.
	WriteTimeout time.Duration `koanf:"write_timeout" json:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown on SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" json:"shutdown_timeout"`
}

// APIConfig holds HTTP API behavior settings.
type APIConfig struct {
	// RateLimitReqs is the number of requests allowed per client IP
	// within RateLimitWindow. 0 disables rate limiting.
	RateLimitReqs int `koanf:"rate_limit_reqs" json:"rate_limit_reqs"`

	// RateLimitWindow is the rate limit window duration.
	RateLimitWindow time.Duration `koanf:"rate_limit_window" json:"rate_limit_window"`

	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins" json:"cors_origins"`

	// MaxBodyBytes caps the request body size accepted by the API.
	MaxBodyBytes int64 `koanf:"max_body_bytes" json:"max_body_bytes"`
}

// ModelsConfig points at the serialized model artifacts.
type ModelsConfig struct {
	// Dir is the directory holding regressor.json, classifier.json and
	// features.json.
	Dir string `koanf:"dir" json:"dir"`

	// CareerCatalogPath optionally overrides the built-in career to
	// course mapping with a YAML file. Empty means use the built-in
	// catalog.
	CareerCatalogPath string `koanf:"career_catalog_path" json:"career_catalog_path"`
}

// RecommendConfig holds scoring pipeline settings.
type RecommendConfig struct {
	// DefaultTopN is the list size used when a request omits top_n.
	DefaultTopN int `koanf:"default_top_n" json:"default_top_n"`

	// MaxTopN caps the requested list size.
	MaxTopN int `koanf:"max_top_n" json:"max_top_n"`

	// MinCourseID is the eligibility threshold; courses with smaller
	// IDs are filtered out before scoring.
	MinCourseID int64 `koanf:"min_course_id" json:"min_course_id"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `koanf:"level" json:"level"`

	// Format is json or console.
	Format string `koanf:"format" json:"format"`

	// Caller includes caller file and line in log output.
	Caller bool `koanf:"caller" json:"caller"`
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive, got %s", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive, got %s", c.Server.WriteTimeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.API.RateLimitReqs < 0 {
		return fmt.Errorf("api.rate_limit_reqs must not be negative, got %d", c.API.RateLimitReqs)
	}
	if c.API.RateLimitReqs > 0 && c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("api.rate_limit_window must be positive when rate limiting is enabled")
	}
	if c.API.MaxBodyBytes <= 0 {
		return fmt.Errorf("api.max_body_bytes must be positive, got %d", c.API.MaxBodyBytes)
	}
	if c.Models.Dir == "" {
		return fmt.Errorf("models.dir must not be empty")
	}
	if c.Recommend.DefaultTopN < 1 {
		return fmt.Errorf("recommend.default_top_n must be at least 1, got %d", c.Recommend.DefaultTopN)
	}
	if c.Recommend.MaxTopN < c.Recommend.DefaultTopN {
		return fmt.Errorf("recommend.max_top_n (%d) must be >= recommend.default_top_n (%d)",
			c.Recommend.MaxTopN, c.Recommend.DefaultTopN)
	}
	if c.Recommend.MinCourseID < 0 {
		return fmt.Errorf("recommend.min_course_id must not be negative, got %d", c.Recommend.MinCourseID)
	}
	return nil
}
