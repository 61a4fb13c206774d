// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package recommend

import "fmt"

// Config contains the operational parameters of the scoring pipeline.
// The rule multipliers themselves are policy constants, not configuration:
// changing them is a reviewed code change, which keeps the policy auditable.
type Config struct {
	// DefaultTopN is the result count used when a request does not ask
	// for one.
	DefaultTopN int `json:"default_top_n" koanf:"default_top_n"`

	// MaxTopN caps the result count a request may ask for.
	MaxTopN int `json:"max_top_n" koanf:"max_top_n"`

	// MinCourseID is the eligibility threshold: courses below it are
	// filtered out before scoring, independent of any feature.
	MinCourseID int64 `json:"min_course_id" koanf:"min_course_id"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultTopN: 10,
		MaxTopN:     100,
		MinCourseID: 10000,
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.DefaultTopN <= 0 {
		return fmt.Errorf("default_top_n must be positive, got %d", c.DefaultTopN)
	}
	if c.MaxTopN < c.DefaultTopN {
		return fmt.Errorf("max_top_n (%d) must be >= default_top_n (%d)", c.MaxTopN, c.DefaultTopN)
	}
	if c.MinCourseID < 0 {
		return fmt.Errorf("min_course_id must not be negative, got %d", c.MinCourseID)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
