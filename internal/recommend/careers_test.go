// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package recommend

import "testing"

func TestCareerCatalog_Matches(t *testing.T) {
	catalog := NewCareerCatalog(map[string][]int64{
		"DevOps Engineer": {10104, 10105},
	})

	tests := []struct {
		name     string
		career   string
		courseID int64
		want     bool
	}{
		{"member", "DevOps Engineer", 10104, true},
		{"non-member", "DevOps Engineer", 10999, false},
		{"unknown career", "Pilot", 10104, false},
		{"empty career", "", 10104, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalog.Matches(tt.career, tt.courseID); got != tt.want {
				t.Errorf("Matches(%q, %d) = %v, want %v", tt.career, tt.courseID, got, tt.want)
			}
		})
	}
}

func TestDefaultCareerCatalog(t *testing.T) {
	catalog := DefaultCareerCatalog()

	if got := catalog.Careers(); got != 15 {
		t.Errorf("Careers() = %d, want 15", got)
	}

	// Spot-check entries from the shipped catalog.
	if !catalog.Matches("Cientista de Dados", 10076) {
		t.Error("expected 10076 in Cientista de Dados")
	}
	if !catalog.Matches("Desenvolvedor Frontend", 10044) {
		t.Error("expected 10044 in Desenvolvedor Frontend")
	}
	if catalog.Matches("Cientista de Dados", 10044) {
		t.Error("did not expect 10044 in Cientista de Dados")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"zero default top n", func(c *Config) { c.DefaultTopN = 0 }, true},
		{"max below default", func(c *Config) { c.MaxTopN = 5 }, true},
		{"negative min course id", func(c *Config) { c.MinCourseID = -1 }, true},
		{"zero threshold allowed", func(c *Config) { c.MinCourseID = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
