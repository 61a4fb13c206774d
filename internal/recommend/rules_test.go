// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package recommend

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

// neutral inputs: no career match, no time match, rating below all
// thresholds, so only the level ladder acts.
func ladderInputs(experience, courseLevel string) (FeatureVector, Profile, Course) {
	p := Profile{ExperienceLevel: experience}
	c := Course{ID: 10001, Level: courseLevel, WorkloadHours: 100, AvgRating: 4.0}
	f := BuildFeatures(p, c, DefaultCareerCatalog())
	return f, p, c
}

func TestAdjustScore_LevelLadder(t *testing.T) {
	tests := []struct {
		name        string
		experience  string
		courseLevel string
		want        float64 // ladder multiplier (career mismatch x0.6 applied on top)
	}{
		{"junior on advanced: far above", "Junior", "AVANCADO", 0.3},
		{"junior on intermediate", "Junior", "INTERMEDIARIO", 0.7},
		{"senior on basic: far below", "Senior", "BASICO", 0.4},
		{"senior on intermediate", "Senior", "INTERMEDIARIO", 0.7},
		{"exact match junior", "Junior", "BASICO", 1.0},
		{"exact match senior", "Senior", "AVANCADO", 1.0},
		{"intermediate one below: no senior rule", "Intermediário", "BASICO", 1.0},
		{"intermediate one above: no junior rule", "Intermediário", "AVANCADO", 1.0},
	}

	const base = 5.0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, p, c := ladderInputs(tt.experience, tt.courseLevel)
			got := AdjustScore(base, f, p, c)
			want := base * tt.want * careerMismatchPenalty
			if !almostEqual(got, want) {
				t.Errorf("AdjustScore() = %v, want %v", got, want)
			}
		})
	}
}

func TestAdjustScore_LadderFirstMatchOnly(t *testing.T) {
	// diff = 2 satisfies only the first rung; a Junior on an Advanced
	// course must get x0.3, never x0.3 and x0.7 cumulatively.
	f, p, c := ladderInputs("Junior", "AVANCADO")
	got := AdjustScore(10, f, p, c)
	want := 10 * 0.3 * careerMismatchPenalty
	if !almostEqual(got, want) {
		t.Errorf("AdjustScore() = %v, want %v (first-match only)", got, want)
	}
}

func TestAdjustScore_CareerAlignment(t *testing.T) {
	catalog := NewCareerCatalog(map[string][]int64{"Desenvolvedor Backend": {10054}})
	p := Profile{ExperienceLevel: "Intermediário", DesiredCareer: "Desenvolvedor Backend"}

	matched := Course{ID: 10054, Level: "INTERMEDIARIO", WorkloadHours: 100, AvgRating: 4.0}
	mismatched := Course{ID: 10055, Level: "INTERMEDIARIO", WorkloadHours: 100, AvgRating: 4.0}

	fm := BuildFeatures(p, matched, catalog)
	if got, want := AdjustScore(5, fm, p, matched), 5*careerMatchBoost; !almostEqual(got, want) {
		t.Errorf("career match: AdjustScore() = %v, want %v", got, want)
	}

	fn := BuildFeatures(p, mismatched, catalog)
	if got, want := AdjustScore(5, fn, p, mismatched), 5*careerMismatchPenalty; !almostEqual(got, want) {
		t.Errorf("career mismatch: AdjustScore() = %v, want %v", got, want)
	}
}

func TestAdjustScore_TimeFit(t *testing.T) {
	p := Profile{ExperienceLevel: "Intermediário", WeeklyHours: 10}

	fits := Course{ID: 10001, Level: "INTERMEDIARIO", WorkloadHours: 40, AvgRating: 4.0}
	f := BuildFeatures(p, fits, DefaultCareerCatalog())
	got := AdjustScore(5, f, p, fits)
	want := 5 * careerMismatchPenalty * timeMatchBoost
	if !almostEqual(got, want) {
		t.Errorf("time fit: AdjustScore() = %v, want %v", got, want)
	}

	// No boost, and no penalty either, when time does not fit.
	tight := Course{ID: 10001, Level: "INTERMEDIARIO", WorkloadHours: 80, AvgRating: 4.0}
	f = BuildFeatures(p, tight, DefaultCareerCatalog())
	got = AdjustScore(5, f, p, tight)
	want = 5 * careerMismatchPenalty
	if !almostEqual(got, want) {
		t.Errorf("no time fit: AdjustScore() = %v, want %v", got, want)
	}
}

func TestAdjustScore_QualityThreshold(t *testing.T) {
	// The boost steps in exactly at 4.7 and the adjusted score is
	// monotonically non-decreasing as rating crosses the threshold.
	p := Profile{ExperienceLevel: "Intermediário"}
	course := func(rating float64) Course {
		return Course{ID: 10001, Level: "INTERMEDIARIO", WorkloadHours: 100, AvgRating: rating}
	}

	tests := []struct {
		name   string
		rating float64
		boost  float64
	}{
		{"below threshold", 4.69, 1.0},
		{"at threshold", 4.7, qualityBoost},
		{"above threshold", 5.0, qualityBoost},
	}

	var prev float64 = -1
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := course(tt.rating)
			f := BuildFeatures(p, c, DefaultCareerCatalog())
			got := AdjustScore(5, f, p, c)
			want := 5 * careerMismatchPenalty * tt.boost
			if !almostEqual(got, want) {
				t.Errorf("AdjustScore(rating=%v) = %v, want %v", tt.rating, got, want)
			}
			if got < prev {
				t.Errorf("adjusted score decreased across rating increase: %v -> %v", prev, got)
			}
			prev = got
		})
	}
}

func TestAdjustScore_Clamp(t *testing.T) {
	catalog := NewCareerCatalog(map[string][]int64{"Cientista de Dados": {10074}})
	p := Profile{ExperienceLevel: "Intermediário", DesiredCareer: "Cientista de Dados", WeeklyHours: 40}
	c := Course{ID: 10074, Level: "INTERMEDIARIO", WorkloadHours: 10, AvgRating: 4.9}
	f := BuildFeatures(p, c, catalog)

	// 9.5 * 1.4 * 1.1 * 1.1 would exceed 10 without the clamp.
	if got := AdjustScore(9.5, f, p, c); got != MaxScore {
		t.Errorf("AdjustScore() = %v, want clamped to %v", got, MaxScore)
	}

	if got := AdjustScore(-3, f, p, c); got != MinScore {
		t.Errorf("AdjustScore(negative) = %v, want clamped to %v", got, MinScore)
	}
}

func TestAdjustScore_Idempotent(t *testing.T) {
	f, p, c := ladderInputs("Junior", "INTERMEDIARIO")
	first := AdjustScore(7.3, f, p, c)
	second := AdjustScore(7.3, f, p, c)
	if first != second {
		t.Errorf("AdjustScore not deterministic: %v != %v", first, second)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  float64
	}{
		{"within range", 5.5, 5.5},
		{"below range", -1, 0},
		{"above range", 12.7, 10},
		{"at lower bound", 0, 0},
		{"at upper bound", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampScore(tt.score); got != tt.want {
				t.Errorf("ClampScore(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}
