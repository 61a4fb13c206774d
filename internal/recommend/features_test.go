// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package recommend

import "testing"

func TestExperienceOrdinal(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  int
	}{
		{"junior", "Junior", 1},
		{"intermediate", "Intermediário", 2},
		{"senior", "Senior", 3},
		{"unrecognized defaults to junior", "Expert", 1},
		{"empty defaults to junior", "", 1},
		{"case sensitive", "JUNIOR", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExperienceOrdinal(tt.level); got != tt.want {
				t.Errorf("ExperienceOrdinal(%q) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}

func TestCourseLevelOrdinal(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  int
	}{
		{"basic", "BASICO", 1},
		{"intermediate", "INTERMEDIARIO", 2},
		{"advanced", "AVANCADO", 3},
		{"unrecognized defaults to basic", "EXPERT", 1},
		{"empty defaults to basic", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CourseLevelOrdinal(tt.level); got != tt.want {
				t.Errorf("CourseLevelOrdinal(%q) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}

func TestEducationOrdinal(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  int
	}{
		{"lowest", "Ensino Fundamental", 1},
		{"highest", "Doutorado", 8},
		{"unrecognized defaults to superior completo", "Bootcamp", 5},
		{"empty defaults to superior completo", "", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EducationOrdinal(tt.level); got != tt.want {
				t.Errorf("EducationOrdinal(%q) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}

func TestBuildFeatures_MatchLevel(t *testing.T) {
	tests := []struct {
		name        string
		experience  string
		courseLevel string
		want        float64
	}{
		{"junior on basic", "Junior", "BASICO", 1},
		{"junior on intermediate passes one tier up", "Junior", "INTERMEDIARIO", 1},
		{"junior on advanced", "Junior", "AVANCADO", 0},
		{"senior on basic passes arbitrarily above", "Senior", "BASICO", 1},
		{"intermediate on advanced", "Intermediário", "AVANCADO", 1},
		{"unrecognized both sides", "", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{ExperienceLevel: tt.experience}
			c := Course{ID: 10001, Level: tt.courseLevel}
			f := BuildFeatures(p, c, DefaultCareerCatalog())
			if f.MatchLevel != tt.want {
				t.Errorf("MatchLevel = %v, want %v", f.MatchLevel, tt.want)
			}
		})
	}
}

func TestBuildFeatures_MatchTime(t *testing.T) {
	tests := []struct {
		name     string
		weekly   float64
		workload float64
		want     float64
	}{
		{"ample time", 15, 40, 1},
		{"exactly a quarter", 10, 40, 1},
		{"just under", 12.4, 50, 0},
		{"heavy workload", 5, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{WeeklyHours: tt.weekly}
			c := Course{ID: 10001, WorkloadHours: tt.workload}
			f := BuildFeatures(p, c, DefaultCareerCatalog())
			if f.MatchTime != tt.want {
				t.Errorf("MatchTime = %v, want %v", f.MatchTime, tt.want)
			}
		})
	}
}

func TestBuildFeatures_MatchCareer(t *testing.T) {
	catalog := NewCareerCatalog(map[string][]int64{
		"Cientista de Dados": {10074, 10075, 10076},
	})

	tests := []struct {
		name     string
		career   string
		courseID int64
		want     float64
	}{
		{"course in career set", "Cientista de Dados", 10074, 1},
		{"course outside career set", "Cientista de Dados", 10034, 0},
		{"unknown career matches nothing", "Astronauta", 10074, 0},
		{"empty career matches nothing", "", 10074, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{DesiredCareer: tt.career}
			c := Course{ID: tt.courseID}
			f := BuildFeatures(p, c, catalog)
			if f.MatchCareer != tt.want {
				t.Errorf("MatchCareer = %v, want %v", f.MatchCareer, tt.want)
			}
		})
	}
}

func TestBuildFeatures_PassThrough(t *testing.T) {
	p := Profile{
		ExperienceLevel: "Intermediário",
		Age:             31,
		YearsExperience: 7,
		Education:       "Mestrado",
		WeeklyHours:     12,
	}
	c := Course{
		ID:              10100,
		Level:           "INTERMEDIARIO",
		WorkloadHours:   40,
		AvgRating:       4.6,
		CompletionRate:  72,
		PopularityScore: 88,
	}

	f := BuildFeatures(p, c, DefaultCareerCatalog())

	if f.ExperienceLevel != 2 {
		t.Errorf("ExperienceLevel = %v, want 2", f.ExperienceLevel)
	}
	if f.Education != 7 {
		t.Errorf("Education = %v, want 7", f.Education)
	}
	if f.CourseLevel != 2 {
		t.Errorf("CourseLevel = %v, want 2", f.CourseLevel)
	}
	if f.Age != 31 || f.YearsExperience != 7 || f.WeeklyHours != 12 {
		t.Errorf("profile pass-through mismatch: %+v", f)
	}
	if f.WorkloadHours != 40 || f.AvgRating != 4.6 || f.CompletionRate != 72 || f.PopularityScore != 88 {
		t.Errorf("course pass-through mismatch: %+v", f)
	}
	if f.Progress != 0 {
		t.Errorf("Progress = %v, want 0", f.Progress)
	}
}

func TestFeatureVector_Row(t *testing.T) {
	f := FeatureVector{ExperienceLevel: 2, AvgRating: 4.8, MatchCareer: 1}

	row, err := f.Row([]string{FeatureAvgRating, FeatureExperienceLevel, FeatureMatchCareer})
	if err != nil {
		t.Fatalf("Row() error = %v", err)
	}
	want := []float64{4.8, 2, 1}
	for i, v := range want {
		if row[i] != v {
			t.Errorf("row[%d] = %v, want %v", i, row[i], v)
		}
	}

	if _, err := f.Row([]string{"no_such_feature"}); err == nil {
		t.Error("Row() with unknown feature: expected error, got nil")
	}
}

func TestFeatureSchema_Validate(t *testing.T) {
	tests := []struct {
		name    string
		schema  FeatureSchema
		wantErr bool
	}{
		{
			name: "valid",
			schema: FeatureSchema{
				Regression:     []string{FeatureAvgRating, FeatureMatchCareer},
				Classification: []string{FeatureCompletionRate},
			},
			wantErr: false,
		},
		{
			name:    "empty regression list",
			schema:  FeatureSchema{Classification: []string{FeatureAge}},
			wantErr: true,
		},
		{
			name:    "empty classification list",
			schema:  FeatureSchema{Regression: []string{FeatureAge}},
			wantErr: true,
		},
		{
			name: "unknown feature name",
			schema: FeatureSchema{
				Regression:     []string{"bogus"},
				Classification: []string{FeatureAge},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
