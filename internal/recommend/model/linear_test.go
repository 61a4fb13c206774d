// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package model

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLinearRegressor_Predict(t *testing.T) {
	reg := &LinearRegressor{Weights: []float64{0.5, -1.0, 2.0}, Intercept: 1.0}

	tests := []struct {
		name    string
		row     []float64
		want    float64
		wantErr bool
	}{
		{"dot product plus intercept", []float64{2, 1, 3}, 1 + 1 - 1 + 6, false},
		{"zero row yields intercept", []float64{0, 0, 0}, 1.0, false},
		{"wrong row length", []float64{1, 2}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Predict(tt.row)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Predict() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Predict() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogisticClassifier_PredictProba(t *testing.T) {
	cls := &LogisticClassifier{Weights: []float64{1.0}, Intercept: 0.0}

	probs, err := cls.PredictProba([]float64{0})
	if err != nil {
		t.Fatalf("PredictProba() error = %v", err)
	}
	if math.Abs(probs[1]-0.5) > 1e-9 {
		t.Errorf("positive probability at logit 0 = %v, want 0.5", probs[1])
	}
	if math.Abs(probs[0]+probs[1]-1.0) > 1e-9 {
		t.Errorf("probabilities sum to %v, want 1", probs[0]+probs[1])
	}

	// Larger logit must move the positive probability up, staying in (0, 1).
	high, err := cls.PredictProba([]float64{4})
	if err != nil {
		t.Fatalf("PredictProba() error = %v", err)
	}
	if high[1] <= probs[1] || high[1] >= 1 {
		t.Errorf("positive probability at logit 4 = %v, want in (0.5, 1)", high[1])
	}

	if _, err := cls.PredictProba([]float64{1, 2}); err == nil {
		t.Error("PredictProba() with wrong row length: expected error, got nil")
	}
}

func writeBundleFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func writeValidBundle(t *testing.T, dir string) {
	t.Helper()
	writeBundleFile(t, dir, regressorFile,
		`{"weights": [0.1, 0.2], "intercept": 3.0, "label": "Forest + Business Rules", "version": "2.0"}`)
	writeBundleFile(t, dir, classifierFile,
		`{"weights": [0.4], "intercept": -1.0}`)
	writeBundleFile(t, dir, featuresFile,
		`{"regression_features": ["avg_rating", "match_career"], "classification_features": ["completion_rate"]}`)
}

func TestLoadBundle(t *testing.T) {
	dir := t.TempDir()
	writeValidBundle(t, dir)

	bundle, err := LoadBundle(dir)
	if err != nil {
		t.Fatalf("LoadBundle() error = %v", err)
	}

	if bundle.Info.Label != "Forest + Business Rules" || bundle.Info.Version != "2.0" {
		t.Errorf("metadata = %+v", bundle.Info)
	}
	if len(bundle.Schema.Regression) != 2 || len(bundle.Schema.Classification) != 1 {
		t.Errorf("schema = %+v", bundle.Schema)
	}

	got, err := bundle.Regressor.Predict([]float64{1, 1})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if want := 3.0 + 0.1 + 0.2; math.Abs(got-want) > 1e-9 {
		t.Errorf("Predict() = %v, want %v", got, want)
	}
}

func TestLoadBundle_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string)
	}{
		{
			name:  "missing directory contents",
			setup: func(*testing.T, string) {},
		},
		{
			name: "weight count does not match schema",
			setup: func(t *testing.T, dir string) {
				writeValidBundle(t, dir)
				writeBundleFile(t, dir, regressorFile, `{"weights": [0.1], "intercept": 0}`)
			},
		},
		{
			name: "schema names unknown feature",
			setup: func(t *testing.T, dir string) {
				writeValidBundle(t, dir)
				writeBundleFile(t, dir, featuresFile,
					`{"regression_features": ["bogus"], "classification_features": ["completion_rate"]}`)
			},
		},
		{
			name: "malformed json",
			setup: func(t *testing.T, dir string) {
				writeValidBundle(t, dir)
				writeBundleFile(t, dir, classifierFile, `{`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)
			if _, err := LoadBundle(dir); err == nil {
				t.Error("LoadBundle() expected error, got nil")
			}
		})
	}
}

func TestLoadBundle_DefaultMetadata(t *testing.T) {
	dir := t.TempDir()
	writeValidBundle(t, dir)
	writeBundleFile(t, dir, regressorFile, `{"weights": [0.1, 0.2], "intercept": 3.0}`)

	bundle, err := LoadBundle(dir)
	if err != nil {
		t.Fatalf("LoadBundle() error = %v", err)
	}
	if bundle.Info.Label == "" || bundle.Info.Version == "" {
		t.Errorf("expected default metadata, got %+v", bundle.Info)
	}
}
