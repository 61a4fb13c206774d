// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package model

import (
	"fmt"
	"math"

	"github.com/skillbridge/recommender/internal/recommend"
)

// LinearRegressor is a linear relevance model: prediction is the dot
// product of the feature row and the weights, plus the intercept. The
// output is unclamped; the pipeline clamps it to the score range.
type LinearRegressor struct {
	// Weights are ordered to match the regression feature schema.
	Weights []float64 `json:"weights"`

	// Intercept is the model bias term.
	Intercept float64 `json:"intercept"`
}

// Name returns the model identifier.
func (m *LinearRegressor) Name() string {
	return "linear_regressor"
}

// Predict returns the relevance estimate for one feature row.
func (m *LinearRegressor) Predict(row []float64) (float64, error) {
	if len(row) != len(m.Weights) {
		return 0, fmt.Errorf("feature row has %d values, model expects %d", len(row), len(m.Weights))
	}
	pred := m.Intercept
	for i, v := range row {
		pred += m.Weights[i] * v
	}
	return pred, nil
}

// LogisticClassifier is a logistic completion model. PredictProba returns
// the [negative, positive] class probability pair.
type LogisticClassifier struct {
	// Weights are ordered to match the classification feature schema.
	Weights []float64 `json:"weights"`

	// Intercept is the model bias term.
	Intercept float64 `json:"intercept"`
}

// Name returns the model identifier.
func (m *LogisticClassifier) Name() string {
	return "logistic_classifier"
}

// PredictProba returns the two-class probability pair for one feature row.
func (m *LogisticClassifier) PredictProba(row []float64) ([2]float64, error) {
	if len(row) != len(m.Weights) {
		return [2]float64{}, fmt.Errorf("feature row has %d values, model expects %d", len(row), len(m.Weights))
	}
	z := m.Intercept
	for i, v := range row {
		z += m.Weights[i] * v
	}
	positive := sigmoid(z)
	return [2]float64{1 - positive, positive}, nil
}

// sigmoid maps a logit to (0, 1).
func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// Interface compliance.
var (
	_ recommend.Regressor  = (*LinearRegressor)(nil)
	_ recommend.Classifier = (*LogisticClassifier)(nil)
)
