// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/skillbridge/recommender/internal/recommend"
)

// Bundle file names within a model directory.
const (
	regressorFile  = "regressor.json"
	classifierFile = "classifier.json"
	featuresFile   = "features.json"
)

// Bundle is a loaded model pair plus its feature schema and metadata.
type Bundle struct {
	// Regressor is the relevance model.
	Regressor *LinearRegressor

	// Classifier is the completion model.
	Classifier *LogisticClassifier

	// Schema names the features each model consumes, in order.
	Schema recommend.FeatureSchema

	// Info labels the bundle in responses and logs.
	Info recommend.ModelInfo
}

// regressorDocument is the on-disk regressor format. The metadata rides on
// the regressor file so the bundle needs no fourth file.
type regressorDocument struct {
	LinearRegressor

	// Label is the human-readable model description.
	Label string `json:"label,omitempty"`

	// Version is the bundle version string.
	Version string `json:"version,omitempty"`
}

// LoadBundle reads a model bundle directory exported by the training
// pipeline. All three files must be present and consistent: weight counts
// must match the schema feature lists.
func LoadBundle(dir string) (*Bundle, error) {
	var regDoc regressorDocument
	if err := readJSON(filepath.Join(dir, regressorFile), &regDoc); err != nil {
		return nil, fmt.Errorf("load regressor: %w", err)
	}

	var cls LogisticClassifier
	if err := readJSON(filepath.Join(dir, classifierFile), &cls); err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}

	var schema recommend.FeatureSchema
	if err := readJSON(filepath.Join(dir, featuresFile), &schema); err != nil {
		return nil, fmt.Errorf("load feature schema: %w", err)
	}
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("feature schema: %w", err)
	}

	if len(regDoc.Weights) != len(schema.Regression) {
		return nil, fmt.Errorf("regressor has %d weights, schema names %d regression features",
			len(regDoc.Weights), len(schema.Regression))
	}
	if len(cls.Weights) != len(schema.Classification) {
		return nil, fmt.Errorf("classifier has %d weights, schema names %d classification features",
			len(cls.Weights), len(schema.Classification))
	}

	info := recommend.ModelInfo{Label: regDoc.Label, Version: regDoc.Version}
	if info.Label == "" {
		info.Label = "Linear + Business Rules"
	}
	if info.Version == "" {
		info.Version = "1.0"
	}

	reg := regDoc.LinearRegressor
	return &Bundle{
		Regressor:  &reg,
		Classifier: &cls,
		Schema:     schema,
		Info:       info,
	}, nil
}

// readJSON reads and decodes one bundle file.
func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
