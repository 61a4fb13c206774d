// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Note: this package has no dependencies on other internal packages. The
// Regressor and Classifier interfaces let the model subpackage (or test
// doubles) plug in without coupling the pipeline to model internals.

// Engine runs the scoring pipeline: feature derivation, base scoring,
// rules adjustment, explanation, and ranking.
//
// All state is set during wiring and read-only afterwards, so the Engine
// is safe for concurrent use. Each request's feature vectors and result
// slices are independently allocated; nothing request-scoped is shared.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog *CareerCatalog

	regressor  Regressor
	classifier Classifier
	schema     FeatureSchema
	modelInfo  ModelInfo
}

// NewEngine creates a scoring engine with the default career catalog.
// Models must be attached with SetModels before the first Recommend call.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: DefaultCareerCatalog(),
	}, nil
}

// SetModels attaches the black-box model pair and its feature schema.
// Must be called during wiring, before the engine serves requests.
func (e *Engine) SetModels(reg Regressor, cls Classifier, schema FeatureSchema, info ModelInfo) error {
	if err := schema.Validate(); err != nil {
		return fmt.Errorf("invalid feature schema: %w", err)
	}

	e.regressor = reg
	e.classifier = cls
	e.schema = schema
	e.modelInfo = info

	e.logger.Info().
		Str("regressor", reg.Name()).
		Str("classifier", cls.Name()).
		Str("model_version", info.Version).
		Int("regression_features", len(schema.Regression)).
		Int("classification_features", len(schema.Classification)).
		Msg("scoring models attached")

	return nil
}

// SetCareerCatalog replaces the default career catalog.
func (e *Engine) SetCareerCatalog(catalog *CareerCatalog) {
	if catalog == nil {
		return
	}
	e.catalog = catalog
	e.logger.Info().Int("careers", catalog.Careers()).Msg("career catalog replaced")
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// ModelInfo returns the attached model labels.
func (e *Engine) ModelInfo() ModelInfo {
	return e.modelInfo
}

// Ready reports whether models have been attached.
func (e *Engine) Ready() bool {
	return e.regressor != nil && e.classifier != nil
}

// Recommend scores the eligible candidate courses for the profile and
// returns the top N, ranked by adjusted score.
//
// Failure modes, all terminal for the request:
//   - ErrEmptyCourseList when the input list is empty
//   - ErrNoEligibleCourses when no course passes the ID filter
//   - *ScoringError when a model call fails or returns malformed data
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	if !e.Ready() {
		return nil, ErrModelsNotConfigured
	}

	req = e.prepareRequest(req)
	logger := e.logger.With().
		Str("request_id", req.RequestID).
		Int64("user_id", req.UserID).
		Logger()

	if len(req.Courses) == 0 {
		return nil, ErrEmptyCourseList
	}

	eligible := e.filterEligible(req.Courses)
	logger.Debug().
		Int("received", len(req.Courses)).
		Int("eligible", len(eligible)).
		Msg("filtered candidate courses")

	if len(eligible) == 0 {
		return nil, ErrNoEligibleCourses
	}

	profile := req.Profile.Normalize()
	recs := make([]Recommendation, 0, len(eligible))
	for _, course := range eligible {
		rec, err := e.scoreCourse(profile, course)
		if err != nil {
			// One failed course aborts the batch: a partial candidate
			// pool would distort the final top-N ranking.
			return nil, err
		}
		recs = append(recs, rec)
	}

	// Stable sort: input order is the tie-break on equal scores.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > req.TopN {
		recs = recs[:req.TopN]
	}
	for i := range recs {
		recs[i].Rank = i + 1
	}

	resp := &Response{
		Recommendations: recs,
		TotalEligible:   len(eligible),
		Metadata: ResponseMetadata{
			RequestID:    req.RequestID,
			UserID:       req.UserID,
			ModelVersion: e.modelInfo.Version,
			LatencyMS:    time.Since(start).Milliseconds(),
			Timestamp:    time.Now(),
		},
	}

	logger.Debug().
		Int("returned", len(recs)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies defaults and generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	if req.TopN <= 0 {
		req.TopN = e.config.DefaultTopN
	}
	if req.TopN > e.config.MaxTopN {
		req.TopN = e.config.MaxTopN
	}
	return req
}

// filterEligible keeps courses at or above the eligibility ID threshold,
// preserving input order.
func (e *Engine) filterEligible(courses []Course) []Course {
	eligible := make([]Course, 0, len(courses))
	for _, c := range courses {
		if c.ID >= e.config.MinCourseID {
			eligible = append(eligible, c)
		}
	}
	return eligible
}

// scoreCourse runs the full per-course pipeline: features, both models,
// rules adjustment, and explanation.
func (e *Engine) scoreCourse(profile Profile, course Course) (Recommendation, error) {
	course = course.Normalize()
	features := BuildFeatures(profile, course, e.catalog)

	regRow, err := features.Row(e.schema.Regression)
	if err != nil {
		return Recommendation{}, err
	}
	base, err := e.regressor.Predict(regRow)
	if err != nil {
		return Recommendation{}, &ScoringError{Model: e.regressor.Name(), CourseID: course.ID, Err: err}
	}
	if math.IsNaN(base) || math.IsInf(base, 0) {
		return Recommendation{}, &ScoringError{Model: e.regressor.Name(), CourseID: course.ID, Err: fmt.Errorf("non-finite prediction %v", base)}
	}

	score := AdjustScore(ClampScore(base), features, profile, course)

	clsRow, err := features.Row(e.schema.Classification)
	if err != nil {
		return Recommendation{}, err
	}
	probs, err := e.classifier.PredictProba(clsRow)
	if err != nil {
		return Recommendation{}, &ScoringError{Model: e.classifier.Name(), CourseID: course.ID, Err: err}
	}
	probability := probs[1]
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return Recommendation{}, &ScoringError{Model: e.classifier.Name(), CourseID: course.ID, Err: fmt.Errorf("probability %v out of range", probability)}
	}

	return Recommendation{
		Course:       course,
		Score:        round2(score),
		Probability:  round2(probability),
		Reason:       Explain(features, probability),
		Model:        e.modelInfo.Label,
		ModelVersion: e.modelInfo.Version,
	}, nil
}

// round2 rounds to two decimal places. Scores are rounded before the sort
// so the ranking always agrees with the values clients see.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
