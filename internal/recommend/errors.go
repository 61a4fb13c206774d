// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package recommend

import (
	"errors"
	"fmt"
)

// Terminal request errors. None are retried within the pipeline: a single
// failed course would leave an inconsistent candidate pool for ranking, so
// every failure aborts the whole request.
var (
	// ErrEmptyCourseList indicates the input course list was empty.
	// Distinct from ErrNoEligibleCourses so callers can tell "nothing sent"
	// from "nothing qualified".
	ErrEmptyCourseList = errors.New("course list is empty")

	// ErrNoEligibleCourses indicates every supplied course failed the
	// eligibility ID filter.
	ErrNoEligibleCourses = errors.New("no courses meet the eligibility threshold")

	// ErrModelsNotConfigured indicates the engine was asked to score
	// before SetModels was called.
	ErrModelsNotConfigured = errors.New("scoring models not configured")
)

// ScoringError indicates a black-box model call failed or returned
// malformed data. It is terminal for the request.
type ScoringError struct {
	// Model identifies the failing model.
	Model string

	// CourseID is the course being scored when the failure occurred.
	CourseID int64

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *ScoringError) Error() string {
	if e.CourseID != 0 {
		return fmt.Sprintf("model %q failed scoring course %d: %v", e.Model, e.CourseID, e.Err)
	}
	return fmt.Sprintf("model %q failed: %v", e.Model, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScoringError) Unwrap() error {
	return e.Err
}

// errUnknownFeature reports a feature name the pipeline does not produce.
func errUnknownFeature(name string) error {
	return fmt.Errorf("unknown feature %q", name)
}

// errSchemaList reports an empty feature schema list.
func errSchemaList(list string) error {
	return fmt.Errorf("feature schema: %s must not be empty", list)
}
