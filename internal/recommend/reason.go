// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package recommend

import (
	"fmt"
	"strings"
)

// Thresholds for explanation clauses. The rating threshold here is looser
// than the quality-boost threshold in the rules chain: a 4.5 course is
// worth mentioning even when it earns no score boost.
const (
	reasonRatingThreshold      = 4.5
	reasonProbabilityThreshold = 0.7
)

// fallbackReason is returned when no clause applies.
const fallbackReason = "Recommended for you"

// Explain builds the human-readable explanation for a recommendation.
// One clause is appended per satisfied condition, in fixed order, joined
// with ". " and a trailing period. A pure function: identical inputs
// always yield the identical string.
func Explain(f FeatureVector, probability float64) string {
	var clauses []string

	if f.MatchCareer == 1 {
		clauses = append(clauses, "aligned with career")
	}
	if f.MatchLevel == 1 {
		clauses = append(clauses, "adequate level")
	}
	if f.MatchTime == 1 {
		clauses = append(clauses, "compatible workload")
	}
	if f.AvgRating >= reasonRatingThreshold {
		clauses = append(clauses, fmt.Sprintf("well rated (%.1f/5)", f.AvgRating))
	}
	if probability >= reasonProbabilityThreshold {
		clauses = append(clauses, "high completion likelihood")
	}

	if len(clauses) == 0 {
		return fallbackReason
	}
	return strings.Join(clauses, ". ") + "."
}
