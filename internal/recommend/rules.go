// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package recommend

// Score bounds for both the base model output and the adjusted score.
const (
	// MinScore is the lower clamp bound for relevance scores.
	MinScore = 0.0

	// MaxScore is the upper clamp bound for relevance scores.
	MaxScore = 10.0
)

// Multipliers applied by the business-rules chain.
const (
	farAboveLevelPenalty    = 0.3 // course two or more tiers above the user
	oneAboveJuniorPenalty   = 0.7 // Junior attempting an Intermediate course
	farBelowLevelPenalty    = 0.4 // course two or more tiers below the user
	oneBelowSeniorPenalty   = 0.7 // Senior taking an Intermediate course
	careerMatchBoost        = 1.4
	careerMismatchPenalty   = 0.6
	timeMatchBoost          = 1.1
	qualityBoost            = 1.1
	qualityRatingThreshold  = 4.7
)

// levelRule is one rung of the level-mismatch ladder. The ladder is
// evaluated top to bottom and only the first matching rung applies; the
// explicit list keeps that mutual-exclusivity invariant visible and
// testable in isolation.
type levelRule struct {
	name       string
	applies    func(diff, userLevel int) bool
	multiplier float64
}

// levelLadder orders the level-mismatch rules. diff is the course level
// ordinal minus the user experience ordinal. Reordering the rungs changes
// behavior: diff >= 2 must be tested before diff == 1, and diff <= -2
// before diff == -1.
var levelLadder = []levelRule{
	{
		name:       "course_far_above_user",
		applies:    func(diff, _ int) bool { return diff >= 2 },
		multiplier: farAboveLevelPenalty,
	},
	{
		name:       "junior_attempting_intermediate",
		applies:    func(diff, userLevel int) bool { return diff == 1 && userLevel == 1 },
		multiplier: oneAboveJuniorPenalty,
	},
	{
		name:       "course_far_below_user",
		applies:    func(diff, _ int) bool { return diff <= -2 },
		multiplier: farBelowLevelPenalty,
	},
	{
		name:       "senior_taking_intermediate",
		applies:    func(diff, userLevel int) bool { return diff == -1 && userLevel == 3 },
		multiplier: oneBelowSeniorPenalty,
	},
}

// AdjustScore applies the deterministic multiplicative business-rules chain
// to a base model score, in this exact order:
//
//  1. Level-mismatch ladder (first matching rung only).
//  2. Career alignment: boost on match, penalty otherwise.
//  3. Time fit: boost on match, unchanged otherwise.
//  4. Quality: boost for courses rated at or above 4.7.
//  5. Clamp to [MinScore, MaxScore].
//
// The function is pure and idempotent over identical inputs. The level
// ordinals are recomputed from the profile and course rather than read
// from the feature vector, matching the trained serving behavior.
func AdjustScore(base float64, f FeatureVector, p Profile, c Course) float64 {
	score := base

	userLevel := ExperienceOrdinal(p.ExperienceLevel)
	diff := CourseLevelOrdinal(c.Level) - userLevel

	for _, rule := range levelLadder {
		if rule.applies(diff, userLevel) {
			score *= rule.multiplier
			break
		}
	}

	if f.MatchCareer == 1 {
		score *= careerMatchBoost
	} else {
		score *= careerMismatchPenalty
	}

	if f.MatchTime == 1 {
		score *= timeMatchBoost
	}

	if f.AvgRating >= qualityRatingThreshold {
		score *= qualityBoost
	}

	return ClampScore(score)
}

// ClampScore bounds a relevance score to [MinScore, MaxScore].
func ClampScore(score float64) float64 {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
