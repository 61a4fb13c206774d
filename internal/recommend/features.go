// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package recommend

// weeksPerMonth divides a course's monthly workload into a weekly
// equivalent for the time-fit heuristic.
const weeksPerMonth = 4.0

// BuildFeatures derives the feature vector for one (profile, course) pair.
//
// All lookups use safe defaults, so no input can fail feature derivation.
// The three match flags are heuristics, not hard filters:
//
//   - level: the user is at most one tier below the course. This passes a
//     Junior into an Intermediate course even though the rules ladder
//     separately penalizes that pairing; both signals are preserved as the
//     models were trained on them.
//   - time: the user's weekly hours cover a quarter of the monthly workload.
//   - career: the course belongs to the desired career's course set.
func BuildFeatures(p Profile, c Course, catalog *CareerCatalog) FeatureVector {
	expOrd := ExperienceOrdinal(p.ExperienceLevel)
	levelOrd := CourseLevelOrdinal(c.Level)

	f := FeatureVector{
		ExperienceLevel: float64(expOrd),
		WeeklyHours:     p.WeeklyHours,
		Age:             float64(p.Age),
		YearsExperience: float64(p.YearsExperience),
		Education:       float64(EducationOrdinal(p.Education)),
		CourseLevel:     float64(levelOrd),
		WorkloadHours:   c.WorkloadHours,
		AvgRating:       c.AvgRating,
		CompletionRate:  c.CompletionRate,
		PopularityScore: c.PopularityScore,
		Progress:        0.0,
	}

	if expOrd >= levelOrd-1 {
		f.MatchLevel = 1
	}
	if p.WeeklyHours >= c.WorkloadHours/weeksPerMonth {
		f.MatchTime = 1
	}
	if catalog != nil && catalog.Matches(p.DesiredCareer, c.ID) {
		f.MatchCareer = 1
	}

	return f
}
