// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

// Package recommend implements the course recommendation scoring pipeline.
//
// The pipeline combines two pre-trained predictive models with a
// deterministic business-rules layer:
//
//  1. Feature derivation: each (profile, course) pair is encoded into a
//     fixed-shape FeatureVector (ordinal-encoded attributes plus three
//     binary match flags for level, time, and career fit).
//  2. Base scoring: a regression model estimates relevance (clamped to
//     [0, 10]) and a classification model estimates the probability that
//     the user completes the course.
//  3. Rules adjustment: AdjustScore applies an ordered multiplicative
//     chain (level mismatch ladder, career alignment, time fit, quality
//     boost) to the base score. The rules encode hard UX constraints the
//     model alone does not honor, without retraining.
//  4. Ranking: candidates are sorted by adjusted score (stable, descending)
//     and truncated to the requested count.
//
// Only courses with an ID at or above the eligibility threshold (10000 by
// default) participate; the filter is ID-based and independent of any
// feature.
//
// The models are black boxes behind the Regressor and Classifier
// interfaces. The FeatureSchema names which FeatureVector fields each model
// consumes, and in what order, so the pipeline stays decoupled from model
// internals. See the model subpackage for the persisted implementations.
//
// The Engine holds only read-only state after construction and is safe for
// concurrent use.
package recommend
