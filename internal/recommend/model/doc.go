// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

// Package model provides the persisted scoring model implementations
// behind the recommend.Regressor and recommend.Classifier interfaces.
//
// Models are exported from the offline training pipeline as a bundle of
// three JSON files in one directory:
//
//	regressor.json   linear relevance model: weights, intercept, metadata
//	classifier.json  logistic completion model: weights, intercept
//	features.json    feature schema: which features each model consumes,
//	                 and in what order
//
// LoadBundle reads the directory once at process start. The loaded models
// hold no mutable state and are safe for concurrent reads.
package model
