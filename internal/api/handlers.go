// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package api

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skillbridge/recommender/internal/logging"
	"github.com/skillbridge/recommender/internal/recommend"
)

// recommender is the part of the scoring engine the HTTP layer depends on.
type recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	Ready() bool
	ModelInfo() recommend.ModelInfo
}

// Handler holds the dependencies of all HTTP handlers.
type Handler struct {
	engine       recommender
	logger       zerolog.Logger
	maxBodyBytes int64
}

// NewHandler creates a Handler backed by the given scoring engine.
func NewHandler(engine recommender, maxBodyBytes int64) *Handler {
	return &Handler{
		engine:       engine,
		logger:       logging.WithComponent("api"),
		maxBodyBytes: maxBodyBytes,
	}
}
