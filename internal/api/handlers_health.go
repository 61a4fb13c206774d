// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package api

import (
	"net/http"
)

// serviceInfo describes the running service on the root endpoint.
type serviceInfo struct {
	Service      string `json:"service"`
	Model        string `json:"model,omitempty"`
	ModelVersion string `json:"model_version,omitempty"`
}

// healthStatus is the health endpoint payload.
type healthStatus struct {
	Status string `json:"status"`
	Models bool   `json:"models"`
}

// Home handles GET / with basic service information.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	info := h.engine.ModelInfo()
	respondSuccess(w, r, http.StatusOK, serviceInfo{
		Service:      "skillbridge-recommender",
		Model:        info.Label,
		ModelVersion: info.Version,
	})
}

// Health handles GET /api/v1/health.
// Reports healthy along with whether model artifacts are loaded.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, healthStatus{
		Status: "healthy",
		Models: h.engine.Ready(),
	})
}

// HealthLive handles GET /api/v1/health/live.
// Liveness only checks that the process serves requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, healthStatus{
		Status: "alive",
		Models: h.engine.Ready(),
	})
}

// HealthReady handles GET /api/v1/health/ready.
// Readiness requires the model artifacts to be loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.engine.Ready() {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeModelsNotReady,
			"model artifacts are not loaded", nil)
		return
	}

	respondSuccess(w, r, http.StatusOK, healthStatus{
		Status: "ready",
		Models: true,
	})
}
