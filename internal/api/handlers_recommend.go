// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/skillbridge/recommender/internal/logging"
	"github.com/skillbridge/recommender/internal/metrics"
	"github.com/skillbridge/recommender/internal/recommend"
)

// Recommend handles POST /api/v1/recommendations.
//
// It decodes either request shape, validates it, runs the scoring
// pipeline and returns the ranked recommendation list. Requests with
// no eligible course (every ID below the catalog threshold) get a 400
// with code NO_ELIGIBLE_COURSES rather than an empty list.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload RecommendPayload
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&payload); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidationFailed,
			"request body is not valid JSON", nil)
		return
	}

	if apiErr := validateRequest(&payload); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	req := payload.Normalize()
	req.RequestID = logging.RequestIDFromContext(ctx)

	logging.Ctx(ctx).Debug().
		Int64("user_id", req.UserID).
		Int("courses", len(req.Courses)).
		Int("top_n", req.TopN).
		Bool("integration_shape", payload.IsIntegrationShape()).
		Msg("Recommendation request received")

	start := time.Now()
	resp, err := h.engine.Recommend(ctx, req)
	duration := time.Since(start)

	if err != nil {
		h.respondRecommendError(w, r, err, duration)
		return
	}

	metrics.RecordRecommendation("success", duration, resp.TotalEligible)
	if filtered := len(req.Courses) - resp.TotalEligible; filtered > 0 {
		metrics.CoursesFilteredTotal.Add(float64(filtered))
	}

	logging.Ctx(ctx).Info().
		Int64("user_id", req.UserID).
		Int("recommendations", len(resp.Recommendations)).
		Int("total_eligible", resp.TotalEligible).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("Recommendations generated")

	respondSuccess(w, r, http.StatusOK, resp)
}

// respondRecommendError maps scoring pipeline errors onto API error responses.
func (h *Handler) respondRecommendError(w http.ResponseWriter, r *http.Request, err error, duration time.Duration) {
	var scoringErr *recommend.ScoringError

	switch {
	case errors.Is(err, recommend.ErrEmptyCourseList):
		metrics.RecordRecommendation("validation_failed", duration, 0)
		respondError(w, r, http.StatusBadRequest, ErrCodeValidationFailed,
			"course list is empty", nil)

	case errors.Is(err, recommend.ErrNoEligibleCourses):
		metrics.RecordRecommendation("no_eligible_courses", duration, 0)
		respondError(w, r, http.StatusBadRequest, ErrCodeNoEligibleCourses,
			"no eligible course in the request", nil)

	case errors.Is(err, recommend.ErrModelsNotConfigured):
		metrics.RecordRecommendation("scoring_error", duration, 0)
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeModelsNotReady,
			"model artifacts are not loaded", nil)

	case errors.As(err, &scoringErr):
		metrics.RecordRecommendation("scoring_error", duration, 0)
		logging.CtxErr(r.Context(), err).
			Str("model", scoringErr.Model).
			Int64("course_id", scoringErr.CourseID).
			Msg("Scoring failed")
		respondError(w, r, http.StatusInternalServerError, ErrCodeScoringError,
			"model prediction failed", map[string]interface{}{
				"model":     scoringErr.Model,
				"course_id": scoringErr.CourseID,
			})

	default:
		metrics.RecordRecommendation("scoring_error", duration, 0)
		logging.CtxErr(r.Context(), err).Msg("Recommendation request failed")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal,
			"internal error", nil)
	}
}
