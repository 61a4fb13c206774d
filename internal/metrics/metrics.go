// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

// Package metrics provides Prometheus instrumentation for the
// recommendation service: API endpoint latency and throughput, scoring
// pipeline outcomes and model artifact status.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Scoring Pipeline Metrics
	RecommendationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // "success", "no_eligible_courses", "validation_failed", "scoring_error"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of recommendation scoring in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	CoursesScoredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courses_scored_total",
			Help: "Total number of courses scored across all requests",
		},
	)

	CoursesFilteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courses_filtered_total",
			Help: "Total number of courses filtered out as ineligible",
		},
	)

	// Model Artifact Metrics
	ModelLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_loaded",
			Help: "Whether model artifacts are loaded (1) or not (0)",
		},
	)

	ModelLoadTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_load_timestamp",
			Help: "Unix timestamp of the last successful model load",
		},
	)
)

// RecordRecommendation records the outcome and duration of one scoring request.
func RecordRecommendation(outcome string, duration time.Duration, coursesScored int) {
	RecommendationRequestsTotal.WithLabelValues(outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	if coursesScored > 0 {
		CoursesScoredTotal.Add(float64(coursesScored))
	}
}

// RecordModelLoad marks the model artifacts as loaded.
func RecordModelLoad() {
	ModelLoaded.Set(1)
	ModelLoadTimestamp.Set(float64(time.Now().Unix()))
}
