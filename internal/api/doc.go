// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

// Package api provides the HTTP layer of the recommendation service
// using the Chi router.
//
// The API accepts two request payload shapes on the recommendation
// endpoint: the integration shape used by upstream backend services
// (usuario_id/perfil/top_n) and the frontend shape kept for
// compatibility (usuario/quantidade). Both are normalized into the
// scoring engine's request type before scoring.
//
// All responses use a standardized envelope with a status field, a
// data payload and structured error details. Prometheus metrics are
// exposed on /metrics and health probes under /api/v1/health.
package api
