// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

// Command server runs the course recommendation scoring service.
//
// Startup sequence:
//
//  1. Load configuration (defaults, optional YAML file, environment)
//  2. Initialize structured logging
//  3. Load model artifacts and build the scoring engine
//  4. Assemble the HTTP router and server
//  5. Run the server under Suture supervision until SIGINT/SIGTERM
//
// The process exits non-zero if configuration or model loading fails;
// there is no degraded mode without models.
package main
