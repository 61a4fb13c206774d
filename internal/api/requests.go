// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package api

import (
	"github.com/skillbridge/recommender/internal/recommend"
)

// defaultEducation is assumed for integration requests, whose profile
// shape carries no education field.
const defaultEducation = "Superior Completo"

// RecommendPayload is the wire format of the recommendation endpoint.
// It accepts two shapes:
//
// Integration shape (backend services):
//
//	{
//	  "usuario_id": 1,
//	  "perfil": {
//	    "nivel_experiencia": "Junior",
//	    "tempo_disponivel_semanal": 10.0,
//	    "idade": 25,
//	    "anos_experiencia_total": 2,
//	    "objetivo_carreira": "Cientista de Dados"
//	  },
//	  "cursos": [{...}],
//	  "top_n": 10
//	}
//
// Frontend shape (kept for compatibility):
//
//	{
//	  "usuario": {"nivel_experiencia": "Junior", "carreira_desejada": "...", ...},
//	  "cursos": [{...}],
//	  "quantidade": 10
//	}
//
// The shape is detected by the presence of both usuario_id and perfil.
type RecommendPayload struct {
	// Integration shape fields.
	UserID  *int64              `json:"usuario_id"`
	Profile *IntegrationProfile `json:"perfil"`
	TopN    *int                `json:"top_n" validate:"omitempty,gte=1"`

	// Frontend shape fields.
	User     *FrontendProfile `json:"usuario"`
	Quantity *int             `json:"quantidade" validate:"omitempty,gte=1"`

	// Shared.
	Courses []CoursePayload `json:"cursos"`
}

// IntegrationProfile is the profile shape sent by backend services.
// Education is not part of this shape; defaultEducation is assumed.
type IntegrationProfile struct {
	ExperienceLevel string   `json:"nivel_experiencia"`
	WeeklyHours     *float64 `json:"tempo_disponivel_semanal"`
	Age             *int     `json:"idade"`
	YearsExperience *int     `json:"anos_experiencia_total"`
	DesiredCareer   string   `json:"objetivo_carreira"`
}

// FrontendProfile is the profile shape sent by the web frontend.
type FrontendProfile struct {
	DesiredCareer   string   `json:"carreira_desejada"`
	ExperienceLevel string   `json:"nivel_experiencia"`
	Age             *int     `json:"idade"`
	YearsExperience *int     `json:"anos_experiencia"`
	Education       string   `json:"escolaridade"`
	WeeklyHours     *float64 `json:"tempo_disponivel_semanal"`
}

// CoursePayload is a course in either request shape. Integration
// requests use camelCase keys while frontend requests use snake_case;
// both are accepted, camelCase winning when both are set.
type CoursePayload struct {
	ID      *int64 `json:"id"`
	IDSnake *int64 `json:"id_curso"`

	Name        string `json:"nome"`
	Description string `json:"descricao"`
	Level       string `json:"nivel"`

	WorkloadHours      *float64 `json:"cargaHoraria"`
	WorkloadHoursSnake *float64 `json:"carga_horaria"`

	AvgRating      *float64 `json:"avaliacaoMedia"`
	AvgRatingSnake *float64 `json:"avaliacao_media"`

	CompletionRate      *float64 `json:"taxaConclusaoMedia"`
	CompletionRateSnake *float64 `json:"taxa_conclusao_media"`

	PopularityScore      *float64 `json:"popularidadeScore"`
	PopularityScoreSnake *float64 `json:"popularidade_score"`
}

// IsIntegrationShape reports whether the payload uses the integration shape.
func (p *RecommendPayload) IsIntegrationShape() bool {
	return p.Profile != nil && p.UserID != nil
}

// Normalize converts the wire payload into a scoring engine request.
// Missing optional fields stay at their zero values; the engine applies
// the training time defaults during scoring.
func (p *RecommendPayload) Normalize() recommend.Request {
	req := recommend.Request{
		Courses: make([]recommend.Course, 0, len(p.Courses)),
	}

	if p.IsIntegrationShape() {
		req.UserID = *p.UserID
		req.Profile = recommend.Profile{
			ExperienceLevel: p.Profile.ExperienceLevel,
			DesiredCareer:   p.Profile.DesiredCareer,
			Age:             intOrZero(p.Profile.Age),
			YearsExperience: intOrZero(p.Profile.YearsExperience),
			Education:       defaultEducation,
			WeeklyHours:     floatOrZero(p.Profile.WeeklyHours),
		}
		if p.TopN != nil {
			req.TopN = *p.TopN
		}
	} else {
		if p.User != nil {
			req.Profile = recommend.Profile{
				ExperienceLevel: p.User.ExperienceLevel,
				DesiredCareer:   p.User.DesiredCareer,
				Age:             intOrZero(p.User.Age),
				YearsExperience: intOrZero(p.User.YearsExperience),
				Education:       p.User.Education,
				WeeklyHours:     floatOrZero(p.User.WeeklyHours),
			}
		}
		if p.Quantity != nil {
			req.TopN = *p.Quantity
		}
	}

	for i := range p.Courses {
		req.Courses = append(req.Courses, p.Courses[i].toCourse())
	}

	return req
}

// toCourse maps a wire course onto the engine's course type.
func (c *CoursePayload) toCourse() recommend.Course {
	course := recommend.Course{
		Name:            c.Name,
		Description:     c.Description,
		Level:           c.Level,
		WorkloadHours:   firstFloat(c.WorkloadHours, c.WorkloadHoursSnake),
		AvgRating:       firstFloat(c.AvgRating, c.AvgRatingSnake),
		CompletionRate:  firstFloat(c.CompletionRate, c.CompletionRateSnake),
		PopularityScore: firstFloat(c.PopularityScore, c.PopularityScoreSnake),
	}

	switch {
	case c.ID != nil:
		course.ID = *c.ID
	case c.IDSnake != nil:
		course.ID = *c.IDSnake
	}

	return course
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func firstFloat(values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}
