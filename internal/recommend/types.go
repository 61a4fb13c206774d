// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package recommend

import "time"

// Default values applied to absent profile and course attributes.
// These match the values the trained models saw during training.
const (
	defaultAge             = 25
	defaultWeeklyHours     = 5.0
	defaultWorkloadHours   = 10.0
	defaultAvgRating       = 4.0
	defaultCompletionRate  = 80.0
	defaultPopularityScore = 50.0
)

// experienceOrdinals maps a profile experience level to its ordinal encoding.
var experienceOrdinals = map[string]int{
	"Junior":        1,
	"Intermediário": 2,
	"Senior":        3,
}

// courseLevelOrdinals maps a course level to its ordinal encoding.
var courseLevelOrdinals = map[string]int{
	"BASICO":        1,
	"INTERMEDIARIO": 2,
	"AVANCADO":      3,
}

// educationOrdinals maps an education level to its ordinal encoding.
var educationOrdinals = map[string]int{
	"Ensino Fundamental":  1,
	"Ensino Médio":        2,
	"Técnico":             3,
	"Superior Incompleto": 4,
	"Superior Completo":   5,
	"Pós-graduação":       6,
	"Mestrado":            7,
	"Doutorado":           8,
}

// ExperienceOrdinal returns the ordinal encoding (1-3) for an experience
// level. Unrecognized levels fall back to 1 (Junior).
func ExperienceOrdinal(level string) int {
	if ord, ok := experienceOrdinals[level]; ok {
		return ord
	}
	return 1
}

// CourseLevelOrdinal returns the ordinal encoding (1-3) for a course level.
// Unrecognized levels fall back to 1 (BASICO).
func CourseLevelOrdinal(level string) int {
	if ord, ok := courseLevelOrdinals[level]; ok {
		return ord
	}
	return 1
}

// EducationOrdinal returns the ordinal encoding (1-8) for an education
// level. Unrecognized levels fall back to 5 (Superior Completo).
func EducationOrdinal(level string) int {
	if ord, ok := educationOrdinals[level]; ok {
		return ord
	}
	return 5
}

// Profile describes the requesting user. It is an immutable input: the
// pipeline never mutates a Profile after normalization.
type Profile struct {
	// ExperienceLevel is the experience tier (Junior, Intermediário, Senior).
	ExperienceLevel string `json:"experience_level"`

	// DesiredCareer is a free-text key into the career catalog.
	DesiredCareer string `json:"desired_career"`

	// Age is the user's age in years.
	Age int `json:"age"`

	// YearsExperience is the user's total professional experience in years.
	YearsExperience int `json:"years_experience"`

	// Education is the education level (Ensino Fundamental ... Doutorado).
	Education string `json:"education"`

	// WeeklyHours is the time available for study per week.
	WeeklyHours float64 `json:"weekly_hours"`
}

// Normalize returns a copy with zero-valued attributes replaced by the
// training-time defaults.
func (p Profile) Normalize() Profile {
	if p.Age == 0 {
		p.Age = defaultAge
	}
	if p.WeeklyHours == 0 {
		p.WeeklyHours = defaultWeeklyHours
	}
	return p
}

// Course describes a candidate learning course. Immutable input per request.
type Course struct {
	// ID is the course identifier. Only courses with ID at or above the
	// eligibility threshold participate in ranking.
	ID int64 `json:"id"`

	// Name is the course title.
	Name string `json:"name"`

	// Description is the course description.
	Description string `json:"description,omitempty"`

	// Level is the difficulty tier (BASICO, INTERMEDIARIO, AVANCADO).
	Level string `json:"level"`

	// WorkloadHours is the total monthly workload in hours. The time-fit
	// heuristic divides it into four weeks.
	WorkloadHours float64 `json:"workload_hours"`

	// AvgRating is the average user rating (0-5).
	AvgRating float64 `json:"avg_rating"`

	// CompletionRate is the average completion rate (0-100).
	CompletionRate float64 `json:"completion_rate"`

	// PopularityScore is a pre-computed popularity metric.
	PopularityScore float64 `json:"popularity_score"`
}

// Normalize returns a copy with zero-valued attributes replaced by the
// training-time defaults.
func (c Course) Normalize() Course {
	if c.WorkloadHours == 0 {
		c.WorkloadHours = defaultWorkloadHours
	}
	if c.AvgRating == 0 {
		c.AvgRating = defaultAvgRating
	}
	if c.CompletionRate == 0 {
		c.CompletionRate = defaultCompletionRate
	}
	if c.PopularityScore == 0 {
		c.PopularityScore = defaultPopularityScore
	}
	return c
}

// FeatureVector is the derived numeric encoding of a (profile, course)
// pair consumed by the scoring models. One is built per candidate course
// and discarded after scoring; it is never persisted.
type FeatureVector struct {
	// ExperienceLevel is the ordinal-encoded profile experience (1-3).
	ExperienceLevel float64

	// WeeklyHours is the user's weekly study time.
	WeeklyHours float64

	// Age is the user's age.
	Age float64

	// YearsExperience is the user's professional experience in years.
	YearsExperience float64

	// Education is the ordinal-encoded education level (1-8).
	Education float64

	// CourseLevel is the ordinal-encoded course difficulty (1-3).
	CourseLevel float64

	// WorkloadHours is the course's monthly workload.
	WorkloadHours float64

	// AvgRating is the course's average rating.
	AvgRating float64

	// CompletionRate is the course's average completion rate.
	CompletionRate float64

	// PopularityScore is the course's popularity metric.
	PopularityScore float64

	// MatchLevel is 1 when the user is at most one tier below the course.
	MatchLevel float64

	// MatchTime is 1 when weekly hours cover a quarter of the workload.
	MatchTime float64

	// MatchCareer is 1 when the course belongs to the desired career.
	MatchCareer float64

	// Progress is a constant placeholder (always 0) kept for schema
	// compatibility with the trained models.
	Progress float64
}

// Feature names addressable through Value. The FeatureSchema selects and
// orders model inputs by these names.
const (
	FeatureExperienceLevel = "experience_level"
	FeatureWeeklyHours     = "weekly_hours"
	FeatureAge             = "age"
	FeatureYearsExperience = "years_experience"
	FeatureEducation       = "education"
	FeatureCourseLevel     = "course_level"
	FeatureWorkloadHours   = "workload_hours"
	FeatureAvgRating       = "avg_rating"
	FeatureCompletionRate  = "completion_rate"
	FeaturePopularityScore = "popularity_score"
	FeatureMatchLevel      = "match_level"
	FeatureMatchTime       = "match_time"
	FeatureMatchCareer     = "match_career"
	FeatureProgress        = "progress"
)

// Value returns the named feature and whether the name is known.
func (f FeatureVector) Value(name string) (float64, bool) {
	switch name {
	case FeatureExperienceLevel:
		return f.ExperienceLevel, true
	case FeatureWeeklyHours:
		return f.WeeklyHours, true
	case FeatureAge:
		return f.Age, true
	case FeatureYearsExperience:
		return f.YearsExperience, true
	case FeatureEducation:
		return f.Education, true
	case FeatureCourseLevel:
		return f.CourseLevel, true
	case FeatureWorkloadHours:
		return f.WorkloadHours, true
	case FeatureAvgRating:
		return f.AvgRating, true
	case FeatureCompletionRate:
		return f.CompletionRate, true
	case FeaturePopularityScore:
		return f.PopularityScore, true
	case FeatureMatchLevel:
		return f.MatchLevel, true
	case FeatureMatchTime:
		return f.MatchTime, true
	case FeatureMatchCareer:
		return f.MatchCareer, true
	case FeatureProgress:
		return f.Progress, true
	default:
		return 0, false
	}
}

// Row builds an ordered feature row for the given schema names.
// An unknown name is a scoring error: it means the feature schema and the
// pipeline disagree on the feature set.
func (f FeatureVector) Row(names []string) ([]float64, error) {
	row := make([]float64, len(names))
	for i, name := range names {
		v, ok := f.Value(name)
		if !ok {
			return nil, &ScoringError{Model: "schema", Err: errUnknownFeature(name)}
		}
		row[i] = v
	}
	return row, nil
}

// FeatureSchema names which FeatureVector fields each model consumes, and
// in what order. It is supplied alongside the trained models so the
// pipeline stays decoupled from model internals.
type FeatureSchema struct {
	// Regression is the ordered feature list for the relevance regressor.
	Regression []string `json:"regression_features"`

	// Classification is the ordered feature list for the completion
	// classifier.
	Classification []string `json:"classification_features"`
}

// Validate checks that both feature lists are non-empty and reference only
// known feature names.
func (s FeatureSchema) Validate() error {
	if len(s.Regression) == 0 {
		return errSchemaList("regression_features")
	}
	if len(s.Classification) == 0 {
		return errSchemaList("classification_features")
	}
	var probe FeatureVector
	for _, name := range s.Regression {
		if _, ok := probe.Value(name); !ok {
			return errUnknownFeature(name)
		}
	}
	for _, name := range s.Classification {
		if _, ok := probe.Value(name); !ok {
			return errUnknownFeature(name)
		}
	}
	return nil
}

// Regressor is the black-box relevance model: given the regression feature
// row it returns an unclamped relevance estimate.
type Regressor interface {
	// Name returns the model identifier for logs and errors.
	Name() string

	// Predict returns the relevance estimate for one feature row.
	Predict(row []float64) (float64, error)
}

// Classifier is the black-box completion model: given the classification
// feature row it returns a [negative, positive] probability pair. The
// pipeline consumes only the positive-class probability.
type Classifier interface {
	// Name returns the model identifier for logs and errors.
	Name() string

	// PredictProba returns the two-class probability pair for one row.
	PredictProba(row []float64) ([2]float64, error)
}

// ModelInfo labels the loaded model pair in responses.
type ModelInfo struct {
	// Label is the human-readable model description.
	Label string `json:"label"`

	// Version is the model bundle version.
	Version string `json:"version"`
}

// Recommendation is one ranked output record. Created fresh per request,
// never persisted.
type Recommendation struct {
	// Course is a snapshot of the recommended course.
	Course Course `json:"course"`

	// Score is the final rules-adjusted relevance score, clamped to [0, 10].
	Score float64 `json:"score"`

	// Probability is the predicted completion probability in [0, 1].
	Probability float64 `json:"completion_probability"`

	// Reason is a human-readable explanation of the recommendation.
	Reason string `json:"reason"`

	// Rank is the 1-based position after sorting.
	Rank int `json:"rank"`

	// Model labels the model pair that produced the score.
	Model string `json:"model,omitempty"`

	// ModelVersion is the model bundle version.
	ModelVersion string `json:"model_version,omitempty"`
}

// Request is one recommendation request.
type Request struct {
	// UserID identifies the requesting user, when the caller supplies one.
	UserID int64 `json:"user_id,omitempty"`

	// Profile is the canonical user profile.
	Profile Profile `json:"profile"`

	// Courses is the candidate course list.
	Courses []Course `json:"courses"`

	// TopN is the number of recommendations to return.
	// Defaults to Config.DefaultTopN when zero.
	TopN int `json:"top_n,omitempty"`

	// RequestID is a unique identifier for tracing. Generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// Response is the ordered recommendation list plus diagnostics.
type Response struct {
	// Recommendations is the ranked result list.
	Recommendations []Recommendation `json:"recommendations"`

	// TotalEligible is the number of courses that passed the ID filter.
	TotalEligible int `json:"total_eligible"`

	// Metadata contains timing and tracing information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and tracing information.
type ResponseMetadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// UserID is the user the recommendations are for.
	UserID int64 `json:"user_id,omitempty"`

	// ModelVersion is the model bundle version used.
	ModelVersion string `json:"model_version,omitempty"`

	// LatencyMS is the total scoring latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}
