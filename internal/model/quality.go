package model

import "time"

// Metric identifies one quality dimension scored for a translation
type Metric string

const (
	MetricCoherence   Metric = "coherence"
	MetricFidelity    Metric = "fidelity"
	MetricNaturalness Metric = "naturalness"
	MetricOverall     Metric = "overall"
)

// AllMetrics lists the metrics in presentation order
var AllMetrics = []Metric{MetricCoherence, MetricFidelity, MetricNaturalness, MetricOverall}

// Metrics holds the four optional quality values. A nil field means the metric is absent.
type Metrics struct {
	Coherence   *float64 `json:"coherence" db:"coherence" validate:"omitempty,min=0,max=1"`
	Fidelity    *float64 `json:"fidelity" db:"fidelity" validate:"omitempty,min=0,max=1"`
	Naturalness *float64 `json:"naturalness" db:"naturalness" validate:"omitempty,min=0,max=1"`
	Overall     *float64 `json:"overall" db:"overall" validate:"omitempty,min=0,max=1"`
}

// Get returns the value of a metric, or nil when absent
func (m Metrics) Get(metric Metric) *float64 {
	switch metric {
	case MetricCoherence:
		return m.Coherence
	case MetricFidelity:
		return m.Fidelity
	case MetricNaturalness:
		return m.Naturalness
	case MetricOverall:
		return m.Overall
	}
	return nil
}

// Set assigns the value of a metric
func (m *Metrics) Set(metric Metric, v *float64) {
	switch metric {
	case MetricCoherence:
		m.Coherence = v
	case MetricFidelity:
		m.Fidelity = v
	case MetricNaturalness:
		m.Naturalness = v
	case MetricOverall:
		m.Overall = v
	}
}

// Float returns a pointer to v
func Float(v float64) *float64 {
	return &v
}

// Prompt represents the prompt used to produce a set of translations
type Prompt struct {
	ID          int       `json:"id" db:"id"`
	Key         string    `json:"prompt_id" db:"prompt_key"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Reviewer represents a human who submits manual scores
type Reviewer struct {
	ID        int       `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	IsAdmin   bool      `json:"is_admin" db:"is_admin"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Translation represents one translated unit with its automated scores.
// Automated metrics are written once at import time.
type Translation struct {
	ID                   int       `json:"id" db:"id"`
	ExecutionID          string    `json:"execution_id" db:"execution_id"`
	ExecutionDescription *string   `json:"execution_description,omitempty" db:"execution_description"`
	PromptID             int       `json:"prompt_id" db:"prompt_id"`
	OriginalContent      string    `json:"original_content" db:"original_content"`
	TranslatedContent    string    `json:"translated_content" db:"translated_content"`
	SourceLanguage       string    `json:"source_language" db:"source_language"`
	TargetLanguage       string    `json:"target_language" db:"target_language"`
	Automated            Metrics   `json:"automated"`
	InsightsPath         *string   `json:"insights_path,omitempty" db:"insights_path"`
	AutomatedQAPath      *string   `json:"automated_qa_path,omitempty" db:"automated_qa_path"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
}

// ManualScore represents one reviewer's assessment of one translation
type ManualScore struct {
	ID            int        `json:"id" db:"id"`
	TranslationID int        `json:"translation_id" db:"translation_id"`
	ReviewerID    int        `json:"reviewer_id" db:"reviewer_id"`
	Metrics                  // manual values
	Notes         *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// TranslationWithScore is a translation together with the requesting reviewer's own score
type TranslationWithScore struct {
	Translation
	ManualScore *ManualScore `json:"manual_score"`
}

// ExecutionSummary describes one import run
type ExecutionSummary struct {
	ExecutionID string     `json:"execution_id" db:"execution_id"`
	Count       int        `json:"count" db:"count"`
	LatestDate  *time.Time `json:"latest_date" db:"latest_date"`
	Description *string    `json:"description" db:"description"`
}

// TranslationFilter narrows translation listings
type TranslationFilter struct {
	ExecutionID string
	PromptID    int
}
