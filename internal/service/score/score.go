// Package score manages the manual scores reviewers attach to translations.
package score

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/Taichi-iskw/transqa/internal/errors"
	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/repository/reviewer"
	scoreRepo "github.com/Taichi-iskw/transqa/internal/repository/score"
	"github.com/Taichi-iskw/transqa/internal/repository/translation"
	"github.com/Taichi-iskw/transqa/internal/service/access"
)

// CreateInput is a new manual score for one translation
type CreateInput struct {
	TranslationID int `json:"translation_id" validate:"required,gt=0"`
	model.Metrics
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdateInput is a partial update; nil fields are left unchanged
type UpdateInput struct {
	Coherence   *float64 `json:"coherence,omitempty" validate:"omitempty,min=0,max=1"`
	Fidelity    *float64 `json:"fidelity,omitempty" validate:"omitempty,min=0,max=1"`
	Naturalness *float64 `json:"naturalness,omitempty" validate:"omitempty,min=0,max=1"`
	Overall     *float64 `json:"overall,omitempty" validate:"omitempty,min=0,max=1"`
	Notes       *string  `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// Service creates, reads, updates and deletes manual scores on behalf of a reviewer.
// Only the reviewer who created a score may change or delete it.
type Service interface {
	Create(ctx context.Context, reviewerName string, input CreateInput) (*model.ManualScore, error)
	Update(ctx context.Context, reviewerName string, scoreID int, input UpdateInput) (*model.ManualScore, error)
	Delete(ctx context.Context, reviewerName string, scoreID int) error
	Get(ctx context.Context, scoreID int) (*model.ManualScore, error)
	// GetForTranslation returns the reviewer's own score of a translation
	GetForTranslation(ctx context.Context, reviewerName string, translationID int) (*model.ManualScore, error)
}

type scoreService struct {
	scores       scoreRepo.Repository
	translations translation.Repository
	reviewers    reviewer.Repository
	validate     *validator.Validate
	logger       *slog.Logger
	tracer       trace.Tracer
}

// NewService creates a score service
func NewService(
	scores scoreRepo.Repository,
	translations translation.Repository,
	reviewers reviewer.Repository,
	logger *slog.Logger,
) Service {
	return &scoreService{
		scores:       scores,
		translations: translations,
		reviewers:    reviewers,
		validate:     validator.New(),
		logger:       logger,
		tracer:       otel.Tracer("score-service"),
	}
}

func (s *scoreService) Create(ctx context.Context, reviewerName string, input CreateInput) (*model.ManualScore, error) {
	ctx, span := s.tracer.Start(ctx, "score.Create", trace.WithAttributes(
		attribute.String("reviewer", reviewerName),
		attribute.Int("translation_id", input.TranslationID),
	))
	defer span.End()

	if err := s.check(input); err != nil {
		return nil, fail(span, err)
	}

	rev, err := s.resolveReviewer(ctx, reviewerName)
	if err != nil {
		return nil, fail(span, err)
	}

	if _, err := s.translations.GetByID(ctx, input.TranslationID); err != nil {
		return nil, fail(span, err)
	}

	existing, err := s.scores.GetByTranslationAndReviewer(ctx, input.TranslationID, rev.ID)
	switch {
	case err == nil && existing != nil:
		return nil, fail(span, apperrors.New(apperrors.CodeConflict, "score already exists, use update"))
	case err != nil && !apperrors.HasCode(err, apperrors.CodeNotFound):
		return nil, fail(span, err)
	}

	score := &model.ManualScore{
		TranslationID: input.TranslationID,
		ReviewerID:    rev.ID,
		Metrics:       input.Metrics,
		Notes:         input.Notes,
	}
	if err := s.scores.Create(ctx, score); err != nil {
		return nil, fail(span, err)
	}

	s.logger.InfoContext(ctx, "manual score created",
		slog.Int("score_id", score.ID),
		slog.Int("translation_id", score.TranslationID),
		slog.String("reviewer", rev.Username),
	)
	return score, nil
}

func (s *scoreService) Update(ctx context.Context, reviewerName string, scoreID int, input UpdateInput) (*model.ManualScore, error) {
	ctx, span := s.tracer.Start(ctx, "score.Update", trace.WithAttributes(
		attribute.String("reviewer", reviewerName),
		attribute.Int("score_id", scoreID),
	))
	defer span.End()

	if err := s.check(input); err != nil {
		return nil, fail(span, err)
	}

	score, err := s.owned(ctx, reviewerName, scoreID)
	if err != nil {
		return nil, fail(span, err)
	}

	apply(score, input)
	if err := s.scores.Update(ctx, score); err != nil {
		return nil, fail(span, err)
	}

	s.logger.InfoContext(ctx, "manual score updated", slog.Int("score_id", score.ID), slog.String("reviewer", reviewerName))
	return score, nil
}

func (s *scoreService) Delete(ctx context.Context, reviewerName string, scoreID int) error {
	ctx, span := s.tracer.Start(ctx, "score.Delete", trace.WithAttributes(
		attribute.String("reviewer", reviewerName),
		attribute.Int("score_id", scoreID),
	))
	defer span.End()

	if _, err := s.owned(ctx, reviewerName, scoreID); err != nil {
		return fail(span, err)
	}
	if err := s.scores.Delete(ctx, scoreID); err != nil {
		return fail(span, err)
	}

	s.logger.InfoContext(ctx, "manual score deleted", slog.Int("score_id", scoreID), slog.String("reviewer", reviewerName))
	return nil
}

func (s *scoreService) Get(ctx context.Context, scoreID int) (*model.ManualScore, error) {
	if scoreID <= 0 {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "score ID must be positive")
	}
	return s.scores.GetByID(ctx, scoreID)
}

func (s *scoreService) GetForTranslation(ctx context.Context, reviewerName string, translationID int) (*model.ManualScore, error) {
	rev, err := s.resolveReviewer(ctx, reviewerName)
	if err != nil {
		return nil, err
	}
	return s.scores.GetByTranslationAndReviewer(ctx, translationID, rev.ID)
}

// owned loads a score and checks that reviewerName created it
func (s *scoreService) owned(ctx context.Context, reviewerName string, scoreID int) (*model.ManualScore, error) {
	rev, err := s.resolveReviewer(ctx, reviewerName)
	if err != nil {
		return nil, err
	}

	score, err := s.scores.GetByID(ctx, scoreID)
	if err != nil {
		return nil, err
	}
	if score.ReviewerID != rev.ID {
		return nil, apperrors.New(apperrors.CodePermissionDenied, "score belongs to another reviewer")
	}
	return score, nil
}

func (s *scoreService) resolveReviewer(ctx context.Context, username string) (*model.Reviewer, error) {
	return access.Active(ctx, s.reviewers, username)
}

func (s *scoreService) check(input any) error {
	if err := s.validate.Struct(input); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInvalidArg, "invalid score input")
	}
	return nil
}

func apply(score *model.ManualScore, input UpdateInput) {
	if input.Coherence != nil {
		score.Coherence = input.Coherence
	}
	if input.Fidelity != nil {
		score.Fidelity = input.Fidelity
	}
	if input.Naturalness != nil {
		score.Naturalness = input.Naturalness
	}
	if input.Overall != nil {
		score.Overall = input.Overall
	}
	if input.Notes != nil {
		score.Notes = input.Notes
	}
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
