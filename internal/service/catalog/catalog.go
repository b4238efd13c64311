// Package catalog exposes prompts, reviewers, translations and import runs.
package catalog

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/Taichi-iskw/transqa/internal/errors"
	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/repository/prompt"
	"github.com/Taichi-iskw/transqa/internal/repository/reviewer"
	"github.com/Taichi-iskw/transqa/internal/repository/score"
	"github.com/Taichi-iskw/transqa/internal/repository/translation"
)

// PromptInput describes a prompt to register
type PromptInput struct {
	Key         string  `validate:"required,max=100"`
	Name        string  `validate:"required,max=255"`
	Description *string `validate:"omitempty,max=2000"`
}

// ReviewerInput describes a reviewer to register
type ReviewerInput struct {
	Username string `validate:"required,max=100"`
	Email    string `validate:"required,email"`
	IsAdmin  bool
}

// Service provides catalog lookups
type Service interface {
	CreatePrompt(ctx context.Context, input PromptInput) (*model.Prompt, error)
	ListPrompts(ctx context.Context) ([]*model.Prompt, error)
	GetPrompt(ctx context.Context, id int) (*model.Prompt, error)
	GetPromptByKey(ctx context.Context, key string) (*model.Prompt, error)

	CreateReviewer(ctx context.Context, input ReviewerInput) (*model.Reviewer, error)
	ListReviewers(ctx context.Context) ([]*model.Reviewer, error)

	// ListTranslations attaches reviewerName's own score to each translation when reviewerName is set
	ListTranslations(ctx context.Context, reviewerName string, filter model.TranslationFilter, limit, offset int) ([]*model.TranslationWithScore, error)
	GetTranslation(ctx context.Context, reviewerName string, id int) (*model.TranslationWithScore, error)
	ListExecutions(ctx context.Context) ([]*model.ExecutionSummary, error)
}

type catalogService struct {
	prompts      prompt.Repository
	reviewers    reviewer.Repository
	translations translation.Repository
	scores       score.Repository
	validate     *validator.Validate
	logger       *slog.Logger
}

// NewService creates a catalog service
func NewService(
	prompts prompt.Repository,
	reviewers reviewer.Repository,
	translations translation.Repository,
	scores score.Repository,
	logger *slog.Logger,
) Service {
	return &catalogService{
		prompts:      prompts,
		reviewers:    reviewers,
		translations: translations,
		scores:       scores,
		validate:     validator.New(),
		logger:       logger,
	}
}

func (s *catalogService) CreatePrompt(ctx context.Context, input PromptInput) (*model.Prompt, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidArg, "invalid prompt")
	}

	p := &model.Prompt{Key: input.Key, Name: input.Name, Description: input.Description}
	if err := s.prompts.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "prompt created", slog.Int("id", p.ID), slog.String("key", p.Key))
	return p, nil
}

func (s *catalogService) ListPrompts(ctx context.Context) ([]*model.Prompt, error) {
	return s.prompts.List(ctx)
}

func (s *catalogService) GetPrompt(ctx context.Context, id int) (*model.Prompt, error) {
	return s.prompts.GetByID(ctx, id)
}

func (s *catalogService) GetPromptByKey(ctx context.Context, key string) (*model.Prompt, error) {
	return s.prompts.GetByKey(ctx, key)
}

func (s *catalogService) CreateReviewer(ctx context.Context, input ReviewerInput) (*model.Reviewer, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidArg, "invalid reviewer")
	}

	r := &model.Reviewer{Username: input.Username, Email: input.Email, IsAdmin: input.IsAdmin, IsActive: true}
	if err := s.reviewers.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "reviewer created", slog.Int("id", r.ID), slog.String("username", r.Username))
	return r, nil
}

func (s *catalogService) ListReviewers(ctx context.Context) ([]*model.Reviewer, error) {
	return s.reviewers.List(ctx)
}

func (s *catalogService) ListTranslations(ctx context.Context, reviewerName string, filter model.TranslationFilter, limit, offset int) ([]*model.TranslationWithScore, error) {
	if limit <= 0 || limit > 1000 {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "limit must be between 1 and 1000")
	}
	if offset < 0 {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "offset must not be negative")
	}

	translations, err := s.translations.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	own, err := s.ownScores(ctx, reviewerName, translations)
	if err != nil {
		return nil, err
	}

	out := make([]*model.TranslationWithScore, len(translations))
	for i, t := range translations {
		out[i] = &model.TranslationWithScore{Translation: *t, ManualScore: own[t.ID]}
	}
	return out, nil
}

func (s *catalogService) GetTranslation(ctx context.Context, reviewerName string, id int) (*model.TranslationWithScore, error) {
	t, err := s.translations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	own, err := s.ownScores(ctx, reviewerName, []*model.Translation{t})
	if err != nil {
		return nil, err
	}
	return &model.TranslationWithScore{Translation: *t, ManualScore: own[t.ID]}, nil
}

func (s *catalogService) ListExecutions(ctx context.Context) ([]*model.ExecutionSummary, error) {
	return s.translations.ListExecutions(ctx)
}

// ownScores returns reviewerName's scores of translations keyed by translation ID.
// An empty name or an unknown reviewer yields no scores.
func (s *catalogService) ownScores(ctx context.Context, reviewerName string, translations []*model.Translation) (map[int]*model.ManualScore, error) {
	out := make(map[int]*model.ManualScore)
	if reviewerName == "" || len(translations) == 0 {
		return out, nil
	}

	rev, err := s.reviewers.GetByUsername(ctx, reviewerName)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeNotFound) {
			return out, nil
		}
		return nil, err
	}

	ids := make([]int, len(translations))
	for i, t := range translations {
		ids[i] = t.ID
	}
	scores, err := s.scores.ListByReviewer(ctx, rev.ID, ids)
	if err != nil {
		return nil, err
	}
	for _, sc := range scores {
		out[sc.TranslationID] = sc
	}
	return out, nil
}
