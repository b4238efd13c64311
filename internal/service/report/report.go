// Package report reads a snapshot of translations and manual scores from the
// store and turns it into execution reports and the global summary.
package report

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/Taichi-iskw/transqa/internal/errors"
	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/quality"
	"github.com/Taichi-iskw/transqa/internal/repository/prompt"
	"github.com/Taichi-iskw/transqa/internal/repository/reviewer"
	"github.com/Taichi-iskw/transqa/internal/repository/score"
	"github.com/Taichi-iskw/transqa/internal/repository/translation"
)

// Service builds quality reports. Aggregates are recomputed on every call.
type Service interface {
	// Reports returns one report per (execution, prompt) group that matches filter
	Reports(ctx context.Context, filter quality.ReportFilter) ([]quality.ExecutionReport, error)
	// Group returns the report of a single group; an empty group yields a zero report
	Group(ctx context.Context, executionID string, promptID int) (*quality.ExecutionReport, error)
	// Summary returns the global review summary
	Summary(ctx context.Context) (*quality.GlobalSummary, error)
}

type reportService struct {
	translations translation.Repository
	scores       score.Repository
	prompts      prompt.Repository
	reviewers    reviewer.Repository
	logger       *slog.Logger
	tracer       trace.Tracer
}

// NewService creates a report service
func NewService(
	translations translation.Repository,
	scores score.Repository,
	prompts prompt.Repository,
	reviewers reviewer.Repository,
	logger *slog.Logger,
) Service {
	return &reportService{
		translations: translations,
		scores:       scores,
		prompts:      prompts,
		reviewers:    reviewers,
		logger:       logger,
		tracer:       otel.Tracer("report-service"),
	}
}

func (s *reportService) Reports(ctx context.Context, filter quality.ReportFilter) ([]quality.ExecutionReport, error) {
	ctx, span := s.tracer.Start(ctx, "report.Reports", trace.WithAttributes(
		attribute.String("filter.execution_id", filter.ExecutionID),
		attribute.Int("filter.prompt_id", filter.PromptID),
		attribute.Bool("filter.manual_only", filter.ManualOnly),
	))
	defer span.End()

	translations, err := s.translations.ListAll(ctx)
	if err != nil {
		return nil, fail(span, err)
	}
	scores, err := s.scores.ListAll(ctx)
	if err != nil {
		return nil, fail(span, err)
	}
	prompts, err := s.prompts.List(ctx)
	if err != nil {
		return nil, fail(span, err)
	}

	names := make(map[int]string, len(prompts))
	for _, p := range prompts {
		names[p.ID] = p.Name
	}

	reports := quality.BuildExecutionReports(values(translations), values(scores), names, filter)

	span.SetAttributes(attribute.Int("report.groups", len(reports)))
	s.logger.DebugContext(ctx, "built execution reports",
		slog.Int("translations", len(translations)),
		slog.Int("scores", len(scores)),
		slog.Int("groups", len(reports)),
	)
	return reports, nil
}

func (s *reportService) Group(ctx context.Context, executionID string, promptID int) (*quality.ExecutionReport, error) {
	ctx, span := s.tracer.Start(ctx, "report.Group", trace.WithAttributes(
		attribute.String("execution_id", executionID),
		attribute.Int("prompt_id", promptID),
	))
	defer span.End()

	translations, err := s.translations.ListByGroup(ctx, executionID, promptID)
	if err != nil {
		return nil, fail(span, err)
	}
	scores, err := s.scores.ListByTranslationIDs(ctx, translationIDs(translations))
	if err != nil {
		return nil, fail(span, err)
	}

	var promptName string
	p, err := s.prompts.GetByID(ctx, promptID)
	switch {
	case err == nil:
		promptName = p.Name
	case !apperrors.HasCode(err, apperrors.CodeNotFound):
		return nil, fail(span, err)
	}

	agg := quality.AggregateGroup(values(translations), values(scores))
	report := quality.NewExecutionReport(quality.GroupKey{ExecutionID: executionID, PromptID: promptID}, promptName, agg)
	return &report, nil
}

func (s *reportService) Summary(ctx context.Context) (*quality.GlobalSummary, error) {
	ctx, span := s.tracer.Start(ctx, "report.Summary")
	defer span.End()

	translations, err := s.translations.ListAll(ctx)
	if err != nil {
		return nil, fail(span, err)
	}
	scores, err := s.scores.ListAll(ctx)
	if err != nil {
		return nil, fail(span, err)
	}
	names, err := s.reviewers.UsernamesByID(ctx)
	if err != nil {
		return nil, fail(span, err)
	}

	summary := quality.Summarize(values(translations), values(scores), names)

	s.logger.DebugContext(ctx, "built global summary",
		slog.Int("translations", summary.TotalTranslations),
		slog.Int("reviewed", summary.TranslationsReviewed),
		slog.Int("contributors", len(summary.Contributors)),
	)
	return &summary, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func translationIDs(translations []*model.Translation) []int {
	ids := make([]int, len(translations))
	for i, t := range translations {
		ids[i] = t.ID
	}
	return ids
}

// values copies store results into the value slices the engine works on
func values[T any](ptrs []*T) []T {
	out := make([]T, len(ptrs))
	for i, p := range ptrs {
		out[i] = *p
	}
	return out
}
