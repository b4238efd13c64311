package admin

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Taichi-iskw/transqa/internal/repository/maintenance"
	"github.com/Taichi-iskw/transqa/internal/repository/reviewer"
	"github.com/Taichi-iskw/transqa/internal/service/access"
)

// Service runs destructive maintenance on behalf of an admin reviewer
type Service interface {
	// CleanTables removes every prompt, translation and manual score. Reviewers are kept.
	CleanTables(ctx context.Context, reviewerName string) ([]string, error)
}

type adminService struct {
	reviewers   reviewer.Repository
	maintenance maintenance.Repository
	logger      *slog.Logger
	tracer      trace.Tracer
}

// NewService creates an admin service
func NewService(reviewers reviewer.Repository, maintenance maintenance.Repository, logger *slog.Logger) Service {
	return &adminService{
		reviewers:   reviewers,
		maintenance: maintenance,
		logger:      logger,
		tracer:      otel.Tracer("admin-service"),
	}
}

func (s *adminService) CleanTables(ctx context.Context, reviewerName string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "admin.CleanTables")
	defer span.End()

	rev, err := access.Admin(ctx, s.reviewers, reviewerName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	tables, err := s.maintenance.Clean(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.StringSlice("tables", tables))
	s.logger.WarnContext(ctx, "tables cleaned",
		slog.String("reviewer", rev.Username),
		slog.Any("tables", tables),
	)
	return tables, nil
}
