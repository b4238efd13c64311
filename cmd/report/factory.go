package report

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Taichi-iskw/transqa/internal/app"
	"github.com/Taichi-iskw/transqa/internal/service/report"
)

// commandTimeout bounds service construction and the call itself
const commandTimeout = 30 * time.Second

// ServiceFactory creates report service instances
type ServiceFactory struct{}

// NewServiceFactory creates a new service factory
func NewServiceFactory() *ServiceFactory {
	return &ServiceFactory{}
}

// CreateService creates a report service backed by the configured database
func (f *ServiceFactory) CreateService(ctx context.Context) (report.Service, func(), error) {
	a, cleanup, err := app.Open(ctx, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	service := report.NewService(a.Translations, a.Scores, a.Prompts, a.Reviewers, a.Logger)
	return service, cleanup, nil
}

// withService runs fn under a bounded context with the injected service, or with a real one when service is nil
func withService(parent context.Context, service report.Service, fn func(context.Context, report.Service) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, commandTimeout)
	defer cancel()

	if service != nil {
		return fn(ctx, service)
	}

	svc, cleanup, err := NewServiceFactory().CreateService(ctx)
	if err != nil {
		return fmt.Errorf("failed to create report service: %w", err)
	}
	defer cleanup()

	return fn(ctx, svc)
}
