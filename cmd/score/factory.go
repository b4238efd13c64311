package score

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Taichi-iskw/transqa/internal/app"
	"github.com/Taichi-iskw/transqa/internal/service/score"
)

// commandTimeout bounds service construction and the call itself
const commandTimeout = 30 * time.Second

// ServiceFactory creates score service instances
type ServiceFactory struct{}

// NewServiceFactory creates a new service factory
func NewServiceFactory() *ServiceFactory {
	return &ServiceFactory{}
}

// CreateService creates a score service backed by the configured database
func (f *ServiceFactory) CreateService(ctx context.Context) (score.Service, func(), error) {
	a, cleanup, err := app.Open(ctx, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	return score.NewService(a.Scores, a.Translations, a.Reviewers, a.Logger), cleanup, nil
}

// withService runs fn under a bounded context with the injected service, or with a real one when service is nil
func withService(parent context.Context, service score.Service, fn func(context.Context, score.Service) error) error {
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
		return fmt.Errorf("failed to create score service: %w", err)
	}
	defer cleanup()

	return fn(ctx, svc)
}
