package importer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Taichi-iskw/transqa/internal/app"
	"github.com/Taichi-iskw/transqa/internal/service/importer"
)

// commandTimeout bounds a whole import run, connection setup included
const commandTimeout = 5 * time.Minute

// ServiceFactory creates import service instances
type ServiceFactory struct{}

// NewServiceFactory creates a new service factory
func NewServiceFactory() *ServiceFactory {
	return &ServiceFactory{}
}

// CreateService creates an import service connected to the database and the object store
func (f *ServiceFactory) CreateService(ctx context.Context, concurrency int) (importer.Service, func(), error) {
	a, cleanup, err := app.Open(ctx, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	store, err := a.ObjectStore(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	service := importer.NewService(store, a.Reviewers, a.Prompts, a.Translations, concurrency, a.Logger)
	return service, cleanup, nil
}

// withService runs fn under a bounded context with the injected service, or with a real one when service is nil
func withService(parent context.Context, service importer.Service, concurrency int, fn func(context.Context, importer.Service) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, commandTimeout)
	defer cancel()

	if service != nil {
		return fn(ctx, service)
	}

	svc, cleanup, err := NewServiceFactory().CreateService(ctx, concurrency)
	if err != nil {
		return fmt.Errorf("failed to create import service: %w", err)
	}
	defer cleanup()

	return fn(ctx, svc)
}
