package admin

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Taichi-iskw/transqa/internal/app"
	"github.com/Taichi-iskw/transqa/internal/repository/maintenance"
	"github.com/Taichi-iskw/transqa/internal/service/admin"
)

// commandTimeout bounds service construction and the call itself
const commandTimeout = 30 * time.Second

// ServiceFactory creates admin service instances
type ServiceFactory struct{}

// NewServiceFactory creates a new service factory
func NewServiceFactory() *ServiceFactory {
	return &ServiceFactory{}
}

// CreateService creates an admin service backed by the configured database
func (f *ServiceFactory) CreateService(ctx context.Context) (admin.Service, func(), error) {
	a, cleanup, err := app.Open(ctx, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	return admin.NewService(a.Reviewers, maintenance.NewRepository(a.Pool), a.Logger), cleanup, nil
}

// withService runs fn under a bounded context with the injected service, or with a real one when service is nil
func withService(parent context.Context, service admin.Service, fn func(context.Context, admin.Service) error) error {
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
		return fmt.Errorf("failed to create admin service: %w", err)
	}
	defer cleanup()

	return fn(ctx, svc)
}
