package translation

import (
	"context"

	"github.com/Taichi-iskw/transqa/internal/model"
)

// Repository defines operations for Translation persistence.
// Translations are written at import time and never updated.
type Repository interface {
	// Create inserts a single translation
	Create(ctx context.Context, translation *model.Translation) error

	// CreateBatch inserts translations with COPY FROM and returns the number of rows written
	CreateBatch(ctx context.Context, translations []*model.Translation) (int64, error)

	// GetByID retrieves a translation by ID
	GetByID(ctx context.Context, id int) (*model.Translation, error)

	// List retrieves translations matching the filter with pagination, ordered by ID
	List(ctx context.Context, filter model.TranslationFilter, limit, offset int) ([]*model.Translation, error)

	// ListByGroup retrieves every translation of one execution batch and prompt
	ListByGroup(ctx context.Context, executionID string, promptID int) ([]*model.Translation, error)

	// ListAll retrieves every translation ordered by ID
	ListAll(ctx context.Context) ([]*model.Translation, error)

	// CountByExecution returns how many translations an execution produced
	CountByExecution(ctx context.Context, executionID string) (int, error)

	// ListExecutions summarizes import runs, most recent first
	ListExecutions(ctx context.Context) ([]*model.ExecutionSummary, error)
}
