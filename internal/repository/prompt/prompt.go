package prompt

import (
	"context"

	"github.com/Taichi-iskw/transqa/internal/model"
)

// Repository defines operations for Prompt persistence
type Repository interface {
	Create(ctx context.Context, prompt *model.Prompt) error
	GetByID(ctx context.Context, id int) (*model.Prompt, error)
	// GetByKey retrieves a prompt by its external identifier (e.g. "prompt_001")
	GetByKey(ctx context.Context, key string) (*model.Prompt, error)
	List(ctx context.Context) ([]*model.Prompt, error)
}
