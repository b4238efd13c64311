package reviewer

import (
	"context"

	"github.com/Taichi-iskw/transqa/internal/model"
)

// Repository defines operations for Reviewer persistence
type Repository interface {
	Create(ctx context.Context, reviewer *model.Reviewer) error
	GetByID(ctx context.Context, id int) (*model.Reviewer, error)
	GetByUsername(ctx context.Context, username string) (*model.Reviewer, error)
	List(ctx context.Context) ([]*model.Reviewer, error)
	// UsernamesByID returns a lookup of reviewer ID to username for every reviewer
	UsernamesByID(ctx context.Context) (map[int]string, error)
}
