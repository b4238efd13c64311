package score

import (
	"context"

	"github.com/Taichi-iskw/transqa/internal/model"
)

// Repository defines operations for ManualScore persistence.
// The store enforces at most one score per (translation, reviewer).
type Repository interface {
	Create(ctx context.Context, score *model.ManualScore) error
	GetByID(ctx context.Context, id int) (*model.ManualScore, error)
	GetByTranslationAndReviewer(ctx context.Context, translationID, reviewerID int) (*model.ManualScore, error)

	// ListByTranslationIDs retrieves the scores attached to any of the given translations
	ListByTranslationIDs(ctx context.Context, translationIDs []int) ([]*model.ManualScore, error)

	// ListByReviewer retrieves one reviewer's scores restricted to the given translations
	ListByReviewer(ctx context.Context, reviewerID int, translationIDs []int) ([]*model.ManualScore, error)

	// ListAll retrieves every score in creation order
	ListAll(ctx context.Context) ([]*model.ManualScore, error)

	// Update overwrites the metric values and notes and stamps updated_at
	Update(ctx context.Context, score *model.ManualScore) error
	Delete(ctx context.Context, id int) error
}
