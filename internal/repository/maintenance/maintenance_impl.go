package maintenance

import (
	"context"

	"github.com/Taichi-iskw/transqa/internal/repository/common"
)

// maintenanceRepository implements Repository using PostgreSQL
type maintenanceRepository struct {
	pool common.Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool common.Pool) Repository {
	return &maintenanceRepository{
		pool: pool,
	}
}

// Clean truncates the imported data and the scores attached to it
func (r *maintenanceRepository) Clean(ctx context.Context) ([]string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to begin transaction")
	}

	for _, table := range CleanedTables {
		if _, err := tx.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			_ = tx.Rollback(ctx)
			return nil, common.HandlePostgreSQLError(err, "failed to clean "+table)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to commit clean")
	}

	cleaned := make([]string, len(CleanedTables))
	copy(cleaned, CleanedTables)
	return cleaned, nil
}
