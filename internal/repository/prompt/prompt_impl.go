package prompt

import (
	"context"

	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/repository/common"
)

const selectColumns = "SELECT id, prompt_key, name, description, created_at FROM prompts"

// promptRepository implements Repository using PostgreSQL
type promptRepository struct {
	pool common.Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool common.Pool) Repository {
	return &promptRepository{
		pool: pool,
	}
}

// Create inserts a prompt and fills in its generated ID and creation time
func (r *promptRepository) Create(ctx context.Context, prompt *model.Prompt) error {
	sql := `
		INSERT INTO prompts (prompt_key, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, sql, prompt.Key, prompt.Name, prompt.Description).
		Scan(&prompt.ID, &prompt.CreatedAt)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to create prompt")
	}
	return nil
}

// GetByID retrieves a prompt by its ID
func (r *promptRepository) GetByID(ctx context.Context, id int) (*model.Prompt, error) {
	var prompt model.Prompt
	err := r.pool.QueryRow(ctx, selectColumns+" WHERE id = $1", id).
		Scan(&prompt.ID, &prompt.Key, &prompt.Name, &prompt.Description, &prompt.CreatedAt)
	if err != nil {
		return nil, common.NotFoundOr(err, "prompt not found", "failed to get prompt")
	}
	return &prompt, nil
}

// GetByKey retrieves a prompt by its external key
func (r *promptRepository) GetByKey(ctx context.Context, key string) (*model.Prompt, error) {
	var prompt model.Prompt
	err := r.pool.QueryRow(ctx, selectColumns+" WHERE prompt_key = $1", key).
		Scan(&prompt.ID, &prompt.Key, &prompt.Name, &prompt.Description, &prompt.CreatedAt)
	if err != nil {
		return nil, common.NotFoundOr(err, "prompt not found", "failed to get prompt by key")
	}
	return &prompt, nil
}

// List retrieves all prompts ordered by ID
func (r *promptRepository) List(ctx context.Context) ([]*model.Prompt, error) {
	rows, err := r.pool.Query(ctx, selectColumns+" ORDER BY id")
	if err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to list prompts")
	}
	defer rows.Close()

	prompts := []*model.Prompt{}
	for rows.Next() {
		var prompt model.Prompt
		if err := rows.Scan(&prompt.ID, &prompt.Key, &prompt.Name, &prompt.Description, &prompt.CreatedAt); err != nil {
			return nil, common.HandlePostgreSQLError(err, "failed to scan prompt row")
		}
		prompts = append(prompts, &prompt)
	}

	if err := rows.Err(); err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to iterate prompt rows")
	}

	return prompts, nil
}
