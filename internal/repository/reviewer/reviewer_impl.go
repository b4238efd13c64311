package reviewer

import (
	"context"

	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/repository/common"
	"github.com/jackc/pgx/v5"
)

const selectColumns = "SELECT id, username, email, is_admin, is_active, created_at FROM reviewers"

// reviewerRepository implements Repository using PostgreSQL
type reviewerRepository struct {
	pool common.Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool common.Pool) Repository {
	return &reviewerRepository{
		pool: pool,
	}
}

func scanReviewer(row pgx.Row) (*model.Reviewer, error) {
	var reviewer model.Reviewer
	err := row.Scan(&reviewer.ID, &reviewer.Username, &reviewer.Email,
		&reviewer.IsAdmin, &reviewer.IsActive, &reviewer.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &reviewer, nil
}

// Create inserts a reviewer and fills in its generated ID and creation time
func (r *reviewerRepository) Create(ctx context.Context, reviewer *model.Reviewer) error {
	sql := `
		INSERT INTO reviewers (username, email, is_admin, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, sql, reviewer.Username, reviewer.Email, reviewer.IsAdmin, reviewer.IsActive).
		Scan(&reviewer.ID, &reviewer.CreatedAt)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to create reviewer")
	}
	return nil
}

// GetByID retrieves a reviewer by ID
func (r *reviewerRepository) GetByID(ctx context.Context, id int) (*model.Reviewer, error) {
	reviewer, err := scanReviewer(r.pool.QueryRow(ctx, selectColumns+" WHERE id = $1", id))
	if err != nil {
		return nil, common.NotFoundOr(err, "reviewer not found", "failed to get reviewer")
	}
	return reviewer, nil
}

// GetByUsername retrieves a reviewer by username
func (r *reviewerRepository) GetByUsername(ctx context.Context, username string) (*model.Reviewer, error) {
	reviewer, err := scanReviewer(r.pool.QueryRow(ctx, selectColumns+" WHERE username = $1", username))
	if err != nil {
		return nil, common.NotFoundOr(err, "reviewer not found", "failed to get reviewer by username")
	}
	return reviewer, nil
}

// List retrieves all reviewers ordered by ID
func (r *reviewerRepository) List(ctx context.Context) ([]*model.Reviewer, error) {
	rows, err := r.pool.Query(ctx, selectColumns+" ORDER BY id")
	if err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to list reviewers")
	}
	defer rows.Close()

	reviewers := []*model.Reviewer{}
	for rows.Next() {
		reviewer, err := scanReviewer(rows)
		if err != nil {
			return nil, common.HandlePostgreSQLError(err, "failed to scan reviewer row")
		}
		reviewers = append(reviewers, reviewer)
	}

	if err := rows.Err(); err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to iterate reviewer rows")
	}

	return reviewers, nil
}

// UsernamesByID returns reviewer usernames keyed by ID
func (r *reviewerRepository) UsernamesByID(ctx context.Context) (map[int]string, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, username FROM reviewers")
	if err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to list reviewer names")
	}
	defer rows.Close()

	names := map[int]string{}
	for rows.Next() {
		var (
			id       int
			username string
		)
		if err := rows.Scan(&id, &username); err != nil {
			return nil, common.HandlePostgreSQLError(err, "failed to scan reviewer name")
		}
		names[id] = username
	}

	if err := rows.Err(); err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to iterate reviewer names")
	}

	return names, nil
}
