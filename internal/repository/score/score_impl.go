package score

import (
	"context"

	apperrors "github.com/Taichi-iskw/transqa/internal/errors"
	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/repository/common"
	"github.com/jackc/pgx/v5"
)

const selectColumns = `SELECT id, translation_id, reviewer_id, coherence, fidelity, naturalness, overall,
	notes, created_at, updated_at FROM manual_scores`

// scoreRepository implements Repository using PostgreSQL
type scoreRepository struct {
	pool common.Pool
}

// NewRepository creates a new manual score repository
func NewRepository(pool common.Pool) Repository {
	return &scoreRepository{
		pool: pool,
	}
}

func scanScore(row pgx.Row) (*model.ManualScore, error) {
	var s model.ManualScore
	err := row.Scan(&s.ID, &s.TranslationID, &s.ReviewerID,
		&s.Coherence, &s.Fidelity, &s.Naturalness, &s.Overall,
		&s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a manual score. A second score by the same reviewer for the
// same translation fails with CONFLICT.
func (r *scoreRepository) Create(ctx context.Context, score *model.ManualScore) error {
	sql := `
		INSERT INTO manual_scores (translation_id, reviewer_id, coherence, fidelity, naturalness, overall, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, sql, score.TranslationID, score.ReviewerID,
		score.Coherence, score.Fidelity, score.Naturalness, score.Overall, score.Notes).
		Scan(&score.ID, &score.CreatedAt)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to create manual score")
	}
	return nil
}

// GetByID retrieves a manual score by ID
func (r *scoreRepository) GetByID(ctx context.Context, id int) (*model.ManualScore, error) {
	score, err := scanScore(r.pool.QueryRow(ctx, selectColumns+" WHERE id = $1", id))
	if err != nil {
		return nil, common.NotFoundOr(err, "manual score not found", "failed to get manual score")
	}
	return score, nil
}

// GetByTranslationAndReviewer retrieves a reviewer's score for one translation
func (r *scoreRepository) GetByTranslationAndReviewer(ctx context.Context, translationID, reviewerID int) (*model.ManualScore, error) {
	sql := selectColumns + " WHERE translation_id = $1 AND reviewer_id = $2"
	score, err := scanScore(r.pool.QueryRow(ctx, sql, translationID, reviewerID))
	if err != nil {
		return nil, common.NotFoundOr(err, "manual score not found", "failed to get manual score")
	}
	return score, nil
}

// ListByTranslationIDs retrieves all scores for the given translations
func (r *scoreRepository) ListByTranslationIDs(ctx context.Context, translationIDs []int) ([]*model.ManualScore, error) {
	if len(translationIDs) == 0 {
		return []*model.ManualScore{}, nil
	}
	sql := selectColumns + " WHERE translation_id = ANY($1) ORDER BY id"
	return r.query(ctx, "failed to list manual scores by translation", sql, translationIDs)
}

// ListByReviewer retrieves a reviewer's scores for the given translations
func (r *scoreRepository) ListByReviewer(ctx context.Context, reviewerID int, translationIDs []int) ([]*model.ManualScore, error) {
	if len(translationIDs) == 0 {
		return []*model.ManualScore{}, nil
	}
	sql := selectColumns + " WHERE reviewer_id = $1 AND translation_id = ANY($2) ORDER BY id"
	return r.query(ctx, "failed to list manual scores by reviewer", sql, reviewerID, translationIDs)
}

// ListAll retrieves every manual score ordered by ID
func (r *scoreRepository) ListAll(ctx context.Context) ([]*model.ManualScore, error) {
	return r.query(ctx, "failed to list manual scores", selectColumns+" ORDER BY id")
}

// Update writes the score's metric values and notes
func (r *scoreRepository) Update(ctx context.Context, score *model.ManualScore) error {
	sql := `
		UPDATE manual_scores
		SET coherence = $2, fidelity = $3, naturalness = $4, overall = $5, notes = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.pool.QueryRow(ctx, sql, score.ID,
		score.Coherence, score.Fidelity, score.Naturalness, score.Overall, score.Notes).
		Scan(&score.UpdatedAt)
	if err != nil {
		return common.NotFoundOr(err, "manual score not found", "failed to update manual score")
	}
	return nil
}

// Delete removes a manual score
func (r *scoreRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM manual_scores WHERE id = $1", id)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to delete manual score")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeNotFound, "manual score not found")
	}
	return nil
}

func (r *scoreRepository) query(ctx context.Context, operation, sql string, args ...any) ([]*model.ManualScore, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, common.HandlePostgreSQLError(err, operation)
	}
	defer rows.Close()

	scores := []*model.ManualScore{}
	for rows.Next() {
		score, err := scanScore(rows)
		if err != nil {
			return nil, common.HandlePostgreSQLError(err, "failed to scan manual score row")
		}
		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to iterate manual score rows")
	}

	return scores, nil
}
