package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/repository/common"
	"github.com/jackc/pgx/v5"
)

var columns = []string{
	"execution_id", "execution_description", "prompt_id",
	"original_content", "translated_content", "source_language", "target_language",
	"automated_coherence", "automated_fidelity", "automated_naturalness", "automated_overall",
	"insights_path", "automated_qa_path",
}

var selectColumns = "SELECT id, " + strings.Join(columns, ", ") + ", created_at FROM translations"

// translationRepository implements Repository using PostgreSQL
type translationRepository struct {
	pool common.Pool
}

// NewRepository creates a new translation repository
func NewRepository(pool common.Pool) Repository {
	return &translationRepository{
		pool: pool,
	}
}

func values(t *model.Translation) []any {
	return []any{
		t.ExecutionID, t.ExecutionDescription, t.PromptID,
		t.OriginalContent, t.TranslatedContent, t.SourceLanguage, t.TargetLanguage,
		t.Automated.Coherence, t.Automated.Fidelity, t.Automated.Naturalness, t.Automated.Overall,
		t.InsightsPath, t.AutomatedQAPath,
	}
}

func scanTranslation(row pgx.Row) (*model.Translation, error) {
	var t model.Translation
	err := row.Scan(&t.ID, &t.ExecutionID, &t.ExecutionDescription, &t.PromptID,
		&t.OriginalContent, &t.TranslatedContent, &t.SourceLanguage, &t.TargetLanguage,
		&t.Automated.Coherence, &t.Automated.Fidelity, &t.Automated.Naturalness, &t.Automated.Overall,
		&t.InsightsPath, &t.AutomatedQAPath, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a translation and fills in its generated ID and creation time
func (r *translationRepository) Create(ctx context.Context, translation *model.Translation) error {
	sql := fmt.Sprintf(`
		INSERT INTO translations (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`, strings.Join(columns, ", "))

	err := r.pool.QueryRow(ctx, sql, values(translation)...).
		Scan(&translation.ID, &translation.CreatedAt)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to create translation")
	}
	return nil
}

// CreateBatch creates multiple translation records using bulk insert (COPY FROM)
func (r *translationRepository) CreateBatch(ctx context.Context, translations []*model.Translation) (int64, error) {
	if len(translations) == 0 {
		return 0, nil
	}

	rows := make([][]any, len(translations))
	for i, t := range translations {
		rows[i] = values(t)
	}

	count, err := r.pool.CopyFrom(ctx, pgx.Identifier{"translations"}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, common.HandlePostgreSQLError(err, "failed to create translations in batch using COPY FROM")
	}

	return count, nil
}

// GetByID retrieves a translation by its ID
func (r *translationRepository) GetByID(ctx context.Context, id int) (*model.Translation, error) {
	translation, err := scanTranslation(r.pool.QueryRow(ctx, selectColumns+" WHERE id = $1", id))
	if err != nil {
		return nil, common.NotFoundOr(err, "translation not found", "failed to get translation")
	}
	return translation, nil
}

// List retrieves translations matching the filter with pagination
func (r *translationRepository) List(ctx context.Context, filter model.TranslationFilter, limit, offset int) ([]*model.Translation, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.ExecutionID != "" {
		args = append(args, filter.ExecutionID)
		conditions = append(conditions, fmt.Sprintf("execution_id = $%d", len(args)))
	}
	if filter.PromptID != 0 {
		args = append(args, filter.PromptID)
		conditions = append(conditions, fmt.Sprintf("prompt_id = $%d", len(args)))
	}

	sql := selectColumns
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit, offset)
	sql += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return r.query(ctx, "failed to list translations", sql, args...)
}

// ListByGroup retrieves the translations of one (execution, prompt) group
func (r *translationRepository) ListByGroup(ctx context.Context, executionID string, promptID int) ([]*model.Translation, error) {
	sql := selectColumns + " WHERE execution_id = $1 AND prompt_id = $2 ORDER BY id"
	return r.query(ctx, "failed to list translations by group", sql, executionID, promptID)
}

// ListAll retrieves every translation
func (r *translationRepository) ListAll(ctx context.Context) ([]*model.Translation, error) {
	return r.query(ctx, "failed to list all translations", selectColumns+" ORDER BY id")
}

// CountByExecution returns the number of translations stored for an execution
func (r *translationRepository) CountByExecution(ctx context.Context, executionID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM translations WHERE execution_id = $1", executionID).Scan(&count)
	if err != nil {
		return 0, common.HandlePostgreSQLError(err, "failed to count translations")
	}
	return count, nil
}

// ListExecutions groups translations by execution ID, newest first
func (r *translationRepository) ListExecutions(ctx context.Context) ([]*model.ExecutionSummary, error) {
	sql := `
		SELECT execution_id, COUNT(id), MAX(created_at), MAX(execution_description)
		FROM translations
		GROUP BY execution_id
		ORDER BY MAX(created_at) DESC`

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to list executions")
	}
	defer rows.Close()

	executions := []*model.ExecutionSummary{}
	for rows.Next() {
		var e model.ExecutionSummary
		if err := rows.Scan(&e.ExecutionID, &e.Count, &e.LatestDate, &e.Description); err != nil {
			return nil, common.HandlePostgreSQLError(err, "failed to scan execution row")
		}
		executions = append(executions, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to iterate execution rows")
	}

	return executions, nil
}

func (r *translationRepository) query(ctx context.Context, operation, sql string, args ...any) ([]*model.Translation, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, common.HandlePostgreSQLError(err, operation)
	}
	defer rows.Close()

	translations := []*model.Translation{}
	for rows.Next() {
		translation, err := scanTranslation(rows)
		if err != nil {
			return nil, common.HandlePostgreSQLError(err, "failed to scan translation row")
		}
		translations = append(translations, translation)
	}

	if err := rows.Err(); err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to iterate translation rows")
	}

	return translations, nil
}
