package prompt

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/Taichi-iskw/transqa/internal/errors"
	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptRepository_Create(t *testing.T) {
	description := "Summaries and insights"
	tests := []struct {
		name     string
		prompt   *model.Prompt
		setup    func(mock pgxmock.PgxPoolIface)
		wantCode string
	}{
		{
			name:   "successful creation",
			prompt: &model.Prompt{Key: "prompt_001", Name: "Insights v1", Description: &description},
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := mock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now())
				mock.ExpectQuery("INSERT INTO prompts").
					WithArgs("prompt_001", "Insights v1", &description).
					WillReturnRows(rows)
			},
		},
		{
			name:   "duplicate key",
			prompt: &model.Prompt{Key: "prompt_001", Name: "Insights v1"},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO prompts").
					WithArgs("prompt_001", "Insights v1", (*string)(nil)).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "prompts_prompt_key_key"})
			},
			wantCode: apperrors.CodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)
			repo := NewRepository(mock)

			err = repo.Create(context.Background(), tt.prompt)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, apperrors.HasCode(err, tt.wantCode))
			} else {
				require.NoError(t, err)
				assert.Equal(t, 7, tt.prompt.ID)
				assert.NotZero(t, tt.prompt.CreatedAt)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPromptRepository_GetByKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	rows := mock.NewRows([]string{"id", "prompt_key", "name", "description", "created_at"}).
		AddRow(3, "prompt_003", "Insights v3", (*string)(nil), time.Now())
	mock.ExpectQuery("SELECT (.+) FROM prompts WHERE prompt_key = \\$1").
		WithArgs("prompt_003").
		WillReturnRows(rows)

	prompt, err := repo.GetByKey(context.Background(), "prompt_003")
	require.NoError(t, err)
	assert.Equal(t, 3, prompt.ID)
	assert.Equal(t, "Insights v3", prompt.Name)
	assert.Nil(t, prompt.Description)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPromptRepository_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM prompts WHERE id = \\$1").
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetByID(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPromptRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	now := time.Now()
	rows := mock.NewRows([]string{"id", "prompt_key", "name", "description", "created_at"}).
		AddRow(1, "prompt_001", "First", (*string)(nil), now).
		AddRow(2, "prompt_002", "Second", (*string)(nil), now)
	mock.ExpectQuery("SELECT (.+) FROM prompts ORDER BY id").WillReturnRows(rows)

	prompts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, prompts, 2)
	assert.Equal(t, "prompt_002", prompts[1].Key)

	require.NoError(t, mock.ExpectationsWereMet())
}
