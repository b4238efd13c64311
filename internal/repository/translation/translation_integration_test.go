//go:build integration

package translation

import (
	"context"
	"testing"
	"time"

	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/repository/common"
	"github.com/Taichi-iskw/transqa/internal/repository/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTranslationRepository_Integration tests Translation Repository with real PostgreSQL
func TestTranslationRepository_Integration(t *testing.T) {
	pool := common.SetupTestDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p1 := &model.Prompt{Key: "prompt_001", Name: "Insights v1"}
	p2 := &model.Prompt{Key: "prompt_002", Name: "Insights v2"}
	promptRepo := prompt.NewRepository(pool)
	require.NoError(t, promptRepo.Create(ctx, p1))
	require.NoError(t, promptRepo.Create(ctx, p2))

	repo := NewRepository(pool)
	description := "first run"

	newTranslation := func(executionID string, promptID int, overall *float64) *model.Translation {
		return &model.Translation{
			ExecutionID:          executionID,
			ExecutionDescription: &description,
			PromptID:             promptID,
			OriginalContent:      "Hello",
			TranslatedContent:    "Hola",
			SourceLanguage:       "en",
			TargetLanguage:       "es",
			Automated:            model.Metrics{Overall: overall},
		}
	}

	t.Run("CreateBatch with COPY FROM", func(t *testing.T) {
		count, err := repo.CreateBatch(ctx, []*model.Translation{
			newTranslation("exec-1", p1.ID, model.Float(0.5)),
			newTranslation("exec-1", p1.ID, nil),
			newTranslation("exec-1", p2.ID, model.Float(0.9)),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("Create single", func(t *testing.T) {
		tr := newTranslation("exec-2", p2.ID, model.Float(0.1))
		require.NoError(t, repo.Create(ctx, tr))

		got, err := repo.GetByID(ctx, tr.ID)
		require.NoError(t, err)
		assert.Equal(t, "exec-2", got.ExecutionID)
		assert.Equal(t, 0.1, *got.Automated.Overall)
	})

	t.Run("ListByGroup", func(t *testing.T) {
		group, err := repo.ListByGroup(ctx, "exec-1", p1.ID)
		require.NoError(t, err)
		require.Len(t, group, 2)
		assert.Nil(t, group[1].Automated.Overall)
	})

	t.Run("List with filter and pagination", func(t *testing.T) {
		page, err := repo.List(ctx, model.TranslationFilter{ExecutionID: "exec-1"}, 2, 1)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, p1.ID, page[0].PromptID)
		assert.Equal(t, p2.ID, page[1].PromptID)
	})

	t.Run("ListAll and CountByExecution", func(t *testing.T) {
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 4)

		count, err := repo.CountByExecution(ctx, "exec-1")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("ListExecutions newest first", func(t *testing.T) {
		executions, err := repo.ListExecutions(ctx)
		require.NoError(t, err)
		require.Len(t, executions, 2)
		assert.Equal(t, "exec-2", executions[0].ExecutionID)
		assert.Equal(t, 1, executions[0].Count)
		assert.Equal(t, 3, executions[1].Count)
		assert.Equal(t, "first run", *executions[1].Description)
	})
}
