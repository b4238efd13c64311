package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Taichi-iskw/transqa/internal/errors"
	"github.com/Taichi-iskw/transqa/internal/logging"
	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/repository/mocks"
)

type fixture struct {
	prompts      *mocks.PromptRepository
	reviewers    *mocks.ReviewerRepository
	translations *mocks.TranslationRepository
	scores       *mocks.ScoreRepository
	service      Service
}

func newFixture() *fixture {
	f := &fixture{
		prompts:      &mocks.PromptRepository{},
		reviewers:    &mocks.ReviewerRepository{},
		translations: &mocks.TranslationRepository{},
		scores:       &mocks.ScoreRepository{},
	}
	f.service = NewService(f.prompts, f.reviewers, f.translations, f.scores, logging.Discard())
	return f
}

func TestCatalogService_CreatePrompt(t *testing.T) {
	ctx := context.Background()

	t.Run("valid prompt", func(t *testing.T) {
		f := newFixture()
		f.prompts.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Prompt) bool {
			return p.Key == "prompt_001" && p.Name == "Insights"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Prompt).ID = 1
		}).Return(nil)

		p, err := f.service.CreatePrompt(ctx, PromptInput{Key: "prompt_001", Name: "Insights"})
		require.NoError(t, err)
		assert.Equal(t, 1, p.ID)
		f.prompts.AssertExpectations(t)
	})

	t.Run("duplicate key surfaces conflict", func(t *testing.T) {
		f := newFixture()
		f.prompts.On("Create", mock.Anything, mock.Anything).
			Return(apperrors.New(apperrors.CodeConflict, "prompt with this ID already exists"))

		_, err := f.service.CreatePrompt(ctx, PromptInput{Key: "prompt_001", Name: "Insights"})
		assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
	})

	t.Run("missing name", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.CreatePrompt(ctx, PromptInput{Key: "prompt_001"})
		assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidArg))
		f.prompts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_CreateReviewer(t *testing.T) {
	ctx := context.Background()

	t.Run("new reviewers are active", func(t *testing.T) {
		f := newFixture()
		f.reviewers.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Reviewer) bool {
			return r.IsActive && r.Username == "alice"
		})).Return(nil)

		r, err := f.service.CreateReviewer(ctx, ReviewerInput{Username: "alice", Email: "alice@example.com"})
		require.NoError(t, err)
		assert.True(t, r.IsActive)
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.CreateReviewer(ctx, ReviewerInput{Username: "alice", Email: "not-an-email"})
		assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidArg))
	})
}

func TestCatalogService_ListTranslations(t *testing.T) {
	ctx := context.Background()
	stored := []*model.Translation{{ID: 1, ExecutionID: "exec-1"}, {ID: 2, ExecutionID: "exec-1"}}
	filter := model.TranslationFilter{ExecutionID: "exec-1"}

	t.Run("attaches the reviewer's own scores", func(t *testing.T) {
		f := newFixture()
		f.translations.On("List", mock.Anything, filter, 50, 0).Return(stored, nil)
		f.reviewers.On("GetByUsername", mock.Anything, "alice").Return(&model.Reviewer{ID: 4, Username: "alice"}, nil)
		f.scores.On("ListByReviewer", mock.Anything, 4, []int{1, 2}).
			Return([]*model.ManualScore{{ID: 9, TranslationID: 2, ReviewerID: 4}}, nil)

		out, err := f.service.ListTranslations(ctx, "alice", filter, 50, 0)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Nil(t, out[0].ManualScore)
		require.NotNil(t, out[1].ManualScore)
		assert.Equal(t, 9, out[1].ManualScore.ID)
	})

	t.Run("anonymous listing skips score lookup", func(t *testing.T) {
		f := newFixture()
		f.translations.On("List", mock.Anything, filter, 50, 0).Return(stored, nil)

		out, err := f.service.ListTranslations(ctx, "", filter, 50, 0)
		require.NoError(t, err)
		assert.Len(t, out, 2)
		f.reviewers.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
	})

	t.Run("unknown reviewer sees no scores", func(t *testing.T) {
		f := newFixture()
		f.translations.On("List", mock.Anything, filter, 50, 0).Return(stored, nil)
		f.reviewers.On("GetByUsername", mock.Anything, "ghost").
			Return(nil, apperrors.New(apperrors.CodeNotFound, "reviewer not found"))

		out, err := f.service.ListTranslations(ctx, "ghost", filter, 50, 0)
		require.NoError(t, err)
		assert.Nil(t, out[0].ManualScore)
	})

	t.Run("limit out of range", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.ListTranslations(ctx, "", filter, 0, 0)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidArg))
	})
}

func TestCatalogService_GetTranslation(t *testing.T) {
	f := newFixture()
	f.translations.On("GetByID", mock.Anything, 3).Return(&model.Translation{ID: 3}, nil)
	f.reviewers.On("GetByUsername", mock.Anything, "alice").Return(&model.Reviewer{ID: 4}, nil)
	f.scores.On("ListByReviewer", mock.Anything, 4, []int{3}).Return([]*model.ManualScore{}, nil)

	out, err := f.service.GetTranslation(context.Background(), "alice", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, out.ID)
	assert.Nil(t, out.ManualScore)
}
