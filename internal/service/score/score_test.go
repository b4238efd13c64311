package score

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Taichi-iskw/transqa/internal/errors"
	"github.com/Taichi-iskw/transqa/internal/logging"
	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/Taichi-iskw/transqa/internal/repository/mocks"
)

var (
	alice = &model.Reviewer{ID: 1, Username: "alice", IsActive: true}
	bob   = &model.Reviewer{ID: 2, Username: "bob", IsActive: true}
)

func newTestService() (Service, *mocks.ScoreRepository, *mocks.TranslationRepository, *mocks.ReviewerRepository) {
	scores := &mocks.ScoreRepository{}
	translations := &mocks.TranslationRepository{}
	reviewers := &mocks.ReviewerRepository{}
	return NewService(scores, translations, reviewers, logging.Discard()), scores, translations, reviewers
}

func notFound(msg string) error {
	return apperrors.New(apperrors.CodeNotFound, msg)
}

func TestScoreService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new score", func(t *testing.T) {
		svc, scores, translations, reviewers := newTestService()

		reviewers.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
		translations.On("GetByID", mock.Anything, 10).Return(&model.Translation{ID: 10}, nil)
		scores.On("GetByTranslationAndReviewer", mock.Anything, 10, 1).Return(nil, notFound("manual score not found"))
		scores.On("Create", mock.Anything, mock.MatchedBy(func(s *model.ManualScore) bool {
			return s.TranslationID == 10 && s.ReviewerID == 1 && *s.Overall == 0.8 && s.Fidelity == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.ManualScore).ID = 5
		}).Return(nil)

		score, err := svc.Create(ctx, "alice", CreateInput{
			TranslationID: 10,
			Metrics:       model.Metrics{Overall: model.Float(0.8)},
		})
		require.NoError(t, err)
		assert.Equal(t, 5, score.ID)

		scores.AssertExpectations(t)
		translations.AssertExpectations(t)
		reviewers.AssertExpectations(t)
	})

	t.Run("duplicate score is a conflict", func(t *testing.T) {
		svc, scores, translations, reviewers := newTestService()

		reviewers.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
		translations.On("GetByID", mock.Anything, 10).Return(&model.Translation{ID: 10}, nil)
		scores.On("GetByTranslationAndReviewer", mock.Anything, 10, 1).Return(&model.ManualScore{ID: 3}, nil)

		_, err := svc.Create(ctx, "alice", CreateInput{TranslationID: 10, Metrics: model.Metrics{Overall: model.Float(0.5)}})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
		scores.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown translation", func(t *testing.T) {
		svc, _, translations, reviewers := newTestService()

		reviewers.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
		translations.On("GetByID", mock.Anything, 99).Return(nil, notFound("translation not found"))

		_, err := svc.Create(ctx, "alice", CreateInput{TranslationID: 99})
		assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	})

	t.Run("inactive reviewer", func(t *testing.T) {
		svc, _, _, reviewers := newTestService()

		reviewers.On("GetByUsername", mock.Anything, "carol").Return(&model.Reviewer{ID: 3, Username: "carol"}, nil)

		_, err := svc.Create(ctx, "carol", CreateInput{TranslationID: 1})
		assert.True(t, apperrors.HasCode(err, apperrors.CodePermissionDenied))
	})

	t.Run("invalid input", func(t *testing.T) {
		long := strings.Repeat("x", 2001)
		tests := []struct {
			name  string
			input CreateInput
		}{
			{"missing translation", CreateInput{Metrics: model.Metrics{Overall: model.Float(0.5)}}},
			{"metric above one", CreateInput{TranslationID: 1, Metrics: model.Metrics{Fidelity: model.Float(1.5)}}},
			{"negative metric", CreateInput{TranslationID: 1, Metrics: model.Metrics{Coherence: model.Float(-0.1)}}},
			{"notes too long", CreateInput{TranslationID: 1, Notes: &long}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, _, _, reviewers := newTestService()

				_, err := svc.Create(ctx, "alice", tt.input)
				assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidArg))
				reviewers.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("missing reviewer name", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.Create(ctx, "", CreateInput{TranslationID: 1})
		assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidArg))
	})
}

func TestScoreService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		svc, scores, _, reviewers := newTestService()

		reviewers.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
		scores.On("GetByID", mock.Anything, 7).Return(&model.ManualScore{
			ID: 7, TranslationID: 10, ReviewerID: 1,
			Metrics: model.Metrics{Coherence: model.Float(0.4), Overall: model.Float(0.5)},
		}, nil)
		scores.On("Update", mock.Anything, mock.AnythingOfType("*model.ManualScore")).Return(nil)

		updated, err := svc.Update(ctx, "alice", 7, UpdateInput{Overall: model.Float(0.9)})
		require.NoError(t, err)
		assert.Equal(t, 0.4, *updated.Coherence)
		assert.Equal(t, 0.9, *updated.Overall)
		assert.Nil(t, updated.Fidelity)

		scores.AssertExpectations(t)
	})

	t.Run("another reviewer's score", func(t *testing.T) {
		svc, scores, _, reviewers := newTestService()

		reviewers.On("GetByUsername", mock.Anything, "bob").Return(bob, nil)
		scores.On("GetByID", mock.Anything, 7).Return(&model.ManualScore{ID: 7, ReviewerID: 1}, nil)

		_, err := svc.Update(ctx, "bob", 7, UpdateInput{Overall: model.Float(0.1)})
		assert.True(t, apperrors.HasCode(err, apperrors.CodePermissionDenied))
		scores.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("out of range value", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.Update(ctx, "alice", 7, UpdateInput{Naturalness: model.Float(2)})
		assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidArg))
	})
}

func TestScoreService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		svc, scores, _, reviewers := newTestService()

		reviewers.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
		scores.On("GetByID", mock.Anything, 7).Return(&model.ManualScore{ID: 7, ReviewerID: 1}, nil)
		scores.On("Delete", mock.Anything, 7).Return(nil)

		require.NoError(t, svc.Delete(ctx, "alice", 7))
		scores.AssertExpectations(t)
	})

	t.Run("non owner is denied", func(t *testing.T) {
		svc, scores, _, reviewers := newTestService()

		reviewers.On("GetByUsername", mock.Anything, "bob").Return(bob, nil)
		scores.On("GetByID", mock.Anything, 7).Return(&model.ManualScore{ID: 7, ReviewerID: 1}, nil)

		err := svc.Delete(ctx, "bob", 7)
		assert.True(t, apperrors.HasCode(err, apperrors.CodePermissionDenied))
		scores.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing score", func(t *testing.T) {
		svc, scores, _, reviewers := newTestService()

		reviewers.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
		scores.On("GetByID", mock.Anything, 8).Return(nil, notFound("manual score not found"))

		err := svc.Delete(ctx, "alice", 8)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	})
}

func TestScoreService_Get(t *testing.T) {
	ctx := context.Background()
	svc, scores, _, reviewers := newTestService()

	scores.On("GetByID", mock.Anything, 7).Return(&model.ManualScore{ID: 7}, nil)
	reviewers.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
	scores.On("GetByTranslationAndReviewer", mock.Anything, 10, 1).Return(&model.ManualScore{ID: 7, TranslationID: 10}, nil)

	got, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got.ID)

	own, err := svc.GetForTranslation(ctx, "alice", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, own.TranslationID)

	_, err = svc.Get(ctx, 0)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidArg))
}
