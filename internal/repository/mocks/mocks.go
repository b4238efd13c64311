// Package mocks provides testify mocks of the repository and storage interfaces
// for service and command tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Taichi-iskw/transqa/internal/model"
)

func translations(v any) []*model.Translation {
	if v == nil {
		return nil
	}
	return v.([]*model.Translation)
}

func scores(v any) []*model.ManualScore {
	if v == nil {
		return nil
	}
	return v.([]*model.ManualScore)
}

// PromptRepository mocks prompt.Repository
type PromptRepository struct {
	mock.Mock
}

func (m *PromptRepository) Create(ctx context.Context, prompt *model.Prompt) error {
	args := m.Called(ctx, prompt)
	return args.Error(0)
}

func (m *PromptRepository) GetByID(ctx context.Context, id int) (*model.Prompt, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Prompt)
	return p, args.Error(1)
}

func (m *PromptRepository) GetByKey(ctx context.Context, key string) (*model.Prompt, error) {
	args := m.Called(ctx, key)
	p, _ := args.Get(0).(*model.Prompt)
	return p, args.Error(1)
}

func (m *PromptRepository) List(ctx context.Context) ([]*model.Prompt, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]*model.Prompt)
	return p, args.Error(1)
}

// ReviewerRepository mocks reviewer.Repository
type ReviewerRepository struct {
	mock.Mock
}

func (m *ReviewerRepository) Create(ctx context.Context, reviewer *model.Reviewer) error {
	args := m.Called(ctx, reviewer)
	return args.Error(0)
}

func (m *ReviewerRepository) GetByID(ctx context.Context, id int) (*model.Reviewer, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*model.Reviewer)
	return r, args.Error(1)
}

func (m *ReviewerRepository) GetByUsername(ctx context.Context, username string) (*model.Reviewer, error) {
	args := m.Called(ctx, username)
	r, _ := args.Get(0).(*model.Reviewer)
	return r, args.Error(1)
}

func (m *ReviewerRepository) List(ctx context.Context) ([]*model.Reviewer, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).([]*model.Reviewer)
	return r, args.Error(1)
}

func (m *ReviewerRepository) UsernamesByID(ctx context.Context) (map[int]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).(map[int]string)
	return names, args.Error(1)
}

// TranslationRepository mocks translation.Repository
type TranslationRepository struct {
	mock.Mock
}

func (m *TranslationRepository) Create(ctx context.Context, translation *model.Translation) error {
	args := m.Called(ctx, translation)
	return args.Error(0)
}

func (m *TranslationRepository) CreateBatch(ctx context.Context, batch []*model.Translation) (int64, error) {
	args := m.Called(ctx, batch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TranslationRepository) GetByID(ctx context.Context, id int) (*model.Translation, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*model.Translation)
	return t, args.Error(1)
}

func (m *TranslationRepository) List(ctx context.Context, filter model.TranslationFilter, limit, offset int) ([]*model.Translation, error) {
	args := m.Called(ctx, filter, limit, offset)
	return translations(args.Get(0)), args.Error(1)
}

func (m *TranslationRepository) ListByGroup(ctx context.Context, executionID string, promptID int) ([]*model.Translation, error) {
	args := m.Called(ctx, executionID, promptID)
	return translations(args.Get(0)), args.Error(1)
}

func (m *TranslationRepository) ListAll(ctx context.Context) ([]*model.Translation, error) {
	args := m.Called(ctx)
	return translations(args.Get(0)), args.Error(1)
}

func (m *TranslationRepository) CountByExecution(ctx context.Context, executionID string) (int, error) {
	args := m.Called(ctx, executionID)
	return args.Int(0), args.Error(1)
}

func (m *TranslationRepository) ListExecutions(ctx context.Context) ([]*model.ExecutionSummary, error) {
	args := m.Called(ctx)
	e, _ := args.Get(0).([]*model.ExecutionSummary)
	return e, args.Error(1)
}

// ScoreRepository mocks score.Repository
type ScoreRepository struct {
	mock.Mock
}

func (m *ScoreRepository) Create(ctx context.Context, score *model.ManualScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *ScoreRepository) GetByID(ctx context.Context, id int) (*model.ManualScore, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*model.ManualScore)
	return s, args.Error(1)
}

func (m *ScoreRepository) GetByTranslationAndReviewer(ctx context.Context, translationID, reviewerID int) (*model.ManualScore, error) {
	args := m.Called(ctx, translationID, reviewerID)
	s, _ := args.Get(0).(*model.ManualScore)
	return s, args.Error(1)
}

func (m *ScoreRepository) ListByTranslationIDs(ctx context.Context, translationIDs []int) ([]*model.ManualScore, error) {
	args := m.Called(ctx, translationIDs)
	return scores(args.Get(0)), args.Error(1)
}

func (m *ScoreRepository) ListByReviewer(ctx context.Context, reviewerID int, translationIDs []int) ([]*model.ManualScore, error) {
	args := m.Called(ctx, reviewerID, translationIDs)
	return scores(args.Get(0)), args.Error(1)
}

func (m *ScoreRepository) ListAll(ctx context.Context) ([]*model.ManualScore, error) {
	args := m.Called(ctx)
	return scores(args.Get(0)), args.Error(1)
}

func (m *ScoreRepository) Update(ctx context.Context, score *model.ManualScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *ScoreRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ObjectStore mocks storage.ObjectStore. GetJSON may be given a
// func(ctx, key, v) error as its return value to decode documents into v.
type ObjectStore struct {
	mock.Mock
}

func (m *ObjectStore) ListObjects(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	keys, _ := args.Get(0).([]string)
	return keys, args.Error(1)
}

func (m *ObjectStore) GetJSON(ctx context.Context, key string, v any) error {
	args := m.Called(ctx, key, v)
	if fn, ok := args.Get(0).(func(context.Context, string, any) error); ok {
		return fn(ctx, key, v)
	}
	return args.Error(0)
}

func (m *ObjectStore) PutJSON(ctx context.Context, key string, v any) error {
	args := m.Called(ctx, key, v)
	return args.Error(0)
}

// MaintenanceRepository mocks maintenance.Repository
type MaintenanceRepository struct {
	mock.Mock
}

func (m *MaintenanceRepository) Clean(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	tables, _ := args.Get(0).([]string)
	return tables, args.Error(1)
}
