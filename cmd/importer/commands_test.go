package importer

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Taichi-iskw/transqa/internal/errors"
	"github.com/Taichi-iskw/transqa/internal/service/importer"
)

// Mock import service
type mockImportService struct {
	ValidatePrefixFunc func(ctx context.Context, reviewer, prefix string) (*importer.Validation, error)
	LoadFunc           func(ctx context.Context, reviewer, prefix, description string, spec importer.PromptSpec) (*importer.LoadResult, error)
	UploadFunc         func(ctx context.Context, reviewer string, files fs.FS, prefix string) (*importer.UploadResult, error)
}

func (m *mockImportService) ValidatePrefix(ctx context.Context, reviewer, prefix string) (*importer.Validation, error) {
	if m.ValidatePrefixFunc != nil {
		return m.ValidatePrefixFunc(ctx, reviewer, prefix)
	}
	return &importer.Validation{}, nil
}

func (m *mockImportService) Load(ctx context.Context, reviewer, prefix, description string, spec importer.PromptSpec) (*importer.LoadResult, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, reviewer, prefix, description, spec)
	}
	return &importer.LoadResult{}, nil
}

func (m *mockImportService) Upload(ctx context.Context, reviewer string, files fs.FS, prefix string) (*importer.UploadResult, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, reviewer, files, prefix)
	}
	return &importer.UploadResult{}, nil
}

func execute(service importer.Service, args ...string) (string, error) {
	cmd := NewImportCommand(service)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestValidateCommand(t *testing.T) {
	mockService := &mockImportService{
		ValidatePrefixFunc: func(ctx context.Context, reviewer, prefix string) (*importer.Validation, error) {
			return &importer.Validation{
				Message:     "Missing required folders: es/",
				HasEnFolder: true,
				SampleFiles: []string{prefix + "/en/a.json"},
			}, nil
		},
	}

	output, err := execute(mockService, "validate", "llm-output/2025/10")
	require.NoError(t, err)
	assert.Contains(t, output, "Valid: false")
	assert.Contains(t, output, "Missing required folders: es/")
	assert.Contains(t, output, "llm-output/2025/10/en/a.json")

	output, err = execute(mockService, "validate", "llm-output/2025/10", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, output, `"has_en_folder": true`)
	assert.Contains(t, output, `"has_es_folder": false`)
}

func TestLoadCommand(t *testing.T) {
	t.Run("passes prompt spec and prints counts", func(t *testing.T) {
		var gotDescription, gotReviewer string
		var gotSpec importer.PromptSpec
		mockService := &mockImportService{
			LoadFunc: func(ctx context.Context, reviewer, prefix, description string, spec importer.PromptSpec) (*importer.LoadResult, error) {
				gotDescription, gotReviewer, gotSpec = description, reviewer, spec
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return &importer.LoadResult{ExecutionID: "6f1c", TranslationsLoaded: 12, PromptsCreated: 1, Skipped: 2}, nil
			},
		}

		output, err := execute(mockService, "load", "llm-output/2025/10", "--description", "October", "--prompt-key", "prompt_009", "--prompt-name", "Risk notes", "--reviewer", "admin")
		require.NoError(t, err)
		assert.Equal(t, "admin", gotReviewer)
		assert.Equal(t, "October", gotDescription)
		assert.Equal(t, "prompt_009", gotSpec.Key)
		assert.Equal(t, "Risk notes", gotSpec.Name)
		assert.Nil(t, gotSpec.Description)
		assert.Contains(t, output, "Execution ID: 6f1c")
		assert.Contains(t, output, "Translations loaded: 12")
		assert.Contains(t, output, "Pairs skipped: 2")
	})

	t.Run("default prompt", func(t *testing.T) {
		var gotSpec importer.PromptSpec
		mockService := &mockImportService{
			LoadFunc: func(ctx context.Context, reviewer, prefix, description string, spec importer.PromptSpec) (*importer.LoadResult, error) {
				gotSpec = spec
				return &importer.LoadResult{}, nil
			},
		}

		_, err := execute(mockService, "load", "batch")
		require.NoError(t, err)
		assert.Equal(t, "prompt_001", gotSpec.Key)
	})

	t.Run("already loaded", func(t *testing.T) {
		mockService := &mockImportService{
			LoadFunc: func(ctx context.Context, reviewer, prefix, description string, spec importer.PromptSpec) (*importer.LoadResult, error) {
				return nil, apperrors.New(apperrors.CodeConflict, "translations from this prefix already loaded")
			},
		}

		_, err := execute(mockService, "load", "batch")
		assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
	})
}

func TestLoadCommand_NonAdmin(t *testing.T) {
	mockService := &mockImportService{
		LoadFunc: func(ctx context.Context, reviewer, prefix, description string, spec importer.PromptSpec) (*importer.LoadResult, error) {
			return nil, apperrors.New(apperrors.CodePermissionDenied, "admin access required")
		},
	}

	_, err := execute(mockService, "load", "batch", "--reviewer", "alice")
	assert.True(t, apperrors.HasCode(err, apperrors.CodePermissionDenied))
}

func TestUploadCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en", "a.json"), []byte(`{"summary":"hi"}`), 0o644))

	t.Run("uploads directory contents", func(t *testing.T) {
		var gotPrefix, gotReviewer string
		mockService := &mockImportService{
			UploadFunc: func(ctx context.Context, reviewer string, files fs.FS, prefix string) (*importer.UploadResult, error) {
				gotPrefix, gotReviewer = prefix, reviewer
				body, err := fs.ReadFile(files, "en/a.json")
				require.NoError(t, err)
				assert.JSONEq(t, `{"summary":"hi"}`, string(body))
				return &importer.UploadResult{Prefix: prefix, Uploaded: 1, Keys: []string{prefix + "/en/a.json"}}, nil
			},
		}

		output, err := execute(mockService, "upload", dir, "batch/2025/10", "--reviewer", "admin")
		require.NoError(t, err)
		assert.Equal(t, "batch/2025/10", gotPrefix)
		assert.Equal(t, "admin", gotReviewer)
		assert.Contains(t, output, "Uploaded 1 objects to batch/2025/10")
		assert.Contains(t, output, "batch/2025/10/en/a.json")
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := execute(&mockImportService{}, "upload", filepath.Join(dir, "nope"), "batch")
		assert.Error(t, err)
	})
}
