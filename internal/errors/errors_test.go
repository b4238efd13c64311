package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	plain := New(CodeNotFound, "translation not found")
	assert.Equal(t, "NOT_FOUND: translation not found", plain.Error())

	wrapped := Wrap(errors.New("boom"), CodeInternal, "failed to list scores")
	assert.Equal(t, "INTERNAL_ERROR: failed to list scores (caused by: boom)", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, CodeExternal, "object store unavailable")

	assert.ErrorIs(t, err, cause)
}

func TestCodeOf(t *testing.T) {
	err := fmt.Errorf("create score: %w", New(CodeConflict, "score already exists"))

	assert.Equal(t, CodeConflict, CodeOf(err))
	assert.True(t, HasCode(err, CodeConflict))
	assert.False(t, HasCode(err, CodeNotFound))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.False(t, HasCode(nil, CodeConflict))
}
