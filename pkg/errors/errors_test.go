package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("loading module: %w", Clone(ErrNotFound, "module not found"))

	got := FromError(wrapped)

	require.NotNil(t, got)
	assert.Equal(t, "NOT_FOUND", got.Code)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "module not found", got.Message)
}

func TestFromErrorMapsUnknownToInternal(t *testing.T) {
	cause := errors.New("disk full")

	got := FromError(cause)

	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.ErrorIs(t, got, cause)
	assert.Nil(t, FromError(nil))
}

func TestCloneDoesNotMutateSource(t *testing.T) {
	clone := Clone(ErrValidation, "title is required")

	assert.Equal(t, "title is required", clone.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)
	assert.Equal(t, ErrValidation.Code, clone.Code)

	same := Clone(ErrConflict, "")
	assert.Equal(t, ErrConflict.Message, same.Message)
}

func TestIsMatchesCode(t *testing.T) {
	err := fmt.Errorf("ctx: %w", Wrap(errors.New("boom"), ErrPreconditionFailed.Code, ErrPreconditionFailed.Status, "confirm first"))

	assert.True(t, Is(err, "PRECONDITION_FAILED"))
	assert.False(t, Is(err, "NOT_FOUND"))
	assert.False(t, Is(errors.New("plain"), "NOT_FOUND"))
	assert.Equal(t, "confirm first: boom", errors.Unwrap(err).Error())
}

func TestDefaultsCarryDocumentedStatus(t *testing.T) {
	cases := map[*Error]struct {
		code   string
		status int
	}{
		ErrInvalidCredentials: {CodeInvalidCredentials, http.StatusUnauthorized},
		ErrUnauthorized:       {CodeUnauthorized, http.StatusUnauthorized},
		ErrForbidden:          {CodeForbidden, http.StatusForbidden},
		ErrValidation:         {CodeValidation, http.StatusBadRequest},
		ErrNotFound:           {CodeNotFound, http.StatusNotFound},
		ErrConflict:           {CodeConflict, http.StatusConflict},
		ErrPreconditionFailed: {CodePreconditionFailed, http.StatusPreconditionFailed},
		ErrUnsupportedMedia:   {CodeUnsupportedMedia, http.StatusUnsupportedMediaType},
		ErrInternal:           {CodeInternal, http.StatusInternalServerError},
	}
	for err, want := range cases {
		assert.Equal(t, want.code, err.Code)
		assert.Equal(t, want.status, err.Status, err.Code)
	}
}

func TestErrorStringWithoutCause(t *testing.T) {
	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
	assert.Equal(t, "conflict", ErrConflict.Error())
	assert.Nil(t, Clone(nil, "ignored"))
}
