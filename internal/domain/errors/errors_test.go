package errors

import (
	"testing"

	"bloodbank/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	reason := errors.New("donor moved away")
	err := errors.Wrap(ErrPreconditionFailed.WithCause(reason), "confirm match")

	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assert.ErrorIs(t, err, reason)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "donor moved away")
}

func TestBaseError_WithDetailsKeepsKind(t *testing.T) {
	err := ErrNotFound.WithDetails("match 42")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "match 42", err.Details())
	assert.Equal(t, 404, err.HTTPCode())
}

func TestStoreError_IsIOFailure(t *testing.T) {
	driverErr := errors.New("connection reset")
	err := errors.Wrap(NewStoreError(driverErr, "failed to update donor"), "confirm match")

	assert.ErrorIs(t, err, ErrIOFailure)
	assert.ErrorIs(t, err, driverErr)
	assert.NotErrorIs(t, err, ErrPreconditionFailed)

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "IO_FAILURE", appErr.ErrorCode())
	assert.Equal(t, 503, appErr.HTTPCode())
}
