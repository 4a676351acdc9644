package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := ValidationError("customer_id", "customer_id must be a valid UUID")

	assert.True(t, stderrors.Is(err, ErrInvalidInput))
	assert.Equal(t, "VALIDATION_ERROR", err.Code)
	assert.Equal(t, "customer_id", err.Details["field"])
	assert.False(t, err.Retryable)
}

func TestUpstreamError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := UpstreamError("marketplace", cause)

	assert.True(t, stderrors.Is(err, ErrServiceUnavailable))
	assert.True(t, err.Retryable)
	assert.Contains(t, err.Error(), "marketplace")
}

func TestDomainErrorUnwrap(t *testing.T) {
	err := NewDomainError(ErrInternal, "SCORING_FAILED", "scoring failed")

	assert.Equal(t, "scoring failed", err.Error())
	assert.Equal(t, ErrInternal, stderrors.Unwrap(err))
	assert.True(t, err.WithRetryable(true).Retryable)
}
