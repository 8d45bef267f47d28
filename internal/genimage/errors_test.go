package genimage

import (
	"errors"
	"testing"

	apperrors "design-service/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBackendError_JSONBody(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		sentinel error
	}{
		{
			"resource exhausted status",
			`googleapi: Error 429: {"error":{"code":429,"status":"RESOURCE_EXHAUSTED","message":"Quota exceeded"}}`,
			apperrors.ErrQuotaExhausted,
		},
		{
			"not found status",
			`googleapi: Error 404: {"error":{"code":404,"status":"NOT_FOUND","message":"model not found"}}`,
			apperrors.ErrNotFound,
		},
		{
			"code only",
			`{"error":{"code":429,"message":"too many requests"}}`,
			apperrors.ErrQuotaExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyBackendError(errors.New(tt.message))
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestClassifyBackendError_MessageSignatures(t *testing.T) {
	err := classifyBackendError(errors.New("rpc error: code = ResourceExhausted desc = quota exceeded for model"))
	assert.ErrorIs(t, err, apperrors.ErrQuotaExhausted)

	err = classifyBackendError(errors.New("model gemini-x not found for API version v1"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClassifyBackendError_GenericFallback(t *testing.T) {
	err := classifyBackendError(errors.New("connection reset by peer"))
	assert.ErrorIs(t, err, apperrors.ErrGeneration)
	assert.NotErrorIs(t, err, apperrors.ErrQuotaExhausted)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, msgGenericFailure, appErr.Message)
}

func TestClassifyBackendError_MalformedJSONFallsThrough(t *testing.T) {
	err := classifyBackendError(errors.New(`error: {"error": "quota`))
	assert.ErrorIs(t, err, apperrors.ErrQuotaExhausted)
}
