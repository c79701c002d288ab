package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   ErrInsufficientCashCollateral(),
			expected: "[INV_002] cash safety ledger balance would become negative",
		},
		{
			name:     "with wrapped error",
			appErr:   ErrCustodianUnavailable(fmt.Errorf("connection refused")),
			expected: "[EXT_001] custodian submission failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := InternalError(inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, ErrForbidden().Unwrap())
}

func TestErrorCatalogue(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"WebhookRejected", WebhookRejected("invalid_signature", http.StatusUnauthorized), "SEC_001", 401},
		{"InvalidToken", ErrInvalidToken(), "SEC_002", 401},
		{"Forbidden", ErrForbidden(), "SEC_003", 403},
		{"InvalidState", ErrInvalidState("approve order", "submitted"), "ORD_001", 409},
		{"ConversionState", ErrConversionState("approve", "completed"), "ORD_002", 409},
		{"NoPhysicalBacking", ErrNoPhysicalBacking("no bars"), "INV_001", 422},
		{"InsufficientGrams", ErrInsufficientGrams(), "INV_003", 422},
		{"InferenceRejected", ErrInferenceRejected("missing userId"), "DAT_001", 422},
		{"NotFound", ErrNotFound("order"), "DAT_002", 404},
		{"RateLimit", ErrRateLimitExceeded(), "RATE_001", 429},
		{"Validation", Validation("bad"), "VAL_001", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestInvalidState_IncludesCurrentStatus(t *testing.T) {
	err := ErrInvalidState("approve settlement", "processing")
	assert.Contains(t, err.Message, "processing")
	assert.Contains(t, err.Message, "approve settlement")
}
