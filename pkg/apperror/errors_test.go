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
			appErr:   ErrInvalidAmount(),
			expected: "[VAL_004] Invalid amount",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
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
	appErr := ErrTransferFailed(inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, ErrInvalidAmount().Unwrap())
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		kind       Kind
		httpStatus int
	}{
		{"PasswordMismatch", ErrPasswordMismatch(), "VAL_001", KindValidation, 400},
		{"MissingFields", ErrMissingFields("username"), "VAL_002", KindValidation, 400},
		{"InvalidBankDetails", ErrInvalidBankDetails(), "VAL_003", KindValidation, 400},
		{"InvalidAmount", ErrInvalidAmount(), "VAL_004", KindValidation, 400},
		{"InvalidFeeRate", ErrInvalidFeeRate(), "VAL_005", KindValidation, 400},
		{"SubAccountConflict", ErrSubAccountConflict(), "VAL_006", KindValidation, 409},
		{"NotFound", ErrNotFound("merchant"), "AUTH_004", KindAuth, 404},
		{"InvalidCredentials", ErrInvalidCredentials(), "AUTH_001", KindAuth, 401},
		{"DuplicateUsername", ErrDuplicateUsername(), "AUTH_002", KindAuth, 409},
		{"NoSession", ErrNoSession(), "AUTH_003", KindAuth, 401},
		{"ProcessorRejected", ErrProcessorRejected(nil), "PROC_001", KindProcessor, 502},
		{"ChargeFailed", ErrChargeFailed(nil), "PROC_002", KindProcessor, 502},
		{"TransferFailed", ErrTransferFailed(nil), "PROC_003", KindProcessor, 502},
		{"ProcessorUnavailable", ErrProcessorUnavailable(), "PROC_004", KindProcessor, 503},
		{"PersistenceWarning", PersistenceWarning(nil), "STORE_001", KindPersistence, 200},
		{"Consistency", ErrConsistency(nil), "CONS_001", KindConsistency, 200},
		{"Internal", InternalError(nil), "SYS_001", KindSystem, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestIsWarning(t *testing.T) {
	assert.True(t, IsWarning(PersistenceWarning(errors.New("disk full"))))
	assert.True(t, IsWarning(fmt.Errorf("save: %w", ErrConsistency(nil))))
	assert.False(t, IsWarning(ErrInvalidCredentials()))
	assert.False(t, IsWarning(errors.New("plain")))
	assert.False(t, IsWarning(nil))
}

func TestCode(t *testing.T) {
	assert.Equal(t, "AUTH_002", Code(fmt.Errorf("register: %w", ErrDuplicateUsername())))
	assert.Equal(t, "", Code(errors.New("plain")))
}
