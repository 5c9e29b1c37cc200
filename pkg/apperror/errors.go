package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind groups error codes by how callers should react to them.
type Kind string

const (
	KindValidation  Kind = "VALIDATION"  // bad user input, no state change
	KindAuth        Kind = "AUTH"        // credentials or session problems
	KindProcessor   Kind = "PROCESSOR"   // processor or backend failure, no funds moved
	KindPersistence Kind = "PERSISTENCE" // store write failed, in-memory state kept
	KindConsistency Kind = "CONSISTENCY" // directory and session diverged
	KindSystem      Kind = "SYSTEM"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	Kind       Kind   `json:"-"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Warning reports whether the error is non-fatal: the operation's state
// change was applied and the error only describes a degraded side effect.
func (e *AppError) Warning() bool {
	return e.Kind == KindPersistence || e.Kind == KindConsistency
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Kind:       KindSystem,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Kind:       KindSystem,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func newKind(kind Kind, code, message string, httpStatus int, err error) *AppError {
	return &AppError{Code: code, Message: message, Kind: kind, HTTPStatus: httpStatus, Err: err}
}

// Code returns the AppError code carried by err, or "" if err is not an AppError.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsWarning reports whether err is a non-fatal AppError.
func IsWarning(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Warning()
}

// ---- Validation (VAL) ----

func ErrPasswordMismatch() *AppError {
	return newKind(KindValidation, "VAL_001", "Passwords do not match", http.StatusBadRequest, nil)
}

func ErrMissingFields(fields ...string) *AppError {
	msg := "Required fields are missing"
	if len(fields) > 0 {
		msg = fmt.Sprintf("Required fields are missing: %v", fields)
	}
	return newKind(KindValidation, "VAL_002", msg, http.StatusBadRequest, nil)
}

func ErrInvalidBankDetails() *AppError {
	return newKind(KindValidation, "VAL_003", "Holder name, account number and routing code are required", http.StatusBadRequest, nil)
}

func ErrInvalidAmount() *AppError {
	return newKind(KindValidation, "VAL_004", "Invalid amount", http.StatusBadRequest, nil)
}

func ErrInvalidFeeRate() *AppError {
	return newKind(KindValidation, "VAL_005", "Fee rate must be between 0 and 10000 basis points", http.StatusBadRequest, nil)
}

func ErrSubAccountConflict() *AppError {
	return newKind(KindValidation, "VAL_006", "Merchant already has a different sub-account", http.StatusConflict, nil)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return newKind(KindAuth, "AUTH_001", "Invalid credentials", http.StatusUnauthorized, nil)
}

func ErrDuplicateUsername() *AppError {
	return newKind(KindAuth, "AUTH_002", "Username already exists", http.StatusConflict, nil)
}

func ErrNoSession() *AppError {
	return newKind(KindAuth, "AUTH_003", "No merchant is signed in", http.StatusUnauthorized, nil)
}

func ErrNotFound(entity string) *AppError {
	return newKind(KindAuth, "AUTH_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound, nil)
}

// ---- Processor (PROC) ----

func ErrProcessorRejected(err error) *AppError {
	return newKind(KindProcessor, "PROC_001", "Payment processor rejected the request", http.StatusBadGateway, err)
}

func ErrChargeFailed(err error) *AppError {
	return newKind(KindProcessor, "PROC_002", "Charge failed", http.StatusBadGateway, err)
}

func ErrTransferFailed(err error) *AppError {
	return newKind(KindProcessor, "PROC_003", "Transfer to payout account failed", http.StatusBadGateway, err)
}

func ErrProcessorUnavailable() *AppError {
	return newKind(KindProcessor, "PROC_004", "Payment processor is not available", http.StatusServiceUnavailable, nil)
}

// ---- Persistence (STORE) ----

// PersistenceWarning reports that a state change was applied in memory but
// could not be written to the store, so it may not survive a restart.
func PersistenceWarning(err error) *AppError {
	return newKind(KindPersistence, "STORE_001", "Changes were not saved and may be lost on restart", http.StatusOK, err)
}

// ---- Consistency (CONS) ----

func ErrConsistency(err error) *AppError {
	return newKind(KindConsistency, "CONS_001", "Session and directory records diverged", http.StatusOK, err)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a generic validation error with a custom message.
func Validation(message string) *AppError {
	return newKind(KindValidation, "VAL_000", message, http.StatusBadRequest, nil)
}
