package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
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

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Security (SEC) ----

// WebhookRejected reports a gateway rejection; the reason is surfaced verbatim.
func WebhookRejected(reason string, httpStatus int) *AppError {
	return New("SEC_001", reason, httpStatus)
}

func ErrInvalidToken() *AppError {
	return New("SEC_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("SEC_003", "Administrator role required", http.StatusForbidden)
}

// ---- Order state machine (ORD) ----

// ErrInvalidState reports an action requested against an incompatible status.
func ErrInvalidState(action string, current string) *AppError {
	return New("ORD_001", fmt.Sprintf("cannot %s: order status is %s", action, current), http.StatusConflict)
}

func ErrConversionState(action string, current string) *AppError {
	return New("ORD_002", fmt.Sprintf("cannot %s: conversion status is %s", action, current), http.StatusConflict)
}

func ErrAlertAlreadyResolved() *AppError {
	return New("ORD_003", "alert is already resolved", http.StatusConflict)
}

// ---- Invariants (INV) ----

// ErrNoPhysicalBacking is raised when a credit would mint gold without custody.
func ErrNoPhysicalBacking(reason string) *AppError {
	return New("INV_001", "settlement refused: "+reason, http.StatusUnprocessableEntity)
}

func ErrInsufficientCashCollateral() *AppError {
	return New("INV_002", "cash safety ledger balance would become negative", http.StatusUnprocessableEntity)
}

func ErrInsufficientGrams() *AppError {
	return New("INV_003", "insufficient gold balance in wallet", http.StatusUnprocessableEntity)
}

func ErrGramsMismatch() *AppError {
	return New("INV_004", "total grams must equal bar count times bar size", http.StatusBadRequest)
}

// ---- External systems (EXT) ----

func ErrCustodianUnavailable(err error) *AppError {
	return Wrap("EXT_001", "custodian submission failed", http.StatusBadGateway, err)
}

func ErrPriceUnavailable(err error) *AppError {
	return Wrap("EXT_002", "gold price unavailable", http.StatusServiceUnavailable, err)
}

// ---- Data integrity (DAT) ----

// ErrInferenceRejected reports an event for an unknown order that cannot be
// reconstructed from its payload.
func ErrInferenceRejected(detail string) *AppError {
	return New("DAT_001", "cannot infer order from event: "+detail, http.StatusUnprocessableEntity)
}

func ErrNotFound(entity string) *AppError {
	return New("DAT_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockNotObtained(err error) *AppError {
	return Wrap("SYS_002", "another instance holds the lock", http.StatusConflict, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
