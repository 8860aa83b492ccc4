// Package errors defines the application error taxonomy. Every failure a
// caller can recover from is a sentinel AppError carrying an HTTP status,
// a stable business code, and a user-displayable message.
package errors

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"找不到該個人檔案",
		"",
	)

	ErrProfileAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_ALREADY_EXISTS",
		"此帳號已建立個人檔案",
		"",
	)

	// Username-related errors
	ErrUsernameTaken = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"此使用者名稱已被使用",
		"",
	)

	ErrUsernameReserved = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_RESERVED",
		"此使用者名稱為系統保留字",
		"",
	)

	ErrUsernameExhausted = NewBaseError(
		http.StatusInternalServerError,
		"USERNAME_EXHAUSTED",
		"無法產生預設使用者名稱",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"請先登入",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"無效或已過期的工作階段",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	ErrNotPublished = NewBaseError(
		http.StatusBadRequest,
		"NOT_PUBLISHED",
		"個人檔案尚未發布",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// ValidationFailedError carries the complete checklist of violated publish
// rules so the caller can display every missing field at once, not just
// the first one.
type ValidationFailedError struct {
	reasons []string
}

// NewValidationFailedError creates a validation error from the collected reasons.
func NewValidationFailedError(reasons []string) *ValidationFailedError {
	return &ValidationFailedError{reasons: reasons}
}

// Error implements the error interface
func (e *ValidationFailedError) Error() string {
	return strings.Join(e.reasons, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationFailedError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationFailedError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationFailedError) Message() string {
	return "輸入資料驗證失敗"
}

// Details returns detailed error information
func (e *ValidationFailedError) Details() string {
	return e.Error()
}

// Reasons returns the individual violated rules for structured responses.
func (e *ValidationFailedError) Reasons() []string {
	return e.reasons
}

// FormatViolationError adapts a username format violation into an AppError
// so the policy's typed reason surfaces as a structured 400.
type FormatViolationError struct {
	code    string
	message string
}

// NewFormatViolationError creates an AppError for a username format violation.
func NewFormatViolationError(code, message string) *FormatViolationError {
	return &FormatViolationError{code: code, message: message}
}

// Error implements the error interface
func (e *FormatViolationError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *FormatViolationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *FormatViolationError) ErrorCode() string {
	return "USERNAME_" + e.code
}

// Message returns the user-friendly error message
func (e *FormatViolationError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *FormatViolationError) Details() string {
	return ""
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
