// internal/core/errors.go
package core

import "fmt"

// Error represents a structured error with code and optional cause.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is matching by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WrapError creates a new error with the same code but with a cause.
func WrapError(base *Error, cause error) *Error {
	return &Error{
		Code:    base.Code,
		Message: base.Message,
		Cause:   cause,
	}
}

// Predefined errors
var (
	// Validation errors
	ErrValidation    = &Error{Code: "VALIDATION_FAILED", Message: "form validation failed"}
	ErrQueryTooShort = &Error{Code: "QUERY_TOO_SHORT", Message: "search query must be at least 3 characters"}

	// Template store errors
	ErrTemplateNotFound = &Error{Code: "TEMPLATE_NOT_FOUND", Message: "template index out of range"}
	ErrEmptyName        = &Error{Code: "EMPTY_NAME", Message: "template name is required"}

	// Storage errors
	ErrStorageParse = &Error{Code: "STORAGE_PARSE", Message: "persisted data unreadable"}
	ErrStorageWrite = &Error{Code: "STORAGE_WRITE", Message: "persisting data failed"}
	ErrKeyNotFound  = &Error{Code: "KEY_NOT_FOUND", Message: "key not found"}

	// Remote errors
	ErrRemoteFailed = &Error{Code: "REMOTE_FAILED", Message: "remote request failed"}

	// Clipboard errors
	ErrClipboardFailed = &Error{Code: "CLIPBOARD_FAILED", Message: "clipboard unavailable"}

	// Config errors
	ErrConfigInvalid = &Error{Code: "CONFIG_INVALID", Message: "configuration invalid"}
	ErrConfigMissing = &Error{Code: "CONFIG_MISSING", Message: "required configuration missing"}
)
