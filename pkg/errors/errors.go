package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeLoad indicates the model bundle could not be read or decoded
	ErrorTypeLoad ErrorType = "LOAD"

	// ErrorTypeSchema indicates required feature columns are absent from the input
	ErrorTypeSchema ErrorType = "SCHEMA"

	// ErrorTypeParse indicates the input file is not a valid spreadsheet
	ErrorTypeParse ErrorType = "PARSE"

	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "INTERNAL"

	// ErrorTypeExternal indicates an error from an external service
	ErrorTypeExternal ErrorType = "EXTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error

	// MissingColumns is populated for SCHEMA errors only and lists the
	// exact feature columns absent from the input.
	MissingColumns []string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new model-bundle load error
func NewLoadError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeLoad,
		Message: message,
		Err:     err,
	}
}

// NewSchemaError creates a new schema error naming the missing columns
func NewSchemaError(missing []string) *AppError {
	return &AppError{
		Type:           ErrorTypeSchema,
		Message:        fmt.Sprintf("input is missing required feature columns: %s", strings.Join(missing, ", ")),
		MissingColumns: missing,
	}
}

// NewParseError creates a new input parse error
func NewParseError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// NewExternalError creates a new external service error
func NewExternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeExternal,
		Message: message,
		Err:     err,
	}
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}
