package service

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"markdown-json-editor/internal/storage"
	"markdown-json-editor/internal/workspace"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrPayloadTooLarge is returned when text or a file exceeds the import size cap.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Unwrap lets callers match any validation failure with ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// validationFailure turns the result of an ozzo validation into a
// *ValidationError for the first failing field, in field name order.
func validationFailure(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return WrapError(ErrInvalidInput, err.Error())
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return &ValidationError{
		Field:   fields[0],
		Message: fieldErrs[fields[0]].Error(),
	}
}

// storeError maps storage failures onto service errors.
func storeError(err error, what string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return WrapError(ErrNotFound, what)
	}
	return WrapError(err, "failed to access "+what)
}

// workspaceError maps workspace failures onto service errors, reporting
// path problems against field.
func workspaceError(err error, field string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return WrapError(ErrNotFound, "file")
	case errors.Is(err, workspace.ErrOutsideWorkspace), errors.Is(err, workspace.ErrUnsupportedType):
		return &ValidationError{Field: field, Message: err.Error()}
	case errors.Is(err, workspace.ErrTooLarge):
		return fmt.Errorf("%w: %v", ErrPayloadTooLarge, err)
	default:
		return WrapError(err, "workspace access failed")
	}
}
