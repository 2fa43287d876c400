// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Common application-specific errors.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError reports one or more registration input failures.
// Details preserves the order in which the rules were evaluated.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Details, "; "))
}

// NewValidationError wraps a list of rule failure messages.
func NewValidationError(details []string) *ValidationError {
	return &ValidationError{Details: details}
}

// ConflictError reports a uniqueness violation detected by the store.
// Field names the conflicting column ("username" or "email") when the
// violated constraint could be identified, and is empty otherwise.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return "duplicate entry"
	}
	return fmt.Sprintf("duplicate entry: %s already exists", e.Field)
}

// NewConflictError creates a ConflictError for the given field.
func NewConflictError(field string) *ConflictError {
	return &ConflictError{Field: field}
}

// IsError reports whether err matches the target sentinel, unwrapping as needed.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}

// AsValidationError extracts a *ValidationError from err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var valErr *ValidationError
	ok := errors.As(err, &valErr)
	return valErr, ok
}

// AsConflictError extracts a *ConflictError from err's chain.
func AsConflictError(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	ok := errors.As(err, &conflict)
	return conflict, ok
}
