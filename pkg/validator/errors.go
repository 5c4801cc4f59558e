package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is absent.
	ErrFieldRequired = errors.New("field is required")

	// ErrTypeMismatch is returned when a value has the wrong type and cannot be coerced.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrConstraintViolation is returned when a value fails a bound, length or format check.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrRefinementFailure is returned when a cross-field predicate fails.
	ErrRefinementFailure = errors.New("refinement failure")
)
