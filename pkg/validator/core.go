package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Code classifies a validation failure.
type Code string

const (
	// CodeTypeMismatch means the raw value has the wrong dynamic type and could not be coerced.
	CodeTypeMismatch Code = "type_mismatch"
	// CodeConstraintViolation means the value has the right type but fails a bound or format check.
	CodeConstraintViolation Code = "constraint_violation"
	// CodeRefinementFailure means a whole-value predicate failed after structural validation passed.
	CodeRefinementFailure Code = "refinement_failure"
	// CodeMissingRequired means a required field without a default is absent.
	CodeMissingRequired Code = "missing_required"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Code              Code
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Unwrap maps the error code to its sentinel so errors.Is works on single errors.
func (e ValidationError) Unwrap() error {
	switch e.Code {
	case CodeTypeMismatch:
		return ErrTypeMismatch
	case CodeRefinementFailure:
		return ErrRefinementFailure
	case CodeMissingRequired:
		return ErrFieldRequired
	default:
		return ErrConstraintViolation
	}
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether any contained error matches target.
func (ve ValidationErrors) Is(target error) bool {
	if target == ErrValidationFailed {
		return true
	}
	for _, err := range ve {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// HasCode reports whether any error carries the given code.
func (ve ValidationErrors) HasCode(code Code) bool {
	for _, err := range ve {
		if err.Code == code {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errors []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errors = append(errors, err)
		}
	}
	return errors
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Codes returns the code of every error in order.
func (ve ValidationErrors) Codes() []Code {
	codes := make([]Code, 0, len(ve))
	for _, err := range ve {
		codes = append(codes, err.Code)
	}
	return codes
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of the rule reporting msg instead of the default message.
// An empty msg keeps the default.
func (r Rule) WithMessage(msg string) Rule {
	if msg != "" {
		r.Error.Message = msg
	}
	return r
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	errs := Collect(rules...)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Collect runs every rule and returns the failures in rule order.
// Unlike Apply it returns the bare slice, which is convenient when merging
// errors from nested values.
func Collect(rules ...Rule) ValidationErrors {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errors = append(errors, rule.Error)
		}
	}

	return errors
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// constraint builds the common shape of a constraint violation.
func constraint(field, message, key string, values map[string]any) ValidationError {
	if values == nil {
		values = map[string]any{}
	}
	values["field"] = field
	return ValidationError{
		Field:             field,
		Code:              CodeConstraintViolation,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

// TypeMismatch builds the error reported when a value has the wrong type.
func TypeMismatch(field, expected, received string) ValidationError {
	return ValidationError{
		Field:          field,
		Code:           CodeTypeMismatch,
		Message:        fmt.Sprintf("Expected %s, received %s", expected, received),
		TranslationKey: "validation.type_mismatch",
		TranslationValues: map[string]any{
			"field":    field,
			"expected": expected,
			"received": received,
		},
	}
}

// MissingRequired builds the error reported for an absent required field.
func MissingRequired(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Code:           CodeMissingRequired,
		Message:        "Required",
		TranslationKey: "validation.required",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

// RefinementFailure builds the error reported by a failed cross-field predicate.
func RefinementFailure(field, message string) ValidationError {
	return ValidationError{
		Field:          field,
		Code:           CodeRefinementFailure,
		Message:        message,
		TranslationKey: "validation.refinement",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}
