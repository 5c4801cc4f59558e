package schema

import "errors"

var (
	// ErrUnknownSchema is raised when a registry is asked for a name it does not hold.
	ErrUnknownSchema = errors.New("schema: unknown schema")

	// ErrInvalidDefault is raised when a declared default does not satisfy its own rule.
	ErrInvalidDefault = errors.New("schema: default value does not satisfy its rule")

	// ErrInvalidJSON is returned when raw JSON input cannot be decoded.
	ErrInvalidJSON = errors.New("schema: invalid JSON input")
)
