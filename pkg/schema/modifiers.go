package schema

import (
	"fmt"
	"time"
)

// OptionalSchema skips validation when its key is missing. Any present value,
// null included, must satisfy the wrapped schema.
type OptionalSchema struct {
	inner Schema
}

// Optional marks s as not required.
func Optional(s Schema) *OptionalSchema {
	if s == nil {
		panic("schema: optional of a nil schema")
	}
	return &OptionalSchema{inner: s}
}

func (s *OptionalSchema) Kind() Kind { return KindOptional }

// Unwrap returns the wrapped schema.
func (s *OptionalSchema) Unwrap() Schema { return s.inner }

func (s *OptionalSchema) parse(st *state, p string, raw any, present bool) (any, bool) {
	if !present {
		return nil, false
	}
	return s.inner.parse(st, p, raw, true)
}

// DefaultSchema substitutes a default for a missing key and then validates
// it with the wrapped schema like any supplied value.
type DefaultSchema struct {
	inner Schema
	value any
}

// Default declares value as the default of s. The default is validated once,
// here; a default that fails its own rule is a programming error and panics.
func Default(s Schema, value any) *DefaultSchema {
	if s == nil {
		panic("schema: default of a nil schema")
	}
	st := newState(time.Now())
	s.parse(st, "", value, true)
	if !st.errs.IsEmpty() {
		panic(fmt.Errorf("%w: %v: %v", ErrInvalidDefault, value, st.errs))
	}
	return &DefaultSchema{inner: s, value: value}
}

func (s *DefaultSchema) Kind() Kind { return KindDefault }

// Unwrap returns the wrapped schema.
func (s *DefaultSchema) Unwrap() Schema { return s.inner }

// Value returns the declared default.
func (s *DefaultSchema) Value() any { return s.value }

func (s *DefaultSchema) parse(st *state, p string, raw any, present bool) (any, bool) {
	if !present {
		raw = s.value
	}
	return s.inner.parse(st, p, raw, true)
}
