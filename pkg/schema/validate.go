package schema

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Option configures a validation call.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithNow fixes the instant that time-dependent rules compare against.
func WithNow(now time.Time) Option {
	return func(o *options) {
		o.clock = func() time.Time { return now }
	}
}

// WithClock sets the source of the validation instant. Nil is ignored.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// Validate runs s over raw: coercion, structural checks, then refinements.
// On success it returns the normalized value with defaults applied and unknown
// keys removed. On failure the error is a validator.ValidationErrors holding
// every reachable failure in order; expected failures never panic.
//
// The clock is read once per call, so all time-dependent rules in one call
// agree on the current instant.
func Validate(s Schema, raw any, opts ...Option) (any, error) {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	st := newState(o.clock())
	v, _ := s.parse(st, "", raw, true)
	if !st.errs.IsEmpty() {
		return nil, st.errs
	}
	return v, nil
}

// ValidateJSON decodes data and validates the result. JSON numbers keep their
// literal form until a number schema converts them.
func ValidateJSON(s Schema, data []byte, opts ...Option) (any, error) {
	raw, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return Validate(s, raw, opts...)
}

// DecodeJSON decodes one JSON document into loosely typed values.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Join(ErrInvalidJSON, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrInvalidJSON)
	}
	return raw, nil
}
