package schema

import (
	"regexp"
	"slices"
	"time"

	"github.com/dmitrymomot/storefront/pkg/validator"
)

type (
	stringCheck func(field, value string) validator.Rule
	numberCheck func(field string, value float64) validator.Rule
	dateCheck   func(field string, value, now time.Time) validator.Rule
)

// appendCheck copies checks so builders never share a backing array.
func appendCheck[T any](checks []T, c T) []T {
	return append(slices.Clip(checks), c)
}

// StringSchema accepts strings only; no coercion is performed.
type StringSchema struct {
	checks []stringCheck
}

// String returns a schema accepting any string.
func String() *StringSchema {
	return &StringSchema{}
}

func (s *StringSchema) Kind() Kind { return KindPrimitive }

func (s *StringSchema) with(c stringCheck) *StringSchema {
	return &StringSchema{checks: appendCheck(s.checks, c)}
}

// Min requires at least n characters. An empty msg keeps the default message.
func (s *StringSchema) Min(n int, msg string) *StringSchema {
	return s.with(func(f, v string) validator.Rule {
		return validator.MinLen(f, v, n).WithMessage(msg)
	})
}

// Max allows at most n characters.
func (s *StringSchema) Max(n int, msg string) *StringSchema {
	return s.with(func(f, v string) validator.Rule {
		return validator.MaxLen(f, v, n).WithMessage(msg)
	})
}

// Regex requires a match of re.
func (s *StringSchema) Regex(re *regexp.Regexp, msg string) *StringSchema {
	return s.with(func(f, v string) validator.Rule {
		return validator.MatchRegex(f, v, re).WithMessage(msg)
	})
}

// Email requires an e-mail address shape.
func (s *StringSchema) Email(msg string) *StringSchema {
	return s.with(func(f, v string) validator.Rule {
		return validator.ValidEmail(f, v).WithMessage(msg)
	})
}

// ObjectID requires a 24-digit hexadecimal identifier.
func (s *StringSchema) ObjectID(msg string) *StringSchema {
	return s.with(func(f, v string) validator.Rule {
		return validator.ValidObjectID(f, v).WithMessage(msg)
	})
}

func (s *StringSchema) parse(st *state, p string, raw any, present bool) (any, bool) {
	if !requirePresent(st, p, present) {
		return nil, false
	}
	v, ok := raw.(string)
	if !ok {
		st.fail(validator.TypeMismatch(p, "string", typeName(raw)))
		return nil, false
	}
	rules := make([]validator.Rule, 0, len(s.checks))
	for _, c := range s.checks {
		rules = append(rules, c(p, v))
	}
	if errs := validator.Collect(rules...); !errs.IsEmpty() {
		st.fail(errs...)
		return nil, false
	}
	return v, true
}

// NumberSchema produces float64 values. A coercing schema also accepts
// numeric strings such as form input.
type NumberSchema struct {
	coerce bool
	checks []numberCheck
}

// Number returns a schema accepting numeric values only.
func Number() *NumberSchema {
	return &NumberSchema{}
}

// Coerce returns a number schema that converts numeric strings before checking.
func Coerce() *NumberSchema {
	return &NumberSchema{coerce: true}
}

func (s *NumberSchema) Kind() Kind { return KindPrimitive }

func (s *NumberSchema) with(c numberCheck) *NumberSchema {
	return &NumberSchema{coerce: s.coerce, checks: appendCheck(s.checks, c)}
}

// Int requires a whole number.
func (s *NumberSchema) Int(msg string) *NumberSchema {
	return s.with(func(f string, v float64) validator.Rule {
		return validator.Integer(f, v).WithMessage(msg)
	})
}

// Min requires v >= min.
func (s *NumberSchema) Min(min float64, msg string) *NumberSchema {
	return s.with(func(f string, v float64) validator.Rule {
		return validator.Min(f, v, min).WithMessage(msg)
	})
}

// Max requires v <= max.
func (s *NumberSchema) Max(max float64, msg string) *NumberSchema {
	return s.with(func(f string, v float64) validator.Rule {
		return validator.Max(f, v, max).WithMessage(msg)
	})
}

// NonNegative requires v >= 0.
func (s *NumberSchema) NonNegative(msg string) *NumberSchema {
	return s.with(func(f string, v float64) validator.Rule {
		return validator.NonNegative(f, v).WithMessage(msg)
	})
}

// Monetary rejects amounts with sub-cent precision or a sign.
func (s *NumberSchema) Monetary(msg string) *NumberSchema {
	return s.with(func(f string, v float64) validator.Rule {
		return validator.MonetaryAmount(f, v).WithMessage(msg)
	})
}

func (s *NumberSchema) parse(st *state, p string, raw any, present bool) (any, bool) {
	if !requirePresent(st, p, present) {
		return nil, false
	}
	v, ok := toNumber(raw, s.coerce)
	if !ok {
		st.fail(validator.TypeMismatch(p, "number", typeName(raw)))
		return nil, false
	}
	rules := make([]validator.Rule, 0, len(s.checks))
	for _, c := range s.checks {
		rules = append(rules, c(p, v))
	}
	if errs := validator.Collect(rules...); !errs.IsEmpty() {
		st.fail(errs...)
		return nil, false
	}
	return v, true
}

// BoolSchema accepts true and false only; truthy values are rejected.
type BoolSchema struct{}

// Bool returns a strict boolean schema.
func Bool() *BoolSchema {
	return &BoolSchema{}
}

func (s *BoolSchema) Kind() Kind { return KindPrimitive }

func (s *BoolSchema) parse(st *state, p string, raw any, present bool) (any, bool) {
	if !requirePresent(st, p, present) {
		return nil, false
	}
	v, ok := raw.(bool)
	if !ok {
		st.fail(validator.TypeMismatch(p, "boolean", typeName(raw)))
		return nil, false
	}
	return v, true
}

// DateSchema accepts time.Time values only; date strings are a type mismatch.
type DateSchema struct {
	checks []dateCheck
}

// Date returns a schema accepting any time.Time.
func Date() *DateSchema {
	return &DateSchema{}
}

func (s *DateSchema) Kind() Kind { return KindPrimitive }

// Future requires a date strictly after the validation instant.
func (s *DateSchema) Future(msg string) *DateSchema {
	return &DateSchema{checks: appendCheck(s.checks, dateCheck(func(f string, v, now time.Time) validator.Rule {
		return validator.FutureDate(f, v, now).WithMessage(msg)
	}))}
}

// Past requires a date strictly before the validation instant.
func (s *DateSchema) Past(msg string) *DateSchema {
	return &DateSchema{checks: appendCheck(s.checks, dateCheck(func(f string, v, now time.Time) validator.Rule {
		return validator.PastDate(f, v, now).WithMessage(msg)
	}))}
}

// After requires a date strictly after the fixed instant t.
func (s *DateSchema) After(t time.Time, msg string) *DateSchema {
	return &DateSchema{checks: appendCheck(s.checks, dateCheck(func(f string, v, _ time.Time) validator.Rule {
		return validator.DateAfter(f, v, t).WithMessage(msg)
	}))}
}

func (s *DateSchema) parse(st *state, p string, raw any, present bool) (any, bool) {
	if !requirePresent(st, p, present) {
		return nil, false
	}
	v, ok := toDate(raw)
	if !ok {
		st.fail(validator.TypeMismatch(p, "date", typeName(raw)))
		return nil, false
	}
	rules := make([]validator.Rule, 0, len(s.checks))
	for _, c := range s.checks {
		rules = append(rules, c(p, v, st.now))
	}
	if errs := validator.Collect(rules...); !errs.IsEmpty() {
		st.fail(errs...)
		return nil, false
	}
	return v, true
}
