package schema

import "github.com/dmitrymomot/storefront/pkg/validator"

// UnionSchema accepts a value matching any one of its alternatives. The first
// alternative that validates without errors wins.
type UnionSchema struct {
	options []Schema
}

// Union returns a schema accepting any of options, tried in order.
func Union(options ...Schema) *UnionSchema {
	if len(options) < 2 {
		panic("schema: union needs at least two alternatives")
	}
	for _, o := range options {
		if o == nil {
			panic("schema: union with a nil alternative")
		}
	}
	return &UnionSchema{options: append([]Schema(nil), options...)}
}

func (s *UnionSchema) Kind() Kind { return KindUnion }

// Options returns a copy of the alternatives.
func (s *UnionSchema) Options() []Schema {
	return append([]Schema(nil), s.options...)
}

func (s *UnionSchema) parse(st *state, p string, raw any, present bool) (any, bool) {
	if !requirePresent(st, p, present) {
		return nil, false
	}

	// Alternatives whose type matched but whose constraints failed.
	var near []validator.ValidationErrors
	for _, o := range s.options {
		trial := newState(st.now)
		v, set := o.parse(trial, p, raw, true)
		if trial.errs.IsEmpty() {
			return v, set
		}
		if !rejectedByType(trial.errs, p) {
			near = append(near, trial.errs)
		}
	}

	// A single near miss is what the caller meant; surface its errors.
	if len(near) == 1 {
		st.fail(near[0]...)
		return nil, false
	}
	st.fail(validator.ValidationError{
		Field:          p,
		Code:           validator.CodeTypeMismatch,
		Message:        "Invalid input",
		TranslationKey: "validation.union",
		TranslationValues: map[string]any{
			"field": p,
		},
	})
	return nil, false
}

// rejectedByType reports whether an alternative failed on the type of the value itself.
func rejectedByType(errs validator.ValidationErrors, p string) bool {
	return len(errs) == 1 && errs[0].Field == p && errs[0].Code == validator.CodeTypeMismatch
}
