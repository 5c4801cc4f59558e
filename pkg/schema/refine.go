package schema

import (
	"github.com/dmitrymomot/storefront/pkg/validator"
)

// Refinement is a predicate over an already valid, normalized value. When
// Check returns false the error is attached at Path, relative to the refined
// value, which need not be a field the predicate reads.
type Refinement struct {
	Path    string
	Message string
	Check   func(value any) bool
}

// RefinedSchema runs refinements after its wrapped schema succeeded. If the
// wrapped schema recorded any error, no refinement runs.
type RefinedSchema struct {
	inner       Schema
	refinements []Refinement
}

// Refine wraps s with refinements. Refining a refined schema appends to a copy
// of its list.
func Refine(s Schema, refinements ...Refinement) *RefinedSchema {
	if s == nil {
		panic("schema: refine of a nil schema")
	}
	for _, r := range refinements {
		if r.Check == nil {
			panic("schema: refinement without a check")
		}
	}
	if rs, ok := s.(*RefinedSchema); ok {
		all := make([]Refinement, 0, len(rs.refinements)+len(refinements))
		all = append(all, rs.refinements...)
		return &RefinedSchema{inner: rs.inner, refinements: append(all, refinements...)}
	}
	return &RefinedSchema{inner: s, refinements: append([]Refinement(nil), refinements...)}
}

func (s *RefinedSchema) Kind() Kind { return KindRefinement }

// Unwrap returns the schema the refinements apply to.
func (s *RefinedSchema) Unwrap() Schema { return s.inner }

func (s *RefinedSchema) parse(st *state, p string, raw any, present bool) (any, bool) {
	mark := st.mark()
	v, set := s.inner.parse(st, p, raw, present)
	if st.failedSince(mark) || !set {
		return v, set
	}

	failed := false
	for _, r := range s.refinements {
		if !r.Check(v) {
			st.fail(validator.RefinementFailure(field(p, r.Path), r.Message))
			failed = true
		}
	}
	if failed {
		return nil, false
	}
	return v, true
}

// ObjectRefinement adapts a predicate over an object's normalized fields.
// Values that are not objects fail the predicate.
func ObjectRefinement(path, message string, check func(obj map[string]any) bool) Refinement {
	return Refinement{
		Path:    path,
		Message: message,
		Check: func(value any) bool {
			obj, ok := value.(map[string]any)
			return ok && check(obj)
		},
	}
}

// FieldsMatch requires two fields to hold equal values; the error goes on confirm.
func FieldsMatch(source, confirm, message string) Refinement {
	return ObjectRefinement(confirm, message, func(obj map[string]any) bool {
		return validator.EqualValues(confirm, obj[confirm], obj[source]).Check()
	})
}

// OneOfField requires the value of valueField to equal the key field of some
// element of the array held in listField. Used for "default must be one of the
// available" constraints.
func OneOfField(valueField, listField, keyField, message string) Refinement {
	return ObjectRefinement(valueField, message, func(obj map[string]any) bool {
		list, _ := obj[listField].([]any)
		keys := make([]any, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				keys = append(keys, m[keyField])
			}
		}
		return validator.InValues(valueField, obj[valueField], keys).Check()
	})
}
