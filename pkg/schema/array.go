package schema

import "github.com/dmitrymomot/storefront/pkg/validator"

type lengthBound struct {
	n   int
	msg string
}

// ArraySchema validates an ordered sequence against one element schema.
// Length errors are reported at the array path, element errors at
// index-qualified paths; both are collected in the same pass.
type ArraySchema struct {
	elem Schema
	min  *lengthBound
	max  *lengthBound
}

// Array returns a schema for sequences whose elements satisfy elem.
func Array(elem Schema) *ArraySchema {
	if elem == nil {
		panic("schema: array with a nil element schema")
	}
	return &ArraySchema{elem: elem}
}

func (s *ArraySchema) Kind() Kind { return KindArray }

// Element returns the element schema.
func (s *ArraySchema) Element() Schema { return s.elem }

// Min requires at least n elements.
func (s *ArraySchema) Min(n int, msg string) *ArraySchema {
	out := *s
	out.min = &lengthBound{n: n, msg: msg}
	return &out
}

// Max allows at most n elements.
func (s *ArraySchema) Max(n int, msg string) *ArraySchema {
	out := *s
	out.max = &lengthBound{n: n, msg: msg}
	return &out
}

func (s *ArraySchema) parse(st *state, p string, raw any, present bool) (any, bool) {
	if !requirePresent(st, p, present) {
		return nil, false
	}
	items, ok := toSlice(raw)
	if !ok {
		st.fail(validator.TypeMismatch(p, "array", typeName(raw)))
		return nil, false
	}

	mark := st.mark()
	var rules []validator.Rule
	if s.min != nil {
		rules = append(rules, validator.MinLenSlice(p, items, s.min.n).WithMessage(s.min.msg))
	}
	if s.max != nil {
		rules = append(rules, validator.MaxLenSlice(p, items, s.max.n).WithMessage(s.max.msg))
	}
	st.fail(validator.Collect(rules...)...)

	out := make([]any, 0, len(items))
	for i, item := range items {
		if v, set := s.elem.parse(st, index(p, i), item, true); set {
			out = append(out, v)
		}
	}
	if st.failedSince(mark) {
		return nil, false
	}
	return out, true
}
