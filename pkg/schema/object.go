package schema

import (
	"fmt"

	"github.com/dmitrymomot/storefront/pkg/validator"
)

// FieldDef names one entry of an object shape.
type FieldDef struct {
	Name   string
	Schema Schema
}

// Field declares a named field of an object shape.
func Field(name string, s Schema) FieldDef {
	if s == nil {
		panic(fmt.Sprintf("schema: field %q has a nil schema", name))
	}
	return FieldDef{Name: name, Schema: s}
}

// ObjectSchema validates a map against an ordered table of fields. Every field
// is checked independently and errors come out in declaration order. Keys
// that are not declared are dropped from the normalized value.
type ObjectSchema struct {
	fields []FieldDef
}

// Object builds an object shape. Declaring the same name twice keeps the last
// declaration at the position of the first.
func Object(fields ...FieldDef) *ObjectSchema {
	return (&ObjectSchema{}).Extend(fields...)
}

func (s *ObjectSchema) Kind() Kind { return KindObject }

// Extend returns a new object with fields added, or overridden in place when
// the name already exists. The receiver is left untouched.
func (s *ObjectSchema) Extend(fields ...FieldDef) *ObjectSchema {
	out := make([]FieldDef, len(s.fields), len(s.fields)+len(fields))
	copy(out, s.fields)
	for _, f := range fields {
		replaced := false
		for i := range out {
			if out[i].Name == f.Name {
				out[i] = f
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, f)
		}
	}
	return &ObjectSchema{fields: out}
}

// Pick returns a new object holding only the named fields, in the receiver's order.
// Naming a field the object does not declare is a programming error.
func (s *ObjectSchema) Pick(names ...string) *ObjectSchema {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := s.Lookup(n); !ok {
			panic(fmt.Sprintf("schema: pick of undeclared field %q", n))
		}
		want[n] = true
	}
	out := make([]FieldDef, 0, len(names))
	for _, f := range s.fields {
		if want[f.Name] {
			out = append(out, f)
		}
	}
	return &ObjectSchema{fields: out}
}

// Refine attaches cross-field predicates evaluated after the object is structurally valid.
func (s *ObjectSchema) Refine(refinements ...Refinement) *RefinedSchema {
	return Refine(s, refinements...)
}

// Fields returns the declared field names in order.
func (s *ObjectSchema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the schema of a declared field.
func (s *ObjectSchema) Lookup(name string) (Schema, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f.Schema, true
		}
	}
	return nil, false
}

func (s *ObjectSchema) parse(st *state, p string, raw any, present bool) (any, bool) {
	if !requirePresent(st, p, present) {
		return nil, false
	}
	in, ok := toObject(raw)
	if !ok {
		st.fail(validator.TypeMismatch(p, "object", typeName(raw)))
		return nil, false
	}

	mark := st.mark()
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		v, has := in[f.Name]
		if val, set := f.Schema.parse(st, field(p, f.Name), v, has); set {
			out[f.Name] = val
		}
	}
	if st.failedSince(mark) {
		return nil, false
	}
	return out, true
}
