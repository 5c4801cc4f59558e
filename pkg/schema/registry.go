package schema

import (
	"fmt"
	"maps"
	"slices"
)

// Registry is a read-only table of named schemas. It is built once and never
// changes afterwards, so it may be shared by any number of goroutines.
type Registry struct {
	schemas map[string]Schema
}

// NewRegistry copies schemas into a new registry.
func NewRegistry(schemas map[string]Schema) *Registry {
	r := &Registry{schemas: make(map[string]Schema, len(schemas))}
	for name, s := range schemas {
		if name == "" || s == nil {
			panic(fmt.Sprintf("schema: invalid registry entry %q", name))
		}
		r.schemas[name] = s
	}
	return r
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (Schema, bool) {
	s, ok := r.schemas[name]
	return s, ok
}

// MustLookup returns the schema registered under name and panics if there is none.
// Asking for an unregistered name is a programming error, not a validation failure.
func (r *Registry) MustLookup(name string) Schema {
	s, ok := r.schemas[name]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownSchema, name))
	}
	return s
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.schemas))
}

// Validate validates raw against the schema registered under name.
func (r *Registry) Validate(name string, raw any, opts ...Option) (any, error) {
	return Validate(r.MustLookup(name), raw, opts...)
}
