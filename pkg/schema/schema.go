package schema

import (
	"strconv"
	"time"

	"github.com/dmitrymomot/storefront/pkg/validator"
)

// Kind tags the variant of a node in the rule tree.
type Kind uint8

const (
	KindPrimitive Kind = iota
	KindObject
	KindArray
	KindOptional
	KindDefault
	KindUnion
	KindRefinement
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindOptional:
		return "optional"
	case KindDefault:
		return "default"
	case KindUnion:
		return "union"
	case KindRefinement:
		return "refinement"
	default:
		return "unknown"
	}
}

// Schema is a node of an immutable rule tree. The set of node types is closed:
// schemas are built with the constructors of this package and composed with
// their builder methods, each of which returns a new node.
type Schema interface {
	Kind() Kind

	// parse validates raw found at path p. present is false when the value is
	// absent from its parent object. It returns the normalized value and
	// whether that value should be set on the parent. Failures are recorded
	// on st.
	parse(st *state, p string, raw any, present bool) (any, bool)
}

// state carries the per-call context of one validation pass.
type state struct {
	now  time.Time
	errs validator.ValidationErrors
}

func newState(now time.Time) *state {
	return &state{now: now}
}

func (st *state) fail(errs ...validator.ValidationError) {
	st.errs = append(st.errs, errs...)
}

// mark returns a checkpoint used to tell whether a subtree recorded errors.
func (st *state) mark() int {
	return len(st.errs)
}

func (st *state) failedSince(mark int) bool {
	return len(st.errs) > mark
}

// requirePresent records a missing-field error when the value is absent.
func requirePresent(st *state, p string, present bool) bool {
	if !present {
		st.fail(validator.MissingRequired(p))
		return false
	}
	return true
}

// field joins a parent path and a field name: "items[2]" + "price" = "items[2].price".
func field(p, name string) string {
	if p == "" {
		return name
	}
	if name == "" {
		return p
	}
	return p + "." + name
}

// index joins a parent path and an element index: "items" + 2 = "items[2]".
func index(p string, i int) string {
	return p + "[" + strconv.Itoa(i) + "]"
}
