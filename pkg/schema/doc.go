// Package schema composes the rules of package validator into immutable rule
// trees and runs them over loosely typed input.
//
// A tree is made of seven node kinds:
//
//   - primitive: String, Number, Coerce, Bool, Date with chained checks
//   - object: Object(Field(...), ...) with Extend and Pick
//   - array: Array(elem).Min(n, msg).Max(n, msg)
//   - optional: Optional(s), missing keys are skipped, null is validated
//   - default: Default(s, v), missing keys are replaced by v and then validated
//   - union: Union(a, b, ...), the first alternative that validates wins
//   - refinement: Refine(s, ...) or (*ObjectSchema).Refine, cross-field predicates
//
// Every builder returns a new node and never mutates its receiver, so a
// schema may be extended into variants and shared across goroutines.
//
// # Usage
//
//	signIn := schema.Object(
//	    schema.Field("email", schema.String().Email("Email is invalid")),
//	    schema.Field("password", schema.String().Min(3, "Password must be at least 3 characters")),
//	)
//	signUp := signIn.Extend(
//	    schema.Field("confirmPassword", schema.String()),
//	).Refine(schema.FieldsMatch("password", "confirmPassword", "Passwords don't match"))
//
//	value, err := schema.Validate(signUp, input)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("confirmPassword")
//	}
//
// # Validation order
//
// Input flows one way: coercion, structural checks, refinements. Sibling
// fields and array elements are validated independently and all of their
// errors are collected, with paths such as "items[2].price". Refinements run
// only when the value they refine produced no error at all.
//
// Time-dependent rules read the instant from the clock once per call; pass
// WithNow to make a call deterministic.
package schema
