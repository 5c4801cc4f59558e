// Package validator provides the primitive, value-level rules of the storefront
// validation engine: string lengths, numeric bounds, integers, monetary
// precision, document identifiers, e-mail shape and date ordering.
//
// Every rule is a small Rule value that bundles a boolean Check function with
// translation-friendly error metadata. Rules are evaluated with Apply (or
// Collect) which runs all of them and aggregates failures into a
// ValidationErrors slice that satisfies the error interface, so a caller sees
// every problem in a single pass.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `numeric_rules.go`, `financial_rules.go`, `date_rules.go`, etc.). Every
// exported constructor simply builds and returns a Rule; there is no hidden
// mutable state, so the package is goroutine-safe.
//
// Core building blocks:
//   - Rule              – Check func plus the ValidationError to report
//   - ValidationError   – one failure: field path, Code, message, i18n key
//   - ValidationErrors  – ordered slice that implements error
//   - Code              – type_mismatch, constraint_violation, refinement_failure, missing_required
//
// # Usage
//
//	err := validator.Apply(
//	    validator.MinLen("name", name, 3).WithMessage("Name must be at least 3 characters"),
//	    validator.MonetaryAmount("price", price),
//	    validator.ValidObjectID("product", productID),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // render verrs.Get("price") next to the input
//	}
//
// # Error Handling
//
// ValidationErrors implements Is, so errors.Is(err, validator.ErrTypeMismatch)
// reports whether any contained failure has that code. Individual field errors
// can be inspected with Has, Get, GetErrors, Fields and HasCode.
//
// Composition of rules into object, array, optional, default and union shapes
// lives in package schema.
package validator
