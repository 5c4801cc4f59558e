package validator

import (
	"sync"

	playground "github.com/go-playground/validator/v10"
)

var (
	tagValidator     *playground.Validate
	tagValidatorOnce sync.Once
)

// tags returns the shared tag validator. It caches nothing per value, so
// concurrent use is safe.
func tags() *playground.Validate {
	tagValidatorOnce.Do(func() {
		tagValidator = playground.New(playground.WithRequiredStructEnabled())
	})
	return tagValidator
}

// ValidEmail validates the usual local@domain address shape.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return tags().Var(value, "required,email") == nil
		},
		Error: constraint(field, "Invalid email", "validation.email", nil),
	}
}
