package validator

import "fmt"

func MinLenSlice[T any](field string, value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: constraint(field,
			fmt.Sprintf("must have at least %d items", min),
			"validation.min_items",
			map[string]any{"min": min},
		),
	}
}

func MaxLenSlice[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: constraint(field,
			fmt.Sprintf("must have at most %d items", max),
			"validation.max_items",
			map[string]any{"max": max},
		),
	}
}
