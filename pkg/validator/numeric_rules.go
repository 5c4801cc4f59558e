package validator

import (
	"fmt"
	"math"
)

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: constraint(field,
			fmt.Sprintf("must be at least %v", min),
			"validation.min",
			map[string]any{"min": min},
		),
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: constraint(field,
			fmt.Sprintf("must be at most %v", max),
			"validation.max",
			map[string]any{"max": max},
		),
	}
}

// NonNegative validates that a numeric value is zero or greater.
func NonNegative[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value >= 0
		},
		Error: constraint(field, "must be a non-negative number", "validation.non_negative", nil),
	}
}

// Integer validates that a float carries no fractional part.
func Integer(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return !math.IsInf(value, 0) && value == math.Trunc(value)
		},
		Error: constraint(field, "Expected integer, received float", "validation.integer", nil),
	}
}

// Convenience aliases for common numeric validation cases

// Min is an alias for MinNum for common numeric validation.
func Min[T Numeric](field string, value T, min T) Rule {
	return MinNum(field, value, min)
}

// Max is an alias for MaxNum for common numeric validation.
func Max[T Numeric](field string, value T, max T) Rule {
	return MaxNum(field, value, max)
}
