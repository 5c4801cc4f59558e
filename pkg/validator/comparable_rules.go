package validator

import "reflect"

// Equal validates that value equals other. Used for confirmation fields.
func Equal[T comparable](field string, value T, other T) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: constraint(field, "values do not match", "validation.equal", nil),
	}
}

// InList validates that value is one of allowed.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, v := range allowed {
				if v == value {
					return true
				}
			}
			return false
		},
		Error: constraint(field, "value is not in the allowed list", "validation.in_list",
			map[string]any{"allowed": allowed},
		),
	}
}

// EqualValues validates that value deeply equals other. Unlike Equal it accepts
// slices and maps, as found in decoded documents.
func EqualValues(field string, value, other any) Rule {
	return Rule{
		Check: func() bool {
			return reflect.DeepEqual(value, other)
		},
		Error: constraint(field, "values do not match", "validation.equal", nil),
	}
}

// InValues validates that value deeply equals one of allowed.
func InValues(field string, value any, allowed []any) Rule {
	return Rule{
		Check: func() bool {
			for _, v := range allowed {
				if reflect.DeepEqual(v, value) {
					return true
				}
			}
			return false
		},
		Error: constraint(field, "value is not in the allowed list", "validation.in_list",
			map[string]any{"allowed": allowed},
		),
	}
}
