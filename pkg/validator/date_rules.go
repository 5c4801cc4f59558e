package validator

import (
	"fmt"
	"time"
)

// PastDate validates that value is strictly before now.
func PastDate(field string, value time.Time, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.Before(now)
		},
		Error: constraint(field, "date must be in the past", "validation.date_past", nil),
	}
}

// FutureDate validates that value is strictly after now. The caller supplies now so
// one validation pass sees a single instant.
func FutureDate(field string, value time.Time, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.After(now)
		},
		Error: constraint(field, "date must be in the future", "validation.date_future", nil),
	}
}

// DateAfter validates that value is strictly after the fixed instant after.
func DateAfter(field string, value time.Time, after time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.After(after)
		},
		Error: constraint(field,
			fmt.Sprintf("date must be after %s", after.Format("2006-01-02")),
			"validation.date_after",
			map[string]any{"after": after.Format("2006-01-02")},
		),
	}
}
