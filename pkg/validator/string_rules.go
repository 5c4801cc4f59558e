package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: constraint(field, "field is required", "validation.required", nil),
	}
}

// MinLenString counts runes, so multi-byte names are measured the way users see them.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: constraint(field,
			fmt.Sprintf("must be at least %d characters long", min),
			"validation.min_length",
			map[string]any{"min": min},
		),
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: constraint(field,
			fmt.Sprintf("must be at most %d characters long", max),
			"validation.max_length",
			map[string]any{"max": max},
		),
	}
}

func LenString(field, value string, exact int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) == exact
		},
		Error: constraint(field,
			fmt.Sprintf("must be exactly %d characters long", exact),
			"validation.exact_length",
			map[string]any{"length": exact},
		),
	}
}

// MatchRegex validates that value matches re.
func MatchRegex(field, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: constraint(field, "invalid format", "validation.format",
			map[string]any{"pattern": re.String()},
		),
	}
}

// Convenience aliases for common string validation cases

func Required(field, value string) Rule {
	return RequiredString(field, value)
}

func MinLen(field, value string, min int) Rule {
	return MinLenString(field, value, min)
}

func MaxLen(field, value string, max int) Rule {
	return MaxLenString(field, value, max)
}

func Len(field, value string, exact int) Rule {
	return LenString(field, value, exact)
}
