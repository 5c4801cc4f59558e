package validator

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// amountRegex accepts whole amounts or amounts with exactly two decimals.
// A leading sign is not allowed, so negative amounts never pass.
var amountRegex = regexp.MustCompile(`^\d+(\.\d{2})?$`)

// FormatAmount renders value with its shortest exact decimal representation and
// pads a fractional part to two digits: 49 -> "49", 49.9 -> "49.90", 49.999 -> "49.999".
// Sub-cent digits are kept rather than rounded away so MonetaryAmount can reject them.
func FormatAmount(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	s := decimal.NewFromFloat(value).String()
	whole, frac, ok := strings.Cut(s, ".")
	if !ok {
		return whole
	}
	if len(frac) < 2 {
		frac += strings.Repeat("0", 2-len(frac))
	}
	return whole + "." + frac
}

// MonetaryAmount validates that value is a non-negative amount without sub-cent precision.
func MonetaryAmount(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return amountRegex.MatchString(FormatAmount(value))
		},
		Error: constraint(field,
			"must have exactly two decimal places (e.g., 49.99)",
			"validation.monetary_amount",
			map[string]any{"value": FormatAmount(value)},
		),
	}
}
