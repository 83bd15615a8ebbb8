package dealsheet

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// parseDecimal coerces a raw cell value to a decimal. Values are trimmed
// and thousands separators stripped before parsing. Empty and non-numeric
// values report false.
func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// parseFloat coerces a raw cell value to a float64 with the same
// trimming rules as parseDecimal.
func parseFloat(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// normalizeDiscounts rescales a subset of positive discount values to
// fractional factors. When any value exceeds 1 the whole subset is taken
// as percentages and divided by 100; otherwise every value is already a
// fraction and passes through unchanged. The scale decision is made per
// subset, so a single percent-style value rescales its fraction-style
// neighbours too.
func normalizeDiscounts(values []decimal.Decimal) []decimal.Decimal {
	percentScale := false
	for _, v := range values {
		if v.GreaterThan(one) {
			percentScale = true
			break
		}
	}
	if !percentScale {
		return values
	}

	factors := make([]decimal.Decimal, len(values))
	for i, v := range values {
		factors[i] = v.Div(hundred)
	}
	return factors
}
