// Package money holds the shared rounding and percentage conventions for
// monetary values. Amounts are decimals carried at full precision internally
// and rounded half-up to two fraction digits at output boundaries.
package money

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds an amount half-up to two fraction digits.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns part/whole expressed as a percentage, rounded to two
// fraction digits. whole must be non-zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	return part.Div(whole).Mul(hundred).Round(2)
}

// FromPercent returns pct% of base, rounded to two fraction digits.
func FromPercent(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred).Round(2)
}

// Clamp limits d to the [lo, hi] range.
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}

	if d.GreaterThan(hi) {
		return hi
	}

	return d
}
