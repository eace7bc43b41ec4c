// Package invest holds the investment projection and allocation calculators.
// Everything in here is a pure function over its arguments; storage and
// transport live elsewhere.
package invest

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid investment input")

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Projection is the outcome of compounding a contribution stream or lump sum.
type Projection struct {
	TotalInvested decimal.Decimal
	MaturityValue decimal.Decimal
	Gain          decimal.Decimal
}

// ProjectSIP compounds a monthly contribution stream over the given number of
// years at the given annual rate. stepUpPct raises the contribution once per
// 12-month boundary: the boundary month's contribution is raised first, then
// accrues that month's interest. Contributions are invested at month start
// (annuity-due), so with a zero step-up the result matches the closed-form
// FV = P * ((1+r)^n - 1)/r * (1+r).
func ProjectSIP(monthlyContribution, annualRatePct decimal.Decimal, years int, stepUpPct decimal.Decimal) (Projection, error) {
	if !monthlyContribution.IsPositive() || annualRatePct.IsNegative() || years <= 0 || stepUpPct.IsNegative() {
		return Projection{}, ErrInvalidInput
	}

	monthlyRate := annualRatePct.Div(decimal.NewFromInt(12)).Div(hundred)
	growth := one.Add(monthlyRate)
	stepUp := stepUpPct.Div(hundred)

	contribution := monthlyContribution
	invested := decimal.Zero
	value := decimal.Zero

	for year := 0; year < years; year++ {
		for m := 0; m < 12; m++ {
			value = value.Add(contribution).Mul(growth)
			invested = invested.Add(contribution)
		}

		contribution = contribution.Add(contribution.Mul(stepUp))
	}

	invested = invested.Round(2)
	value = value.Round(2)

	return Projection{
		TotalInvested: invested,
		MaturityValue: value,
		Gain:          value.Sub(invested),
	}, nil
}

// ProjectLumpsum compounds a single principal annually. The maturity value is
// rounded to the nearest whole currency unit.
func ProjectLumpsum(principal, annualRatePct decimal.Decimal, years int) (Projection, error) {
	if !principal.IsPositive() || !annualRatePct.IsPositive() || years <= 0 {
		return Projection{}, ErrInvalidInput
	}

	factor := one.Add(annualRatePct.Div(hundred))
	maturity := principal.Mul(factor.Pow(decimal.NewFromInt(int64(years)))).Round(0)

	return Projection{
		TotalInvested: principal,
		MaturityValue: maturity,
		Gain:          maturity.Sub(principal),
	}, nil
}
