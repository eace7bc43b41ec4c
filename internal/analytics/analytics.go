// Package analytics derives monthly income/expense aggregates and category
// breakdowns from the transaction history. Aggregates are computed per query
// and never persisted.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/period"
)

// MonthlyAggregate is one month's income and expense totals.
type MonthlyAggregate struct {
	Month        period.Month
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// Saved returns the month's net savings (income minus expense).
func (a MonthlyAggregate) Saved() decimal.Decimal {
	return a.TotalIncome.Sub(a.TotalExpense)
}

// CategoryTotal is the spend total of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary is the income/expense roll-up of a single month.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// TrendPoint is one month of the savings trend series.
type TrendPoint struct {
	Month       period.Month
	Income      decimal.Decimal
	Expense     decimal.Decimal
	Saved       decimal.Decimal
	SaveRatePct decimal.Decimal
}
