package invest

import (
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/money"
)

// RiskProfile selects one of the fixed allocation tables.
type RiskProfile string

const (
	RiskLow    RiskProfile = "low"
	RiskMedium RiskProfile = "medium"
	RiskHigh   RiskProfile = "high"
)

// Line is one asset class of an allocation: its percentage of the investable
// amount and the resulting money amount.
type Line struct {
	Percent decimal.Decimal
	Amount  decimal.Decimal
}

// Advice splits an investable amount across the four asset classes.
type Advice struct {
	Equity    Line
	Debt      Line
	Gold      Line
	Emergency Line
	Message   string
}

type split struct {
	equity, debt, gold, emergency int64
	message                       string
}

// Percentages per profile sum to 100.
var allocationTable = map[RiskProfile]split{
	RiskLow: {
		equity: 30, debt: 45, gold: 15, emergency: 10,
		message: "Low-risk profile favors stability through debt and gold with limited equity exposure.",
	},
	RiskMedium: {
		equity: 50, debt: 30, gold: 10, emergency: 10,
		message: "Balanced profile aims for growth with controlled risk and adequate safety.",
	},
	RiskHigh: {
		equity: 65, debt: 20, gold: 5, emergency: 10,
		message: "High-risk profile prioritizes long-term growth through higher equity exposure.",
	},
}

// Advise splits investableAmount across asset classes according to the fixed
// table for the risk profile.
func Advise(profile RiskProfile, investableAmount decimal.Decimal) (Advice, error) {
	table, ok := allocationTable[profile]
	if !ok || !investableAmount.IsPositive() {
		return Advice{}, ErrInvalidInput
	}

	line := func(pct int64) Line {
		percent := decimal.NewFromInt(pct)

		return Line{
			Percent: percent,
			Amount:  money.FromPercent(investableAmount, percent),
		}
	}

	return Advice{
		Equity:    line(table.equity),
		Debt:      line(table.debt),
		Gold:      line(table.gold),
		Emergency: line(table.emergency),
		Message:   table.message,
	}, nil
}
