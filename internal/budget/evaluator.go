package budget

import (
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/money"
)

var (
	warningThreshold = decimal.NewFromInt(80)
	dangerThreshold  = decimal.NewFromInt(100)
)

const (
	warningMessage = "You have used over 80% of your budget."
	dangerMessage  = "Budget exceeded! Please reduce spending."
)

// ComputeUsage derives usage figures from the monthly spend and the limit.
// A non-positive limit reports zero across the board so a missing budget
// reads the same as no budget at all.
func ComputeUsage(used, limit decimal.Decimal) Usage {
	if !limit.IsPositive() {
		return Usage{Used: decimal.Zero, Limit: decimal.Zero, Percentage: decimal.Zero}
	}

	return Usage{
		Used:       used,
		Limit:      limit,
		Percentage: money.Percent(used, limit),
	}
}

// Classify grades a usage percentage. Below 80 no alert is warranted; the
// boundaries themselves escalate, so exactly 80 is a warning and exactly 100
// is danger.
func Classify(percentage decimal.Decimal) (AlertLevel, bool) {
	switch {
	case percentage.GreaterThanOrEqual(dangerThreshold):
		return AlertDanger, true
	case percentage.GreaterThanOrEqual(warningThreshold):
		return AlertWarning, true
	default:
		return "", false
	}
}

func alertMessage(level AlertLevel) string {
	if level == AlertDanger {
		return dangerMessage
	}

	return warningMessage
}
