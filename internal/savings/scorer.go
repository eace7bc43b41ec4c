package savings

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/analytics"
	"github.com/fintrackhq/fintrack/internal/money"
)

var (
	ErrInvalidInput     = errors.New("invalid savings input")
	ErrInsufficientData = errors.New("insufficient data")
)

// ScoreLevel buckets the composite safety score.
type ScoreLevel string

const (
	LevelLow    ScoreLevel = "low"
	LevelMedium ScoreLevel = "medium"
	LevelHigh   ScoreLevel = "high"
)

var (
	three      = decimal.NewFromInt(3)
	six        = decimal.NewFromInt(6)
	hundredDec = decimal.NewFromInt(100)
)

// SafetyResult is the composite cash-flow safety assessment.
type SafetyResult struct {
	Score              decimal.Decimal // 0-100
	Level              ScoreLevel
	EmergencyFundRatio decimal.Decimal // % of a 3-month expense cushion covered
	IncomeStabilityPct decimal.Decimal // 100 = perfectly steady income
	BufferMonths       decimal.Decimal // months current savings cover expenses
}

// SafetyScore derives the safety assessment from a rolling window of monthly
// aggregates and the current savings balance. The three sub-metrics carry
// equal weight; buffer months saturate at six (half a year of runway scores
// full marks). Returns ErrInsufficientData when the window is empty or shows
// no expenses at all, since a buffer over zero expense is meaningless.
func SafetyScore(aggregates []analytics.MonthlyAggregate, currentSavingsBalance decimal.Decimal) (SafetyResult, error) {
	if currentSavingsBalance.IsNegative() {
		return SafetyResult{}, ErrInvalidInput
	}

	if len(aggregates) == 0 {
		return SafetyResult{}, ErrInsufficientData
	}

	months := decimal.NewFromInt(int64(len(aggregates)))

	totalExpense := decimal.Zero
	for _, a := range aggregates {
		totalExpense = totalExpense.Add(a.TotalExpense)
	}

	avgExpense := totalExpense.Div(months)
	if !avgExpense.IsPositive() {
		return SafetyResult{}, ErrInsufficientData
	}

	emergencyTarget := avgExpense.Mul(three)
	emergencyRatio := money.Clamp(
		currentSavingsBalance.Div(emergencyTarget).Mul(hundredDec),
		decimal.Zero, hundredDec,
	)

	stability := incomeStability(aggregates)

	bufferMonths := currentSavingsBalance.Div(avgExpense)
	bufferPct := money.Clamp(bufferMonths.Div(six).Mul(hundredDec), decimal.Zero, hundredDec)

	score := money.Clamp(
		emergencyRatio.Add(stability).Add(bufferPct).Div(three),
		decimal.Zero, hundredDec,
	).Round(2)

	return SafetyResult{
		Score:              score,
		Level:              scoreLevel(score),
		EmergencyFundRatio: emergencyRatio.Round(2),
		IncomeStabilityPct: stability.Round(2),
		BufferMonths:       bufferMonths.Round(2),
	}, nil
}

// incomeStability maps the coefficient of variation of monthly income onto a
// 0-100 scale where 100 means perfectly steady income. A single tracked month
// shows no variation and scores 100; a window without any income scores 0.
func incomeStability(aggregates []analytics.MonthlyAggregate) decimal.Decimal {
	incomes := make([]float64, 0, len(aggregates))
	for _, a := range aggregates {
		incomes = append(incomes, a.TotalIncome.InexactFloat64())
	}

	mean := 0.0
	for _, v := range incomes {
		mean += v
	}

	mean /= float64(len(incomes))
	if mean <= 0 {
		return decimal.Zero
	}

	if len(incomes) < 2 {
		return hundredDec
	}

	variance := 0.0
	for _, v := range incomes {
		variance += (v - mean) * (v - mean)
	}

	variance /= float64(len(incomes) - 1)

	cov := math.Sqrt(variance) / mean
	stability := decimal.NewFromFloat(100 - cov*100)

	return money.Clamp(stability, decimal.Zero, hundredDec)
}

func scoreLevel(score decimal.Decimal) ScoreLevel {
	switch {
	case score.LessThan(decimal.NewFromInt(40)):
		return LevelLow
	case score.LessThan(decimal.NewFromInt(70)):
		return LevelMedium
	default:
		return LevelHigh
	}
}

// Badge names awarded for savings streaks.
const (
	BadgeConsistent = "Consistent Saver"
	BadgeChampion   = "Savings Champion"
	BadgeMaster     = "Master Saver"
)

// ConsistencyResult summarizes how regularly the user ends a month in the black.
type ConsistencyResult struct {
	ConsistencyRatePct        decimal.Decimal
	MonthsWithSavings         int
	TotalMonthsTracked        int
	ConsecutivePositiveMonths int
	Badges                    []string
}

// Consistency scores a rolling window of monthly aggregates, oldest first.
// A month counts as positive when income strictly exceeds expense; the streak
// is the unbroken run of positive months ending at the most recent one.
func Consistency(aggregates []analytics.MonthlyAggregate) (ConsistencyResult, error) {
	if len(aggregates) == 0 {
		return ConsistencyResult{}, ErrInsufficientData
	}

	total := len(aggregates)
	positive := 0

	for _, a := range aggregates {
		if a.Saved().IsPositive() {
			positive++
		}
	}

	streak := 0

	for i := total - 1; i >= 0; i-- {
		if !aggregates[i].Saved().IsPositive() {
			break
		}

		streak++
	}

	rate := money.Percent(decimal.NewFromInt(int64(positive)), decimal.NewFromInt(int64(total)))

	var badges []string

	if streak >= 3 {
		badges = append(badges, BadgeConsistent)
	}

	if streak >= 6 {
		badges = append(badges, BadgeChampion)
	}

	if streak >= 12 || rate.Equal(hundredDec) {
		badges = append(badges, BadgeMaster)
	}

	return ConsistencyResult{
		ConsistencyRatePct:        rate,
		MonthsWithSavings:         positive,
		TotalMonthsTracked:        total,
		ConsecutivePositiveMonths: streak,
		Badges:                    badges,
	}, nil
}

// AdviceLevel classifies the recommended savings rate.
type AdviceLevel string

const (
	AdviceCritical AdviceLevel = "critical"
	AdviceLow      AdviceLevel = "low"
	AdviceMedium   AdviceLevel = "medium"
	AdviceHigh     AdviceLevel = "high"
)

// AdviceResult is the automated-savings recommendation for one month.
type AdviceResult struct {
	Disposable     decimal.Decimal
	SavingsAmount  decimal.Decimal
	SavingsPercent decimal.Decimal
	Level          AdviceLevel
	Message        string
}

var savingsRate = decimal.RequireFromString("0.30")

// Advice applies the fixed 30%-of-disposable rule to one month's income and
// expense totals.
func Advice(monthlyIncome, monthlyExpense decimal.Decimal) (AdviceResult, error) {
	if monthlyIncome.IsNegative() || monthlyExpense.IsNegative() {
		return AdviceResult{}, ErrInvalidInput
	}

	disposable := monthlyIncome.Sub(monthlyExpense)

	if !disposable.IsPositive() {
		return AdviceResult{
			Disposable:     disposable.Round(2),
			SavingsAmount:  decimal.Zero,
			SavingsPercent: decimal.Zero,
			Level:          AdviceCritical,
			Message:        "Your expenses exceed or equal your income. Focus on expense control first.",
		}, nil
	}

	amount := disposable.Mul(savingsRate).Round(2)
	percent := money.Percent(amount, monthlyIncome)

	var (
		level   AdviceLevel
		message string
	)

	switch {
	case percent.LessThan(decimal.NewFromInt(10)):
		level = AdviceLow
		message = "Your savings are low. Try reducing discretionary expenses."
	case percent.LessThanOrEqual(decimal.NewFromInt(20)):
		level = AdviceMedium
		message = "You are maintaining healthy savings. Keep it up!"
	default:
		level = AdviceHigh
		message = "Excellent savings rate! Consider investing surplus for long-term goals."
	}

	return AdviceResult{
		Disposable:     disposable.Round(2),
		SavingsAmount:  amount,
		SavingsPercent: percent,
		Level:          level,
		Message:        message,
	}, nil
}
