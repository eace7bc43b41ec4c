package savings_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack/internal/analytics"
	"github.com/fintrackhq/fintrack/internal/period"
	"github.com/fintrackhq/fintrack/internal/savings"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// window builds a monthly aggregate series ending at 2025-06, oldest first.
func window(rows ...[2]string) []analytics.MonthlyAggregate {
	end := period.Month{Year: 2025, Month: time.June}
	start := end.AddMonths(-(len(rows) - 1))

	aggs := make([]analytics.MonthlyAggregate, 0, len(rows))
	m := start

	for _, r := range rows {
		aggs = append(aggs, analytics.MonthlyAggregate{
			Month:        m,
			TotalIncome:  d(r[0]),
			TotalExpense: d(r[1]),
		})
		m = m.Next()
	}

	return aggs
}

func TestSafetyScore_SteadyIncomeFullBuffer(t *testing.T) {
	aggs := window(
		[2]string{"80000", "50000"},
		[2]string{"80000", "50000"},
		[2]string{"80000", "50000"},
	)

	// Balance of 300000 covers 6 months of the 50000 average expense, so both
	// the emergency ratio and the buffer sub-metric saturate at 100.
	got, err := savings.SafetyScore(aggs, d("300000"))
	require.NoError(t, err)

	assert.True(t, got.EmergencyFundRatio.Equal(d("100")), "efr = %s", got.EmergencyFundRatio)
	assert.True(t, got.IncomeStabilityPct.Equal(d("100")), "stability = %s", got.IncomeStabilityPct)
	assert.True(t, got.BufferMonths.Equal(d("6")), "buffer = %s", got.BufferMonths)
	assert.True(t, got.Score.Equal(d("100")), "score = %s", got.Score)
	assert.Equal(t, savings.LevelHigh, got.Level)
}

func TestSafetyScore_NoBalance(t *testing.T) {
	aggs := window(
		[2]string{"40000", "42000"},
		[2]string{"40000", "38000"},
	)

	got, err := savings.SafetyScore(aggs, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, got.EmergencyFundRatio.IsZero())
	assert.True(t, got.BufferMonths.IsZero())

	// Only income stability contributes; steady income alone scores 100/3.
	assert.True(t, got.Score.Equal(d("33.33")), "score = %s", got.Score)
	assert.Equal(t, savings.LevelLow, got.Level)
}

func TestSafetyScore_VolatileIncomeScoresLowerStability(t *testing.T) {
	steady, err := savings.SafetyScore(window(
		[2]string{"50000", "30000"},
		[2]string{"50000", "30000"},
		[2]string{"50000", "30000"},
	), d("90000"))
	require.NoError(t, err)

	volatile, err := savings.SafetyScore(window(
		[2]string{"10000", "30000"},
		[2]string{"90000", "30000"},
		[2]string{"50000", "30000"},
	), d("90000"))
	require.NoError(t, err)

	assert.True(t, volatile.IncomeStabilityPct.LessThan(steady.IncomeStabilityPct))
	assert.True(t, volatile.Score.LessThan(steady.Score))
}

func TestSafetyScore_SingleMonthCountsAsSteady(t *testing.T) {
	got, err := savings.SafetyScore(window([2]string{"50000", "25000"}), d("25000"))
	require.NoError(t, err)

	assert.True(t, got.IncomeStabilityPct.Equal(d("100")))
	assert.True(t, got.BufferMonths.Equal(d("1")))
}

func TestSafetyScore_Errors(t *testing.T) {
	t.Run("EmptyWindow", func(t *testing.T) {
		_, err := savings.SafetyScore(nil, d("1000"))
		assert.ErrorIs(t, err, savings.ErrInsufficientData)
	})

	t.Run("ZeroAverageExpense", func(t *testing.T) {
		_, err := savings.SafetyScore(window([2]string{"50000", "0"}), d("1000"))
		assert.ErrorIs(t, err, savings.ErrInsufficientData)
	})

	t.Run("NegativeBalance", func(t *testing.T) {
		_, err := savings.SafetyScore(window([2]string{"50000", "30000"}), d("-1"))
		assert.ErrorIs(t, err, savings.ErrInvalidInput)
	})
}

func TestConsistency_AllPositive(t *testing.T) {
	aggs := window(
		[2]string{"50000", "30000"},
		[2]string{"50000", "40000"},
		[2]string{"50000", "49999.99"},
		[2]string{"50000", "20000"},
	)

	got, err := savings.Consistency(aggs)
	require.NoError(t, err)

	assert.True(t, got.ConsistencyRatePct.Equal(d("100")))
	assert.Equal(t, 4, got.MonthsWithSavings)
	assert.Equal(t, 4, got.TotalMonthsTracked)
	assert.Equal(t, 4, got.ConsecutivePositiveMonths)

	// Streak of 4 plus a perfect rate: Consistent + Master, but not Champion.
	assert.Equal(t, []string{savings.BadgeConsistent, savings.BadgeMaster}, got.Badges)
}

func TestConsistency_StreakEndsAtMostRecentMonth(t *testing.T) {
	aggs := window(
		[2]string{"50000", "30000"}, // positive
		[2]string{"50000", "60000"}, // negative, breaks the streak
		[2]string{"50000", "30000"}, // positive
		[2]string{"50000", "30000"}, // positive
	)

	got, err := savings.Consistency(aggs)
	require.NoError(t, err)

	assert.Equal(t, 3, got.MonthsWithSavings)
	assert.Equal(t, 2, got.ConsecutivePositiveMonths)
	assert.True(t, got.ConsistencyRatePct.Equal(d("75")))
	assert.Empty(t, got.Badges)
}

func TestConsistency_BreakEvenMonthIsNotPositive(t *testing.T) {
	got, err := savings.Consistency(window([2]string{"50000", "50000"}))
	require.NoError(t, err)

	assert.Equal(t, 0, got.MonthsWithSavings)
	assert.Equal(t, 0, got.ConsecutivePositiveMonths)
	assert.True(t, got.ConsistencyRatePct.IsZero())
}

func TestConsistency_ChampionBadge(t *testing.T) {
	rows := make([][2]string, 7)
	rows[0] = [2]string{"50000", "60000"} // old negative month keeps rate < 100

	for i := 1; i < 7; i++ {
		rows[i] = [2]string{"50000", "30000"}
	}

	got, err := savings.Consistency(window(rows...))
	require.NoError(t, err)

	assert.Equal(t, 6, got.ConsecutivePositiveMonths)
	assert.Equal(t, []string{savings.BadgeConsistent, savings.BadgeChampion}, got.Badges)
}

func TestConsistency_EmptyWindow(t *testing.T) {
	_, err := savings.Consistency(nil)
	assert.ErrorIs(t, err, savings.ErrInsufficientData)
}

func TestAdvice(t *testing.T) {
	t.Run("ThirtyPercentRule", func(t *testing.T) {
		got, err := savings.Advice(d("80000"), d("50000"))
		require.NoError(t, err)

		assert.True(t, got.Disposable.Equal(d("30000")))
		assert.True(t, got.SavingsAmount.Equal(d("9000")))
		assert.True(t, got.SavingsPercent.Equal(d("11.25")))
		assert.Equal(t, savings.AdviceMedium, got.Level)
	})

	t.Run("CriticalWhenNothingDisposable", func(t *testing.T) {
		got, err := savings.Advice(d("50000"), d("50000"))
		require.NoError(t, err)

		assert.True(t, got.SavingsAmount.IsZero())
		assert.True(t, got.SavingsPercent.IsZero())
		assert.Equal(t, savings.AdviceCritical, got.Level)
	})

	t.Run("LowLevel", func(t *testing.T) {
		// 30% of 10000 disposable = 3000, i.e. 3% of income.
		got, err := savings.Advice(d("100000"), d("90000"))
		require.NoError(t, err)

		assert.True(t, got.SavingsPercent.Equal(d("3")))
		assert.Equal(t, savings.AdviceLow, got.Level)
	})

	t.Run("HighLevel", func(t *testing.T) {
		// 30% of 80000 disposable = 24000, i.e. 24% of income.
		got, err := savings.Advice(d("100000"), d("20000"))
		require.NoError(t, err)

		assert.True(t, got.SavingsPercent.Equal(d("24")))
		assert.Equal(t, savings.AdviceHigh, got.Level)
	})

	t.Run("NegativeInput", func(t *testing.T) {
		_, err := savings.Advice(d("-1"), d("0"))
		assert.ErrorIs(t, err, savings.ErrInvalidInput)

		_, err = savings.Advice(d("100"), d("-5"))
		assert.ErrorIs(t, err, savings.ErrInvalidInput)
	})
}
