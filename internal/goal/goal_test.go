package goal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    string
	}{
		{"partial", "2500", "10000", "25"},
		{"rounded", "1000", "3000", "33.33"},
		{"complete", "10000", "10000", "100"},
		{"overfunded capped at 100", "12000", "10000", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &SavingsGoal{CurrentAmount: d(tt.current), TargetAmount: d(tt.target)}

			assert.Equal(t, tt.want, g.ProgressPercent().String())
		})
	}
}

func TestDaysRemaining(t *testing.T) {
	today := day(2025, time.June, 1)

	t.Run("nil without target date", func(t *testing.T) {
		g := &SavingsGoal{}

		assert.Nil(t, g.DaysRemaining(today))
	})

	t.Run("counts days to target", func(t *testing.T) {
		target := day(2025, time.July, 1)
		g := &SavingsGoal{TargetDate: &target}

		remaining := g.DaysRemaining(today)
		require.NotNil(t, remaining)
		assert.Equal(t, 30, *remaining)
	})

	t.Run("negative once passed", func(t *testing.T) {
		target := day(2025, time.May, 22)
		g := &SavingsGoal{TargetDate: &target}

		remaining := g.DaysRemaining(today)
		require.NotNil(t, remaining)
		assert.Equal(t, -10, *remaining)
	})
}

func TestOnTrack(t *testing.T) {
	created := day(2025, time.January, 1)
	target := day(2025, time.December, 27) // 360 days out

	goalWith := func(current string) *SavingsGoal {
		return &SavingsGoal{
			TargetAmount:  d("12000"),
			CurrentAmount: d(current),
			TargetDate:    &target,
			CreatedAt:     created,
		}
	}

	t.Run("nil without target date", func(t *testing.T) {
		g := goalWith("6000")
		g.TargetDate = nil

		assert.Nil(t, g.OnTrack(day(2025, time.June, 1)))
	})

	t.Run("nil when schedule has no length", func(t *testing.T) {
		g := goalWith("6000")
		g.TargetDate = &created

		assert.Nil(t, g.OnTrack(day(2025, time.June, 1)))
	})

	t.Run("ahead of schedule", func(t *testing.T) {
		// 90 of 360 days elapsed, 25% expected; 50% saved.
		got := goalWith("6000").OnTrack(day(2025, time.April, 1))
		require.NotNil(t, got)
		assert.True(t, *got)
	})

	t.Run("exactly on schedule", func(t *testing.T) {
		// 90 of 360 days elapsed, 25% expected and 25% saved.
		got := goalWith("3000").OnTrack(day(2025, time.April, 1))
		require.NotNil(t, got)
		assert.True(t, *got)
	})

	t.Run("behind schedule", func(t *testing.T) {
		got := goalWith("2000").OnTrack(day(2025, time.April, 1))
		require.NotNil(t, got)
		assert.False(t, *got)
	})
}
