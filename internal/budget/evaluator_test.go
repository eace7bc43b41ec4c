package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeUsage(t *testing.T) {
	t.Run("percentage of limit", func(t *testing.T) {
		usage := ComputeUsage(d("250"), d("1000"))

		assert.Equal(t, "250", usage.Used.String())
		assert.Equal(t, "1000", usage.Limit.String())
		assert.Equal(t, "25", usage.Percentage.String())
	})

	t.Run("overspend exceeds 100", func(t *testing.T) {
		usage := ComputeUsage(d("1300"), d("1000"))

		assert.Equal(t, "130", usage.Percentage.String())
	})

	t.Run("rounded to two decimals", func(t *testing.T) {
		usage := ComputeUsage(d("100"), d("300"))

		assert.Equal(t, "33.33", usage.Percentage.String())
	})

	t.Run("no limit reads as zeros", func(t *testing.T) {
		usage := ComputeUsage(d("500"), decimal.Zero)

		assert.True(t, usage.Used.IsZero())
		assert.True(t, usage.Limit.IsZero())
		assert.True(t, usage.Percentage.IsZero())
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		percentage string
		level      AlertLevel
		alerting   bool
	}{
		{"0", "", false},
		{"79.999", "", false},
		{"80", AlertWarning, true},
		{"99.999", AlertWarning, true},
		{"100", AlertDanger, true},
		{"130", AlertDanger, true},
	}

	for _, tt := range tests {
		t.Run(tt.percentage, func(t *testing.T) {
			level, alerting := Classify(d(tt.percentage))

			assert.Equal(t, tt.alerting, alerting)
			assert.Equal(t, tt.level, level)
		})
	}
}
