package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack/internal/period"
)

func TestParse(t *testing.T) {
	m, err := period.Parse("2025-03")
	require.NoError(t, err)
	assert.Equal(t, 2025, m.Year)
	assert.Equal(t, time.March, m.Month)
	assert.Equal(t, "2025-03", m.String())

	_, err = period.Parse("2025-13")
	assert.Error(t, err)

	_, err = period.Parse("March 2025")
	assert.Error(t, err)
}

func TestMonthArithmetic(t *testing.T) {
	m := period.Month{Year: 2025, Month: time.December}

	assert.Equal(t, period.Month{Year: 2026, Month: time.January}, m.Next())
	assert.Equal(t, period.Month{Year: 2025, Month: time.June}, m.AddMonths(-6))
	assert.True(t, m.Before(m.Next()))
	assert.False(t, m.Next().Before(m))
}

func TestContains(t *testing.T) {
	m := period.Month{Year: 2025, Month: time.February}

	assert.True(t, m.Contains(time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)))
}
