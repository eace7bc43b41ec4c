package invest_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack/internal/invest"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestProjectLumpsum(t *testing.T) {
	got, err := invest.ProjectLumpsum(d("100000"), d("12"), 10)
	require.NoError(t, err)

	// 100000 * 1.12^10 = 310584.82..., rounded to the nearest unit.
	assert.True(t, got.MaturityValue.Equal(d("310585")), "maturity = %s", got.MaturityValue)
	assert.True(t, got.Gain.Equal(d("210585")), "gain = %s", got.Gain)
	assert.True(t, got.TotalInvested.Equal(d("100000")))
}

func TestProjectLumpsum_InvalidInput(t *testing.T) {
	cases := []struct {
		name      string
		principal string
		rate      string
		years     int
	}{
		{"ZeroPrincipal", "0", "12", 10},
		{"NegativePrincipal", "-1", "12", 10},
		{"ZeroRate", "100000", "0", 10},
		{"ZeroYears", "100000", "12", 0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := invest.ProjectLumpsum(d(tt.principal), d(tt.rate), tt.years)
			assert.ErrorIs(t, err, invest.ErrInvalidInput)
		})
	}
}

func TestProjectSIP_MatchesAnnuityDueClosedForm(t *testing.T) {
	got, err := invest.ProjectSIP(d("10000"), d("12"), 10, decimal.Zero)
	require.NoError(t, err)

	// FV = P * ((1+r)^n - 1)/r * (1+r) with r = 0.01, n = 120.
	r := 0.12 / 12
	n := 120.0
	closedForm := 10000 * ((math.Pow(1+r, n) - 1) / r) * (1 + r)

	assert.InDelta(t, closedForm, got.MaturityValue.InexactFloat64(), 1.0)
	assert.True(t, got.TotalInvested.Equal(d("1200000")))
	assert.True(t, got.Gain.Equal(got.MaturityValue.Sub(got.TotalInvested)))
}

func TestProjectSIP_ZeroRate(t *testing.T) {
	got, err := invest.ProjectSIP(d("1000"), decimal.Zero, 1, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, got.TotalInvested.Equal(d("12000")))
	assert.True(t, got.MaturityValue.Equal(d("12000")))
	assert.True(t, got.Gain.IsZero())
}

func TestProjectSIP_StepUpRaisesContributionAtYearBoundary(t *testing.T) {
	// At 0% rate the maturity equals the invested total, which makes the
	// step-up schedule directly observable: 12*1000 + 12*1100 = 25200.
	got, err := invest.ProjectSIP(d("1000"), decimal.Zero, 2, d("10"))
	require.NoError(t, err)

	assert.True(t, got.TotalInvested.Equal(d("25200")), "invested = %s", got.TotalInvested)
	assert.True(t, got.MaturityValue.Equal(d("25200")))
}

func TestProjectSIP_StepUpNeverDecreasesOutcome(t *testing.T) {
	base, err := invest.ProjectSIP(d("5000"), d("10"), 5, decimal.Zero)
	require.NoError(t, err)

	for _, stepUp := range []string{"1", "5", "10", "25"} {
		stepped, err := invest.ProjectSIP(d("5000"), d("10"), 5, d(stepUp))
		require.NoError(t, err)

		assert.True(t, stepped.TotalInvested.GreaterThanOrEqual(base.TotalInvested), "stepUp=%s", stepUp)
		assert.True(t, stepped.MaturityValue.GreaterThanOrEqual(base.MaturityValue), "stepUp=%s", stepUp)
	}
}

func TestProjectSIP_InvalidInput(t *testing.T) {
	cases := []struct {
		name    string
		monthly string
		rate    string
		years   int
		stepUp  string
	}{
		{"ZeroContribution", "0", "12", 10, "0"},
		{"NegativeRate", "1000", "-1", 10, "0"},
		{"ZeroYears", "1000", "12", 0, "0"},
		{"NegativeStepUp", "1000", "12", 10, "-5"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := invest.ProjectSIP(d(tt.monthly), d(tt.rate), tt.years, d(tt.stepUp))
			assert.ErrorIs(t, err, invest.ErrInvalidInput)
		})
	}
}
