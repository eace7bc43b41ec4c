package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fintrackhq/fintrack/internal/analytics"
	"github.com/fintrackhq/fintrack/internal/period"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func month(y int, m time.Month) period.Month { return period.Month{Year: y, Month: m} }

func TestService_Aggregates_FillsMissingMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	end := month(2025, time.June)

	repo := analytics.NewMockRepository(ctrl)
	repo.EXPECT().
		MonthlyTotals(gomock.Any(), userID, month(2025, time.April), end).
		Return([]analytics.MonthlyAggregate{
			{Month: month(2025, time.April), TotalIncome: d("50000"), TotalExpense: d("30000")},
			{Month: month(2025, time.June), TotalIncome: d("52000"), TotalExpense: d("31000")},
		}, nil)

	svc := analytics.NewService(repo)
	aggs, err := svc.Aggregates(context.Background(), userID, end, 3)
	require.NoError(t, err)

	require.Len(t, aggs, 3)
	assert.Equal(t, month(2025, time.April), aggs[0].Month)
	assert.Equal(t, month(2025, time.May), aggs[1].Month)
	assert.Equal(t, month(2025, time.June), aggs[2].Month)

	// May had no activity and is zero-filled.
	assert.True(t, aggs[1].TotalIncome.IsZero())
	assert.True(t, aggs[1].TotalExpense.IsZero())
}

func TestService_Trend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	end := month(2025, time.February)

	repo := analytics.NewMockRepository(ctrl)
	repo.EXPECT().
		MonthlyTotals(gomock.Any(), userID, month(2025, time.January), end).
		Return([]analytics.MonthlyAggregate{
			{Month: month(2025, time.January), TotalIncome: d("80000"), TotalExpense: d("50000")},
			{Month: month(2025, time.February), TotalIncome: decimal.Zero, TotalExpense: d("1000")},
		}, nil)

	svc := analytics.NewService(repo)
	points, err := svc.Trend(context.Background(), userID, end, 2)
	require.NoError(t, err)

	require.Len(t, points, 2)

	assert.True(t, points[0].Saved.Equal(d("30000")))
	assert.True(t, points[0].SaveRatePct.Equal(d("37.5")), "rate = %s", points[0].SaveRatePct)

	// No income means no meaningful save rate.
	assert.True(t, points[1].Saved.Equal(d("-1000")))
	assert.True(t, points[1].SaveRatePct.IsZero())
}

func TestService_MonthSummary_NoActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	m := month(2025, time.March)

	repo := analytics.NewMockRepository(ctrl)
	repo.EXPECT().
		MonthlyTotals(gomock.Any(), userID, m, m).
		Return(nil, nil)

	svc := analytics.NewService(repo)
	summary, err := svc.MonthSummary(context.Background(), userID, m)
	require.NoError(t, err)

	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
}
