package savings_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fintrackhq/fintrack/internal/analytics"
	"github.com/fintrackhq/fintrack/internal/period"
	"github.com/fintrackhq/fintrack/internal/savings"
)

func TestService_AutoAdvice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	month := period.Month{Year: 2025, Month: time.June}

	aggs := savings.NewMockAggregates(ctrl)
	aggs.EXPECT().
		MonthSummary(gomock.Any(), userID, month).
		Return(analytics.Summary{TotalIncome: d("80000"), TotalExpense: d("50000")}, nil)

	svc := savings.NewService(savings.NewMockRepository(ctrl), aggs)
	got, err := svc.AutoAdvice(context.Background(), userID, month)
	require.NoError(t, err)

	assert.True(t, got.SavingsAmount.Equal(d("9000")))
	assert.True(t, got.SavingsPercent.Equal(d("11.25")))
}

func TestService_SafetyScore_PropagatesInsufficientData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	end := period.Month{Year: 2025, Month: time.June}

	aggs := savings.NewMockAggregates(ctrl)
	aggs.EXPECT().
		Aggregates(gomock.Any(), userID, end, 6).
		Return(nil, nil)

	svc := savings.NewService(savings.NewMockRepository(ctrl), aggs)
	_, err := svc.SafetyScore(context.Background(), userID, end, 6, d("1000"))
	assert.ErrorIs(t, err, savings.ErrInsufficientData)
}

func TestService_Records_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := savings.NewMockRepository(ctrl)
	repo.EXPECT().
		ListAutoSaveRecords(gomock.Any(), userID, 10).
		Return([]*savings.AutoSaveRecord{{Status: savings.StatusApplied}}, nil)

	svc := savings.NewService(repo, savings.NewMockAggregates(ctrl))
	records, err := svc.Records(context.Background(), userID, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
