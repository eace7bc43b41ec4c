package budget

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fintrackhq/fintrack/internal/category"
	"github.com/fintrackhq/fintrack/internal/period"
)

var march = period.Month{Year: 2025, Month: time.March}

func expenseCategory(userID uuid.UUID) *category.Category {
	return &category.Category{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Groceries",
		Kind:   category.KindExpense,
	}
}

func TestServiceSet(t *testing.T) {
	userID := uuid.New()

	t.Run("upserts a valid budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)
		categories := NewMockCategories(ctrl)

		cat := expenseCategory(userID)
		categories.EXPECT().Get(gomock.Any(), userID, cat.ID).Return(cat, nil)
		repo.EXPECT().UpsertBudget(gomock.Any(), gomock.Any()).Return(nil)

		service := NewService(repo, categories)

		b, err := service.Set(context.Background(), userID, SetParams{
			CategoryID:   cat.ID,
			Month:        march,
			MonthlyLimit: d("1000"),
		})
		require.NoError(t, err)
		assert.Equal(t, march, b.Month)
		assert.Equal(t, "1000", b.MonthlyLimit.String())
	})

	t.Run("rejects non-positive limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewService(NewMockRepository(ctrl), NewMockCategories(ctrl))

		_, err := service.Set(context.Background(), userID, SetParams{
			CategoryID:   uuid.New(),
			Month:        march,
			MonthlyLimit: decimal.Zero,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects income category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)
		categories := NewMockCategories(ctrl)

		cat := expenseCategory(userID)
		cat.Kind = category.KindIncome
		categories.EXPECT().Get(gomock.Any(), userID, cat.ID).Return(cat, nil)

		service := NewService(repo, categories)

		_, err := service.Set(context.Background(), userID, SetParams{
			CategoryID:   cat.ID,
			Month:        march,
			MonthlyLimit: d("1000"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)
		categories := NewMockCategories(ctrl)

		id := uuid.New()
		categories.EXPECT().Get(gomock.Any(), userID, id).Return(nil, category.ErrNotFound)

		service := NewService(repo, categories)

		_, err := service.Set(context.Background(), userID, SetParams{
			CategoryID:   id,
			Month:        march,
			MonthlyLimit: d("1000"),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceUsage(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()

	t.Run("missing budget reads as zeros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetBudget(gomock.Any(), userID, categoryID, march).Return(nil, ErrNotFound)

		service := NewService(repo, NewMockCategories(ctrl))

		usage, err := service.Usage(context.Background(), userID, categoryID, march)
		require.NoError(t, err)
		assert.True(t, usage.Used.IsZero())
		assert.True(t, usage.Limit.IsZero())
		assert.True(t, usage.Percentage.IsZero())
	})

	t.Run("computes percentage from monthly spend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetBudget(gomock.Any(), userID, categoryID, march).
			Return(&Budget{MonthlyLimit: d("1000")}, nil)
		repo.EXPECT().MonthlySpend(gomock.Any(), userID, categoryID, march).
			Return(d("850"), nil)

		service := NewService(repo, NewMockCategories(ctrl))

		usage, err := service.Usage(context.Background(), userID, categoryID, march)
		require.NoError(t, err)
		assert.Equal(t, "85", usage.Percentage.String())
	})
}

func TestServiceCheckAlerts(t *testing.T) {
	userID := uuid.New()

	type mocks struct {
		repo       *MockRepository
		categories *MockCategories
	}

	tests := []struct {
		name       string
		setupMock  func(m mocks, categoryID uuid.UUID)
		wantStatus CheckStatus
		wantLevel  AlertLevel
	}{
		{
			name: "income category clears the alert",
			setupMock: func(m mocks, categoryID uuid.UUID) {
				m.categories.EXPECT().Get(gomock.Any(), userID, categoryID).
					Return(&category.Category{ID: categoryID, UserID: userID, Kind: category.KindIncome}, nil)
				m.repo.EXPECT().DeleteAlert(gomock.Any(), userID, categoryID, march).Return(nil)
			},
			wantStatus: StatusIncomeCategory,
		},
		{
			name: "no budget clears the alert",
			setupMock: func(m mocks, categoryID uuid.UUID) {
				m.categories.EXPECT().Get(gomock.Any(), userID, categoryID).
					Return(&category.Category{ID: categoryID, UserID: userID, Kind: category.KindExpense}, nil)
				m.repo.EXPECT().GetBudget(gomock.Any(), userID, categoryID, march).Return(nil, ErrNotFound)
				m.repo.EXPECT().DeleteAlert(gomock.Any(), userID, categoryID, march).Return(nil)
			},
			wantStatus: StatusNoBudget,
		},
		{
			name: "under the warning threshold clears the alert",
			setupMock: func(m mocks, categoryID uuid.UUID) {
				m.categories.EXPECT().Get(gomock.Any(), userID, categoryID).
					Return(&category.Category{ID: categoryID, UserID: userID, Kind: category.KindExpense}, nil)
				m.repo.EXPECT().GetBudget(gomock.Any(), userID, categoryID, march).
					Return(&Budget{MonthlyLimit: d("1000")}, nil)
				m.repo.EXPECT().MonthlySpend(gomock.Any(), userID, categoryID, march).
					Return(d("799.99"), nil)
				m.repo.EXPECT().DeleteAlert(gomock.Any(), userID, categoryID, march).Return(nil)
			},
			wantStatus: StatusWithinLimit,
		},
		{
			name: "at 80 percent raises a warning",
			setupMock: func(m mocks, categoryID uuid.UUID) {
				m.categories.EXPECT().Get(gomock.Any(), userID, categoryID).
					Return(&category.Category{ID: categoryID, UserID: userID, Kind: category.KindExpense}, nil)
				m.repo.EXPECT().GetBudget(gomock.Any(), userID, categoryID, march).
					Return(&Budget{MonthlyLimit: d("1000")}, nil)
				m.repo.EXPECT().MonthlySpend(gomock.Any(), userID, categoryID, march).
					Return(d("800"), nil)
				m.repo.EXPECT().UpsertAlert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: StatusAlertRaised,
			wantLevel:  AlertWarning,
		},
		{
			name: "over the limit raises danger",
			setupMock: func(m mocks, categoryID uuid.UUID) {
				m.categories.EXPECT().Get(gomock.Any(), userID, categoryID).
					Return(&category.Category{ID: categoryID, UserID: userID, Kind: category.KindExpense}, nil)
				m.repo.EXPECT().GetBudget(gomock.Any(), userID, categoryID, march).
					Return(&Budget{MonthlyLimit: d("1000")}, nil)
				m.repo.EXPECT().MonthlySpend(gomock.Any(), userID, categoryID, march).
					Return(d("1250"), nil)
				m.repo.EXPECT().UpsertAlert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: StatusAlertRaised,
			wantLevel:  AlertDanger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mocks{repo: NewMockRepository(ctrl), categories: NewMockCategories(ctrl)}
			categoryID := uuid.New()

			tt.setupMock(m, categoryID)

			service := NewService(m.repo, m.categories)

			result, err := service.CheckAlerts(context.Background(), userID, categoryID, march)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, result.Status)

			if tt.wantStatus == StatusAlertRaised {
				require.NotNil(t, result.Alert)
				assert.Equal(t, tt.wantLevel, result.Alert.Level)
				assert.NotEmpty(t, result.Alert.Message)
			} else {
				assert.Nil(t, result.Alert)
			}
		})
	}

	t.Run("rerun upserts the same slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)
		categories := NewMockCategories(ctrl)
		categoryID := uuid.New()

		categories.EXPECT().Get(gomock.Any(), userID, categoryID).
			Return(&category.Category{ID: categoryID, UserID: userID, Kind: category.KindExpense}, nil).
			Times(2)
		repo.EXPECT().GetBudget(gomock.Any(), userID, categoryID, march).
			Return(&Budget{MonthlyLimit: d("1000")}, nil).
			Times(2)
		repo.EXPECT().MonthlySpend(gomock.Any(), userID, categoryID, march).
			Return(d("900"), nil).
			Times(2)
		repo.EXPECT().UpsertAlert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		service := NewService(repo, categories)

		for i := 0; i < 2; i++ {
			result, err := service.CheckAlerts(context.Background(), userID, categoryID, march)
			require.NoError(t, err)
			assert.Equal(t, StatusAlertRaised, result.Status)
			assert.Equal(t, AlertWarning, result.Alert.Level)
		}
	})
}
