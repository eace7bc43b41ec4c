package transaction_test

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
	"github.com/fintrackhq/fintrack/internal/transaction"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()
	catID := uuid.New()
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	groceries := &category.Category{
		ID:     catID,
		UserID: userID,
		Name:   "Groceries",
		Kind:   category.KindExpense,
	}

	type testCase struct {
		name      string
		params    transaction.CreateParams
		setupMock func(repo *transaction.MockRepository, cats *transaction.MockCategories)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: transaction.CreateParams{
				Amount:      decimal.RequireFromString("249.50"),
				CategoryID:  catID,
				Date:        day,
				Description: "weekly shop",
			},
			setupMock: func(repo *transaction.MockRepository, cats *transaction.MockCategories) {
				cats.EXPECT().Get(gomock.Any(), userID, catID).Return(groceries, nil)
				repo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						assert.Equal(t, category.KindExpense, tx.Kind)
						assert.Equal(t, "Groceries", tx.CategoryName)
						tx.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "ZeroAmount",
			params: transaction.CreateParams{
				Amount:     decimal.Zero,
				CategoryID: catID,
				Date:       day,
			},
			wantErr: transaction.ErrInvalidInput,
		},
		{
			name: "NegativeAmount",
			params: transaction.CreateParams{
				Amount:     decimal.RequireFromString("-10"),
				CategoryID: catID,
				Date:       day,
			},
			wantErr: transaction.ErrInvalidInput,
		},
		{
			name: "MissingDate",
			params: transaction.CreateParams{
				Amount:     decimal.RequireFromString("10"),
				CategoryID: catID,
			},
			wantErr: transaction.ErrInvalidInput,
		},
		{
			name: "UnknownCategory",
			params: transaction.CreateParams{
				Amount:     decimal.RequireFromString("10"),
				CategoryID: catID,
				Date:       day,
			},
			setupMock: func(_ *transaction.MockRepository, cats *transaction.MockCategories) {
				cats.EXPECT().Get(gomock.Any(), userID, catID).Return(nil, category.ErrNotFound)
			},
			wantErr: category.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			cats := transaction.NewMockCategories(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, cats)
			}

			svc := transaction.NewService(repo, cats)
			got, err := svc.Create(context.Background(), userID, tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_ImportBatch(t *testing.T) {
	userID := uuid.New()
	catID := uuid.New()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cat := &category.Category{ID: catID, UserID: userID, Name: "Utilities", Kind: category.KindExpense}

	params := []transaction.CreateParams{
		{Amount: decimal.RequireFromString("59.99"), CategoryID: catID, Date: day, Description: "internet"},
		{Amount: decimal.RequireFromString("450"), CategoryID: catID, Date: day.AddDate(0, 0, 3), Description: "electricity"},
	}

	t.Run("SkipsExistingRows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		cats := transaction.NewMockCategories(ctrl)

		cats.EXPECT().Get(gomock.Any(), userID, catID).Return(cat, nil).Times(2)

		existing := &transaction.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Amount:      decimal.RequireFromString("59.99"),
			Kind:        category.KindExpense,
			CategoryID:  catID,
			Date:        day,
			Description: "internet",
		}
		repo.EXPECT().
			FindDuplicates(gomock.Any(), userID, params).
			Return([]*transaction.Transaction{existing}, nil)

		repo.EXPECT().
			CreateTransactions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
				require.Len(t, txs, 1)
				assert.Equal(t, "electricity", txs[0].Description)
				return nil
			})

		svc := transaction.NewService(repo, cats)
		result, err := svc.ImportBatch(context.Background(), userID, params)
		require.NoError(t, err)

		assert.Len(t, result.Imported, 1)
		require.Len(t, result.Conflicts, 1)
		assert.Equal(t, existing.ID, result.Conflicts[0].Existing.ID)
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := transaction.NewService(transaction.NewMockRepository(ctrl), transaction.NewMockCategories(ctrl))
		result, err := svc.ImportBatch(context.Background(), userID, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Imported)
		assert.Empty(t, result.Conflicts)
	})

	t.Run("RejectsInvalidRow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := transaction.NewService(transaction.NewMockRepository(ctrl), transaction.NewMockCategories(ctrl))
		_, err := svc.ImportBatch(context.Background(), userID, []transaction.CreateParams{
			{Amount: decimal.Zero, CategoryID: catID, Date: day},
		})
		assert.ErrorIs(t, err, transaction.ErrInvalidInput)
	})
}
