package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack/internal/category"
	"github.com/fintrackhq/fintrack/internal/period"
	"github.com/fintrackhq/fintrack/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=transactions_mock.go -package=recurring

const defaultWindowMonths = 6

// Transactions lists transactions for detection windows. Implemented by
// *transaction.Service.
type Transactions interface {
	List(ctx context.Context, userID uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

type Service struct {
	transactions Transactions
}

func NewService(transactions Transactions) *Service {
	return &Service{transactions: transactions}
}

// Detect runs recurrence detection over the expenses of the trailing
// windowMonths calendar months ending at end. A non-positive window falls
// back to six months.
func (s *Service) Detect(ctx context.Context, userID uuid.UUID, end period.Month, windowMonths int) (Result, error) {
	if windowMonths <= 0 {
		windowMonths = defaultWindowMonths
	}

	from := end.AddMonths(-(windowMonths - 1)).Start()
	to := end.Next().Start()
	kind := category.KindExpense

	expenses, err := s.transactions.List(ctx, userID, transaction.ListFilter{
		Kind: &kind,
		From: &from,
		To:   &to,
	})
	if err != nil {
		return Result{}, fmt.Errorf("listing expenses: %w", err)
	}

	return Detect(expenses), nil
}
