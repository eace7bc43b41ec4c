package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/analytics"
	"github.com/fintrackhq/fintrack/internal/period"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// MonthlyTotals groups the user's transactions by month in a single query.
func (s *Store) MonthlyTotals(ctx context.Context, userID uuid.UUID, from, to period.Month) ([]analytics.MonthlyAggregate, error) {
	query := `
		SELECT
			date_trunc('month', t.date)::date AS month,
			COALESCE(SUM(t.amount) FILTER (WHERE c.kind = 'income'), 0) AS total_income,
			COALESCE(SUM(t.amount) FILTER (WHERE c.kind = 'expense'), 0) AS total_expense
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1 AND t.date >= $2 AND t.date < $3
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := s.db.QueryContext(ctx, query, userID, from.Start(), to.Next().Start())
	if err != nil {
		return nil, fmt.Errorf("querying monthly totals: %w", err)
	}
	defer rows.Close()

	var aggs []analytics.MonthlyAggregate

	for rows.Next() {
		var (
			monthStart      sql.NullTime
			income, expense decimal.Decimal
		)

		if err := rows.Scan(&monthStart, &income, &expense); err != nil {
			return nil, fmt.Errorf("scanning monthly total: %w", err)
		}

		aggs = append(aggs, analytics.MonthlyAggregate{
			Month:        period.Of(monthStart.Time),
			TotalIncome:  income,
			TotalExpense: expense,
		})
	}

	return aggs, rows.Err()
}

func (s *Store) ExpenseByCategory(ctx context.Context, userID uuid.UUID, month period.Month) ([]analytics.CategoryTotal, error) {
	query := `
		SELECT c.name, SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1 AND c.kind = 'expense' AND t.date >= $2 AND t.date < $3
		GROUP BY c.name
		ORDER BY total DESC
	`

	return s.queryCategoryTotals(ctx, query, userID, month.Start(), month.Next().Start())
}

func (s *Store) TopExpenseCategories(ctx context.Context, userID uuid.UUID, limit int) ([]analytics.CategoryTotal, error) {
	query := `
		SELECT c.name, SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1 AND c.kind = 'expense'
		GROUP BY c.name
		ORDER BY total DESC
		LIMIT $2
	`

	return s.queryCategoryTotals(ctx, query, userID, limit)
}

func (s *Store) queryCategoryTotals(ctx context.Context, query string, args ...any) ([]analytics.CategoryTotal, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying category totals: %w", err)
	}
	defer rows.Close()

	var totals []analytics.CategoryTotal

	for rows.Next() {
		var ct analytics.CategoryTotal

		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, fmt.Errorf("scanning category total: %w", err)
		}

		totals = append(totals, ct)
	}

	return totals, rows.Err()
}
