// Package store persists budgets and alerts in Postgres. Months are stored
// as the first day of the month in a DATE column.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/budget"
	"github.com/fintrackhq/fintrack/internal/category"
	"github.com/fintrackhq/fintrack/internal/period"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UpsertBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category_id, month, monthly_limit, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, category_id, month)
		DO UPDATE SET monthly_limit = EXCLUDED.monthly_limit
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.UserID, b.CategoryID, b.Month.Start(), b.MonthlyLimit).
		Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("upserting budget: %w", err)
	}

	return nil
}

func (s *Store) GetBudget(ctx context.Context, userID, categoryID uuid.UUID, month period.Month) (*budget.Budget, error) {
	query := `
		SELECT id, user_id, category_id, month, monthly_limit, created_at
		FROM budgets
		WHERE user_id = $1 AND category_id = $2 AND month = $3
	`

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, userID, categoryID, month.Start()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	return b, nil
}

func (s *Store) ListBudgets(ctx context.Context, userID uuid.UUID, month period.Month) ([]*budget.Budget, error) {
	query := `
		SELECT b.id, b.user_id, b.category_id, b.month, b.monthly_limit, b.created_at
		FROM budgets b
		JOIN categories c ON c.id = b.category_id
		WHERE b.user_id = $1 AND b.month = $2
		ORDER BY c.name
	`

	rows, err := s.db.QueryContext(ctx, query, userID, month.Start())
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget

	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	return budgets, rows.Err()
}

func (s *Store) MonthlySpend(ctx context.Context, userID, categoryID uuid.UUID, month period.Month) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(t.amount), 0)
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1
		  AND t.category_id = $2
		  AND c.kind = $3
		  AND t.date >= $4 AND t.date < $5
	`

	var spent decimal.Decimal

	err := s.db.QueryRowContext(ctx, query,
		userID, categoryID, category.KindExpense, month.Start(), month.Next().Start()).
		Scan(&spent)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing monthly spend: %w", err)
	}

	return spent, nil
}

func (s *Store) UpsertAlert(ctx context.Context, a *budget.Alert) error {
	query := `
		INSERT INTO alerts (user_id, category_id, month, level, message, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id, category_id, month)
		DO UPDATE SET level = EXCLUDED.level, message = EXCLUDED.message
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.UserID, a.CategoryID, a.Month.Start(), a.Level, a.Message).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("upserting alert: %w", err)
	}

	return nil
}

func (s *Store) DeleteAlert(ctx context.Context, userID, categoryID uuid.UUID, month period.Month) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM alerts WHERE user_id = $1 AND category_id = $2 AND month = $3`,
		userID, categoryID, month.Start())
	if err != nil {
		return fmt.Errorf("deleting alert: %w", err)
	}

	return nil
}

func (s *Store) ListAlerts(ctx context.Context, userID uuid.UUID, month *period.Month) ([]*budget.Alert, error) {
	query := `
		SELECT id, user_id, category_id, month, level, message, created_at
		FROM alerts
		WHERE user_id = $1
	`

	args := []any{userID}

	if month != nil {
		query += ` AND month = $2`
		args = append(args, month.Start())
	}

	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*budget.Alert

	for rows.Next() {
		var a budget.Alert

		var (
			monthStart time.Time
			level      string
		)

		err := rows.Scan(&a.ID, &a.UserID, &a.CategoryID, &monthStart, &level, &a.Message, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}

		a.Month = period.Of(monthStart)
		a.Level = budget.AlertLevel(level)
		alerts = append(alerts, &a)
	}

	return alerts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBudget(row scanner) (*budget.Budget, error) {
	var b budget.Budget

	var monthStart time.Time

	err := row.Scan(&b.ID, &b.UserID, &b.CategoryID, &monthStart, &b.MonthlyLimit, &b.CreatedAt)
	if err != nil {
		return nil, err
	}

	b.Month = period.Of(monthStart)

	return &b, nil
}
