package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/category"
	"github.com/fintrackhq/fintrack/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	UpsertBudget(ctx context.Context, b *Budget) error
	GetBudget(ctx context.Context, userID, categoryID uuid.UUID, month period.Month) (*Budget, error)
	ListBudgets(ctx context.Context, userID uuid.UUID, month period.Month) ([]*Budget, error)
	MonthlySpend(ctx context.Context, userID, categoryID uuid.UUID, month period.Month) (decimal.Decimal, error)
	UpsertAlert(ctx context.Context, a *Alert) error
	DeleteAlert(ctx context.Context, userID, categoryID uuid.UUID, month period.Month) error
	ListAlerts(ctx context.Context, userID uuid.UUID, month *period.Month) ([]*Alert, error)
}

// Categories resolves category records for kind checks. Implemented by
// *category.Service.
type Categories interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*category.Category, error)
}

type Service struct {
	repo       Repository
	categories Categories
}

func NewService(repo Repository, categories Categories) *Service {
	return &Service{repo: repo, categories: categories}
}

type SetParams struct {
	CategoryID   uuid.UUID
	Month        period.Month
	MonthlyLimit decimal.Decimal
}

// Set creates or replaces the budget for (category, month). The category
// must exist and be an expense category; income cannot be budgeted.
func (s *Service) Set(ctx context.Context, userID uuid.UUID, params SetParams) (*Budget, error) {
	if !params.MonthlyLimit.IsPositive() || params.Month.IsZero() {
		return nil, ErrInvalidInput
	}

	cat, err := s.categories.Get(ctx, userID, params.CategoryID)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("resolving category: %w", err)
	}

	if cat.Kind != category.KindExpense {
		return nil, ErrInvalidInput
	}

	b := &Budget{
		UserID:       userID,
		CategoryID:   params.CategoryID,
		Month:        params.Month,
		MonthlyLimit: params.MonthlyLimit,
	}
	if err := s.repo.UpsertBudget(ctx, b); err != nil {
		return nil, fmt.Errorf("upserting budget: %w", err)
	}

	return b, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, month period.Month) ([]*Budget, error) {
	return s.repo.ListBudgets(ctx, userID, month)
}

// Usage reports spending against the budget of (category, month). A missing
// budget is not an error, it reads as all zeros.
func (s *Service) Usage(ctx context.Context, userID, categoryID uuid.UUID, month period.Month) (Usage, error) {
	b, err := s.repo.GetBudget(ctx, userID, categoryID, month)
	if errors.Is(err, ErrNotFound) {
		return ComputeUsage(decimal.Zero, decimal.Zero), nil
	}
	if err != nil {
		return Usage{}, fmt.Errorf("loading budget: %w", err)
	}

	spent, err := s.repo.MonthlySpend(ctx, userID, categoryID, month)
	if err != nil {
		return Usage{}, fmt.Errorf("summing monthly spend: %w", err)
	}

	return ComputeUsage(spent, b.MonthlyLimit), nil
}

// CheckAlerts recomputes usage for (category, month) and reconciles the
// single alert slot for it: removed when the category is income, unbudgeted
// or back under the warning threshold, upserted otherwise. Re-running
// without new transactions changes nothing.
func (s *Service) CheckAlerts(ctx context.Context, userID, categoryID uuid.UUID, month period.Month) (CheckResult, error) {
	cat, err := s.categories.Get(ctx, userID, categoryID)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return CheckResult{}, ErrNotFound
		}

		return CheckResult{}, fmt.Errorf("resolving category: %w", err)
	}

	if cat.Kind == category.KindIncome {
		if err := s.repo.DeleteAlert(ctx, userID, categoryID, month); err != nil {
			return CheckResult{}, fmt.Errorf("clearing alert: %w", err)
		}

		return CheckResult{Status: StatusIncomeCategory}, nil
	}

	usage, err := s.Usage(ctx, userID, categoryID, month)
	if err != nil {
		return CheckResult{}, err
	}

	if usage.Limit.IsZero() {
		if err := s.repo.DeleteAlert(ctx, userID, categoryID, month); err != nil {
			return CheckResult{}, fmt.Errorf("clearing alert: %w", err)
		}

		return CheckResult{Status: StatusNoBudget}, nil
	}

	level, alerting := Classify(usage.Percentage)
	if !alerting {
		if err := s.repo.DeleteAlert(ctx, userID, categoryID, month); err != nil {
			return CheckResult{}, fmt.Errorf("clearing alert: %w", err)
		}

		return CheckResult{Status: StatusWithinLimit}, nil
	}

	alert := &Alert{
		UserID:     userID,
		CategoryID: categoryID,
		Month:      month,
		Level:      level,
		Message:    alertMessage(level),
	}
	if err := s.repo.UpsertAlert(ctx, alert); err != nil {
		return CheckResult{}, fmt.Errorf("upserting alert: %w", err)
	}

	return CheckResult{Status: StatusAlertRaised, Alert: alert}, nil
}

// Alerts lists the user's active alerts, optionally narrowed to one month.
func (s *Service) Alerts(ctx context.Context, userID uuid.UUID, month *period.Month) ([]*Alert, error) {
	return s.repo.ListAlerts(ctx, userID, month)
}
