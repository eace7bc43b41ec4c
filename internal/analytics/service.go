package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/money"
	"github.com/fintrackhq/fintrack/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=analytics
type Repository interface {
	// MonthlyTotals returns aggregates for months inside [from, to] that have
	// at least one transaction. Months without activity are absent.
	MonthlyTotals(ctx context.Context, userID uuid.UUID, from, to period.Month) ([]MonthlyAggregate, error)
	ExpenseByCategory(ctx context.Context, userID uuid.UUID, month period.Month) ([]CategoryTotal, error)
	TopExpenseCategories(ctx context.Context, userID uuid.UUID, limit int) ([]CategoryTotal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Aggregates returns one aggregate per month for the windowMonths-month window
// ending at end, oldest first. Months without activity appear with zero totals
// so that consumers see a contiguous series.
func (s *Service) Aggregates(ctx context.Context, userID uuid.UUID, end period.Month, windowMonths int) ([]MonthlyAggregate, error) {
	if windowMonths <= 0 {
		windowMonths = 6
	}

	start := end.AddMonths(-(windowMonths - 1))

	rows, err := s.repo.MonthlyTotals(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[period.Month]MonthlyAggregate, len(rows))
	for _, r := range rows {
		byMonth[r.Month] = r
	}

	aggs := make([]MonthlyAggregate, 0, windowMonths)
	m := start

	for i := 0; i < windowMonths; i++ {
		if agg, ok := byMonth[m]; ok {
			aggs = append(aggs, agg)
		} else {
			aggs = append(aggs, MonthlyAggregate{
				Month:        m,
				TotalIncome:  decimal.Zero,
				TotalExpense: decimal.Zero,
			})
		}

		m = m.Next()
	}

	return aggs, nil
}

// MonthSummary returns the income/expense totals of a single month.
func (s *Service) MonthSummary(ctx context.Context, userID uuid.UUID, month period.Month) (Summary, error) {
	rows, err := s.repo.MonthlyTotals(ctx, userID, month, month)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{TotalIncome: decimal.Zero, TotalExpense: decimal.Zero}

	if len(rows) > 0 {
		summary.TotalIncome = rows[0].TotalIncome
		summary.TotalExpense = rows[0].TotalExpense
	}

	return summary, nil
}

// Trend returns the savings trend over the window, oldest first.
func (s *Service) Trend(ctx context.Context, userID uuid.UUID, end period.Month, windowMonths int) ([]TrendPoint, error) {
	aggs, err := s.Aggregates(ctx, userID, end, windowMonths)
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, 0, len(aggs))

	for _, a := range aggs {
		saved := a.Saved()
		rate := decimal.Zero

		if a.TotalIncome.IsPositive() {
			rate = money.Percent(saved, a.TotalIncome)
		}

		points = append(points, TrendPoint{
			Month:       a.Month,
			Income:      money.Round2(a.TotalIncome),
			Expense:     money.Round2(a.TotalExpense),
			Saved:       money.Round2(saved),
			SaveRatePct: rate,
		})
	}

	return points, nil
}

func (s *Service) ExpenseByCategory(ctx context.Context, userID uuid.UUID, month period.Month) ([]CategoryTotal, error) {
	return s.repo.ExpenseByCategory(ctx, userID, month)
}

func (s *Service) TopExpenseCategories(ctx context.Context, userID uuid.UUID, limit int) ([]CategoryTotal, error) {
	if limit <= 0 {
		limit = 5
	}

	return s.repo.TopExpenseCategories(ctx, userID, limit)
}
