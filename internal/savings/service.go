package savings

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/analytics"
	"github.com/fintrackhq/fintrack/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=savings
type Repository interface {
	ListAutoSaveRecords(ctx context.Context, userID uuid.UUID, limit int) ([]*AutoSaveRecord, error)
}

// Aggregates supplies the monthly income/expense window the scorers consume.
// Satisfied by *analytics.Service.
type Aggregates interface {
	Aggregates(ctx context.Context, userID uuid.UUID, end period.Month, windowMonths int) ([]analytics.MonthlyAggregate, error)
	MonthSummary(ctx context.Context, userID uuid.UUID, month period.Month) (analytics.Summary, error)
}

type Service struct {
	repo Repository
	aggs Aggregates
}

func NewService(repo Repository, aggs Aggregates) *Service {
	return &Service{repo: repo, aggs: aggs}
}

// SafetyScore assembles the aggregate window ending at end and scores it
// against the current savings balance.
func (s *Service) SafetyScore(ctx context.Context, userID uuid.UUID, end period.Month, windowMonths int, balance decimal.Decimal) (SafetyResult, error) {
	window, err := s.aggs.Aggregates(ctx, userID, end, windowMonths)
	if err != nil {
		return SafetyResult{}, err
	}

	return SafetyScore(window, balance)
}

// Consistency scores the savings streak over the window ending at end.
func (s *Service) Consistency(ctx context.Context, userID uuid.UUID, end period.Month, windowMonths int) (ConsistencyResult, error) {
	window, err := s.aggs.Aggregates(ctx, userID, end, windowMonths)
	if err != nil {
		return ConsistencyResult{}, err
	}

	return Consistency(window)
}

// AutoAdvice computes the automated-savings recommendation for one month from
// the live transaction snapshot.
func (s *Service) AutoAdvice(ctx context.Context, userID uuid.UUID, month period.Month) (AdviceResult, error) {
	summary, err := s.aggs.MonthSummary(ctx, userID, month)
	if err != nil {
		return AdviceResult{}, err
	}

	return Advice(summary.TotalIncome, summary.TotalExpense)
}

// Records lists recent automated-savings log entries, newest first.
func (s *Service) Records(ctx context.Context, userID uuid.UUID, limit int) ([]*AutoSaveRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.repo.ListAutoSaveRecords(ctx, userID, limit)
}
