package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goal
type Repository interface {
	CreateGoal(ctx context.Context, g *SavingsGoal) error
	GetGoal(ctx context.Context, userID, id uuid.UUID) (*SavingsGoal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]*SavingsGoal, error)
	UpdateGoal(ctx context.Context, g *SavingsGoal) error
	AddProgress(ctx context.Context, userID, id uuid.UUID, amount decimal.Decimal) (*SavingsGoal, error)
	DeleteGoal(ctx context.Context, userID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name         string
	TargetAmount decimal.Decimal
	Category     string
	Priority     int
	TargetDate   *time.Time
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*SavingsGoal, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" || !params.TargetAmount.IsPositive() {
		return nil, ErrInvalidInput
	}

	g := &SavingsGoal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  params.TargetAmount,
		CurrentAmount: decimal.Zero,
		Category:      strings.TrimSpace(params.Category),
		Priority:      params.Priority,
		TargetDate:    params.TargetDate,
	}
	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, fmt.Errorf("creating goal: %w", err)
	}

	return g, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*SavingsGoal, error) {
	return s.repo.GetGoal(ctx, userID, id)
}

// List returns the user's goals ordered by priority, most urgent first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*SavingsGoal, error) {
	return s.repo.ListGoals(ctx, userID)
}

type UpdateParams struct {
	Name         *string
	TargetAmount *decimal.Decimal
	Category     *string
	Priority     *int
	TargetDate   *time.Time
}

// Update applies the set fields of params to an existing goal. Progress is
// not updatable here; AddProgress is the only mutation of CurrentAmount.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*SavingsGoal, error) {
	g, err := s.repo.GetGoal(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}

		g.Name = name
	}

	if params.TargetAmount != nil {
		if !params.TargetAmount.IsPositive() {
			return nil, ErrInvalidInput
		}

		g.TargetAmount = *params.TargetAmount
	}

	if params.Category != nil {
		g.Category = strings.TrimSpace(*params.Category)
	}

	if params.Priority != nil {
		g.Priority = *params.Priority
	}

	if params.TargetDate != nil {
		g.TargetDate = params.TargetDate
	}

	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, fmt.Errorf("updating goal: %w", err)
	}

	return g, nil
}

// AddProgress adds a positive contribution to the goal's saved amount. The
// increment happens in a single store update, so concurrent contributions
// never lose each other.
func (s *Service) AddProgress(ctx context.Context, userID, id uuid.UUID, amount decimal.Decimal) (*SavingsGoal, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidInput
	}

	g, err := s.repo.AddProgress(ctx, userID, id, amount)
	if err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteGoal(ctx, userID, id)
}
