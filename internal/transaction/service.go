package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/category"
	"github.com/fintrackhq/fintrack/internal/period"
)

var (
	ErrNotFound     = errors.New("transaction not found")
	ErrInvalidInput = errors.New("invalid transaction input")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error

	// FindDuplicates returns stored transactions matching any of the given
	// params on (date, amount, kind, description) within the params' date range.
	FindDuplicates(ctx context.Context, userID uuid.UUID, params []CreateParams) ([]*Transaction, error)
	CreateTransactions(ctx context.Context, txs []*Transaction) error
}

// Categories is the category lookup the service needs to enforce kind
// consistency. Satisfied by *category.Service.
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

type CreateParams struct {
	Amount      decimal.Decimal
	CategoryID  uuid.UUID
	Date        time.Time
	Description string
}

type ListFilter struct {
	Kind       *category.Kind
	CategoryID *uuid.UUID
	Month      *period.Month
	From       *time.Time
	To         *time.Time
}

// Create validates the params against the owning category and stores the
// transaction. The transaction's kind is inherited from the category, so a
// transaction can never disagree with its category.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Transaction, error) {
	if !params.Amount.IsPositive() || params.Date.IsZero() {
		return nil, ErrInvalidInput
	}

	cat, err := s.categories.Get(ctx, userID, params.CategoryID)
	if err != nil {
		return nil, err
	}

	tx := &Transaction{
		UserID:       userID,
		Amount:       params.Amount,
		Kind:         cat.Kind,
		CategoryID:   cat.ID,
		CategoryName: cat.Name,
		Date:         params.Date,
		Description:  params.Description,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, userID, filter)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, userID, id)
}

type ImportResult struct {
	Imported  []*Transaction
	Conflicts []Conflict
}

type Conflict struct {
	Incoming CreateParams
	Existing *Transaction
}

// ImportBatch stores a batch of transactions, skipping any that already exist
// with the same date, amount, kind and description. Conflicting rows are
// reported back instead of being written twice.
func (s *Service) ImportBatch(ctx context.Context, userID uuid.UUID, params []CreateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	txs := make([]*Transaction, 0, len(params))

	for _, p := range params {
		if !p.Amount.IsPositive() || p.Date.IsZero() {
			return nil, ErrInvalidInput
		}

		cat, err := s.categories.Get(ctx, userID, p.CategoryID)
		if err != nil {
			return nil, err
		}

		txs = append(txs, &Transaction{
			UserID:       userID,
			Amount:       p.Amount,
			Kind:         cat.Kind,
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			Date:         p.Date,
			Description:  p.Description,
		})
	}

	duplicates, err := s.repo.FindDuplicates(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	type dupKey struct {
		Date        string
		Amount      string
		Kind        category.Kind
		Description string
	}

	lookup := make(map[dupKey]*Transaction, len(duplicates))
	for _, d := range duplicates {
		lookup[dupKey{
			Date:        d.Date.Format(time.DateOnly),
			Amount:      d.Amount.StringFixed(2),
			Kind:        d.Kind,
			Description: d.Description,
		}] = d
	}

	result := &ImportResult{}

	var fresh []*Transaction

	for i, tx := range txs {
		k := dupKey{
			Date:        tx.Date.Format(time.DateOnly),
			Amount:      tx.Amount.StringFixed(2),
			Kind:        tx.Kind,
			Description: tx.Description,
		}

		if existing, found := lookup[k]; found {
			result.Conflicts = append(result.Conflicts, Conflict{Incoming: params[i], Existing: existing})
			continue
		}

		fresh = append(fresh, tx)
	}

	if len(fresh) > 0 {
		if err := s.repo.CreateTransactions(ctx, fresh); err != nil {
			return nil, fmt.Errorf("create transactions: %w", err)
		}
	}

	result.Imported = fresh

	return result, nil
}
