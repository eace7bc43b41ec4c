package importer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack/internal/category"
	"github.com/fintrackhq/fintrack/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer

// Categories is the slice of *category.Service the importer needs to resolve
// statement category names against the user's own categories.
type Categories interface {
	List(ctx context.Context, userID uuid.UUID) ([]*category.Category, error)
	Create(ctx context.Context, userID uuid.UUID, params category.CreateParams) (*category.Category, error)
}

// Transactions is implemented by *transaction.Service.
type Transactions interface {
	ImportBatch(ctx context.Context, userID uuid.UUID, params []transaction.CreateParams) (*transaction.ImportResult, error)
}

type Service struct {
	parser       *Parser
	categories   Categories
	transactions Transactions
}

func NewService(categories Categories, transactions Transactions) *Service {
	return &Service{
		parser:       NewParser(),
		categories:   categories,
		transactions: transactions,
	}
}

// Import parses a CSV statement, resolves every (category name, kind) pair to
// one of the user's categories, creating those that do not exist yet, and
// stores the rows. Duplicates already in the ledger are reported, not stored.
func (s *Service) Import(ctx context.Context, userID uuid.UUID, r io.Reader) (*transaction.ImportResult, error) {
	rows, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	existing, err := s.categories.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	byKey := make(map[string]uuid.UUID, len(existing))
	for _, c := range existing {
		byKey[categoryKey(c.Name, c.Kind)] = c.ID
	}

	params := make([]transaction.CreateParams, 0, len(rows))

	for _, row := range rows {
		key := categoryKey(row.Category, row.Kind)

		id, ok := byKey[key]
		if !ok {
			c, err := s.categories.Create(ctx, userID, category.CreateParams{
				Name: row.Category,
				Kind: row.Kind,
			})
			if err != nil {
				return nil, fmt.Errorf("creating category %q: %w", row.Category, err)
			}

			id = c.ID
			byKey[key] = id
		}

		params = append(params, transaction.CreateParams{
			Amount:      row.Amount,
			CategoryID:  id,
			Date:        row.Date,
			Description: row.Description,
		})
	}

	return s.transactions.ImportBatch(ctx, userID, params)
}

func categoryKey(name string, kind category.Kind) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + string(kind)
}
