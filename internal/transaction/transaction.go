package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/category"
)

// Transaction represents a single posted income or expense. It is immutable
// once created; correcting a mistake means deleting and re-creating it.
type Transaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Amount       decimal.Decimal // always positive; Kind carries the direction
	Kind         category.Kind
	CategoryID   uuid.UUID
	CategoryName string // loaded via JOIN
	Date         time.Time
	Description  string
	CreatedAt    time.Time
}
