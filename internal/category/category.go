package category

import (
	"time"

	"github.com/google/uuid"
)

// Kind classifies a category (and every transaction posted against it) as
// income or expense.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Category is a user-owned transaction bucket.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Kind      Kind
	CreatedAt time.Time
}
