package savings

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordStatus is the outcome of one automated-savings run.
type RecordStatus string

const (
	StatusApplied RecordStatus = "applied"
	StatusSkipped RecordStatus = "skipped"
	StatusFailed  RecordStatus = "failed"
)

// AutoSaveRecord is one entry of the append-only automated-savings log.
// The analytics side only ever reads these.
type AutoSaveRecord struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Date     time.Time
	Amount   decimal.Decimal
	RuleType string
	Status   RecordStatus
}
