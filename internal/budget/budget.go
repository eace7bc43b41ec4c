// Package budget tracks per-category monthly spending limits and the alerts
// raised when spending approaches or crosses them.
package budget

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/period"
)

var (
	ErrNotFound     = errors.New("budget not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Budget caps spending for one expense category in one month. One budget per
// (user, category, month); setting it again replaces the limit.
type Budget struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CategoryID   uuid.UUID
	Month        period.Month
	MonthlyLimit decimal.Decimal
	CreatedAt    time.Time
}

// AlertLevel grades how far over budget a category is.
type AlertLevel string

const (
	AlertWarning AlertLevel = "warning"
	AlertDanger  AlertLevel = "danger"
)

// Alert is the persisted notification for one (user, category, month). At
// most one exists at a time; CheckAlerts upserts or deletes it as usage
// moves across the thresholds.
type Alert struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Month      period.Month
	Level      AlertLevel
	Message    string
	CreatedAt  time.Time
}

// Usage reports spending against a budget for one month. Percentage is not
// capped, overspending reads as >100.
type Usage struct {
	Used       decimal.Decimal
	Limit      decimal.Decimal
	Percentage decimal.Decimal
}

// CheckStatus tells the caller what an alert check concluded.
type CheckStatus string

const (
	StatusIncomeCategory CheckStatus = "income_category"
	StatusNoBudget       CheckStatus = "no_budget"
	StatusWithinLimit    CheckStatus = "within_limit"
	StatusAlertRaised    CheckStatus = "alert_raised"
)

// CheckResult is the outcome of CheckAlerts. Alert is set only when the
// status is StatusAlertRaised.
type CheckResult struct {
	Status CheckStatus
	Alert  *Alert
}
