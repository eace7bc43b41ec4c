// Package goal maintains savings goals and their progress toward a target
// amount, optionally against a target date.
package goal

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/money"
)

var (
	ErrNotFound     = errors.New("goal not found")
	ErrInvalidInput = errors.New("invalid goal input")
)

// SavingsGoal is a user-defined saving target. CurrentAmount only grows, via
// AddProgress, and may exceed TargetAmount.
type SavingsGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Category      string
	Priority      int
	TargetDate    *time.Time
	CreatedAt     time.Time
}

var hundred = decimal.NewFromInt(100)

// ProgressPercent is the saved fraction of the target, capped at 100 for
// display. The underlying CurrentAmount is never capped.
func (g *SavingsGoal) ProgressPercent() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	return money.Clamp(money.Percent(g.CurrentAmount, g.TargetAmount), decimal.Zero, hundred)
}

// DaysRemaining counts calendar days until the target date, negative once it
// has passed. Nil without a target date.
func (g *SavingsGoal) DaysRemaining(today time.Time) *int {
	if g.TargetDate == nil {
		return nil
	}

	days := int(g.TargetDate.Sub(today).Hours() / 24)

	return &days
}

// OnTrack compares actual progress against the fraction of time elapsed
// between creation and the target date, assuming linear saving. Nil when
// there is no target date or the schedule has no positive length.
func (g *SavingsGoal) OnTrack(today time.Time) *bool {
	if g.TargetDate == nil || !g.TargetAmount.IsPositive() {
		return nil
	}

	totalDays := g.TargetDate.Sub(g.CreatedAt).Hours() / 24
	if totalDays <= 0 {
		return nil
	}

	elapsedDays := today.Sub(g.CreatedAt).Hours() / 24
	expected := decimal.NewFromFloat(elapsedDays / totalDays).Mul(hundred)
	actual := money.Percent(g.CurrentAmount, g.TargetAmount)

	onTrack := actual.GreaterThanOrEqual(expected)

	return &onTrack
}
