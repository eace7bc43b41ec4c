// Package dashboard aggregates the landing-page view in one round trip. The
// sections are independent queries, so they run concurrently and a failing
// section degrades to null instead of failing the whole response.
package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/analytics"
	"github.com/fintrackhq/fintrack/internal/auth"
	"github.com/fintrackhq/fintrack/internal/budget"
	"github.com/fintrackhq/fintrack/internal/goal"
	"github.com/fintrackhq/fintrack/internal/period"
	"github.com/fintrackhq/fintrack/internal/recurring"
)

type Handler struct {
	analytics *analytics.Service
	budgets   *budget.Service
	recurring *recurring.Service
	goals     *goal.Service
}

func NewHandler(
	analyticsSvc *analytics.Service,
	budgetSvc *budget.Service,
	recurringSvc *recurring.Service,
	goalSvc *goal.Service,
) *Handler {
	return &Handler{
		analytics: analyticsSvc,
		budgets:   budgetSvc,
		recurring: recurringSvc,
		goals:     goalSvc,
	}
}

type summarySection struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

type trendPoint struct {
	Month       string          `json:"month"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	Saved       decimal.Decimal `json:"saved"`
	SaveRatePct decimal.Decimal `json:"save_rate_pct"`
}

type recurringSection struct {
	TotalRecurringMonthly decimal.Decimal `json:"total_recurring_monthly"`
	TotalRecurringYearly  decimal.Decimal `json:"total_recurring_yearly"`
	SubscriptionCount     int             `json:"subscription_count"`
}

type goalSection struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	TargetAmount    decimal.Decimal `json:"target_amount"`
	CurrentAmount   decimal.Decimal `json:"current_amount"`
	ProgressPercent decimal.Decimal `json:"progress_percent"`
}

type alertSection struct {
	CategoryID uuid.UUID         `json:"category_id"`
	Level      budget.AlertLevel `json:"level"`
	Message    string            `json:"message"`
}

type dashboardResponse struct {
	Month     string            `json:"month"`
	Summary   *summarySection   `json:"summary"`
	Trend     []trendPoint      `json:"trend"`
	Recurring *recurringSection `json:"recurring"`
	Goals     []goalSection     `json:"goals"`
	Alerts    []alertSection    `json:"alerts"`
	Errors    []string          `json:"errors,omitempty"`
}

// Get assembles the dashboard for the current month. Each section is loaded
// in its own goroutine; a section that errors is reported by name and left
// null, the rest of the payload is still served.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	ctx := r.Context()
	month := period.Of(time.Now())

	resp := dashboardResponse{Month: month.String()}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		fail = func(section string) {
			mu.Lock()
			resp.Errors = append(resp.Errors, section)
			mu.Unlock()
		}
	)

	wg.Add(5)

	go func() {
		defer wg.Done()

		summary, err := h.analytics.MonthSummary(ctx, userID, month)
		if err != nil {
			fail("summary")
			return
		}

		resp.Summary = &summarySection{
			TotalIncome:  summary.TotalIncome,
			TotalExpense: summary.TotalExpense,
			Balance:      summary.TotalIncome.Sub(summary.TotalExpense),
		}
	}()

	go func() {
		defer wg.Done()

		points, err := h.analytics.Trend(ctx, userID, month, 0)
		if err != nil {
			fail("trend")
			return
		}

		trend := make([]trendPoint, len(points))
		for i, p := range points {
			trend[i] = trendPoint{
				Month:       p.Month.String(),
				Income:      p.Income,
				Expense:     p.Expense,
				Saved:       p.Saved,
				SaveRatePct: p.SaveRatePct,
			}
		}

		resp.Trend = trend
	}()

	go func() {
		defer wg.Done()

		result, err := h.recurring.Detect(ctx, userID, month, 0)
		if err != nil {
			fail("recurring")
			return
		}

		resp.Recurring = &recurringSection{
			TotalRecurringMonthly: result.Summary.TotalRecurringMonthly,
			TotalRecurringYearly:  result.Summary.TotalRecurringYearly,
			SubscriptionCount:     result.Summary.SubscriptionCount,
		}
	}()

	go func() {
		defer wg.Done()

		goals, err := h.goals.List(ctx, userID)
		if err != nil {
			fail("goals")
			return
		}

		sections := make([]goalSection, len(goals))
		for i, g := range goals {
			sections[i] = goalSection{
				ID:              g.ID,
				Name:            g.Name,
				TargetAmount:    g.TargetAmount,
				CurrentAmount:   g.CurrentAmount,
				ProgressPercent: g.ProgressPercent(),
			}
		}

		resp.Goals = sections
	}()

	go func() {
		defer wg.Done()

		alerts, err := h.budgets.Alerts(ctx, userID, &month)
		if err != nil {
			fail("alerts")
			return
		}

		sections := make([]alertSection, len(alerts))
		for i, a := range alerts {
			sections[i] = alertSection{CategoryID: a.CategoryID, Level: a.Level, Message: a.Message}
		}

		resp.Alerts = sections
	}()

	wg.Wait()

	if resp.Trend == nil {
		resp.Trend = []trendPoint{}
	}

	if resp.Goals == nil {
		resp.Goals = []goalSection{}
	}

	if resp.Alerts == nil {
		resp.Alerts = []alertSection{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
