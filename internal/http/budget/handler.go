package budget

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/auth"
	"github.com/fintrackhq/fintrack/internal/budget"
	"github.com/fintrackhq/fintrack/internal/period"
)

type Handler struct {
	svc *budget.Service
}

func NewHandler(svc *budget.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.set)
	r.Get("/", h.list)
	r.Get("/{categoryID}/usage", h.usage)
	r.Post("/{categoryID}/check-alerts", h.checkAlerts)
}

// monthParam reads the optional month query parameter, defaulting to the
// current calendar month.
func monthParam(r *http.Request) (period.Month, error) {
	s := r.URL.Query().Get("month")
	if s == "" {
		return period.Of(time.Now()), nil
	}

	return period.Parse(s)
}

type setBudgetRequest struct {
	CategoryID   uuid.UUID       `json:"category_id"`
	Month        string          `json:"month"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
}

type budgetResponse struct {
	ID           uuid.UUID       `json:"id"`
	CategoryID   uuid.UUID       `json:"category_id"`
	Month        string          `json:"month"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
}

func toBudgetResponse(b *budget.Budget) budgetResponse {
	return budgetResponse{
		ID:           b.ID,
		CategoryID:   b.CategoryID,
		Month:        b.Month.String(),
		MonthlyLimit: b.MonthlyLimit,
	}
}

func (h *Handler) set(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req setBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	month, err := period.Parse(req.Month)
	if err != nil {
		http.Error(w, "month must be in YYYY-MM format", http.StatusBadRequest)
		return
	}

	b, err := h.svc.Set(r.Context(), userID, budget.SetParams{
		CategoryID:   req.CategoryID,
		Month:        month,
		MonthlyLimit: req.MonthlyLimit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBudgetResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	month, err := monthParam(r)
	if err != nil {
		http.Error(w, "month must be in YYYY-MM format", http.StatusBadRequest)
		return
	}

	budgets, err := h.svc.List(r.Context(), userID, month)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]budgetResponse, len(budgets))
	for i, b := range budgets {
		resp[i] = toBudgetResponse(b)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type usageResponse struct {
	Used       decimal.Decimal `json:"used"`
	Limit      decimal.Decimal `json:"limit"`
	Percentage decimal.Decimal `json:"percentage"`
}

func (h *Handler) usage(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
	if err != nil {
		http.Error(w, "invalid category id", http.StatusBadRequest)
		return
	}

	month, err := monthParam(r)
	if err != nil {
		http.Error(w, "month must be in YYYY-MM format", http.StatusBadRequest)
		return
	}

	usage, err := h.svc.Usage(r.Context(), userID, categoryID, month)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(usageResponse(usage)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type alertResponse struct {
	ID         uuid.UUID         `json:"id"`
	CategoryID uuid.UUID         `json:"category_id"`
	Month      string            `json:"month"`
	Level      budget.AlertLevel `json:"level"`
	Message    string            `json:"message"`
}

func toAlertResponse(a *budget.Alert) alertResponse {
	return alertResponse{
		ID:         a.ID,
		CategoryID: a.CategoryID,
		Month:      a.Month.String(),
		Level:      a.Level,
		Message:    a.Message,
	}
}

type checkAlertsResponse struct {
	Status budget.CheckStatus `json:"status"`
	Alert  *alertResponse     `json:"alert,omitempty"`
}

func (h *Handler) checkAlerts(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
	if err != nil {
		http.Error(w, "invalid category id", http.StatusBadRequest)
		return
	}

	month, err := monthParam(r)
	if err != nil {
		http.Error(w, "month must be in YYYY-MM format", http.StatusBadRequest)
		return
	}

	result, err := h.svc.CheckAlerts(r.Context(), userID, categoryID, month)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := checkAlertsResponse{Status: result.Status}
	if result.Alert != nil {
		alert := toAlertResponse(result.Alert)
		resp.Alert = &alert
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Alerts serves GET /alerts, the flat listing of active alerts.
func (h *Handler) Alerts(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var month *period.Month

	if s := r.URL.Query().Get("month"); s != "" {
		m, err := period.Parse(s)
		if err != nil {
			http.Error(w, "month must be in YYYY-MM format", http.StatusBadRequest)
			return
		}

		month = &m
	}

	alerts, err := h.svc.Alerts(r.Context(), userID, month)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]alertResponse, len(alerts))
	for i, a := range alerts {
		resp[i] = toAlertResponse(a)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, budget.ErrInvalidInput):
		http.Error(w, "invalid budget input", http.StatusBadRequest)
	case errors.Is(err, budget.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
