package recurring

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/auth"
	"github.com/fintrackhq/fintrack/internal/period"
	"github.com/fintrackhq/fintrack/internal/recurring"
)

type Handler struct {
	svc *recurring.Service
}

func NewHandler(svc *recurring.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.detect)
}

type chargeResponse struct {
	Description      string          `json:"description"`
	CategoryID       uuid.UUID       `json:"category_id"`
	Category         string          `json:"category"`
	Occurrences      int             `json:"occurrences"`
	EstimatedMonthly decimal.Decimal `json:"estimated_monthly"`
	EstimatedYearly  decimal.Decimal `json:"estimated_yearly"`
}

type detectResponse struct {
	Subscriptions         []chargeResponse `json:"subscriptions"`
	TotalRecurringMonthly decimal.Decimal  `json:"total_recurring_monthly"`
	TotalRecurringYearly  decimal.Decimal  `json:"total_recurring_yearly"`
	SubscriptionCount     int              `json:"subscription_count"`
}

func (h *Handler) detect(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	window := 0
	if s := r.URL.Query().Get("window"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "window must be a positive integer", http.StatusBadRequest)
			return
		}

		window = n
	}

	result, err := h.svc.Detect(r.Context(), userID, period.Of(time.Now()), window)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := detectResponse{
		Subscriptions:         make([]chargeResponse, len(result.Subscriptions)),
		TotalRecurringMonthly: result.Summary.TotalRecurringMonthly,
		TotalRecurringYearly:  result.Summary.TotalRecurringYearly,
		SubscriptionCount:     result.Summary.SubscriptionCount,
	}
	for i, c := range result.Subscriptions {
		resp.Subscriptions[i] = chargeResponse(c)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
