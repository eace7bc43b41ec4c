package savings

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/auth"
	"github.com/fintrackhq/fintrack/internal/period"
	"github.com/fintrackhq/fintrack/internal/savings"
)

type Handler struct {
	svc *savings.Service
}

func NewHandler(svc *savings.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/safety-score", h.safetyScore)
	r.Get("/consistency", h.consistency)
	r.Get("/advice", h.advice)
	r.Get("/autosave", h.autosave)
}

func windowParam(r *http.Request) (int, bool) {
	s := r.URL.Query().Get("window")
	if s == "" {
		return 0, true
	}

	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}

	return n, true
}

type safetyScoreResponse struct {
	Score              decimal.Decimal    `json:"score"`
	Level              savings.ScoreLevel `json:"level"`
	EmergencyFundRatio decimal.Decimal    `json:"emergency_fund_ratio"`
	IncomeStabilityPct decimal.Decimal    `json:"income_stability_pct"`
	BufferMonths       decimal.Decimal    `json:"buffer_months"`
}

func (h *Handler) safetyScore(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	balance := decimal.Zero

	if s := r.URL.Query().Get("balance"); s != "" {
		var err error

		balance, err = decimal.NewFromString(s)
		if err != nil {
			http.Error(w, "invalid balance", http.StatusBadRequest)
			return
		}
	}

	window, ok := windowParam(r)
	if !ok {
		http.Error(w, "window must be a positive integer", http.StatusBadRequest)
		return
	}

	result, err := h.svc.SafetyScore(r.Context(), userID, period.Of(time.Now()), window, balance)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(safetyScoreResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type consistencyResponse struct {
	ConsistencyRatePct        decimal.Decimal `json:"consistency_rate_pct"`
	MonthsWithSavings         int             `json:"months_with_savings"`
	TotalMonthsTracked        int             `json:"total_months_tracked"`
	ConsecutivePositiveMonths int             `json:"consecutive_positive_months"`
	Badges                    []string        `json:"badges"`
}

func (h *Handler) consistency(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	window, ok := windowParam(r)
	if !ok {
		http.Error(w, "window must be a positive integer", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Consistency(r.Context(), userID, period.Of(time.Now()), window)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := consistencyResponse(result)
	if resp.Badges == nil {
		resp.Badges = []string{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type adviceResponse struct {
	Disposable     decimal.Decimal     `json:"disposable"`
	SavingsAmount  decimal.Decimal     `json:"savings_amount"`
	SavingsPercent decimal.Decimal     `json:"savings_percent"`
	Level          savings.AdviceLevel `json:"level"`
	Message        string              `json:"message"`
}

func (h *Handler) advice(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	month := period.Of(time.Now())

	if s := r.URL.Query().Get("month"); s != "" {
		var err error

		month, err = period.Parse(s)
		if err != nil {
			http.Error(w, "month must be in YYYY-MM format", http.StatusBadRequest)
			return
		}
	}

	result, err := h.svc.AutoAdvice(r.Context(), userID, month)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(adviceResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type autoSaveRecordResponse struct {
	ID       uuid.UUID            `json:"id"`
	Date     time.Time            `json:"date"`
	Amount   decimal.Decimal      `json:"amount"`
	RuleType string               `json:"rule_type"`
	Status   savings.RecordStatus `json:"status"`
}

func (h *Handler) autosave(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}

		limit = n
	}

	records, err := h.svc.Records(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]autoSaveRecordResponse, len(records))
	for i, rec := range records {
		resp[i] = autoSaveRecordResponse{
			ID:       rec.ID,
			Date:     rec.Date,
			Amount:   rec.Amount,
			RuleType: rec.RuleType,
			Status:   rec.Status,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, savings.ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, savings.ErrInsufficientData):
		http.Error(w, "not enough history to compute", http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
