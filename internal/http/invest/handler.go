package invest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/invest"
)

// Handler exposes the projection and allocation calculators. These are pure
// computations over the request payload; nothing is stored.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/sip", h.sip)
	r.Post("/lumpsum", h.lumpsum)
	r.Post("/advice", h.advice)
}

type sipRequest struct {
	MonthlyInvestment decimal.Decimal `json:"monthly_investment"`
	AnnualRate        decimal.Decimal `json:"annual_rate"`
	Years             int             `json:"years"`
	StepUpPercent     decimal.Decimal `json:"step_up_percent"`
}

type projectionResponse struct {
	TotalInvested decimal.Decimal `json:"total_invested"`
	MaturityValue decimal.Decimal `json:"maturity_value"`
	Gain          decimal.Decimal `json:"gain"`
}

func (h *Handler) sip(w http.ResponseWriter, r *http.Request) {
	var req sipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	projection, err := invest.ProjectSIP(req.MonthlyInvestment, req.AnnualRate, req.Years, req.StepUpPercent)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(projectionResponse(projection)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type lumpsumRequest struct {
	Principal  decimal.Decimal `json:"principal"`
	AnnualRate decimal.Decimal `json:"annual_rate"`
	Years      int             `json:"years"`
}

func (h *Handler) lumpsum(w http.ResponseWriter, r *http.Request) {
	var req lumpsumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	projection, err := invest.ProjectLumpsum(req.Principal, req.AnnualRate, req.Years)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(projectionResponse(projection)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type adviceRequest struct {
	RiskProfile      invest.RiskProfile `json:"risk_profile"`
	InvestableAmount decimal.Decimal    `json:"investable_amount"`
}

type lineResponse struct {
	Percent decimal.Decimal `json:"percent"`
	Amount  decimal.Decimal `json:"amount"`
}

type adviceResponse struct {
	Equity    lineResponse `json:"equity"`
	Debt      lineResponse `json:"debt"`
	Gold      lineResponse `json:"gold"`
	Emergency lineResponse `json:"emergency"`
	Message   string       `json:"message"`
}

func (h *Handler) advice(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	advice, err := invest.Advise(req.RiskProfile, req.InvestableAmount)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := adviceResponse{
		Equity:    lineResponse(advice.Equity),
		Debt:      lineResponse(advice.Debt),
		Gold:      lineResponse(advice.Gold),
		Emergency: lineResponse(advice.Emergency),
		Message:   advice.Message,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, invest.ErrInvalidInput) {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	http.Error(w, "internal error", http.StatusInternalServerError)
}
