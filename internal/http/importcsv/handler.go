package importcsv

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
	"github.com/fintrackhq/fintrack/internal/importer"
	"github.com/fintrackhq/fintrack/internal/transaction"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	svc *importer.Service
}

func NewHandler(svc *importer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importedTransaction struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
}

type conflictDTO struct {
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	ExistingID  uuid.UUID       `json:"existing_id"`
}

type importResponse struct {
	Imported  []importedTransaction `json:"imported"`
	Conflicts []conflictDTO         `json:"conflicts"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.svc.Import(r.Context(), userID, file)
	if err != nil {
		if errors.Is(err, importer.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := importResponse{
		Imported:  make([]importedTransaction, 0, len(result.Imported)),
		Conflicts: make([]conflictDTO, 0, len(result.Conflicts)),
	}

	for _, tx := range result.Imported {
		resp.Imported = append(resp.Imported, importedTransaction{
			ID:          tx.ID,
			Amount:      tx.Amount,
			Date:        tx.Date,
			Description: tx.Description,
		})
	}

	for _, c := range result.Conflicts {
		resp.Conflicts = append(resp.Conflicts, toConflictDTO(c))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toConflictDTO(c transaction.Conflict) conflictDTO {
	return conflictDTO{
		Date:        c.Incoming.Date,
		Amount:      c.Incoming.Amount,
		Description: c.Incoming.Description,
		ExistingID:  c.Existing.ID,
	}
}
