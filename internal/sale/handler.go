package sale

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type recordSaleRequest struct {
	HomeID    uint    `json:"homeId"`
	AgentID   uint    `json:"agentId"`
	BuyerID   uint    `json:"buyerId"`
	PriceSold float64 `json:"priceSold"`
}

// Handler encapsulates DB and repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler returns an initialized handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Record runs the atomic sale transaction. Invalid ids are not pre-validated;
// the storage layer rejects them and the transaction rolls back in full.
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.PriceSold <= 0 {
		http.Error(w, "priceSold must be positive", http.StatusBadRequest)
		return
	}

	s, err := h.Repository.Record(h.DB, req.HomeID, req.AgentID, req.BuyerID, req.PriceSold)
	if err != nil {
		http.Error(w, "error recording sale: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// List returns every sale with its home, agent and buyer
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Repository.ListAll(h.DB)
	if err != nil {
		http.Error(w, "error listing sales", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sales)
}

// GetByID returns a single sale
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "sale not found", http.StatusNotFound)
			return
		}
		http.Error(w, "error fetching sale", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}
