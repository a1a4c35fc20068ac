package listing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type createListingRequest struct {
	HomeID   uint `json:"homeId"`
	AgentID  uint `json:"agentId"`
	SellerID uint `json:"sellerId"`
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

// Create records a new listing event. Referential integrity is enforced by
// the storage layer, so an unknown home/agent/seller id surfaces as an error.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	l := Listing{
		HomeID:   req.HomeID,
		AgentID:  req.AgentID,
		SellerID: req.SellerID,
	}
	if err := h.Repository.Create(h.DB, &l); err != nil {
		http.Error(w, "error saving listing: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(l)
}

// List returns every listing with its home, agent and seller
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Repository.ListAll(h.DB)
	if err != nil {
		http.Error(w, "error listing listings", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listings)
}

// GetByID returns a single listing
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	l, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "listing not found", http.StatusNotFound)
			return
		}
		http.Error(w, "error fetching listing", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(l)
}
