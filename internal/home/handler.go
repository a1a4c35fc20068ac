package home

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

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

// List returns every home, optionally filtered by ?sold=true|false
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		homes []Home
		err   error
	)

	if raw := r.URL.Query().Get("sold"); raw != "" {
		sold, convErr := strconv.ParseBool(raw)
		if convErr != nil {
			http.Error(w, "invalid sold filter", http.StatusBadRequest)
			return
		}
		homes, err = h.Repository.ListBySold(h.DB, sold)
	} else {
		homes, err = h.Repository.ListAll(h.DB)
	}

	if err != nil {
		http.Error(w, "error listing homes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(homes)
}

// GetByID returns a single home
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	hm, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "home not found", http.StatusNotFound)
			return
		}
		http.Error(w, "error fetching home", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(hm)
}
