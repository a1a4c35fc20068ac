package seller

import (
	"encoding/json"
	"net/http"

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

// List returns every seller
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.Repository.ListAll(h.DB)
	if err != nil {
		http.Error(w, "error listing sellers", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sellers)
}
