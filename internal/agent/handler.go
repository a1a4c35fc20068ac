package agent

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

// List returns every agent, optionally filtered by ?officeId=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		agents []Agent
		err    error
	)

	if raw := r.URL.Query().Get("officeId"); raw != "" {
		officeID, convErr := strconv.Atoi(raw)
		if convErr != nil {
			http.Error(w, "invalid officeId", http.StatusBadRequest)
			return
		}
		agents, err = h.Repository.ListByOffice(h.DB, uint(officeID))
	} else {
		agents, err = h.Repository.ListAll(h.DB)
	}

	if err != nil {
		http.Error(w, "error listing agents", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(agents)
}

// GetByID returns a single agent with its office
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "agent not found", http.StatusNotFound)
			return
		}
		http.Error(w, "error fetching agent", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}
