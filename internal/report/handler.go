package report

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RavenwoodRealty/api-brokerage/internal/period"
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

// periodFromQuery reads ?year=&month= and falls back to the current month.
func periodFromQuery(r *http.Request) (int, error) {
	q := r.URL.Query()
	if q.Get("year") == "" && q.Get("month") == "" {
		return period.Current(), nil
	}
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		return 0, err
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		return 0, err
	}
	return period.FromYearMonth(year, month)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// TopOfficesByCount returns the top 5 offices by number of sales in the period
func (h *Handler) TopOfficesByCount(w http.ResponseWriter, r *http.Request) {
	key, err := periodFromQuery(r)
	if err != nil {
		http.Error(w, "invalid period filter", http.StatusBadRequest)
		return
	}
	rows, err := h.Repository.TopOfficesBySaleCount(h.DB, key)
	if err != nil {
		http.Error(w, "error running report", http.StatusInternalServerError)
		return
	}
	writeJSON(w, rows)
}

// TopOfficesByAmount returns the top 5 offices by total sale amount in the period
func (h *Handler) TopOfficesByAmount(w http.ResponseWriter, r *http.Request) {
	key, err := periodFromQuery(r)
	if err != nil {
		http.Error(w, "invalid period filter", http.StatusBadRequest)
		return
	}
	rows, err := h.Repository.TopOfficesBySaleAmount(h.DB, key)
	if err != nil {
		http.Error(w, "error running report", http.StatusInternalServerError)
		return
	}
	writeJSON(w, rows)
}

// TopAgents returns the top 5 agents by total sales amount in the period
func (h *Handler) TopAgents(w http.ResponseWriter, r *http.Request) {
	key, err := periodFromQuery(r)
	if err != nil {
		http.Error(w, "invalid period filter", http.StatusBadRequest)
		return
	}
	rows, err := h.Repository.TopAgentsBySaleAmount(h.DB, key)
	if err != nil {
		http.Error(w, "error running report", http.StatusInternalServerError)
		return
	}
	writeJSON(w, rows)
}

// RebuildCommissions destructively rebuilds the commission snapshot for the period
func (h *Handler) RebuildCommissions(w http.ResponseWriter, r *http.Request) {
	key, err := periodFromQuery(r)
	if err != nil {
		http.Error(w, "invalid period filter", http.StatusBadRequest)
		return
	}
	rows, err := h.Repository.RebuildCommissions(h.DB, key)
	if err != nil {
		http.Error(w, "error rebuilding commissions", http.StatusInternalServerError)
		return
	}
	writeJSON(w, rows)
}

// ListCommissions reads the current commission snapshot
func (h *Handler) ListCommissions(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Repository.ListCommissions(h.DB)
	if err != nil {
		http.Error(w, "error reading commissions", http.StatusInternalServerError)
		return
	}
	writeJSON(w, rows)
}

// DaysOnMarket returns per-home market days plus the period average
func (h *Handler) DaysOnMarket(w http.ResponseWriter, r *http.Request) {
	key, err := periodFromQuery(r)
	if err != nil {
		http.Error(w, "invalid period filter", http.StatusBadRequest)
		return
	}
	out, err := h.Repository.DaysOnMarket(h.DB, key)
	if err != nil {
		http.Error(w, "error running report", http.StatusInternalServerError)
		return
	}
	writeJSON(w, out)
}

// AveragePrice returns the period's average selling price, null when empty
func (h *Handler) AveragePrice(w http.ResponseWriter, r *http.Request) {
	key, err := periodFromQuery(r)
	if err != nil {
		http.Error(w, "invalid period filter", http.StatusBadRequest)
		return
	}
	avg, err := h.Repository.AverageSellingPrice(h.DB, key)
	if err != nil {
		http.Error(w, "error running report", http.StatusInternalServerError)
		return
	}
	writeJSON(w, AveragePriceReport{Period: key, AveragePrice: avg})
}
