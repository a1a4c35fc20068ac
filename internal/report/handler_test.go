package report_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RavenwoodRealty/api-brokerage/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAveragePriceHandler(t *testing.T) {
	gdb := newTestDB(t)
	seedReportFixture(t, gdb)
	h := report.NewHandler(gdb)

	t.Run("explicit period", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/reports/average-price?year=2025&month=9", nil)
		rec := httptest.NewRecorder()
		h.AveragePrice(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var out report.AveragePriceReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, 202509, out.Period)
		require.NotNil(t, out.AveragePrice)
		assert.InDelta(t, 266666.67, *out.AveragePrice, 0.001)
	})

	t.Run("empty period serializes null", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/reports/average-price?year=2024&month=1", nil)
		rec := httptest.NewRecorder()
		h.AveragePrice(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"averagePrice":null`)
	})

	t.Run("invalid month", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/reports/average-price?year=2024&month=13", nil)
		rec := httptest.NewRecorder()
		h.AveragePrice(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTopOfficesHandler(t *testing.T) {
	gdb := newTestDB(t)
	seedReportFixture(t, gdb)
	h := report.NewHandler(gdb)

	req := httptest.NewRequest("GET", "/reports/offices/top-by-count?year=2025&month=9", nil)
	rec := httptest.NewRecorder()
	h.TopOfficesByCount(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []report.OfficeSaleCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "SF Real Estate", rows[0].Name)
	assert.Equal(t, int64(2), rows[0].SaleCount)
}

func TestRebuildCommissionsHandler(t *testing.T) {
	gdb := newTestDB(t)
	seedReportFixture(t, gdb)
	h := report.NewHandler(gdb)

	req := httptest.NewRequest("POST", "/reports/commissions/rebuild?year=2025&month=9", nil)
	rec := httptest.NewRecorder()
	h.RebuildCommissions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []report.CommissionReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Len(t, rows, 3)
}
