package sale_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/RavenwoodRealty/api-brokerage/internal/agent"
	"github.com/RavenwoodRealty/api-brokerage/internal/buyer"
	"github.com/RavenwoodRealty/api-brokerage/internal/home"
	"github.com/RavenwoodRealty/api-brokerage/internal/office"
	"github.com/RavenwoodRealty/api-brokerage/internal/period"
	"github.com/RavenwoodRealty/api-brokerage/internal/sale"
	"github.com/RavenwoodRealty/api-brokerage/internal/utils/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.ConnectSQLite(filepath.Join(t.TempDir(), "brokerage.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

// One office, one agent, two buyers and one unsold home listed 2021-09-21.
func seedFixture(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	require.NoError(t, gdb.Create(&office.Office{Name: "SF Real Estate"}).Error)
	require.NoError(t, gdb.Create(&agent.Agent{OfficeID: 1, FirstName: "Dwight", LastName: "Schrute", Email: "dwight@estates.com"}).Error)
	require.NoError(t, gdb.Create(&buyer.Buyer{FirstName: "Toph", LastName: "Beifong", Email: "metal_bender@gmail.com"}).Error)
	require.NoError(t, gdb.Create(&buyer.Buyer{FirstName: "Firelord", LastName: "Ozai", Email: "crazy@yahoo.com"}).Error)

	listed := time.Date(2021, time.September, 21, 0, 0, 0, 0, time.UTC)
	h := home.Home{
		Beds: 1, Baths: 1,
		Address: "22 Nathaniel", Zipcode: "94103",
		PriceListed: 800000, DateListed: listed, PeriodListed: period.Key(listed),
	}
	require.NoError(t, gdb.Create(&h).Error)
}

func TestRecord_InsertsSaleAndMarksHomeSold(t *testing.T) {
	gdb := newTestDB(t)
	seedFixture(t, gdb)

	repo := sale.NewRepository()
	s, err := repo.Record(gdb, 1, 1, 2, 200000)
	require.NoError(t, err)

	assert.InDelta(t, 15000, s.Commission, 0.001)
	assert.Equal(t, period.Current(), s.PeriodSold)
	assert.False(t, s.DateSold.IsZero())

	var count int64
	require.NoError(t, gdb.Model(&sale.Sale{}).Where("home_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var h home.Home
	require.NoError(t, gdb.First(&h, 1).Error)
	assert.True(t, h.Sold)
}

func TestRecord_InvalidAgent_RollsBackEverything(t *testing.T) {
	gdb := newTestDB(t)
	seedFixture(t, gdb)

	repo := sale.NewRepository()
	_, err := repo.Record(gdb, 1, 999, 1, 80000)
	require.Error(t, err)

	// No partial state: zero sales and the home is still unsold.
	var count int64
	require.NoError(t, gdb.Model(&sale.Sale{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var h home.Home
	require.NoError(t, gdb.First(&h, 1).Error)
	assert.False(t, h.Sold)
}

func TestRecord_InvalidBuyer_RollsBackEverything(t *testing.T) {
	gdb := newTestDB(t)
	seedFixture(t, gdb)

	repo := sale.NewRepository()
	_, err := repo.Record(gdb, 1, 1, 999, 80000)
	require.Error(t, err)

	var count int64
	require.NoError(t, gdb.Model(&sale.Sale{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRecord_MissingHome_RollsBackEverything(t *testing.T) {
	gdb := newTestDB(t)
	seedFixture(t, gdb)

	repo := sale.NewRepository()
	_, err := repo.Record(gdb, 999, 1, 1, 80000)
	require.Error(t, err)

	var count int64
	require.NoError(t, gdb.Model(&sale.Sale{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRecord_CommissionStoredPerSchedule(t *testing.T) {
	gdb := newTestDB(t)
	seedFixture(t, gdb)

	listed := time.Date(2021, time.June, 12, 0, 0, 0, 0, time.UTC)
	second := home.Home{
		Beds: 1, Baths: 1,
		Address: "16 Turk St", Zipcode: "94102",
		PriceListed: 50000, DateListed: listed, PeriodListed: period.Key(listed),
	}
	require.NoError(t, gdb.Create(&second).Error)

	repo := sale.NewRepository()

	s1, err := repo.Record(gdb, 1, 1, 1, 1000000)
	require.NoError(t, err)
	assert.InDelta(t, 50000, s1.Commission, 0.001)

	s2, err := repo.Record(gdb, second.ID, 1, 2, 1100000)
	require.NoError(t, err)
	assert.InDelta(t, 44000, s2.Commission, 0.001)

	// Stored, not recomputed: the row carries the value.
	var stored sale.Sale
	require.NoError(t, gdb.First(&stored, s2.ID).Error)
	assert.InDelta(t, 44000, stored.Commission, 0.001)
}

func TestHomeTable_DeleteThenReinsert_CountsFromScratch(t *testing.T) {
	gdb := newTestDB(t)
	seedFixture(t, gdb)

	require.NoError(t, gdb.Where("1 = 1").Delete(&home.Home{}).Error)

	var count int64
	require.NoError(t, gdb.Model(&home.Home{}).Count(&count).Error)
	require.Equal(t, int64(0), count)

	listed := time.Date(2021, time.September, 21, 0, 0, 0, 0, time.UTC)
	h := home.Home{
		Beds: 1, Baths: 1,
		Address: "22 Nathaniel", Zipcode: "94103",
		PriceListed: 800000, DateListed: listed, PeriodListed: period.Key(listed),
	}
	require.NoError(t, gdb.Create(&h).Error)

	require.NoError(t, gdb.Model(&home.Home{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
