// Package seed populates a fresh database with the fixed demonstration
// dataset: reference entities, listings, one historical sale kept outside any
// current reporting period, and six sales recorded through the transaction
// recorder so they land in the current month.
package seed

import (
	"time"

	"github.com/RavenwoodRealty/api-brokerage/internal/agent"
	"github.com/RavenwoodRealty/api-brokerage/internal/buyer"
	"github.com/RavenwoodRealty/api-brokerage/internal/home"
	"github.com/RavenwoodRealty/api-brokerage/internal/listing"
	"github.com/RavenwoodRealty/api-brokerage/internal/office"
	"github.com/RavenwoodRealty/api-brokerage/internal/period"
	"github.com/RavenwoodRealty/api-brokerage/internal/sale"
	"github.com/RavenwoodRealty/api-brokerage/internal/seller"
	"gorm.io/gorm"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func listedHome(beds int, baths float64, address, zipcode string, price float64, listed time.Time, sold bool) home.Home {
	return home.Home{
		Beds:         beds,
		Baths:        baths,
		Address:      address,
		Zipcode:      zipcode,
		PriceListed:  price,
		DateListed:   listed,
		PeriodListed: period.Key(listed),
		Sold:         sold,
	}
}

// Load inserts the demonstration dataset into a fresh, migrated database.
// Ids are referenced literally (1-based) because auto-increment starts at 1
// on an empty store.
func Load(db *gorm.DB) error {
	offices := []office.Office{
		{Name: "SF Real Estate"},
		{Name: "London Real Estate"},
		{Name: "Nice Real Estate"},
		{Name: "Buenos Aires Real Estate"},
	}
	if err := db.Create(&offices).Error; err != nil {
		return err
	}

	homes := []home.Home{
		listedHome(1, 1, "22 Nathaniel", "94103", 800000, date(2021, time.September, 21), false),
		listedHome(1, 1, "73A Peter St", "06000", 400000, date(2021, time.September, 28), false),
		listedHome(3, 3, "100 Esmeralda", "24012", 90000, date(2021, time.September, 24), false),
		listedHome(2, 1.5, "5 Rue Delille", "10009", 100000, date(2021, time.January, 1), false),
		listedHome(1, 1, "16 Turk St", "94102", 50000, date(2021, time.June, 12), false),
		listedHome(1, 1, "110 Market St", "94101", 2000000, date(2021, time.December, 25), false),
		listedHome(2, 2.5, "33 Exmouth", "EC1R 4QL", 570000, date(2021, time.April, 16), true),
		listedHome(3, 1.5, "91 Clerkenwell Rd", "EC1R 5BX", 200000, date(2021, time.January, 17), false),
	}
	if err := db.Create(&homes).Error; err != nil {
		return err
	}

	agents := []agent.Agent{
		{OfficeID: 1, FirstName: "Dwight", LastName: "Schrute", Email: "dwight@estates.com"},
		{OfficeID: 2, FirstName: "Jim", LastName: "Halpert", Email: "jim@estates.com"},
		{OfficeID: 3, FirstName: "Michael", LastName: "Scott", Email: "michael@estates.com"},
		{OfficeID: 4, FirstName: "Pam", LastName: "Beesly", Email: "pam@estates.com"},
		{OfficeID: 1, FirstName: "Angela", LastName: "Martin", Email: "angela@estates.com"},
		{OfficeID: 1, FirstName: "Stanley", LastName: "Hudson", Email: "stanley@estates.com"},
		{OfficeID: 2, FirstName: "Toby", LastName: "Flenderson", Email: "toby@estates.com"},
		{OfficeID: 2, FirstName: "Kevin", LastName: "Malone", Email: "kev@estates.com"},
		{OfficeID: 3, FirstName: "Andy", LastName: "Bernard", Email: "andy@estates.com"},
		{OfficeID: 4, FirstName: "Erin", LastName: "Hannon", Email: "erin@estates.com"},
		{OfficeID: 4, FirstName: "Oscar", LastName: "Martinez", Email: "oscar@estates.com"},
		{OfficeID: 4, FirstName: "Phyllis", LastName: "Vance", Email: "phylissvance@estates.com"},
		{OfficeID: 4, FirstName: "Meredith", LastName: "Palmer", Email: "meredith@estates.com"},
		{OfficeID: 4, FirstName: "Kelly", LastName: "Kapoor", Email: "kelly@estates.com"},
		{OfficeID: 4, FirstName: "Ryan", LastName: "Howard", Email: "ryan@estates.com"},
	}
	if err := db.Create(&agents).Error; err != nil {
		return err
	}

	sellers := []seller.Seller{
		{FirstName: "Malia", LastName: "Bird", Email: "mbird@gmail.com"},
		{FirstName: "Finn", LastName: "Macken", Email: "finnian@gmail.com"},
		{FirstName: "Leo", LastName: "Ware", Email: "beware@gmail.com"},
		{FirstName: "Laura", LastName: "Ruiz", Email: "lau@gmail.com"},
		{FirstName: "Gal", LastName: "Rubin", Email: "rubs@gmail.com"},
	}
	if err := db.Create(&sellers).Error; err != nil {
		return err
	}

	// The same agent appears on multiple listings on purpose.
	listings := []listing.Listing{
		{HomeID: 1, AgentID: 1, SellerID: 4},
		{HomeID: 2, AgentID: 2, SellerID: 1},
		{HomeID: 3, AgentID: 2, SellerID: 1},
		{HomeID: 4, AgentID: 7, SellerID: 1},
		{HomeID: 5, AgentID: 8, SellerID: 3},
		{HomeID: 6, AgentID: 3, SellerID: 3},
		{HomeID: 7, AgentID: 6, SellerID: 4},
	}
	if err := db.Create(&listings).Error; err != nil {
		return err
	}

	buyers := []buyer.Buyer{
		{FirstName: "Toph", LastName: "Beifong", Email: "metal_bender@gmail.com"},
		{FirstName: "Firelord", LastName: "Ozai", Email: "crazy@yahoo.com"},
		{FirstName: "Avatar", LastName: "Kyoshi", Email: "kyoshi@gmail.com"},
		{FirstName: "Princess", LastName: "Yue", Email: "moon@sky.com"},
	}
	if err := db.Create(&buyers).Error; err != nil {
		return err
	}

	// One old sale, dated explicitly so it never matches the current period.
	// Home 7 is the pre-marked sold home it refers to.
	past := date(2022, time.September, 21)
	historical := sale.Sale{
		HomeID:     7,
		AgentID:    13,
		BuyerID:    1,
		PriceSold:  200000,
		DateSold:   past,
		PeriodSold: period.Key(past),
		Commission: sale.CommissionFor(200000),
	}
	if err := db.Create(&historical).Error; err != nil {
		return err
	}

	// Current-month sales, recorded through the atomic recorder. Repeat
	// buyers, repeat agents, and a price in every commission tier.
	recorder := sale.NewRepository()
	current := []struct {
		homeID, agentID, buyerID uint
		priceSold                float64
	}{
		{1, 1, 2, 200000},
		{2, 1, 1, 400000},
		{3, 9, 2, 1100000},
		{4, 4, 2, 2000000},
		{5, 3, 3, 90000},
		{6, 7, 4, 60000},
	}
	for _, c := range current {
		if _, err := recorder.Record(db, c.homeID, c.agentID, c.buyerID, c.priceSold); err != nil {
			return err
		}
	}

	return nil
}
