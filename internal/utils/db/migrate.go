package db

import (
	"github.com/RavenwoodRealty/api-brokerage/internal/agent"
	"github.com/RavenwoodRealty/api-brokerage/internal/buyer"
	"github.com/RavenwoodRealty/api-brokerage/internal/home"
	"github.com/RavenwoodRealty/api-brokerage/internal/listing"
	"github.com/RavenwoodRealty/api-brokerage/internal/office"
	"github.com/RavenwoodRealty/api-brokerage/internal/report"
	"github.com/RavenwoodRealty/api-brokerage/internal/sale"
	"github.com/RavenwoodRealty/api-brokerage/internal/seller"
	"gorm.io/gorm"
)

// Migrate creates every table if absent. Parents are listed before the
// models whose foreign keys reference them.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&office.Office{},
		&seller.Seller{},
		&buyer.Buyer{},
		&home.Home{},
		&agent.Agent{},
		&listing.Listing{},
		&sale.Sale{},
		&report.CommissionReport{},
	)
}
