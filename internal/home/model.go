package home

import "time"

// Home is a property on the brokerage's books. PeriodListed is derived from
// DateListed at insertion (see internal/period); Sold is flipped only by the
// sale recorder, inside the same transaction that creates the Sale row.
type Home struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Beds         int       `gorm:"not null" json:"beds"`
	Baths        float64   `gorm:"not null" json:"baths"` // half baths allowed
	Address      string    `gorm:"size:255;not null" json:"address"`
	Zipcode      string    `gorm:"size:32" json:"zipcode"`
	PriceListed  float64   `gorm:"not null" json:"priceListed"`
	DateListed   time.Time `gorm:"not null" json:"dateListed"`
	PeriodListed int       `gorm:"not null;index" json:"periodListed"`
	Sold         bool      `gorm:"not null;default:false" json:"sold"`
}
