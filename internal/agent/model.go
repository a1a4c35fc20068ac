package agent

import (
	"github.com/RavenwoodRealty/api-brokerage/internal/office"
)

// Agent is an estate agent attached to a single office. Agents appear on
// listings (representing the seller) and on sales (closing the deal).
type Agent struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	OfficeID  uint          `gorm:"not null;index" json:"officeId"`
	Office    office.Office `gorm:"foreignKey:OfficeID" json:"office,omitempty"`
	FirstName string        `gorm:"size:255;not null" json:"firstName"`
	LastName  string        `gorm:"size:255;not null" json:"lastName"`
	Email     string        `gorm:"size:255" json:"email"`
}
