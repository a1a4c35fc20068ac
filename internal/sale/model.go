package sale

import (
	"time"

	"github.com/RavenwoodRealty/api-brokerage/internal/agent"
	"github.com/RavenwoodRealty/api-brokerage/internal/buyer"
	"github.com/RavenwoodRealty/api-brokerage/internal/home"
)

// Sale is a completed transaction: the home, the closing agent, the buyer,
// the price and the commission. Commission is computed from PriceSold once,
// when the row is written, and never recomputed on read. PeriodSold is the
// derived year+month key used by the reporting filters.
type Sale struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	HomeID     uint        `gorm:"not null;index" json:"homeId"`
	Home       home.Home   `gorm:"foreignKey:HomeID" json:"home,omitempty"`
	AgentID    uint        `gorm:"not null;index" json:"agentId"`
	Agent      agent.Agent `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
	BuyerID    uint        `gorm:"not null;index" json:"buyerId"`
	Buyer      buyer.Buyer `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	PriceSold  float64     `gorm:"not null" json:"priceSold"`
	DateSold   time.Time   `gorm:"not null" json:"dateSold"`
	PeriodSold int         `gorm:"not null;index" json:"periodSold"`
	Commission float64     `gorm:"not null" json:"commission"`
}
