package listing

import (
	"github.com/RavenwoodRealty/api-brokerage/internal/agent"
	"github.com/RavenwoodRealty/api-brokerage/internal/home"
	"github.com/RavenwoodRealty/api-brokerage/internal/seller"
)

// Listing links a home to the agent representing it and the seller who owns
// it. The same agent may appear on any number of listings.
type Listing struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	HomeID   uint          `gorm:"not null;index" json:"homeId"`
	Home     home.Home     `gorm:"foreignKey:HomeID" json:"home,omitempty"`
	AgentID  uint          `gorm:"not null;index" json:"agentId"`
	Agent    agent.Agent   `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
	SellerID uint          `gorm:"not null;index" json:"sellerId"`
	Seller   seller.Seller `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
}
