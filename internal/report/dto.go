package report

// OfficeSaleCount is one row of the top-offices-by-count report.
type OfficeSaleCount struct {
	OfficeID  uint   `json:"officeId"`
	Name      string `json:"name"`
	SaleCount int64  `json:"saleCount"`
}

// OfficeSaleAmount is one row of the top-offices-by-amount report.
type OfficeSaleAmount struct {
	OfficeID    uint    `json:"officeId"`
	Name        string  `json:"name"`
	TotalAmount float64 `json:"totalAmount"`
}

// AgentSales is one row of the top-agents report.
type AgentSales struct {
	AgentID     uint    `json:"agentId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	TotalAmount float64 `json:"totalAmount"`
}

// HomeDaysOnMarket is the whole-day market time of one home sold in the
// period.
type HomeDaysOnMarket struct {
	HomeID  uint   `json:"homeId"`
	Address string `json:"address"`
	Days    int    `json:"days"`
}

// DaysOnMarketReport keeps the per-home rows the reference produced and adds
// the aggregate the reference forgot. AverageDays is nil for an empty period.
type DaysOnMarketReport struct {
	Homes       []HomeDaysOnMarket `json:"homes"`
	AverageDays *float64           `json:"averageDays"`
}

// AveragePriceReport wraps the period average so an empty period serializes
// as an explicit null, never as zero.
type AveragePriceReport struct {
	Period       int      `json:"period"`
	AveragePrice *float64 `json:"averagePrice"`
}
