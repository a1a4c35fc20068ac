package report

// CommissionReport is a materialized snapshot of per-agent commission totals
// for one period. It is not a source of truth: every rebuild deletes the
// whole table and reinserts fresh rows, so ids carry no identity across runs.
type CommissionReport struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	FirstName        string  `gorm:"size:255;not null" json:"firstName"`
	LastName         string  `gorm:"size:255;not null" json:"lastName"`
	Email            string  `gorm:"size:255" json:"email"`
	CommissionAmount float64 `gorm:"not null" json:"commissionAmount"`
}
