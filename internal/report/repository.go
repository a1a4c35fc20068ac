package report

import (
	"database/sql"
	"math"
	"time"

	"gorm.io/gorm"
)

// Repository holds the fixed reporting queries. All of them are pure reads
// filtered on sales.period_sold, except RebuildCommissions which replaces the
// snapshot table. Tie-breaks are deterministic: secondary ascending id sort.
type Repository interface {
	TopOfficesBySaleCount(db *gorm.DB, periodKey int) ([]OfficeSaleCount, error)
	TopOfficesBySaleAmount(db *gorm.DB, periodKey int) ([]OfficeSaleAmount, error)
	TopAgentsBySaleAmount(db *gorm.DB, periodKey int) ([]AgentSales, error)
	RebuildCommissions(db *gorm.DB, periodKey int) ([]CommissionReport, error)
	ListCommissions(db *gorm.DB) ([]CommissionReport, error)
	DaysOnMarket(db *gorm.DB, periodKey int) (*DaysOnMarketReport, error)
	AverageSellingPrice(db *gorm.DB, periodKey int) (*float64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

const topLimit = 5

func (r *repositoryImpl) TopOfficesBySaleCount(db *gorm.DB, periodKey int) ([]OfficeSaleCount, error) {
	var rows []OfficeSaleCount
	err := db.Table("sales").
		Select("offices.id AS office_id, offices.name AS name, COUNT(sales.id) AS sale_count").
		Joins("JOIN agents ON agents.id = sales.agent_id").
		Joins("JOIN offices ON offices.id = agents.office_id").
		Where("sales.period_sold = ?", periodKey).
		Group("offices.id").
		Order("sale_count DESC, offices.id ASC").
		Limit(topLimit).
		Scan(&rows).Error
	return rows, err
}

func (r *repositoryImpl) TopOfficesBySaleAmount(db *gorm.DB, periodKey int) ([]OfficeSaleAmount, error) {
	var rows []OfficeSaleAmount
	err := db.Table("sales").
		Select("offices.id AS office_id, offices.name AS name, SUM(sales.price_sold) AS total_amount").
		Joins("JOIN agents ON agents.id = sales.agent_id").
		Joins("JOIN offices ON offices.id = agents.office_id").
		Where("sales.period_sold = ?", periodKey).
		Group("offices.id").
		Order("total_amount DESC, offices.id ASC").
		Limit(topLimit).
		Scan(&rows).Error
	return rows, err
}

func (r *repositoryImpl) TopAgentsBySaleAmount(db *gorm.DB, periodKey int) ([]AgentSales, error) {
	var rows []AgentSales
	err := db.Table("sales").
		Select("agents.id AS agent_id, agents.first_name AS first_name, agents.last_name AS last_name, agents.email AS email, SUM(sales.price_sold) AS total_amount").
		Joins("JOIN agents ON agents.id = sales.agent_id").
		Where("sales.period_sold = ?", periodKey).
		Group("agents.id").
		Order("total_amount DESC, agents.id ASC").
		Limit(topLimit).
		Scan(&rows).Error
	return rows, err
}

// RebuildCommissions recomputes the per-agent commission totals for the
// period and replaces the snapshot table with them. Delete and reinsert run
// in one transaction so readers never see a half-cleared table.
func (r *repositoryImpl) RebuildCommissions(db *gorm.DB, periodKey int) ([]CommissionReport, error) {
	var rows []CommissionReport
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&CommissionReport{}).Error; err != nil {
			return err
		}

		var grouped []CommissionReport
		if err := tx.Table("sales").
			Select("agents.first_name AS first_name, agents.last_name AS last_name, agents.email AS email, SUM(sales.commission) AS commission_amount").
			Joins("JOIN agents ON agents.id = sales.agent_id").
			Where("sales.period_sold = ?", periodKey).
			Group("agents.id").
			Order("commission_amount DESC, agents.id ASC").
			Scan(&grouped).Error; err != nil {
			return err
		}

		if len(grouped) > 0 {
			if err := tx.Create(&grouped).Error; err != nil {
				return err
			}
		}
		rows = grouped
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repositoryImpl) ListCommissions(db *gorm.DB) ([]CommissionReport, error) {
	var rows []CommissionReport
	err := db.Order("commission_amount DESC, id ASC").Find(&rows).Error
	return rows, err
}

type homeSaleDates struct {
	HomeID     uint
	Address    string
	DateListed time.Time
	DateSold   time.Time
}

// DaysOnMarket returns whole days between listing and sale for each home sold
// in the period, plus the aggregate average. The subtraction happens in Go so
// the query stays valid on both sqlite and postgres.
func (r *repositoryImpl) DaysOnMarket(db *gorm.DB, periodKey int) (*DaysOnMarketReport, error) {
	var rows []homeSaleDates
	err := db.Table("sales").
		Select("homes.id AS home_id, homes.address AS address, homes.date_listed AS date_listed, sales.date_sold AS date_sold").
		Joins("JOIN homes ON homes.id = sales.home_id").
		Where("sales.period_sold = ?", periodKey).
		Order("homes.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := &DaysOnMarketReport{Homes: make([]HomeDaysOnMarket, 0, len(rows))}
	total := 0
	for _, row := range rows {
		days := int(row.DateSold.Sub(row.DateListed).Hours() / 24)
		total += days
		out.Homes = append(out.Homes, HomeDaysOnMarket{
			HomeID:  row.HomeID,
			Address: row.Address,
			Days:    days,
		})
	}
	if len(rows) > 0 {
		avg := float64(total) / float64(len(rows))
		out.AverageDays = &avg
	}
	return out, nil
}

// AverageSellingPrice returns the mean price of the period's sales, rounded
// to 2 decimals, or nil when no sale matches. Callers must handle nil; it is
// not zero.
func (r *repositoryImpl) AverageSellingPrice(db *gorm.DB, periodKey int) (*float64, error) {
	var avg sql.NullFloat64
	row := db.Table("sales").
		Select("AVG(price_sold)").
		Where("period_sold = ?", periodKey).
		Row()
	if err := row.Scan(&avg); err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	rounded := math.Round(avg.Float64*100) / 100
	return &rounded, nil
}
