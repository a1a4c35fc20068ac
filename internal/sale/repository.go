package sale

import (
	"time"

	"github.com/RavenwoodRealty/api-brokerage/internal/home"
	"github.com/RavenwoodRealty/api-brokerage/internal/period"
	"gorm.io/gorm"
)

type Repository interface {
	Record(db *gorm.DB, homeID, agentID, buyerID uint, priceSold float64) (*Sale, error)
	FindByID(db *gorm.DB, id uint) (*Sale, error)
	ListAll(db *gorm.DB) ([]Sale, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Record inserts a Sale and marks the home sold in one transaction. The sale
// date defaults to now, the period key is derived from it and the commission
// is computed from the price before the insert. If any step fails, including
// a foreign-key violation from an invalid id, nothing is persisted and the
// storage error is returned.
func (r *repositoryImpl) Record(db *gorm.DB, homeID, agentID, buyerID uint, priceSold float64) (*Sale, error) {
	now := time.Now()
	s := Sale{
		HomeID:     homeID,
		AgentID:    agentID,
		BuyerID:    buyerID,
		PriceSold:  priceSold,
		DateSold:   now,
		PeriodSold: period.Key(now),
		Commission: CommissionFor(priceSold),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&s).Error; err != nil {
			return err
		}
		res := tx.Model(&home.Home{}).Where("id = ?", homeID).Update("sold", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Sale, error) {
	var s Sale
	err := db.Preload("Home").
		Preload("Agent").
		Preload("Buyer").
		First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Sale, error) {
	var sales []Sale
	err := db.Preload("Home").
		Preload("Agent").
		Preload("Buyer").
		Order("id").
		Find(&sales).Error
	return sales, err
}
