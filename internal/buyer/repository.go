package buyer

import "gorm.io/gorm"

type Repository interface {
	FindByID(db *gorm.DB, id uint) (*Buyer, error)
	ListAll(db *gorm.DB) ([]Buyer, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Buyer, error) {
	var b Buyer
	if err := db.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Buyer, error) {
	var buyers []Buyer
	err := db.Order("id").Find(&buyers).Error
	return buyers, err
}
