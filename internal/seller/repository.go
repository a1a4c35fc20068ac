package seller

import "gorm.io/gorm"

type Repository interface {
	FindByID(db *gorm.DB, id uint) (*Seller, error)
	ListAll(db *gorm.DB) ([]Seller, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Seller, error) {
	var s Seller
	if err := db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Seller, error) {
	var sellers []Seller
	err := db.Order("id").Find(&sellers).Error
	return sellers, err
}
