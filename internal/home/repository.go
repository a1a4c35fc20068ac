package home

import "gorm.io/gorm"

type Repository interface {
	FindByID(db *gorm.DB, id uint) (*Home, error)
	ListAll(db *gorm.DB) ([]Home, error)
	ListBySold(db *gorm.DB, sold bool) ([]Home, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Home, error) {
	var h Home
	if err := db.First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Home, error) {
	var homes []Home
	err := db.Order("id").Find(&homes).Error
	return homes, err
}

func (r *repositoryImpl) ListBySold(db *gorm.DB, sold bool) ([]Home, error) {
	var homes []Home
	err := db.Where("sold = ?", sold).Order("id").Find(&homes).Error
	return homes, err
}
