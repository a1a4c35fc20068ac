package listing

import "gorm.io/gorm"

type Repository interface {
	Create(db *gorm.DB, l *Listing) error
	FindByID(db *gorm.DB, id uint) (*Listing, error)
	ListAll(db *gorm.DB) ([]Listing, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, l *Listing) error {
	return db.Create(l).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Listing, error) {
	var l Listing
	err := db.Preload("Home").
		Preload("Agent").
		Preload("Seller").
		First(&l, id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Listing, error) {
	var listings []Listing
	err := db.Preload("Home").
		Preload("Agent").
		Preload("Seller").
		Order("id").
		Find(&listings).Error
	return listings, err
}
