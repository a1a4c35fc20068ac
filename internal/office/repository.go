package office

import "gorm.io/gorm"

type Repository interface {
	FindByID(db *gorm.DB, id uint) (*Office, error)
	ListAll(db *gorm.DB) ([]Office, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Office, error) {
	var o Office
	if err := db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Office, error) {
	var offices []Office
	err := db.Order("id").Find(&offices).Error
	return offices, err
}
