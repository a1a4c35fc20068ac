package agent

import "gorm.io/gorm"

type Repository interface {
	FindByID(db *gorm.DB, id uint) (*Agent, error)
	ListAll(db *gorm.DB) ([]Agent, error)
	ListByOffice(db *gorm.DB, officeID uint) ([]Agent, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Agent, error) {
	var a Agent
	if err := db.Preload("Office").First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Agent, error) {
	var agents []Agent
	err := db.Preload("Office").Order("id").Find(&agents).Error
	return agents, err
}

func (r *repositoryImpl) ListByOffice(db *gorm.DB, officeID uint) ([]Agent, error) {
	var agents []Agent
	err := db.Where("office_id = ?", officeID).Order("id").Find(&agents).Error
	return agents, err
}
