package database

import (
	"github.com/jsasing/portfolio-backend/models"
	"gorm.io/gorm"
)

type ServiceRepo struct {
	db *gorm.DB
}

func NewServiceRepo(db *gorm.DB) *ServiceRepo {
	return &ServiceRepo{db}
}

// List returns all services sorted by display order.
func (r *ServiceRepo) List() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Order("sort_order ASC").Find(&services).Error
	return services, err
}

// ReplaceAll swaps the whole services list in one transaction.
func (r *ServiceRepo) ReplaceAll(services []models.Service) ([]models.Service, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Service{}).Error; err != nil {
			return err
		}
		if len(services) == 0 {
			return nil
		}
		return tx.Create(&services).Error
	})
	if err != nil {
		return nil, err
	}
	return r.List()
}
