package database

import (
	"github.com/jsasing/portfolio-backend/models"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// List returns the managed category list sorted by display order.
func (r *CategoryRepo) List() ([]models.ProjectCategory, error) {
	var categories []models.ProjectCategory
	err := r.db.Order("sort_order ASC").Find(&categories).Error
	return categories, err
}

// ReplaceAll swaps the whole category list in one transaction. The list is
// small (a handful of rows), so delete-and-insert keeps the dense ordering
// trivially correct.
func (r *CategoryRepo) ReplaceAll(categories []models.ProjectCategory) ([]models.ProjectCategory, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ProjectCategory{}).Error; err != nil {
			return err
		}
		if len(categories) == 0 {
			return nil
		}
		return tx.Create(&categories).Error
	})
	if err != nil {
		return nil, err
	}
	return r.List()
}
