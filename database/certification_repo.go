package database

import (
	"errors"

	"github.com/jsasing/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CertificationRepo struct {
	db *gorm.DB
}

func NewCertificationRepo(db *gorm.DB) *CertificationRepo {
	return &CertificationRepo{db}
}

// List returns all certifications sorted by display order.
func (r *CertificationRepo) List() ([]models.Certification, error) {
	var certs []models.Certification
	err := r.db.Order("sort_order ASC").Find(&certs).Error
	return certs, err
}

// Get returns a certification by id, or nil when it does not exist.
func (r *CertificationRepo) Get(id string) (*models.Certification, error) {
	var cert models.Certification
	err := r.db.Where("id = ?", id).First(&cert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// Put upserts a certification record.
func (r *CertificationRepo) Put(cert models.Certification) (models.Certification, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&cert).Error
	if err != nil {
		return models.Certification{}, err
	}
	return cert, nil
}

// PutAll writes every listed certification.
func (r *CertificationRepo) PutAll(certs []models.Certification) error {
	for _, cert := range certs {
		if _, err := r.Put(cert); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a certification by id, reporting whether a row was removed.
func (r *CertificationRepo) Delete(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Certification{})
	return result.RowsAffected > 0, result.Error
}
