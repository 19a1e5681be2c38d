package database

import (
	"github.com/jsasing/portfolio-backend/models"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add appends a contact-form submission.
func (r *ContactRepo) Add(submission models.ContactSubmission) error {
	return r.db.Create(&submission).Error
}
