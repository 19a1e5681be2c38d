package database

import (
	"errors"

	"github.com/jsasing/portfolio-backend/models"
	"github.com/jsasing/portfolio-backend/normalize"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// Get returns the singleton profile row, or the seed profile when none
// has been written yet.
func (r *ProfileRepo) Get() (models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("id = ?", models.ProfileID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return normalize.SeedProfile(), nil
	}
	if err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// Put upserts the singleton profile row.
func (r *ProfileRepo) Put(profile models.Profile) (models.Profile, error) {
	profile.ID = models.ProfileID
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&profile).Error
	if err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}
