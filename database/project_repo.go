package database

import (
	"errors"

	"github.com/jsasing/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// List returns all projects sorted by display order.
func (r *ProjectRepo) List() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("sort_order ASC").Find(&projects).Error
	return projects, err
}

// Get returns a project by id, or nil when it does not exist.
func (r *ProjectRepo) Get(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("id = ?", id).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Put upserts a project record.
func (r *ProjectRepo) Put(project models.Project) (models.Project, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&project).Error
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// PutAll writes every listed project. Used by reorder and category
// reconciliation, which recompute the whole collection in one pass.
func (r *ProjectRepo) PutAll(projects []models.Project) error {
	for _, project := range projects {
		if _, err := r.Put(project); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a project by id, reporting whether a row was removed.
func (r *ProjectRepo) Delete(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Project{})
	return result.RowsAffected > 0, result.Error
}
