package database

import (
	"github.com/jsasing/portfolio-backend/models"
	"github.com/jsasing/portfolio-backend/storage"
	"gorm.io/gorm"
)

type Store struct {
	profileRepo       *ProfileRepo
	projectRepo       *ProjectRepo
	categoryRepo      *CategoryRepo
	certificationRepo *CertificationRepo
	serviceRepo       *ServiceRepo
	contactRepo       *ContactRepo
}

// New initializes a new Store with each repository using a shared GORM database instance
func New(db *gorm.DB) Store {
	return Store{
		profileRepo:       NewProfileRepo(db),
		projectRepo:       NewProjectRepo(db),
		categoryRepo:      NewCategoryRepo(db),
		certificationRepo: NewCertificationRepo(db),
		serviceRepo:       NewServiceRepo(db),
		contactRepo:       NewContactRepo(db),
	}
}

// Migrate creates or updates every content table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Project{},
		&models.ProjectCategory{},
		&models.Certification{},
		&models.Service{},
		&models.ContactSubmission{},
	)
}

// Accessor methods for each repository

func (s Store) Profile() storage.ProfileStore {
	return s.profileRepo
}

func (s Store) Projects() storage.ProjectStore {
	return s.projectRepo
}

func (s Store) Categories() storage.CategoryStore {
	return s.categoryRepo
}

func (s Store) Certifications() storage.CertificationStore {
	return s.certificationRepo
}

func (s Store) Services() storage.ServiceStore {
	return s.serviceRepo
}

func (s Store) Contacts() storage.ContactStore {
	return s.contactRepo
}
