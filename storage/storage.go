// Package storage defines the backend-agnostic store interfaces. Two
// implementations exist: the gorm/postgres store in package database and
// the flat-file JSON store in package filestore. The normalization and
// ordering logic is identical against either.
package storage

import "github.com/jsasing/portfolio-backend/models"

// Store aggregates the per-collection stores of one backend.
type Store interface {
	Profile() ProfileStore
	Projects() ProjectStore
	Categories() CategoryStore
	Certifications() CertificationStore
	Services() ServiceStore
	Contacts() ContactStore
}

// ProfileStore holds the singleton profile record. Get on an empty store
// returns a zero profile, not an error.
type ProfileStore interface {
	Get() (models.Profile, error)
	Put(profile models.Profile) (models.Profile, error)
}

// ProjectStore is the project collection. Get returns nil when the id is
// absent. PutAll replaces every listed record in one pass and is used for
// batch updates (reorder, category reconciliation).
type ProjectStore interface {
	List() ([]models.Project, error)
	Get(id string) (*models.Project, error)
	Put(project models.Project) (models.Project, error)
	PutAll(projects []models.Project) error
	Delete(id string) (bool, error)
}

// CategoryStore is the managed category list, always replaced wholesale.
type CategoryStore interface {
	List() ([]models.ProjectCategory, error)
	ReplaceAll(categories []models.ProjectCategory) ([]models.ProjectCategory, error)
}

// CertificationStore is the certification collection.
type CertificationStore interface {
	List() ([]models.Certification, error)
	Get(id string) (*models.Certification, error)
	Put(cert models.Certification) (models.Certification, error)
	PutAll(certs []models.Certification) error
	Delete(id string) (bool, error)
}

// ServiceStore is the services list, always replaced wholesale.
type ServiceStore interface {
	List() ([]models.Service, error)
	ReplaceAll(services []models.Service) ([]models.Service, error)
}

// ContactStore appends contact-form submissions.
type ContactStore interface {
	Add(submission models.ContactSubmission) error
}
