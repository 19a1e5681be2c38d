// Package filestore implements the content stores over flat JSON files,
// one file per collection. It is the lighter of the two backends; behavior
// matches the database store exactly, minus transactional replace.
package filestore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/jsasing/portfolio-backend/models"
	"github.com/jsasing/portfolio-backend/normalize"
	"github.com/jsasing/portfolio-backend/storage"
)

const (
	profileFile        = "profile.json"
	projectsFile       = "projects.json"
	categoriesFile     = "project_categories.json"
	certificationsFile = "certifications.json"
	servicesFile       = "services.json"
	contactsFile       = "contact_submissions.json"
)

type Store struct {
	dir string

	// Serializes read-modify-write cycles within this process. Concurrent
	// edits remain last-write-wins, matching the single-operator model.
	mu sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Profile() storage.ProfileStore              { return (*profileStore)(s) }
func (s *Store) Projects() storage.ProjectStore             { return (*projectStore)(s) }
func (s *Store) Categories() storage.CategoryStore          { return (*categoryStore)(s) }
func (s *Store) Certifications() storage.CertificationStore { return (*certificationStore)(s) }
func (s *Store) Services() storage.ServiceStore             { return (*serviceStore)(s) }
func (s *Store) Contacts() storage.ContactStore             { return (*contactStore)(s) }

// readJSON loads a collection file into dest, leaving dest untouched when
// the file does not exist yet.
func (s *Store) readJSON(name string, dest any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// writeJSON writes a collection file atomically via rename.
func (s *Store) writeJSON(name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	target := filepath.Join(s.dir, name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// profileStore

type profileStore Store

func (s *profileStore) Get() (models.Profile, error) {
	profile := normalize.SeedProfile()
	if err := (*Store)(s).readJSON(profileFile, &profile); err != nil {
		return models.Profile{}, err
	}
	profile.ID = models.ProfileID
	return profile, nil
}

func (s *profileStore) Put(profile models.Profile) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile.ID = models.ProfileID
	if err := (*Store)(s).writeJSON(profileFile, profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// projectStore

type projectStore Store

func (s *projectStore) List() ([]models.Project, error) {
	var projects []models.Project
	if err := (*Store)(s).readJSON(projectsFile, &projects); err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool { return projects[i].Order < projects[j].Order })
	return projects, nil
}

func (s *projectStore) Get(id string) (*models.Project, error) {
	projects, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, nil
}

func (s *projectStore) Put(project models.Project) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var projects []models.Project
	if err := (*Store)(s).readJSON(projectsFile, &projects); err != nil {
		return models.Project{}, err
	}

	replaced := false
	for i := range projects {
		if projects[i].ID == project.ID {
			projects[i] = project
			replaced = true
			break
		}
	}
	if !replaced {
		projects = append(projects, project)
	}

	if err := (*Store)(s).writeJSON(projectsFile, projects); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (s *projectStore) PutAll(projects []models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if projects == nil {
		projects = []models.Project{}
	}
	return (*Store)(s).writeJSON(projectsFile, projects)
}

func (s *projectStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var projects []models.Project
	if err := (*Store)(s).readJSON(projectsFile, &projects); err != nil {
		return false, err
	}

	kept := projects[:0]
	removed := false
	for _, project := range projects {
		if project.ID == id {
			removed = true
			continue
		}
		kept = append(kept, project)
	}
	if !removed {
		return false, nil
	}
	return true, (*Store)(s).writeJSON(projectsFile, kept)
}

// categoryStore

type categoryStore Store

func (s *categoryStore) List() ([]models.ProjectCategory, error) {
	var categories []models.ProjectCategory
	if err := (*Store)(s).readJSON(categoriesFile, &categories); err != nil {
		return nil, err
	}
	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Order < categories[j].Order })
	return categories, nil
}

func (s *categoryStore) ReplaceAll(categories []models.ProjectCategory) ([]models.ProjectCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if categories == nil {
		categories = []models.ProjectCategory{}
	}
	if err := (*Store)(s).writeJSON(categoriesFile, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// certificationStore

type certificationStore Store

func (s *certificationStore) List() ([]models.Certification, error) {
	var certs []models.Certification
	if err := (*Store)(s).readJSON(certificationsFile, &certs); err != nil {
		return nil, err
	}
	sort.SliceStable(certs, func(i, j int) bool { return certs[i].Order < certs[j].Order })
	return certs, nil
}

func (s *certificationStore) Get(id string) (*models.Certification, error) {
	certs, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range certs {
		if certs[i].ID == id {
			return &certs[i], nil
		}
	}
	return nil, nil
}

func (s *certificationStore) Put(cert models.Certification) (models.Certification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var certs []models.Certification
	if err := (*Store)(s).readJSON(certificationsFile, &certs); err != nil {
		return models.Certification{}, err
	}

	replaced := false
	for i := range certs {
		if certs[i].ID == cert.ID {
			certs[i] = cert
			replaced = true
			break
		}
	}
	if !replaced {
		certs = append(certs, cert)
	}

	if err := (*Store)(s).writeJSON(certificationsFile, certs); err != nil {
		return models.Certification{}, err
	}
	return cert, nil
}

func (s *certificationStore) PutAll(certs []models.Certification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if certs == nil {
		certs = []models.Certification{}
	}
	return (*Store)(s).writeJSON(certificationsFile, certs)
}

func (s *certificationStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var certs []models.Certification
	if err := (*Store)(s).readJSON(certificationsFile, &certs); err != nil {
		return false, err
	}

	kept := certs[:0]
	removed := false
	for _, cert := range certs {
		if cert.ID == id {
			removed = true
			continue
		}
		kept = append(kept, cert)
	}
	if !removed {
		return false, nil
	}
	return true, (*Store)(s).writeJSON(certificationsFile, kept)
}

// serviceStore

type serviceStore Store

func (s *serviceStore) List() ([]models.Service, error) {
	var services []models.Service
	if err := (*Store)(s).readJSON(servicesFile, &services); err != nil {
		return nil, err
	}
	sort.SliceStable(services, func(i, j int) bool { return services[i].Order < services[j].Order })
	return services, nil
}

func (s *serviceStore) ReplaceAll(services []models.Service) ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if services == nil {
		services = []models.Service{}
	}
	if err := (*Store)(s).writeJSON(servicesFile, services); err != nil {
		return nil, err
	}
	return services, nil
}

// contactStore

type contactStore Store

func (s *contactStore) Add(submission models.ContactSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var submissions []models.ContactSubmission
	if err := (*Store)(s).readJSON(contactsFile, &submissions); err != nil {
		return err
	}
	submissions = append(submissions, submission)
	return (*Store)(s).writeJSON(contactsFile, submissions)
}
