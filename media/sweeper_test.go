package media

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/jsasing/portfolio-backend/filestore"
	"github.com/jsasing/portfolio-backend/models"
	"github.com/jsasing/portfolio-backend/storage"
)

// memoryObjectStore is an in-memory ObjectStore for tests.
type memoryObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryObjectStore(paths ...string) *memoryObjectStore {
	m := &memoryObjectStore{objects: make(map[string][]byte)}
	for _, path := range paths {
		m.objects[path] = []byte("x")
	}
	return m
}

func (m *memoryObjectStore) Upload(_ context.Context, path string, data []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[path] = data
	return path, nil
}

func (m *memoryObjectStore) Delete(_ context.Context, paths []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, path := range paths {
		delete(m.objects, path)
	}
	return nil
}

func (m *memoryObjectStore) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for path := range m.objects {
		if strings.HasPrefix(path, prefix) {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *memoryObjectStore) has(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[path]
	return ok
}

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestNormalizeImagePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/images/projects/a.png", "/images/projects/a.png"},
		{"  /images/projects/a.png  ", "/images/projects/a.png"},
		{"https://x.supabase.co/storage/v1/object/public/media/images/projects/a.png", "/images/projects/a.png"},
		{"https://cdn.example.com/images/projects/a.png", "/images/projects/a.png"},
		{"https://cdn.example.com/images/projects/a.png?t=123", "/images/projects/a.png"},
		{"//cdn.example.com/images/projects/a.png", "/images/projects/a.png"},
		{"https://cdn.example.com/c.png", ""},
		{"/files/doc.pdf", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeImagePath(c.in); got != c.want {
			t.Fatalf("NormalizeImagePath(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestRemoveIfUnusedKeepsReferencedAndProtected(t *testing.T) {
	store := newTestStore(t)
	objects := newMemoryObjectStore(
		"/images/projects/used.png",
		"/images/projects/orphan.png",
		"/images/projects/placeholder-1.svg",
	)

	if _, err := store.Projects().Put(models.Project{
		ID:        "p1",
		Title:     "One",
		Thumbnail: "/images/projects/used.png",
		Gallery:   models.StringList{"/images/projects/used.png"},
		Order:     1,
	}); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	sweeper := NewSweeper(store, objects)
	deleted := sweeper.RemoveIfUnused(context.Background(), []string{
		"/images/projects/used.png",
		"/images/projects/orphan.png",
		"/images/projects/placeholder-1.svg",
	})

	if len(deleted) != 1 || deleted[0] != "/images/projects/orphan.png" {
		t.Fatalf("expected only orphan deleted, got %v", deleted)
	}
	if !objects.has("/images/projects/used.png") {
		t.Fatalf("expected referenced image kept")
	}
	if !objects.has("/images/projects/placeholder-1.svg") {
		t.Fatalf("expected protected image kept")
	}
	if objects.has("/images/projects/orphan.png") {
		t.Fatalf("expected orphan removed from object store")
	}
}

func TestRemoveIfUnusedScansAllCollections(t *testing.T) {
	store := newTestStore(t)
	objects := newMemoryObjectStore(
		"/images/profile/photo.png",
		"/images/profile/bio-embed.png",
		"/images/certifications/badge.png",
		"/images/services/icon.png",
	)

	if _, err := store.Profile().Put(models.Profile{
		Name:         "Jo",
		ProfilePhoto: "/images/profile/photo.png",
		Bio:          `<p><img src="/images/profile/bio-embed.png"></p>`,
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	if err := store.Certifications().PutAll([]models.Certification{
		{ID: "cert-1", Name: "Cert", Thumbnail: "/images/certifications/badge.png", Order: 1},
	}); err != nil {
		t.Fatalf("seed certification: %v", err)
	}
	if _, err := store.Services().ReplaceAll([]models.Service{
		{ID: "svc-1", Title: "Dev", Icon: "/images/services/icon.png", Order: 1},
	}); err != nil {
		t.Fatalf("seed service: %v", err)
	}

	sweeper := NewSweeper(store, objects)
	deleted := sweeper.RemoveIfUnused(context.Background(), []string{
		"/images/profile/photo.png",
		"/images/profile/bio-embed.png",
		"/images/certifications/badge.png",
		"/images/services/icon.png",
	})

	if len(deleted) != 0 {
		t.Fatalf("expected nothing deleted, got %v", deleted)
	}
}

func TestCleanupAllUnused(t *testing.T) {
	store := newTestStore(t)
	objects := newMemoryObjectStore(
		"/images/projects/used.png",
		"/images/projects/orphan-1.png",
		"/images/projects/orphan-2.png",
		"/images/profile/photo.svg",
	)

	if _, err := store.Projects().Put(models.Project{
		ID:        "p1",
		Title:     "One",
		Thumbnail: "/images/projects/used.png",
		Gallery:   models.StringList{"/images/projects/used.png"},
		Order:     1,
	}); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	sweeper := NewSweeper(store, objects)
	deleted, err := sweeper.CleanupAllUnused(context.Background())
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	sort.Strings(deleted)
	if len(deleted) != 2 || deleted[0] != "/images/projects/orphan-1.png" || deleted[1] != "/images/projects/orphan-2.png" {
		t.Fatalf("expected both orphans deleted, got %v", deleted)
	}
	if !objects.has("/images/profile/photo.svg") {
		t.Fatalf("expected protected seed asset kept")
	}
}

func TestCleanupAllUnusedKeepsPublicURLReferences(t *testing.T) {
	store := newTestStore(t)
	objects := newMemoryObjectStore(
		"/images/projects/used.png",
		"/images/projects/orphan.png",
	)

	// References stored as full public URLs, the shape a base-URL object
	// store hands back from Upload.
	if _, err := store.Projects().Put(models.Project{
		ID:        "p1",
		Title:     "One",
		Thumbnail: "https://cdn.example.com/images/projects/used.png",
		Gallery:   models.StringList{"https://cdn.example.com/images/projects/used.png"},
		Order:     1,
	}); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	sweeper := NewSweeper(store, objects)
	deleted, err := sweeper.CleanupAllUnused(context.Background())
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	if len(deleted) != 1 || deleted[0] != "/images/projects/orphan.png" {
		t.Fatalf("expected only orphan deleted, got %v", deleted)
	}
	if !objects.has("/images/projects/used.png") {
		t.Fatalf("expected URL-referenced image kept")
	}
}

// flakyObjectStore fails deletion for one specific path.
type flakyObjectStore struct {
	*memoryObjectStore
	failPath string
}

func (f *flakyObjectStore) Delete(ctx context.Context, paths []string) error {
	for _, path := range paths {
		if path == f.failPath {
			return errors.New("object store unavailable")
		}
	}
	return f.memoryObjectStore.Delete(ctx, paths)
}

func TestRemoveIfUnusedSurvivesDeleteFailure(t *testing.T) {
	store := newTestStore(t)
	objects := &flakyObjectStore{
		memoryObjectStore: newMemoryObjectStore(
			"/images/projects/orphan-1.png",
			"/images/projects/orphan-2.png",
			"/images/projects/orphan-3.png",
		),
		failPath: "/images/projects/orphan-2.png",
	}

	sweeper := NewSweeper(store, objects)
	deleted := sweeper.RemoveIfUnused(context.Background(), []string{
		"/images/projects/orphan-1.png",
		"/images/projects/orphan-2.png",
		"/images/projects/orphan-3.png",
	})

	sort.Strings(deleted)
	if len(deleted) != 2 || deleted[0] != "/images/projects/orphan-1.png" || deleted[1] != "/images/projects/orphan-3.png" {
		t.Fatalf("expected failed path skipped and the rest deleted, got %v", deleted)
	}
	if !objects.has("/images/projects/orphan-2.png") {
		t.Fatalf("expected failed path left in object store")
	}
	if objects.has("/images/projects/orphan-1.png") || objects.has("/images/projects/orphan-3.png") {
		t.Fatalf("expected remaining orphans removed")
	}
}
