package filestore

import (
	"testing"

	"github.com/jsasing/portfolio-backend/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestProfileGetEmptyStore(t *testing.T) {
	store := newTestStore(t)

	profile, err := store.Profile().Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if profile.ID != models.ProfileID {
		t.Fatalf("expected singleton id, got %q", profile.ID)
	}
	if profile.Name != "" {
		t.Fatalf("expected empty profile fields, got %+v", profile)
	}
	if profile.ProfilePhotoFocusX != 50 || profile.ProfilePhotoFocusY != 50 || profile.ProfilePhotoZoom != 1 {
		t.Fatalf("expected display defaults on unwritten profile, got %+v", profile)
	}
}

func TestProfileGetKeepsStoredFocus(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Profile().Put(models.Profile{Name: "Jo", ProfilePhotoFocusX: 10}); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Profile().Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ProfilePhotoFocusX != 10 {
		t.Fatalf("expected stored focus kept, got %+v", got)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	store := newTestStore(t)

	saved, err := store.Profile().Put(models.Profile{Name: "Jo", Skills: models.StringList{"Go"}})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if saved.ID != models.ProfileID {
		t.Fatalf("expected singleton id forced, got %q", saved.ID)
	}

	got, err := store.Profile().Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Jo" || len(got.Skills) != 1 {
		t.Fatalf("expected persisted profile, got %+v", got)
	}
}

func TestProjectCRUD(t *testing.T) {
	store := newTestStore(t)
	projects := store.Projects()

	if _, err := projects.Put(models.Project{ID: "p1", Title: "One", Order: 1}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := projects.Put(models.Project{ID: "p2", Title: "Two", Order: 2}); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := projects.Get("p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Title != "One" {
		t.Fatalf("expected p1, got %+v", got)
	}

	if missing, err := projects.Get("nope"); err != nil || missing != nil {
		t.Fatalf("expected nil for missing id, got %+v err=%v", missing, err)
	}

	// Update in place
	if _, err := projects.Put(models.Project{ID: "p1", Title: "One v2", Order: 1}); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, err := projects.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Title != "One v2" {
		t.Fatalf("expected updated list, got %+v", list)
	}

	removed, err := projects.Delete("p1")
	if err != nil || !removed {
		t.Fatalf("expected delete, got removed=%v err=%v", removed, err)
	}
	removed, err = projects.Delete("p1")
	if err != nil || removed {
		t.Fatalf("expected second delete no-op, got removed=%v err=%v", removed, err)
	}
}

func TestProjectListSortsByOrder(t *testing.T) {
	store := newTestStore(t)
	projects := store.Projects()

	if err := projects.PutAll([]models.Project{
		{ID: "b", Order: 2},
		{ID: "a", Order: 1},
		{ID: "c", Order: 3},
	}); err != nil {
		t.Fatalf("putall: %v", err)
	}

	list, err := projects.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list[0].ID != "a" || list[1].ID != "b" || list[2].ID != "c" {
		t.Fatalf("expected order a,b,c, got %+v", list)
	}
}

func TestCategoryReplaceAll(t *testing.T) {
	store := newTestStore(t)
	categories := store.Categories()

	saved, err := categories.ReplaceAll([]models.ProjectCategory{
		{ID: "cat-web", Label: "Web", Order: 1},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected 1 category, got %+v", saved)
	}

	saved, err = categories.ReplaceAll(nil)
	if err != nil {
		t.Fatalf("replace with nil: %v", err)
	}
	if len(saved) != 0 {
		t.Fatalf("expected empty list, got %+v", saved)
	}

	list, err := categories.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected wholesale replacement, got %+v", list)
	}
}

func TestContactAddAppends(t *testing.T) {
	store := newTestStore(t)

	if err := store.Contacts().Add(models.ContactSubmission{ID: "msg-1", Name: "A", Subject: "Hi", MessageText: "hello"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Contacts().Add(models.ContactSubmission{ID: "msg-2", Name: "B", Subject: "Yo", MessageText: "hey"}); err != nil {
		t.Fatalf("add: %v", err)
	}
}
