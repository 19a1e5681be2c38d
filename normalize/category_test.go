package normalize

import (
	"reflect"
	"testing"

	"github.com/jsasing/portfolio-backend/models"
)

func TestCategoryID(t *testing.T) {
	if got := CategoryID("Web Apps"); got != "cat-web-apps" {
		t.Fatalf("expected cat-web-apps, got %q", got)
	}
	if got := CategoryID("  C# / .NET  "); got != "cat-c-net" {
		t.Fatalf("expected cat-c-net, got %q", got)
	}
	if got := CategoryID("!!!"); got != "cat-item" {
		t.Fatalf("expected cat-item fallback, got %q", got)
	}
}

func TestCategoryListRebuildsIDsAndOrder(t *testing.T) {
	got := CategoryList([]models.ProjectCategory{
		{Label: "Web", Order: 2},
		{Label: "Mobile", Order: 1},
		{Label: "web", Order: 3},
		{Label: "   "},
	})

	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d: %v", len(got), got)
	}
	if got[0].Label != "Mobile" || got[1].Label != "Web" {
		t.Fatalf("expected order Mobile, Web, got %v", got)
	}
	if got[0].Order != 1 || got[1].Order != 2 {
		t.Fatalf("expected dense order 1..2, got %v", got)
	}
	if got[0].ID != "cat-mobile" || got[1].ID != "cat-web" {
		t.Fatalf("expected slug ids, got %v", got)
	}
}

func TestCategoryListCollidingIDsGetSuffix(t *testing.T) {
	got := CategoryList([]models.ProjectCategory{
		{ID: "cat-web", Label: "Web", Order: 1},
		{ID: "cat-web", Label: "Web Platform", Order: 2},
	})

	if got[0].ID != "cat-web" {
		t.Fatalf("expected first keeps cat-web, got %q", got[0].ID)
	}
	if got[1].ID != "cat-web-platform" {
		t.Fatalf("expected rebuilt id from label, got %q", got[1].ID)
	}

	got = CategoryList([]models.ProjectCategory{
		{ID: "cat-web", Label: "Web", Order: 1},
		{ID: "cat-web", Label: "Web", Order: 2},
		{ID: "cat-web", Label: "WEB APPS", Order: 3},
	})
	if len(got) != 2 {
		t.Fatalf("expected duplicate label dropped, got %v", got)
	}
	if got[1].ID != "cat-web-apps" {
		t.Fatalf("expected rebuilt id, got %q", got[1].ID)
	}

	// Rebuilt slug can itself collide: a numeric suffix is appended
	got = CategoryList([]models.ProjectCategory{
		{Label: "Web", Order: 1},
		{Label: "Web!", Order: 2},
	})
	if got[0].ID != "cat-web" || got[1].ID != "cat-web-2" {
		t.Fatalf("expected cat-web and cat-web-2, got %v", got)
	}
}

func TestDeriveCategoriesFromProjects(t *testing.T) {
	projects := []models.Project{
		{ID: "p2", Order: 2, Categories: models.StringList{"Mobile"}},
		{ID: "p1", Order: 1, Categories: models.StringList{"Web", "Automation"}},
		{ID: "p3", Order: 3, Category: "web"},
	}

	got := DeriveCategoriesFromProjects(projects)
	labels := make([]string, len(got))
	for i, c := range got {
		labels[i] = c.Label
	}
	want := []string{"Web", "Automation", "Mobile"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("expected labels %v, got %v", want, labels)
	}
	for i, c := range got {
		if c.Order != i+1 {
			t.Fatalf("expected dense order, got %v", got)
		}
	}
}

func TestReconcileCategoriesRenamePropagates(t *testing.T) {
	previous := []models.ProjectCategory{
		{ID: "cat-web", Label: "Web", Order: 1},
		{ID: "cat-mobile", Label: "Mobile", Order: 2},
	}
	input := []models.ProjectCategory{
		{ID: "cat-web", Label: "Web Apps", Order: 1},
		{ID: "cat-mobile", Label: "Mobile", Order: 2},
	}
	projects := []models.Project{
		{ID: "p1", Title: "One", Categories: models.StringList{"Web", "Mobile"}, Category: "Web"},
	}

	categories, updated := ReconcileCategories(input, previous, projects)

	if categories[0].Label != "Web Apps" {
		t.Fatalf("expected renamed label, got %v", categories)
	}
	want := models.StringList{"Web Apps", "Mobile"}
	if !reflect.DeepEqual(updated[0].Categories, want) {
		t.Fatalf("expected project labels %v, got %v", want, updated[0].Categories)
	}
	if updated[0].Category != "Web Apps" {
		t.Fatalf("expected legacy field recomputed, got %q", updated[0].Category)
	}
}

func TestReconcileCategoriesDeletionStrips(t *testing.T) {
	previous := []models.ProjectCategory{
		{ID: "cat-web", Label: "Web", Order: 1},
		{ID: "cat-mobile", Label: "Mobile", Order: 2},
	}
	input := []models.ProjectCategory{
		{ID: "cat-web", Label: "Web", Order: 1},
	}
	projects := []models.Project{
		{ID: "p1", Title: "One", Categories: models.StringList{"Mobile", "Web"}, Category: "Mobile"},
		{ID: "p2", Title: "Two", Categories: models.StringList{"Mobile"}, Category: "Mobile"},
	}

	_, updated := ReconcileCategories(input, previous, projects)

	if !reflect.DeepEqual(updated[0].Categories, models.StringList{"Web"}) {
		t.Fatalf("expected Mobile stripped, got %v", updated[0].Categories)
	}
	if updated[0].Category != "Web" {
		t.Fatalf("expected legacy field moved to Web, got %q", updated[0].Category)
	}
	if len(updated[1].Categories) != 0 {
		t.Fatalf("expected all labels stripped, got %v", updated[1].Categories)
	}
	if updated[1].Category != "" {
		t.Fatalf("expected empty legacy field, got %q", updated[1].Category)
	}
}
