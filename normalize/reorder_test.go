package normalize

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/jsasing/portfolio-backend/errs"
	"github.com/jsasing/portfolio-backend/models"
)

func TestExtractOrderIDs(t *testing.T) {
	got := ExtractOrderIDs(json.RawMessage(`["a","b","c"]`))
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected bare array parsed, got %v", got)
	}

	got = ExtractOrderIDs(json.RawMessage(`[{"id":"a"},{"id":"b"}]`))
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected object array parsed, got %v", got)
	}

	if got := ExtractOrderIDs(json.RawMessage(`{"nope":1}`)); got != nil {
		t.Fatalf("expected nil for unknown shape, got %v", got)
	}

	got = ExtractOrderIDs(json.RawMessage(`["b"," B ","a"]`))
	if !reflect.DeepEqual(got, []string{"b", "B", "a"}) {
		t.Fatalf("expected duplicates preserved for validation, got %v", got)
	}
}

func TestReorderRejectsDuplicateFromPayload(t *testing.T) {
	projects := []models.Project{
		{ID: "a", Title: "A", Order: 1},
		{ID: "b", Title: "B", Order: 2},
	}

	ids := ExtractOrderIDs(json.RawMessage(`["b","B","a"]`))
	_, err := ReorderProjects(projects, ids)
	if !errors.Is(err, errs.ErrDuplicateReorderID) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestReorderProjects(t *testing.T) {
	projects := []models.Project{
		{ID: "a", Title: "A", Order: 1},
		{ID: "b", Title: "B", Order: 2},
		{ID: "c", Title: "C", Order: 3},
	}

	got, err := ReorderProjects(projects, []string{"c", "a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got[0].ID != "c" || got[1].ID != "a" || got[2].ID != "b" {
		t.Fatalf("expected order c,a,b, got %v", got)
	}
	for i, p := range got {
		if p.Order != i+1 {
			t.Fatalf("expected dense order 1..3, got %v", got)
		}
	}
}

func TestReorderProjectsValidation(t *testing.T) {
	projects := []models.Project{
		{ID: "a", Title: "A", Order: 1},
		{ID: "b", Title: "B", Order: 2},
	}

	if _, err := ReorderProjects(projects, nil); !errors.Is(err, errs.ErrEmptyReorder) {
		t.Fatalf("expected empty reorder error, got %v", err)
	}
	if _, err := ReorderProjects(projects, []string{"a", "A"}); !errors.Is(err, errs.ErrDuplicateReorderID) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
	if _, err := ReorderProjects(projects, []string{"a"}); !errors.Is(err, errs.ErrReorderLengthMismatch) {
		t.Fatalf("expected length mismatch error, got %v", err)
	}
	if _, err := ReorderProjects(projects, []string{"a", "x"}); !errors.Is(err, errs.ErrUnknownID) {
		t.Fatalf("expected unknown id error, got %v", err)
	}
}

func TestReorderCertifications(t *testing.T) {
	certs := []models.Certification{
		{ID: "cert-1", Name: "One", Order: 1},
		{ID: "cert-2", Name: "Two", Order: 2},
	}

	got, err := ReorderCertifications(certs, []string{"cert-2", "cert-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].ID != "cert-2" || got[0].Order != 1 || got[1].Order != 2 {
		t.Fatalf("expected swapped dense order, got %v", got)
	}
}

func TestResequenceProjects(t *testing.T) {
	projects := []models.Project{
		{ID: "a", Order: 1},
		{ID: "c", Order: 3},
		{ID: "d", Order: 4},
	}
	got := ResequenceProjects(projects)
	for i, p := range got {
		if p.Order != i+1 {
			t.Fatalf("expected dense order after delete, got %v", got)
		}
	}
}
