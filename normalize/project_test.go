package normalize

import (
	"reflect"
	"testing"

	"github.com/jsasing/portfolio-backend/models"
)

func TestProjectSyncsLegacyCategory(t *testing.T) {
	got := Project(models.Project{
		ID:         "proj-1",
		Title:      "  Site  ",
		Category:   "Old",
		Categories: models.StringList{"Web", "Automation"},
	})

	if got.Category != "Web" {
		t.Fatalf("expected legacy category Web, got %q", got.Category)
	}
	if got.Title != "Site" {
		t.Fatalf("expected trimmed title, got %q", got.Title)
	}
}

func TestProjectLegacyCategoryFallback(t *testing.T) {
	got := Project(models.Project{ID: "proj-1", Title: "Site", Category: "Web"})
	want := models.StringList{"Web"}
	if !reflect.DeepEqual(got.Categories, want) {
		t.Fatalf("expected categories %v, got %v", want, got.Categories)
	}
	if got.Category != "Web" {
		t.Fatalf("expected category Web, got %q", got.Category)
	}
}

func TestProjectThumbnailMustBelongToGallery(t *testing.T) {
	got := Project(models.Project{
		ID:        "proj-1",
		Title:     "Site",
		Thumbnail: "/images/projects/other.png",
		Gallery:   models.StringList{"/images/projects/a.png", "/images/projects/b.png"},
	})
	if got.Thumbnail != "/images/projects/a.png" {
		t.Fatalf("expected gallery fallback thumbnail, got %q", got.Thumbnail)
	}

	got = Project(models.Project{
		ID:        "proj-1",
		Title:     "Site",
		Thumbnail: "/images/projects/b.png",
		Gallery:   models.StringList{"/images/projects/a.png", "/images/projects/b.png"},
	})
	if got.Thumbnail != "/images/projects/b.png" {
		t.Fatalf("expected chosen thumbnail kept, got %q", got.Thumbnail)
	}
}

func TestProjectThumbnailPlaceholderWhenNoImages(t *testing.T) {
	got := Project(models.Project{ID: "proj-1", Title: "Site"})
	if got.Thumbnail != DefaultProjectThumbnail {
		t.Fatalf("expected placeholder, got %q", got.Thumbnail)
	}

	got = Project(models.Project{ID: "proj-1", Title: "Site", Thumbnail: "/images/projects/custom.png"})
	if got.Thumbnail != "/images/projects/custom.png" {
		t.Fatalf("expected custom thumbnail kept with empty gallery, got %q", got.Thumbnail)
	}
}

func TestProjectSanitizesDescription(t *testing.T) {
	got := Project(models.Project{
		ID:          "proj-1",
		Title:       "Site",
		Description: `<p>ok</p><script>alert(1)</script>`,
	})
	if got.Description != "<p>ok</p>" {
		t.Fatalf("expected script stripped, got %q", got.Description)
	}
}

func TestAttachmentsCoerceAndDedupe(t *testing.T) {
	got := Attachments([]models.Attachment{
		{Label: "CV", URL: "/files/cv.pdf", MimeType: "image/png"},
		{Label: "CV again", URL: "/Files/CV.PDF", MimeType: models.MimeTypePDF},
		{Label: "Doc", URL: "/files/doc.docx", MimeType: models.MimeTypeDocx},
		{Label: "Bad", URL: "javascript:alert(1)"},
		{Label: "Empty", URL: ""},
	})

	if len(got) != 2 {
		t.Fatalf("expected 2 attachments, got %d: %v", len(got), got)
	}
	if got[0].MimeType != models.MimeTypePDF {
		t.Fatalf("expected mime coerced to pdf, got %q", got[0].MimeType)
	}
	if got[1].MimeType != models.MimeTypeDocx {
		t.Fatalf("expected docx kept, got %q", got[1].MimeType)
	}
	if got[0].ID == "" || got[1].ID == "" {
		t.Fatalf("expected generated ids, got %v", got)
	}
}

func TestProjectLinksDropUnsafe(t *testing.T) {
	got := projectLinks([]models.Link{
		{Label: "Site", URL: "https://example.com"},
		{Label: "Dup", URL: "HTTPS://EXAMPLE.COM"},
		{Label: "Attack", URL: "javascript:alert(1)"},
		{Label: "", URL: ""},
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 link, got %d: %v", len(got), got)
	}
}

func TestProjectNormalizeIsIdempotent(t *testing.T) {
	raw := models.Project{
		ID:              " proj-ab12cd34 ",
		Title:           "  Portfolio Site ",
		Category:        "old",
		Categories:      models.StringList{"Web", "web", "Mobile"},
		Description:     `<p>Hello<script>alert(1)</script></p>`,
		Thumbnail:       "/images/projects/missing.png",
		ThumbnailFocusX: 400,
		ThumbnailZoom:   0.01,
		Gallery:         models.StringList{"/images/projects/a.png", "/images/projects/a.png"},
		Attachments:     models.AttachmentList{{Label: " Slides ", URL: "example.com/deck.pdf", MimeType: "application/pdf"}},
	}

	once := Project(raw)
	twice := Project(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected normalization fixed point:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}
