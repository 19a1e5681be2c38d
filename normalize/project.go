package normalize

import (
	"fmt"
	"strings"

	"github.com/jsasing/portfolio-backend/models"
)

// DefaultProjectThumbnail is the placeholder used when a project has no
// uploaded images at all.
const DefaultProjectThumbnail = "/images/projects/placeholder-1.svg"

// Project returns the canonical project record for a raw payload.
// Invariants enforced here: categories are de-duplicated case-insensitively
// with the legacy singular field folded in; the thumbnail always belongs to
// the gallery when the gallery is non-empty; focus/zoom values are clamped.
func Project(raw models.Project) models.Project {
	categories := ProjectCategories(raw.Categories, raw.Category)
	gallery := StringSlice(raw.Gallery)

	category := ""
	if len(categories) > 0 {
		category = categories[0]
	}

	return models.Project{
		ID:              strings.TrimSpace(raw.ID),
		Title:           strings.TrimSpace(raw.Title),
		Category:        category,
		Categories:      models.StringList(categories),
		Description:     SanitizeHTML(raw.Description),
		Thumbnail:       projectThumbnail(raw.Thumbnail, gallery),
		ThumbnailFocusX: FocusValue(raw.ThumbnailFocusX),
		ThumbnailFocusY: FocusValue(raw.ThumbnailFocusY),
		ThumbnailZoom:   ZoomValue(raw.ThumbnailZoom),
		Gallery:         models.StringList(gallery),
		Attachments:     Attachments(raw.Attachments),
		Links:           projectLinks(raw.Links),
		Order:           raw.Order,
	}
}

// Projects normalizes a whole collection in place-order.
func Projects(raws []models.Project) []models.Project {
	out := make([]models.Project, len(raws))
	for i, raw := range raws {
		out[i] = Project(raw)
	}
	return out
}

// ProjectCategories merges the plural field with the legacy singular one.
// The plural list wins when it has entries; the singular value is only a
// fallback for records written before the list existed.
func ProjectCategories(categories []string, legacy string) []string {
	normalized := StringSlice(categories)
	if len(normalized) > 0 {
		return normalized
	}
	legacy = strings.TrimSpace(legacy)
	if legacy == "" {
		return []string{}
	}
	return []string{legacy}
}

func projectThumbnail(raw string, gallery []string) string {
	thumbnail := strings.TrimSpace(raw)
	if len(gallery) > 0 {
		for _, item := range gallery {
			if item == thumbnail {
				return thumbnail
			}
		}
		return gallery[0]
	}
	if thumbnail == "" {
		return DefaultProjectThumbnail
	}
	return thumbnail
}

func projectLinks(links []models.Link) models.LinkList {
	out := make(models.LinkList, 0, len(links))
	seen := make(map[string]struct{}, len(links))
	for _, link := range links {
		label := strings.TrimSpace(link.Label)
		url := strings.TrimSpace(link.URL)
		if label == "" && url == "" {
			continue
		}
		if url != "" && !SafeURL(url) {
			continue
		}
		key := strings.ToLower(url)
		if url != "" {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
		}
		out = append(out, models.Link{Label: label, URL: url})
	}
	return out
}

// Attachments drops entries with missing or unsafe URLs, de-duplicates by
// lower-cased URL and coerces the mime type into the allowed set.
func Attachments(attachments []models.Attachment) models.AttachmentList {
	out := make(models.AttachmentList, 0, len(attachments))
	seen := make(map[string]struct{}, len(attachments))
	for _, att := range attachments {
		url := strings.TrimSpace(att.URL)
		if url == "" || !SafeURL(url) {
			continue
		}
		key := strings.ToLower(url)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		mimeType := att.MimeType
		if mimeType != models.MimeTypePDF && mimeType != models.MimeTypeDocx {
			mimeType = models.MimeTypePDF
		}

		id := strings.TrimSpace(att.ID)
		if id == "" {
			id = fmt.Sprintf("att-%d", len(out)+1)
		}

		out = append(out, models.Attachment{
			ID:       id,
			Label:    strings.TrimSpace(att.Label),
			URL:      url,
			MimeType: mimeType,
		})
	}
	return out
}
