package normalize

import (
	"strings"

	"github.com/jsasing/portfolio-backend/models"
)

// DefaultBadgeColor matches the violet accent the admin editor starts
// new certifications with.
const DefaultBadgeColor = "#8b5cf6"

// Certification returns the canonical certification record for a raw
// payload. The palette code is validated against the known set and
// re-derived from the organization name when invalid or unset.
func Certification(raw models.Certification) models.Certification {
	badgeColor := strings.TrimSpace(raw.BadgeColor)
	if badgeColor == "" {
		badgeColor = DefaultBadgeColor
	}

	return models.Certification{
		ID:            strings.TrimSpace(raw.ID),
		Name:          strings.TrimSpace(raw.Name),
		Year:          strings.TrimSpace(raw.Year),
		Organization:  strings.TrimSpace(raw.Organization),
		Description:   strings.TrimSpace(raw.Description),
		CredentialURL: URL(raw.CredentialURL),
		CredentialID:  strings.TrimSpace(raw.CredentialID),
		Thumbnail:     strings.TrimSpace(raw.Thumbnail),
		Attachments:   Attachments(raw.Attachments),
		PaletteCode:   PaletteCode(raw.PaletteCode, raw.Organization),
		BadgeColor:    badgeColor,
		Order:         raw.Order,
	}
}

// Certifications normalizes a whole collection in place-order.
func Certifications(raws []models.Certification) []models.Certification {
	out := make([]models.Certification, len(raws))
	for i, raw := range raws {
		out[i] = Certification(raw)
	}
	return out
}
