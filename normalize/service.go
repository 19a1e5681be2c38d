package normalize

import (
	"fmt"
	"strings"

	"github.com/jsasing/portfolio-backend/models"
)

// Service returns the canonical service record for a raw payload. The
// display number defaults to the 1-based position rendered as "NN/".
func Service(raw models.Service, position int) models.Service {
	number := strings.TrimSpace(raw.Number)
	if number == "" {
		number = fmt.Sprintf("%02d/", position)
	}

	return models.Service{
		ID:          strings.TrimSpace(raw.ID),
		Number:      number,
		Title:       strings.TrimSpace(raw.Title),
		Description: strings.TrimSpace(raw.Description),
		Icon:        strings.TrimSpace(raw.Icon),
		Order:       position,
	}
}

// Services normalizes a replace-all payload: empty entries are dropped and
// order is reassigned densely in submission order.
func Services(raws []models.Service) []models.Service {
	out := make([]models.Service, 0, len(raws))
	for _, raw := range raws {
		if strings.TrimSpace(raw.Title) == "" && strings.TrimSpace(raw.Description) == "" {
			continue
		}
		out = append(out, Service(raw, len(out)+1))
	}
	return out
}
