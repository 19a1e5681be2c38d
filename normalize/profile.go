package normalize

import (
	"strings"

	"github.com/jsasing/portfolio-backend/models"
)

// DefaultSocialIcon is used when a social entry has no icon key.
const DefaultSocialIcon = "FaGlobe"

// SeedProfile is the profile served before anything has been stored:
// display defaults applied, every other field empty. Stores overlay the
// persisted record onto it, so an absent focus or zoom field reads as the
// default while an explicit stored value wins.
func SeedProfile() models.Profile {
	return models.Profile{
		ID:                  models.ProfileID,
		ExperienceStartYear: DefaultExperienceStartYear,
		ProfilePhotoFocusX:  DefaultFocus,
		ProfilePhotoFocusY:  DefaultFocus,
		ProfilePhotoZoom:    DefaultZoom,
	}
}

// Profile returns the canonical profile record for a raw payload. Bad
// values become defaults, never errors.
func Profile(raw models.Profile) models.Profile {
	return models.Profile{
		ID:                  models.ProfileID,
		Name:                strings.TrimSpace(raw.Name),
		Tagline:             strings.TrimSpace(raw.Tagline),
		Bio:                 CoerceLegacyHTML(raw.Bio),
		ProfilePhoto:        strings.TrimSpace(raw.ProfilePhoto),
		ExperienceStartYear: ExperienceStartYear(raw.ExperienceStartYear),
		ProfilePhotoFocusX:  FocusValue(raw.ProfilePhotoFocusX),
		ProfilePhotoFocusY:  FocusValue(raw.ProfilePhotoFocusY),
		ProfilePhotoZoom:    ZoomValue(raw.ProfilePhotoZoom),
		Skills:              StringSlice(raw.Skills),
		Stats:               profileStats(raw.Stats),
		Socials:             profileSocials(raw.Socials),
		Email:               strings.TrimSpace(raw.Email),
		Phone:               strings.TrimSpace(raw.Phone),
		Favicon:             strings.TrimSpace(raw.Favicon),
	}
}

func profileStats(stats []models.Stat) models.StatList {
	out := make(models.StatList, 0, len(stats))
	for _, stat := range stats {
		label := strings.TrimSpace(stat.Label)
		value := strings.TrimSpace(stat.Value)
		if label == "" && value == "" {
			continue
		}
		out = append(out, models.Stat{Label: label, Value: value})
	}
	return out
}

func profileSocials(socials []models.Social) models.SocialList {
	out := make(models.SocialList, 0, len(socials))
	for _, social := range socials {
		platform := strings.TrimSpace(social.Platform)
		url := strings.TrimSpace(social.URL)
		if platform == "" && url == "" {
			continue
		}
		icon := strings.TrimSpace(social.Icon)
		if icon == "" {
			icon = DefaultSocialIcon
		}
		out = append(out, models.Social{Platform: platform, URL: url, Icon: icon})
	}
	return out
}
