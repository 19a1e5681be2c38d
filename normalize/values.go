// Package normalize contains the pure transforms that keep content records
// well-formed: field coercion with documented defaults, category
// reconciliation across projects, and dense list reordering. Nothing in
// this package touches storage; every function is a total function of its
// input and never fails on bad data, only on structural problems
// (unknown/duplicate ids).
package normalize

import (
	"strings"
)

// Defaults applied when a field is missing or unparseable.
const (
	DefaultFocus               = 50.0
	DefaultZoom                = 1.0
	DefaultExperienceStartYear = 2018
	MinExperienceStartYear     = 1900
)

// Clamp bounds v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// FocusValue clamps a focus coordinate to [0, 100]. The default for absent
// coordinates is applied upstream, where payloads are decoded over a seed
// record carrying DefaultFocus.
func FocusValue(v float64) float64 {
	return Clamp(v, 0, 100)
}

// ZoomValue clamps a zoom factor to [1, 3]. A zero (absent) value becomes
// the minimum zoom, which equals the default.
func ZoomValue(v float64) float64 {
	return Clamp(v, 1, 3)
}

// ExperienceStartYear rejects years before 1900 and falls back to the
// default start year.
func ExperienceStartYear(year int) int {
	if year < MinExperienceStartYear {
		return DefaultExperienceStartYear
	}
	return year
}

// StringSlice trims every entry, drops empties and de-duplicates by
// lower-cased key, preserving first-seen order.
func StringSlice(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

// URL prefixes a bare host/path with https:// and maps the placeholder "#"
// to the empty string.
func URL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "#" {
		return ""
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return trimmed
	}
	return "https://" + trimmed
}

// SafeURL reports whether a URL is acceptable for attachments and links.
// Script and inline-HTML schemes are rejected outright.
func SafeURL(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	return !strings.HasPrefix(lower, "javascript:") && !strings.HasPrefix(lower, "data:text/html")
}
