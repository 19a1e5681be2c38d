package normalize

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jsasing/portfolio-backend/models"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// CategoryID builds a stable slug id for a category label.
func CategoryID(label string) string {
	slug := strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(label), "-"), "-")
	if slug == "" {
		slug = "item"
	}
	return "cat-" + slug
}

// CategoryList normalizes a raw category list: entries are sorted by their
// submitted order, labels de-duplicated case-insensitively (a later
// duplicate is dropped, not an error), missing or colliding ids rebuilt
// from the label with a numeric suffix, and order reassigned densely 1..N.
func CategoryList(input []models.ProjectCategory) []models.ProjectCategory {
	entries := make([]models.ProjectCategory, 0, len(input))
	for i, item := range input {
		label := strings.TrimSpace(item.Label)
		if label == "" {
			continue
		}
		order := item.Order
		if order == 0 {
			order = i + 1
		}
		entries = append(entries, models.ProjectCategory{
			ID:    strings.TrimSpace(item.ID),
			Label: label,
			Order: order,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Order < entries[j].Order
	})

	seenLabels := make(map[string]struct{}, len(entries))
	seenIDs := make(map[string]struct{}, len(entries))
	out := make([]models.ProjectCategory, 0, len(entries))

	for _, entry := range entries {
		labelKey := strings.ToLower(entry.Label)
		if _, ok := seenLabels[labelKey]; ok {
			continue
		}
		seenLabels[labelKey] = struct{}{}

		id := entry.ID
		if _, taken := seenIDs[id]; id == "" || taken {
			base := CategoryID(entry.Label)
			id = base
			for suffix := 2; ; suffix++ {
				if _, exists := seenIDs[id]; !exists {
					break
				}
				id = fmt.Sprintf("%s-%d", base, suffix)
			}
		}
		seenIDs[id] = struct{}{}

		out = append(out, models.ProjectCategory{
			ID:    id,
			Label: entry.Label,
			Order: len(out) + 1,
		})
	}
	return out
}

// DeriveCategoriesFromProjects rebuilds the managed category list from the
// labels projects actually use, in project display order. Used as a read
// fallback when no stored list exists yet.
func DeriveCategoriesFromProjects(projects []models.Project) []models.ProjectCategory {
	ordered := make([]models.Project, len(projects))
	copy(ordered, projects)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	seen := make(map[string]struct{})
	var labels []string
	for _, project := range ordered {
		for _, label := range ProjectCategories(project.Categories, project.Category) {
			key := strings.ToLower(label)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			labels = append(labels, label)
		}
	}

	out := make([]models.ProjectCategory, len(labels))
	for i, label := range labels {
		out[i] = models.ProjectCategory{ID: CategoryID(label), Label: label, Order: i + 1}
	}
	return out
}

// CategoryLabelSet returns the lower-cased label set of a category list.
func CategoryLabelSet(categories []models.ProjectCategory) map[string]struct{} {
	set := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		set[strings.ToLower(category.Label)] = struct{}{}
	}
	return set
}

// ReconcileCategories applies a new managed category list against the
// project collection in one batch: renames (same id, different label) are
// propagated into every project's category list, labels no longer in the
// managed set are stripped, and the legacy singular field is recomputed.
// Both return values must be persisted together by the caller so the whole
// collection stays consistent.
func ReconcileCategories(input, previous []models.ProjectCategory, projects []models.Project) ([]models.ProjectCategory, []models.Project) {
	categories := CategoryList(input)
	allowed := CategoryLabelSet(categories)

	previousByID := make(map[string]string, len(previous))
	for _, category := range previous {
		previousByID[category.ID] = category.Label
	}

	renamed := make(map[string]string)
	for _, category := range categories {
		previousLabel, ok := previousByID[category.ID]
		if !ok {
			continue
		}
		previousKey := strings.ToLower(previousLabel)
		if previousKey != strings.ToLower(category.Label) {
			renamed[previousKey] = category.Label
		}
	}

	updated := make([]models.Project, len(projects))
	for i, project := range projects {
		labels := ProjectCategories(project.Categories, project.Category)
		filtered := make([]string, 0, len(labels))
		seen := make(map[string]struct{}, len(labels))
		for _, label := range labels {
			if next, ok := renamed[strings.ToLower(label)]; ok {
				label = next
			}
			key := strings.ToLower(label)
			if _, ok := allowed[key]; !ok {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			filtered = append(filtered, label)
		}

		next := project
		next.Categories = models.StringList(filtered)
		if len(filtered) > 0 {
			next.Category = filtered[0]
		} else {
			next.Category = ""
		}
		updated[i] = Project(next)
	}

	return categories, updated
}
