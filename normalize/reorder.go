package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsasing/portfolio-backend/errs"
	"github.com/jsasing/portfolio-backend/models"
)

// ExtractOrderIDs accepts either a bare id array or an array of objects
// carrying an id field, the two shapes reorder clients submit. Entries are
// only trimmed, never deduplicated: ReorderPermutation must see duplicates
// so it can reject them.
func ExtractOrderIDs(raw json.RawMessage) []string {
	var ids []string
	if err := json.Unmarshal(raw, &ids); err == nil {
		return trimAll(ids)
	}

	var objects []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &objects); err != nil {
		return nil
	}
	out := make([]string, 0, len(objects))
	for _, obj := range objects {
		out = append(out, obj.ID)
	}
	return trimAll(out)
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = strings.TrimSpace(value)
	}
	return out
}

// ReorderPermutation validates orderedIDs as a complete permutation of
// existingIDs and returns, for each target position, the index of the
// record in the existing collection. The stored collection is never
// touched on failure.
func ReorderPermutation(existingIDs, orderedIDs []string) ([]int, error) {
	if len(orderedIDs) == 0 {
		return nil, errs.NewValidationError(errs.ErrEmptyReorder, "")
	}

	seen := make(map[string]struct{}, len(orderedIDs))
	for _, id := range orderedIDs {
		key := strings.ToLower(id)
		if _, dup := seen[key]; dup {
			return nil, errs.NewValidationError(errs.ErrDuplicateReorderID, id)
		}
		seen[key] = struct{}{}
	}

	if len(orderedIDs) != len(existingIDs) {
		return nil, errs.NewValidationError(errs.ErrReorderLengthMismatch,
			fmt.Sprintf("got %d ids, collection has %d", len(orderedIDs), len(existingIDs)))
	}

	indexByID := make(map[string]int, len(existingIDs))
	for i, id := range existingIDs {
		indexByID[id] = i
	}

	permutation := make([]int, len(orderedIDs))
	for pos, id := range orderedIDs {
		index, ok := indexByID[id]
		if !ok {
			return nil, errs.NewValidationError(errs.ErrUnknownID, id)
		}
		permutation[pos] = index
	}
	return permutation, nil
}

// ReorderProjects returns the collection in the submitted sequence with
// order reassigned densely 1..N.
func ReorderProjects(projects []models.Project, orderedIDs []string) ([]models.Project, error) {
	ids := make([]string, len(projects))
	for i, project := range projects {
		ids[i] = project.ID
	}
	permutation, err := ReorderPermutation(ids, orderedIDs)
	if err != nil {
		return nil, err
	}

	out := make([]models.Project, len(permutation))
	for pos, index := range permutation {
		project := projects[index]
		project.Order = pos + 1
		out[pos] = Project(project)
	}
	return out, nil
}

// ReorderCertifications returns the collection in the submitted sequence
// with order reassigned densely 1..N.
func ReorderCertifications(certs []models.Certification, orderedIDs []string) ([]models.Certification, error) {
	ids := make([]string, len(certs))
	for i, cert := range certs {
		ids[i] = cert.ID
	}
	permutation, err := ReorderPermutation(ids, orderedIDs)
	if err != nil {
		return nil, err
	}

	out := make([]models.Certification, len(permutation))
	for pos, index := range permutation {
		cert := certs[index]
		cert.Order = pos + 1
		out[pos] = Certification(cert)
	}
	return out, nil
}

// ResequenceProjects reassigns dense 1..N order after an insert or delete
// changed collection membership. Items keep their relative ordering.
func ResequenceProjects(projects []models.Project) []models.Project {
	out := make([]models.Project, len(projects))
	copy(out, projects)
	for i := range out {
		out[i].Order = i + 1
	}
	return out
}

func ResequenceCertifications(certs []models.Certification) []models.Certification {
	out := make([]models.Certification, len(certs))
	copy(out, certs)
	for i := range out {
		out[i].Order = i + 1
	}
	return out
}
