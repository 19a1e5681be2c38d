package media

import (
	"context"
	"strings"

	"github.com/jsasing/portfolio-backend/normalize"
	"github.com/jsasing/portfolio-backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ImageRoot is the prefix under which all content media lives.
const ImageRoot = "/images/"

// protectedImagePaths are seed assets that must survive every sweep, even
// when submitted as explicit candidates.
var protectedImagePaths = map[string]struct{}{
	"/images/projects/placeholder-1.svg": {},
	"/images/projects/placeholder-2.svg": {},
	"/images/projects/placeholder-3.svg": {},
	"/images/profile/photo.svg":          {},
}

// Sweeper removes stored images that no live content record references.
type Sweeper struct {
	store   storage.Store
	objects ObjectStore
	logger  zerolog.Logger
}

func NewSweeper(store storage.Store, objects ObjectStore) *Sweeper {
	return &Sweeper{
		store:   store,
		objects: objects,
		logger:  log.With().Str("component", "mediaSweeper").Logger(),
	}
}

// NormalizeImagePath reduces any stored image reference to a site-relative
// /images/… path, returning "" for anything outside the media root. Absolute
// URLs are reduced to their /images/… suffix so references produced by a
// public-base-URL object store (hosted buckets, CDNs) round-trip to the same
// path the store was given at upload time.
func NormalizeImagePath(value string) string {
	trimmed := strings.TrimSpace(value)
	if cut := strings.IndexAny(trimmed, "?#"); cut >= 0 {
		trimmed = trimmed[:cut]
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") || strings.HasPrefix(trimmed, "//") {
		idx := strings.Index(trimmed, ImageRoot)
		if idx < 0 {
			return ""
		}
		trimmed = trimmed[idx:]
	}
	if !strings.HasPrefix(trimmed, ImageRoot) {
		return ""
	}
	return trimmed
}

// RemoveIfUnused deletes every candidate that no live record references
// and that is not protected, returning the paths actually deleted. One
// failed deletion never aborts the rest of the batch, and the sweep never
// fails the write that triggered it; callers invoke it in a goroutine.
func (s *Sweeper) RemoveIfUnused(ctx context.Context, candidates []string) []string {
	normalized := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		path := NormalizeImagePath(candidate)
		if path == "" {
			continue
		}
		if _, protected := protectedImagePaths[path]; protected {
			continue
		}
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		normalized = append(normalized, path)
	}
	if len(normalized) == 0 {
		return nil
	}

	refs, err := s.referencedImagePaths()
	if err != nil {
		s.logger.Error().Err(err).Msg("could not build reference set, skipping sweep")
		return nil
	}

	var deleted []string
	for _, path := range normalized {
		if _, used := refs[path]; used {
			continue
		}
		if err := s.objects.Delete(ctx, []string{path}); err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("orphan deletion failed")
			continue
		}
		deleted = append(deleted, path)
	}
	return deleted
}

// CleanupAllUnused enumerates every stored object under the media root and
// removes all orphans. Used for manual or periodic maintenance, not on the
// per-request path.
func (s *Sweeper) CleanupAllUnused(ctx context.Context) ([]string, error) {
	stored, err := s.objects.List(ctx, ImageRoot)
	if err != nil {
		return nil, err
	}
	return s.RemoveIfUnused(ctx, stored), nil
}

// referencedImagePaths scans every content record for image references,
// including paths embedded in sanitized HTML fields.
func (s *Sweeper) referencedImagePaths() (map[string]struct{}, error) {
	refs := make(map[string]struct{})
	add := func(value string) {
		if path := NormalizeImagePath(value); path != "" {
			refs[path] = struct{}{}
		}
	}

	profile, err := s.store.Profile().Get()
	if err != nil {
		return nil, err
	}
	add(profile.ProfilePhoto)
	add(profile.Favicon)
	for _, src := range normalize.ExtractImageSrcs(profile.Bio) {
		add(src)
	}

	projects, err := s.store.Projects().List()
	if err != nil {
		return nil, err
	}
	for _, project := range projects {
		add(project.Thumbnail)
		for _, item := range project.Gallery {
			add(item)
		}
		for _, src := range normalize.ExtractImageSrcs(project.Description) {
			add(src)
		}
	}

	certs, err := s.store.Certifications().List()
	if err != nil {
		return nil, err
	}
	for _, cert := range certs {
		add(cert.Thumbnail)
	}

	services, err := s.store.Services().List()
	if err != nil {
		return nil, err
	}
	for _, service := range services {
		add(service.Icon)
	}

	return refs, nil
}
