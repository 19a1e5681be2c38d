// Package media handles stored images: uploads to an object store (local
// disk or S3) and the reference-counting sweep that removes orphans.
package media

import "context"

// ObjectStore is the binary-media collaborator. Paths are site-relative
// ("/images/projects/abc.png") on both backends.
type ObjectStore interface {
	// Upload stores bytes under path and returns the public URL.
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
	// Delete removes every listed object. Missing objects are not errors.
	Delete(ctx context.Context, paths []string) error
	// List returns every stored path under prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}
