package media

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps media under a local public directory, the flat-file
// deployment's counterpart to the S3 bucket.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

func (d *DiskStore) fsPath(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(strings.TrimPrefix(path, "/")))
}

func (d *DiskStore) Upload(_ context.Context, path string, data []byte, _ string) (string, error) {
	target := d.fsPath(path)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (d *DiskStore) Delete(_ context.Context, paths []string) error {
	var errList []error
	for _, path := range paths {
		err := os.Remove(d.fsPath(path))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

func (d *DiskStore) List(_ context.Context, prefix string) ([]string, error) {
	start := d.fsPath(prefix)
	if _, err := os.Stat(start); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var paths []string
	err := filepath.WalkDir(start, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(d.root, p)
		if err != nil {
			return err
		}
		paths = append(paths, "/"+filepath.ToSlash(rel))
		return nil
	})
	return paths, err
}
