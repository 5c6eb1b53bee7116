// Package fs stores page snapshots on the local filesystem.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitelens"
)

var _ sitelens.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore writes the rendered HTML of each fetched page under a base
// directory, one file per URL. A later fetch of the same URL replaces the file.
type SnapshotStore struct {
	baseDir string
}

// NewSnapshotStore creates a SnapshotStore rooted at baseDir.
func NewSnapshotStore(baseDir string) *SnapshotStore {
	return &SnapshotStore{baseDir: baseDir}
}

// SaveSnapshot writes page.HTML and returns the full path of the file.
// The file is written to a temporary name first and renamed into place so
// readers never observe a partial snapshot.
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, page *sitelens.Page) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	relPath, err := SnapshotPath(page.URL)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(s.baseDir, relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", sitelens.WrapError(sitelens.EINTERNAL, err, "failed to create snapshot directory")
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return "", sitelens.WrapError(sitelens.EINTERNAL, err, "failed to create snapshot file")
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.WriteString(page.HTML); err != nil {
		tmp.Close()
		return "", sitelens.WrapError(sitelens.EINTERNAL, err, "failed to write snapshot")
	}
	if err := tmp.Close(); err != nil {
		return "", sitelens.WrapError(sitelens.EINTERNAL, err, "failed to write snapshot")
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", sitelens.WrapError(sitelens.EINTERNAL, err, "failed to write snapshot")
	}
	return fullPath, nil
}

// SnapshotPath converts a page URL to a relative file path under its host.
// Example: https://example.com/docs/api → example.com/docs/api.html
func SnapshotPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", sitelens.WrapError(sitelens.EINVALIDURL, err, "invalid url %q", rawURL)
	}
	if u.Host == "" {
		return "", sitelens.Errorf(sitelens.EINVALIDURL, "invalid url %q", rawURL)
	}

	host := strings.ReplaceAll(u.Host, ":", "_")
	path := strings.TrimPrefix(u.Path, "/")

	// Reject traversal out of the host directory.
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", sitelens.Errorf(sitelens.EINVALIDURL, "invalid url %q", rawURL)
	}

	// Root or trailing slash → index.html
	if path == "" || strings.HasSuffix(path, "/") {
		return filepath.Join(host, clean, "index.html"), nil
	}
	return filepath.Join(host, clean+".html"), nil
}
