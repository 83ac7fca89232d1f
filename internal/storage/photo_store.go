package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"sustaining-audit-app/pkg/utils"
)

// PhotoStore persists uploaded audit photos on the local filesystem.
// Filenames are derived from (audit id, item id, original name) so uploads
// across different audits and items never collide.
type PhotoStore struct {
	dir string
}

func NewPhotoStore(dir string) (*PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &PhotoStore{dir: dir}, nil
}

// Save writes the photo and returns the stored filename
func (s *PhotoStore) Save(auditID, itemID uint, originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d_%d_%s", auditID, itemID, utils.SanitizeFilename(originalName))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored photo. Best effort: a missing or unreadable file
// is ignored so cleanup never blocks an audit delete.
func (s *PhotoStore) Remove(name string) {
	if name == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.dir, name))
}

// Path returns the on-disk path for a stored filename
func (s *PhotoStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}
