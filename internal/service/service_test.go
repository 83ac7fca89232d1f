package service

import (
	"testing"

	"sustaining-audit-app/internal/database"
	"sustaining-audit-app/internal/repository"
	"sustaining-audit-app/internal/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db            *gorm.DB
	checklistRepo *repository.ChecklistRepository
	auditRepo     *repository.AuditRepository
	photos        *storage.PhotoStore
	uploadDir     string
}

// setupTestEnv wires repositories over an in-memory SQLite database plus a
// temp-dir photo store
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	uploadDir := t.TempDir()
	photos, err := storage.NewPhotoStore(uploadDir)
	require.NoError(t, err)

	return &testEnv{
		db:            db,
		checklistRepo: repository.NewChecklistRepo(db),
		auditRepo:     repository.NewAuditRepo(db),
		photos:        photos,
		uploadDir:     uploadDir,
	}
}

func intPtr(n int) *int {
	return &n
}
