package repository

import (
	"errors"
	"testing"
	"time"

	"sustaining-audit-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

func seedChecklist(t *testing.T, repo *ChecklistRepository, texts ...string) []models.ChecklistItem {
	t.Helper()

	category := &models.Category{Name: "Safety"}
	require.NoError(t, repo.CreateCategory(category))

	items := make([]models.ChecklistItem, 0, len(texts))
	for _, text := range texts {
		item := models.ChecklistItem{CategoryID: category.ID, Text: text}
		require.NoError(t, repo.CreateItem(&item))
		items = append(items, item)
	}
	return items
}

func TestCreateWithItems(t *testing.T) {
	db := setupTestDB(t)
	checklistRepo := NewChecklistRepo(db)
	auditRepo := NewAuditRepo(db)

	checklist := seedChecklist(t, checklistRepo, "Check A", "Check B")

	audit := &models.Audit{Vendor: "Acme", AuditDate: time.Now(), AuditArea: "Line 1"}
	err := auditRepo.CreateWithItems(audit, func(auditID uint) ([]models.AuditItem, error) {
		rows := make([]models.AuditItem, 0, len(checklist))
		for _, item := range checklist {
			rows = append(rows, models.AuditItem{AuditID: auditID, ChecklistItemID: item.ID, Score: intPtr(2)})
		}
		return rows, nil
	})
	require.NoError(t, err)
	require.NotZero(t, audit.ID)

	items, err := auditRepo.GetItemsByAuditID(audit.ID)
	require.NoError(t, err)
	require.Len(t, items, len(checklist))
	assert.Equal(t, checklist[0].ID, items[0].ChecklistItemID)
	assert.Equal(t, checklist[1].ID, items[1].ChecklistItemID)
}

func TestCreateWithItemsRollsBackHeader(t *testing.T) {
	db := setupTestDB(t)
	auditRepo := NewAuditRepo(db)

	audit := &models.Audit{Vendor: "Acme", AuditDate: time.Now(), AuditArea: "Line 1"}
	err := auditRepo.CreateWithItems(audit, func(auditID uint) ([]models.AuditItem, error) {
		return nil, errors.New("photo write failed")
	})
	require.Error(t, err)

	// The header insert must not survive a failed item build
	audits, err := auditRepo.GetAllAudits()
	require.NoError(t, err)
	assert.Empty(t, audits)
}

func TestGetAllAuditsOrderedByDateDesc(t *testing.T) {
	db := setupTestDB(t)
	auditRepo := NewAuditRepo(db)

	old := &models.Audit{Vendor: "Old", AuditDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), AuditArea: "A"}
	recent := &models.Audit{Vendor: "Recent", AuditDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), AuditArea: "B"}
	for _, a := range []*models.Audit{old, recent} {
		require.NoError(t, auditRepo.CreateWithItems(a, func(uint) ([]models.AuditItem, error) { return nil, nil }))
	}

	audits, err := auditRepo.GetAllAudits()
	require.NoError(t, err)
	require.Len(t, audits, 2)
	assert.Equal(t, "Recent", audits[0].Vendor)
	assert.Equal(t, "Old", audits[1].Vendor)
}

func TestDeleteWithItems(t *testing.T) {
	db := setupTestDB(t)
	checklistRepo := NewChecklistRepo(db)
	auditRepo := NewAuditRepo(db)

	checklist := seedChecklist(t, checklistRepo, "Check A")

	audit := &models.Audit{Vendor: "Acme", AuditDate: time.Now(), AuditArea: "Line 1"}
	require.NoError(t, auditRepo.CreateWithItems(audit, func(auditID uint) ([]models.AuditItem, error) {
		return []models.AuditItem{{AuditID: auditID, ChecklistItemID: checklist[0].ID}}, nil
	}))

	require.NoError(t, auditRepo.DeleteWithItems(audit.ID))

	_, err := auditRepo.GetAuditByID(audit.ID)
	require.Error(t, err)
	assert.Equal(t, "audit not found", err.Error())

	items, err := auditRepo.GetItemsByAuditID(audit.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetMILItemsFiltersFullScores(t *testing.T) {
	db := setupTestDB(t)
	checklistRepo := NewChecklistRepo(db)
	auditRepo := NewAuditRepo(db)

	checklist := seedChecklist(t, checklistRepo, "Check A", "Check B", "Check C")

	audit := &models.Audit{Vendor: "Acme", AuditDate: time.Now(), AuditArea: "Line 1"}
	require.NoError(t, auditRepo.CreateWithItems(audit, func(auditID uint) ([]models.AuditItem, error) {
		return []models.AuditItem{
			{AuditID: auditID, ChecklistItemID: checklist[0].ID, Score: intPtr(3)},
			{AuditID: auditID, ChecklistItemID: checklist[1].ID, Score: intPtr(1)},
			{AuditID: auditID, ChecklistItemID: checklist[2].ID}, // unscored
		}, nil
	}))

	items, err := auditRepo.GetMILItems()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, checklist[1].ID, items[0].ChecklistItemID)
	assert.Nil(t, items[1].Score)
	assert.Equal(t, "Acme", items[0].Audit.Vendor)
	assert.Equal(t, "Safety", items[0].ChecklistItem.Category.Name)
}
