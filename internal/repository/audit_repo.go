package repository

import (
	"errors"

	"sustaining-audit-app/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// GetAllAudits retrieves all audits ordered by audit date descending
func (r *AuditRepository) GetAllAudits() ([]models.Audit, error) {
	var audits []models.Audit
	err := r.db.Order("audit_date DESC").Find(&audits).Error
	return audits, err
}

// GetAuditByID retrieves an audit by ID
func (r *AuditRepository) GetAuditByID(id uint) (*models.Audit, error) {
	var audit models.Audit
	err := r.db.Where("id = ?", id).First(&audit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("audit not found")
		}
		return nil, err
	}
	return &audit, nil
}

// GetItemsByAuditID retrieves an audit's items in storage order with the
// checklist item and its category preloaded
func (r *AuditRepository) GetItemsByAuditID(auditID uint) ([]models.AuditItem, error) {
	var items []models.AuditItem
	err := r.db.Where("audit_id = ?", auditID).
		Preload("ChecklistItem").
		Preload("ChecklistItem.Category").
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// CreateWithItems creates the audit header and all of its item rows in a
// single transaction. itemsFn is called with the assigned audit ID so item
// rows (and derived photo filenames) can reference it; an error from itemsFn
// rolls back the header insert.
func (r *AuditRepository) CreateWithItems(audit *models.Audit, itemsFn func(auditID uint) ([]models.AuditItem, error)) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(audit).Error; err != nil {
			return err
		}
		items, err := itemsFn(audit.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

// DeleteWithItems removes all item rows and the audit header in a single
// transaction
func (r *AuditRepository) DeleteWithItems(auditID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("audit_id = ?", auditID).Delete(&models.AuditItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Audit{}, auditID).Error
	})
}

// GetMILItems retrieves audit items across all audits whose score is not
// exactly 3 (unscored items included), in global insertion order
func (r *AuditRepository) GetMILItems() ([]models.AuditItem, error) {
	var items []models.AuditItem
	err := r.db.Where("score IS NULL OR score <> ?", 3).
		Preload("Audit").
		Preload("ChecklistItem").
		Preload("ChecklistItem.Category").
		Order("id ASC").
		Find(&items).Error
	return items, err
}
