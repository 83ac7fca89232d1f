package models

// AuditItem records the result for one checklist item within one audit.
// Score is nullable: nil means the item was left unscored.
type AuditItem struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	AuditID         uint   `gorm:"not null;index" json:"audit_id"`
	ChecklistItemID uint   `gorm:"not null;index" json:"checklist_item_id"`
	Score           *int   `json:"score"`
	Record          string `gorm:"type:text" json:"record"`
	PhotoFilename   string `gorm:"size:300" json:"photo_filename"`

	// Relationships
	Audit         Audit         `gorm:"foreignKey:AuditID" json:"audit,omitempty"`
	ChecklistItem ChecklistItem `gorm:"foreignKey:ChecklistItemID" json:"checklist_item,omitempty"`
}

// TableName specifies the table name for AuditItem model
func (AuditItem) TableName() string {
	return "audit_items"
}
