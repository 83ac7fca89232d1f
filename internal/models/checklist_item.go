package models

// ChecklistItem is a single check within a category. Past audits reference
// the live row, so editing the text changes how historical audits render.
type ChecklistItem struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CategoryID   uint   `gorm:"not null;index" json:"category_id"`
	Text         string `gorm:"size:500;not null" json:"text"`
	OriginalSpec string `gorm:"type:text" json:"original_spec"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName specifies the table name for ChecklistItem model
func (ChecklistItem) TableName() string {
	return "checklist_items"
}
