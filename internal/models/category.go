package models

// Category groups checklist items; names are unique and categories are
// never deleted once created
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;not null;uniqueIndex" json:"name"`
}

// TableName specifies the table name for Category model
func (Category) TableName() string {
	return "categories"
}
