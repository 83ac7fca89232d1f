package models

import "time"

// Audit is one audit session against a vendor. Immutable after creation;
// the only mutation is full deletion together with its items.
type Audit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Vendor    string    `gorm:"size:200;not null" json:"vendor"`
	AuditDate time.Time `gorm:"not null" json:"audit_date"`
	AuditArea string    `gorm:"size:200;not null" json:"audit_area"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for Audit model
func (Audit) TableName() string {
	return "audits"
}
