package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditLog is append-only: one row per mutating operation, never updated.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	BranchID *uint  `gorm:"index" json:"branch_id"`
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	UserName string `gorm:"size:100" json:"user_name"` // denormalized

	// Which module and row ("products", 42) and what happened to it.
	Module   string      `gorm:"size:50;index" json:"module"`
	EntityID uint        `gorm:"index" json:"entity_id"`
	Action   AuditAction `gorm:"size:20" json:"action"`

	Description string `gorm:"size:255" json:"description"`

	// Row snapshots before and after the write (JSON).
	BeforeData string `gorm:"type:jsonb" json:"before_data"`
	AfterData  string `gorm:"type:jsonb" json:"after_data"`
}
