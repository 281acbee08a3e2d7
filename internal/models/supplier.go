package models

import (
	"time"

	"gorm.io/gorm"
)

type Supplier struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	ContactName string `gorm:"size:100" json:"contact_name"`
	Phone       string `gorm:"size:50" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`
	Address     string `gorm:"size:255" json:"address"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
