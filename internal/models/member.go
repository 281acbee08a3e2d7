package models

import (
	"time"

	"gorm.io/gorm"
)

// Member is a loyalty-program customer, independent of staff accounts.
type Member struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Email       string    `gorm:"size:100" json:"email"`
	Phone       string    `gorm:"size:50;index" json:"phone"`
	Address     string    `gorm:"size:255" json:"address"`
	TotalPoints int       `gorm:"not null;default:0" json:"total_points"`
	JoinDate    time.Time `json:"join_date"`
	Status      bool      `gorm:"not null;default:true" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
