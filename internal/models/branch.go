package models

import (
	"time"

	"gorm.io/gorm"
)

type Branch struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Address     string `gorm:"size:255" json:"address"`
	City        string `gorm:"size:100" json:"city"`
	Province    string `gorm:"size:100" json:"province"`
	PhoneNumber string `gorm:"size:50" json:"phone_number"`
	Status      bool   `gorm:"not null;default:true" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Users []User `json:"-"`
}
