package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	CategoryID    uint             `gorm:"index;not null" json:"category_id"`
	Category      *CategoryProduct `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	BranchID      *uint            `gorm:"index" json:"branch_id"`
	Branch        *Branch          `json:"branch,omitempty"`
	Name          string           `gorm:"size:100;not null" json:"name"`
	Barcode       string           `gorm:"size:64;index" json:"barcode"`
	Unit          string           `gorm:"size:20;not null" json:"unit"` // pcs, kg, box ...
	Stock         int              `gorm:"not null;default:0" json:"stock"`
	PurchasePrice decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"purchase_price"`
	SalePrice     decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"sale_price"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
