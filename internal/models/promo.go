package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PromoType string

const (
	PromoPercentage PromoType = "percentage"
	PromoAmount     PromoType = "amount"
)

// Promo is a discount rule for a product within a branch, optionally
// time-limited.
type Promo struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	ProductID uint            `gorm:"index;not null" json:"product_id"`
	Product   *Product        `json:"product,omitempty"`
	BranchID  uint            `gorm:"index;not null" json:"branch_id"`
	Branch    *Branch         `json:"branch,omitempty"`
	Type      PromoType       `gorm:"size:20;not null" json:"type"`
	Value     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"value"`
	StartDate *time.Time      `json:"start_date"`
	EndDate   *time.Time      `json:"end_date"`
	Status    bool            `gorm:"not null;default:true" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
