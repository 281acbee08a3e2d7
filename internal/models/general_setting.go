package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralSetting is a singleton row. SingletonKey carries a constant value
// with a unique index so the database, not the application, guarantees at
// most one row survives concurrent saves.
type GeneralSetting struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	SingletonKey   string          `gorm:"size:10;not null;default:'global';uniqueIndex" json:"-"`
	StoreName      string          `gorm:"size:100;not null" json:"store_name"`
	Address        string          `gorm:"size:255" json:"address"`
	Phone          string          `gorm:"size:50" json:"phone"`
	Currency       string          `gorm:"size:10;not null;default:'IDR'" json:"currency"`
	TaxRate        decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" json:"tax_rate"`
	GlobalDiscount decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" json:"global_discount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
