package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseStatus string

const (
	PurchaseFinished PurchaseStatus = "finished"
	PurchasePending  PurchaseStatus = "pending"
)

// Purchase is an inbound supplier order, the mirror of Sale.
type Purchase struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	InvoiceNumber string          `gorm:"size:50;uniqueIndex;not null" json:"invoice_number"`
	BranchID      uint            `gorm:"index;not null" json:"branch_id"`
	Branch        *Branch         `json:"branch,omitempty"`
	SupplierID    uint            `gorm:"index;not null" json:"supplier_id"`
	Supplier      *Supplier       `json:"supplier,omitempty"`
	UserID        uint            `gorm:"index;not null" json:"user_id"`
	User          *User           `json:"user,omitempty"`
	TotalCost     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total_cost"`
	Status        PurchaseStatus  `gorm:"size:20;not null;default:'pending'" json:"status"`

	Details []PurchaseDetail `gorm:"foreignKey:PurchaseID" json:"details,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type PurchaseDetail struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	PurchaseID uint            `gorm:"index;not null" json:"purchase_id"`
	ProductID  uint            `gorm:"index;not null" json:"product_id"`
	Product    *Product        `json:"product,omitempty"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitCost   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"unit_cost"`
	SubTotal   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"sub_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
