package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentQRIS     PaymentMethod = "qris"
	PaymentTransfer PaymentMethod = "transfer"
)

type SaleStatus string

const (
	SaleFinished SaleStatus = "finished"
	SalePending  SaleStatus = "pending"
	SaleCanceled SaleStatus = "canceled"
)

// Sale is one cashier transaction; its line items live in SaleDetail.
// Financial totals are stored as submitted by the client, the server does not
// recompute total_payment from the line items.
type Sale struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	InvoiceNumber string          `gorm:"size:50;uniqueIndex;not null" json:"invoice_number"`
	BranchID      uint            `gorm:"index;not null" json:"branch_id"`
	Branch        *Branch         `json:"branch,omitempty"`
	CashierID     uint            `gorm:"index;not null" json:"cashier_id"`
	Cashier       *User           `gorm:"foreignKey:CashierID" json:"cashier,omitempty"`
	MemberID      *uint           `gorm:"index" json:"member_id"`
	Member        *Member         `json:"member,omitempty"`
	PaymentMethod PaymentMethod   `gorm:"size:20;not null" json:"payment_method"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total_price"`
	Tax           decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"tax"`
	Discount      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"discount"`
	TotalPayment  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total_payment"`
	Status        SaleStatus      `gorm:"size:20;not null;default:'pending'" json:"status"`

	Details []SaleDetail `gorm:"foreignKey:SaleID" json:"details,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type SaleDetail struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	SaleID    uint            `gorm:"index;not null" json:"sale_id"`
	ProductID uint            `gorm:"index;not null" json:"product_id"`
	Product   *Product        `json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"unit_price"`
	SubTotal  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"sub_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
