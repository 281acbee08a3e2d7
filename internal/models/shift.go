package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ShiftStatus string

// active → closed | cancelled. There is no way back to active.
const (
	ShiftActive    ShiftStatus = "active"
	ShiftClosed    ShiftStatus = "closed"
	ShiftCancelled ShiftStatus = "cancelled"
)

type Shift struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	BranchID         uint            `gorm:"index;not null" json:"branch_id"`
	Branch           *Branch         `json:"branch,omitempty"`
	CashierID        uint            `gorm:"index;not null" json:"cashier_id"`
	Cashier          *User           `gorm:"foreignKey:CashierID" json:"cashier,omitempty"`
	TimeIn           time.Time       `gorm:"not null" json:"time_in"`
	TimeOut          *time.Time      `json:"time_out"`
	OpeningCash      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"opening_cash"`
	ClosingCash      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"closing_cash"`
	TotalSales       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"total_sales"`
	TransactionCount int             `gorm:"not null;default:0" json:"transaction_count"`
	Note             string          `gorm:"size:255" json:"note"`
	Status           ShiftStatus     `gorm:"size:20;not null;default:'active'" json:"shift_status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// ShiftActivityLog is append-only; rows are never updated or deleted.
type ShiftActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ShiftID   uint      `gorm:"index;not null" json:"shift_id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Action    string    `gorm:"size:20;not null" json:"action"` // opened / closed / cancelled
	Detail    string    `gorm:"size:255" json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
