package models

import "time"

type MutationType string

const (
	MutationIn      MutationType = "in"
	MutationOut     MutationType = "out"
	MutationDamaged MutationType = "damaged"
	MutationReturn  MutationType = "return"
)

// StockMutation is a stock-adjustment event. Rows are hard-deleted, there is
// no soft-delete marker.
type StockMutation struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	ProductID uint         `gorm:"index;not null" json:"product_id"`
	Product   *Product     `json:"product,omitempty"`
	BranchID  uint         `gorm:"index;not null" json:"branch_id"`
	Branch    *Branch      `json:"branch,omitempty"`
	UserID    uint         `gorm:"index;not null" json:"user_id"`
	Type      MutationType `gorm:"size:20;not null" json:"type"`
	Quantity  int          `gorm:"not null" json:"quantity"`
	Note      string       `gorm:"size:255" json:"note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
