package models

import "time"

type ReturnDirection string

const (
	ReturnToCustomer ReturnDirection = "to_customer"
	ReturnToSupplier ReturnDirection = "to_supplier"
)

type ReturnOfGoods struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProductID uint            `gorm:"index;not null" json:"product_id"`
	Product   *Product        `json:"product,omitempty"`
	BranchID  uint            `gorm:"index;not null" json:"branch_id"`
	Branch    *Branch         `json:"branch,omitempty"`
	Direction ReturnDirection `gorm:"size:20;not null" json:"direction"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Reason    string          `gorm:"size:255" json:"reason"`
	Note      string          `gorm:"size:255" json:"note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ReturnOfGoods) TableName() string { return "return_of_goods" }
