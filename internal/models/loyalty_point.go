package models

import "time"

// LoyaltyPoint is one accrual or redemption for a member. Points is signed:
// positive = earned, negative = redeemed. Creating an entry adjusts the
// member's running total in the same transaction.
type LoyaltyPoint struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	MemberID uint    `gorm:"index;not null" json:"member_id"`
	Member   *Member `json:"member,omitempty"`
	SaleID   *uint   `gorm:"index" json:"sale_id"`
	Points   int     `gorm:"not null" json:"points"`
	Note     string  `gorm:"size:255" json:"note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
