package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type AccessAction string

const (
	AccessCreate AccessAction = "create"
	AccessRead   AccessAction = "read"
	AccessUpdate AccessAction = "update"
	AccessDelete AccessAction = "delete"
)

// StringList stores a []string as jsonb so grants can be queried with the
// postgres containment operator (modules @> '["products"]').
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// UserAccessRight grants one action over a list of named modules to one user
// at one branch.
type UserAccessRight struct {
	ID       uint         `gorm:"primaryKey" json:"id"`
	UserID   uint         `gorm:"index;not null" json:"user_id"`
	User     *User        `json:"user,omitempty"`
	BranchID uint         `gorm:"index;not null" json:"branch_id"`
	Branch   *Branch      `json:"branch,omitempty"`
	Action   AccessAction `gorm:"size:10;not null" json:"action"`
	Modules  StringList   `gorm:"type:jsonb;not null;default:'[]'" json:"modules"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
