package models

// DeletionPolicy makes the per-resource delete behavior explicit instead of
// leaving it implied by whether a model carries gorm.DeletedAt. Soft-deleted
// rows stay in the table and are excluded from default reads; hard deletes
// remove the row.
type DeletionPolicy string

const (
	DeletionSoft DeletionPolicy = "soft"
	DeletionHard DeletionPolicy = "hard"
)

// DeletionPolicies is the authoritative per-entity table. Append-only
// entities (audit logs, shift activity logs) expose no delete operation and
// are not listed.
var DeletionPolicies = map[string]DeletionPolicy{
	"branches":           DeletionSoft,
	"users":              DeletionSoft,
	"members":            DeletionSoft,
	"category_products":  DeletionSoft,
	"products":           DeletionSoft,
	"suppliers":          DeletionSoft,
	"sales":              DeletionSoft,
	"purchases":          DeletionSoft,
	"shifts":             DeletionSoft,
	"promos":             DeletionSoft,
	"stock_mutations":    DeletionHard,
	"return_of_goods":    DeletionHard,
	"loyalty_points":     DeletionHard,
	"user_access_rights": DeletionHard,
}
