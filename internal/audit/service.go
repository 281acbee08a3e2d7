package audit

import (
	"encoding/json"

	"pos-backend/internal/database"
	"pos-backend/internal/logging"
	"pos-backend/internal/models"
)

type LogOptions struct {
	BranchID    *uint
	UserID      uint
	UserName    string
	Module      string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// Write appends one audit row. Failures are logged, never surfaced: an audit
// miss must not fail the business write it describes.
func Write(opts LogOptions) {
	// jsonb rejects the empty string, use the JSON null literal instead.
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	row := models.AuditLog{
		BranchID:    opts.BranchID,
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		Module:      opts.Module,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&row).Error; err != nil {
		logging.Log.WithError(err).WithField("module", opts.Module).Warn("audit log write failed")
	}
}
