package audit

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pos-backend/internal/crud"
	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
)

// GET /api/audit-logs?module=products&entity_id=1&user_id=2&branch_id=3
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}

		q := database.DB
		if module := c.Query("module"); module != "" {
			q = q.Where("module = ?", module)
		}
		for _, key := range []string{"entity_id", "user_id", "branch_id"} {
			if raw := c.Query(key); raw != "" {
				id, convErr := strconv.Atoi(raw)
				if convErr != nil || id < 1 {
					return fiber.NewError(fiber.StatusBadRequest, key+" must be a positive number")
				}
				q = q.Where(key+" = ?", id)
			}
		}

		rows, pg, err := crud.List[models.AuditLog](q, p, "description", "user_name")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "audit logs could not be listed")
		}
		return response.Paginated(c, "audit logs", rows, pg)
	}
}

// GET /api/audit-logs/:id
func GetAuditLogHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		row, err := crud.GetByID[models.AuditLog](database.DB, c.Params("id"))
		if err != nil {
			return err
		}
		return response.OK(c, "audit log", row)
	}
}
