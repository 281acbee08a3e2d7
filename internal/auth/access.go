package auth

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"pos-backend/internal/database"
	"pos-backend/internal/models"
)

// FindGrant returns the most specific grant for (user, branch, module,
// action): a branch-scoped grant wins over any other branch's, and nil means
// no grant covers the module at all.
func FindGrant(userID uint, branchID *uint, module string, action models.AccessAction) (*models.UserAccessRight, error) {
	needle, _ := json.Marshal([]string{module})

	q := database.DB.
		Where("user_id = ? AND action = ?", userID, action).
		Where("modules @> ?", string(needle))
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}

	var grant models.UserAccessRight
	if err := q.Order("created_at DESC").First(&grant).Error; err != nil {
		return nil, err
	}
	return &grant, nil
}

// RequireAccess is the fine-grained second authorization layer, independent
// of the route-level role list. super_admin and admin pass outright; users
// with no grants at all pass (the table is opt-in per user); anyone with
// grants must hold one matching this module and action.
func RequireAccess(module string, action models.AccessAction) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(CtxUserRoleKey).(models.UserRole)
		if role == models.RoleSuperAdmin || role == models.RoleAdmin {
			return c.Next()
		}

		userID, err := CurrentUserID(c)
		if err != nil {
			return err
		}

		var total int64
		if err := database.DB.Model(&models.UserAccessRight{}).
			Where("user_id = ?", userID).Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "access rights could not be checked")
		}
		if total == 0 {
			return c.Next()
		}

		if _, err := FindGrant(userID, CurrentBranchID(c), module, action); err != nil {
			return fiber.NewError(fiber.StatusForbidden, "no access right for this module")
		}
		return c.Next()
	}
}
