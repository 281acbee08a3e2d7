package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pos-backend/internal/auth"
	"pos-backend/internal/crud"
	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
	"pos-backend/internal/validate"
)

type CreateAccessRightRequest struct {
	UserID   uint     `json:"user_id" validate:"required"`
	BranchID uint     `json:"branch_id" validate:"required"`
	Action   string   `json:"action" validate:"required,oneof=create read update delete"`
	Modules  []string `json:"modules" validate:"required,min=1,dive,required"`
}

type UpdateAccessRightRequest struct {
	Action  *string  `json:"action"`
	Modules []string `json:"modules"`
}

func CreateAccessRightHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateAccessRightRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return err
		}
		if !crud.Exists[models.User](database.DB, body.UserID) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		if !crud.Exists[models.Branch](database.DB, body.BranchID) {
			return fiber.NewError(fiber.StatusNotFound, "branch not found")
		}

		right := models.UserAccessRight{
			UserID:   body.UserID,
			BranchID: body.BranchID,
			Action:   models.AccessAction(body.Action),
			Modules:  models.StringList(body.Modules),
		}
		if err := database.DB.Create(&right).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "access right could not be created")
		}
		return response.Created(c, "access right created", right)
	}
}

func ListAccessRightsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}

		q := database.DB
		if raw := c.Query("user_id"); raw != "" {
			id, convErr := strconv.Atoi(raw)
			if convErr != nil || id < 1 {
				return fiber.NewError(fiber.StatusBadRequest, "user_id must be a positive number")
			}
			q = q.Where("user_id = ?", id)
		}

		rows, pg, err := crud.List[models.UserAccessRight](q, p, "action")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "access rights could not be listed")
		}
		return response.Paginated(c, "access rights", rows, pg)
	}
}

func GetAccessRightHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		right, err := crud.GetByID[models.UserAccessRight](database.DB, c.Params("id"))
		if err != nil {
			return err
		}
		return response.OK(c, "access right", right)
	}
}

func UpdateAccessRightHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		right, err := crud.GetByID[models.UserAccessRight](database.DB, c.Params("id"))
		if err != nil {
			return err
		}

		var body UpdateAccessRightRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if body.Action != nil {
			switch models.AccessAction(*body.Action) {
			case models.AccessCreate, models.AccessRead, models.AccessUpdate, models.AccessDelete:
				right.Action = models.AccessAction(*body.Action)
			default:
				return fiber.NewError(fiber.StatusBadRequest, "action is invalid")
			}
		}
		if body.Modules != nil {
			right.Modules = models.StringList(body.Modules)
		}

		if err := database.DB.Save(right).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "access right could not be updated")
		}
		return response.OK(c, "access right updated", right)
	}
}

func DeleteAccessRightHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := crud.Delete[models.UserAccessRight](database.DB, c.Params("id"), models.DeletionPolicies["user_access_rights"]); err != nil {
			return err
		}
		return response.OK(c, "access right deleted", nil)
	}
}

// GET /api/access-rights/check?user_id=1&module=products&action=update
// Runs the jsonb containment lookup and reports the matching grant, if any.
func CheckAccessRightHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := strconv.Atoi(c.Query("user_id"))
		if err != nil || userID < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "user_id must be a positive number")
		}
		module := c.Query("module")
		action := models.AccessAction(c.Query("action"))
		if module == "" || action == "" {
			return fiber.NewError(fiber.StatusBadRequest, "module and action are required")
		}
		switch action {
		case models.AccessCreate, models.AccessRead, models.AccessUpdate, models.AccessDelete:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "action is invalid")
		}

		var branchID *uint
		if raw := c.Query("branch_id"); raw != "" {
			id, convErr := strconv.Atoi(raw)
			if convErr != nil || id < 1 {
				return fiber.NewError(fiber.StatusBadRequest, "branch_id must be a positive number")
			}
			b := uint(id)
			branchID = &b
		}

		grant, err := auth.FindGrant(uint(userID), branchID, module, action)
		if err != nil {
			return response.OK(c, "no matching grant", fiber.Map{"granted": false})
		}
		return response.OK(c, "grant found", fiber.Map{"granted": true, "grant": grant})
	}
}
