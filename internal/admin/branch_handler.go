package admin

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pos-backend/internal/audit"
	"pos-backend/internal/auth"
	"pos-backend/internal/crud"
	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
	"pos-backend/internal/validate"
)

type CreateBranchRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Address     string `json:"address" validate:"max=255"`
	City        string `json:"city" validate:"max=100"`
	Province    string `json:"province" validate:"max=100"`
	PhoneNumber string `json:"phone_number" validate:"max=50"`
	Status      *bool  `json:"status"`
}

type UpdateBranchRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Province    *string `json:"province"`
	PhoneNumber *string `json:"phone_number"`
	Status      *bool   `json:"status"`
}

func CreateBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBranchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		body.Name = strings.TrimSpace(body.Name)
		if err := validate.Struct(body); err != nil {
			return err
		}

		branch := models.Branch{
			Name:        body.Name,
			Address:     body.Address,
			City:        body.City,
			Province:    body.Province,
			PhoneNumber: body.PhoneNumber,
			Status:      true,
		}
		if body.Status != nil {
			branch.Status = *body.Status
		}

		if err := database.DB.Create(&branch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "branch could not be created")
		}

		writeBranchAudit(c, models.AuditActionCreate, branch.ID, branch.Name, nil, branch)
		return response.Created(c, "branch created", branch)
	}
}

func ListBranchesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}
		rows, pg, err := crud.List[models.Branch](database.DB, p, "name", "city", "province")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "branches could not be listed")
		}
		return response.Paginated(c, "branches", rows, pg)
	}
}

func GetBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		branch, err := crud.GetByIDUnscoped[models.Branch](database.DB, c.Params("id"))
		if err != nil {
			return err
		}
		return response.OK(c, "branch", branch)
	}
}

func UpdateBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		branch, err := crud.GetByID[models.Branch](database.DB, c.Params("id"))
		if err != nil {
			return err
		}
		before := *branch

		var body UpdateBranchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			branch.Name = name
		}
		if body.Address != nil {
			branch.Address = *body.Address
		}
		if body.City != nil {
			branch.City = *body.City
		}
		if body.Province != nil {
			branch.Province = *body.Province
		}
		if body.PhoneNumber != nil {
			branch.PhoneNumber = *body.PhoneNumber
		}
		if body.Status != nil {
			branch.Status = *body.Status
		}

		if err := database.DB.Save(branch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "branch could not be updated")
		}

		writeBranchAudit(c, models.AuditActionUpdate, branch.ID, branch.Name, before, branch)
		return response.OK(c, "branch updated", branch)
	}
}

func DeleteBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		branch, err := crud.GetByID[models.Branch](database.DB, c.Params("id"))
		if err != nil {
			return err
		}
		if err := crud.Delete[models.Branch](database.DB, c.Params("id"), models.DeletionPolicies["branches"]); err != nil {
			return err
		}
		writeBranchAudit(c, models.AuditActionDelete, branch.ID, branch.Name, branch, nil)
		return response.OK(c, "branch deleted", nil)
	}
}

func writeBranchAudit(c *fiber.Ctx, action models.AuditAction, id uint, name string, before, after any) {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return
	}
	audit.Write(audit.LogOptions{
		BranchID:    auth.CurrentBranchID(c),
		UserID:      userID,
		Module:      "branches",
		EntityID:    id,
		Action:      action,
		Description: name,
		Before:      before,
		After:       after,
	})
}
