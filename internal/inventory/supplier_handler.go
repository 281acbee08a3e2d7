package inventory

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pos-backend/internal/crud"
	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
	"pos-backend/internal/validate"
)

type CreateSupplierRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	ContactName string `json:"contact_name" validate:"max=100"`
	Phone       string `json:"phone" validate:"max=50"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address" validate:"max=255"`
}

type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contact_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
}

func CreateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		body.Name = strings.TrimSpace(body.Name)
		if err := validate.Struct(body); err != nil {
			return err
		}

		supplier := models.Supplier{
			Name:        body.Name,
			ContactName: body.ContactName,
			Phone:       body.Phone,
			Email:       body.Email,
			Address:     body.Address,
		}
		if err := database.DB.Create(&supplier).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "supplier could not be created")
		}
		return response.Created(c, "supplier created", supplier)
	}
}

func ListSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}
		rows, pg, err := crud.List[models.Supplier](database.DB, p, "name", "phone", "email")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "suppliers could not be listed")
		}
		return response.Paginated(c, "suppliers", rows, pg)
	}
}

func GetSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		supplier, err := crud.GetByIDUnscoped[models.Supplier](database.DB, c.Params("id"))
		if err != nil {
			return err
		}
		return response.OK(c, "supplier", supplier)
	}
}

func UpdateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		supplier, err := crud.GetByID[models.Supplier](database.DB, c.Params("id"))
		if err != nil {
			return err
		}

		var body UpdateSupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			supplier.Name = name
		}
		if body.ContactName != nil {
			supplier.ContactName = *body.ContactName
		}
		if body.Phone != nil {
			supplier.Phone = *body.Phone
		}
		if body.Email != nil {
			supplier.Email = *body.Email
		}
		if body.Address != nil {
			supplier.Address = *body.Address
		}

		if err := database.DB.Save(supplier).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "supplier could not be updated")
		}
		return response.OK(c, "supplier updated", supplier)
	}
}

func DeleteSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := crud.Delete[models.Supplier](database.DB, c.Params("id"), models.DeletionPolicies["suppliers"]); err != nil {
			return err
		}
		return response.OK(c, "supplier deleted", nil)
	}
}
