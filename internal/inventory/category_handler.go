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

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=255"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func CreateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		body.Name = strings.TrimSpace(body.Name)
		if err := validate.Struct(body); err != nil {
			return err
		}

		cat := models.CategoryProduct{Name: body.Name, Description: body.Description}
		if err := database.DB.Create(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "category could not be created")
		}
		return response.Created(c, "category created", cat)
	}
}

func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}
		rows, pg, err := crud.List[models.CategoryProduct](database.DB, p, "name")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "categories could not be listed")
		}
		return response.Paginated(c, "categories", rows, pg)
	}
}

func GetCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cat, err := crud.GetByIDUnscoped[models.CategoryProduct](database.DB, c.Params("id"))
		if err != nil {
			return err
		}
		return response.OK(c, "category", cat)
	}
}

func UpdateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cat, err := crud.GetByID[models.CategoryProduct](database.DB, c.Params("id"))
		if err != nil {
			return err
		}

		var body UpdateCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			cat.Name = name
		}
		if body.Description != nil {
			cat.Description = *body.Description
		}

		if err := database.DB.Save(cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "category could not be updated")
		}
		return response.OK(c, "category updated", cat)
	}
}

func DeleteCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := crud.Delete[models.CategoryProduct](database.DB, c.Params("id"), models.DeletionPolicies["category_products"]); err != nil {
			return err
		}
		return response.OK(c, "category deleted", nil)
	}
}
