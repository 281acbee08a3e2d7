package inventory

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"pos-backend/internal/audit"
	"pos-backend/internal/auth"
	"pos-backend/internal/crud"
	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
	"pos-backend/internal/validate"
)

type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,max=100"`
	CategoryID    uint            `json:"category_id" validate:"required"`
	BranchID      *uint           `json:"branch_id"`
	Barcode       string          `json:"barcode" validate:"max=64"`
	Unit          string          `json:"unit" validate:"required,max=20"`
	Stock         int             `json:"stock" validate:"gte=0"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	CategoryID    *uint            `json:"category_id"`
	BranchID      *uint            `json:"branch_id"`
	Barcode       *string          `json:"barcode"`
	Unit          *string          `json:"unit"`
	Stock         *int             `json:"stock"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
}

func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		body.Name = strings.TrimSpace(body.Name)
		if err := validate.Struct(body); err != nil {
			return err
		}
		if body.PurchasePrice.IsNegative() || body.SalePrice.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "prices cannot be negative")
		}
		if !crud.Exists[models.CategoryProduct](database.DB, body.CategoryID) {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		if body.BranchID != nil && !crud.Exists[models.Branch](database.DB, *body.BranchID) {
			return fiber.NewError(fiber.StatusNotFound, "branch not found")
		}

		product := models.Product{
			Name:          body.Name,
			CategoryID:    body.CategoryID,
			BranchID:      body.BranchID,
			Barcode:       body.Barcode,
			Unit:          body.Unit,
			Stock:         body.Stock,
			PurchasePrice: body.PurchasePrice,
			SalePrice:     body.SalePrice,
		}
		if err := database.DB.Create(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "product could not be created")
		}

		writeProductAudit(c, models.AuditActionCreate, &product, nil)
		return response.Created(c, "product created", product)
	}
}

func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}
		rows, pg, err := crud.List[models.Product](database.DB, p, "name", "barcode")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "products could not be listed")
		}
		return response.Paginated(c, "products", rows, pg)
	}
}

func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		product, err := crud.GetByID[models.Product](database.DB.Unscoped(), c.Params("id"), "Category", "Branch")
		if err != nil {
			return err
		}
		return response.OK(c, "product", product)
	}
}

func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		product, err := crud.GetByID[models.Product](database.DB, c.Params("id"))
		if err != nil {
			return err
		}
		before := *product

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			product.Name = name
		}
		if body.CategoryID != nil {
			if !crud.Exists[models.CategoryProduct](database.DB, *body.CategoryID) {
				return fiber.NewError(fiber.StatusNotFound, "category not found")
			}
			product.CategoryID = *body.CategoryID
		}
		if body.BranchID != nil {
			if !crud.Exists[models.Branch](database.DB, *body.BranchID) {
				return fiber.NewError(fiber.StatusNotFound, "branch not found")
			}
			product.BranchID = body.BranchID
		}
		if body.Barcode != nil {
			product.Barcode = *body.Barcode
		}
		if body.Unit != nil {
			product.Unit = *body.Unit
		}
		if body.Stock != nil {
			if *body.Stock < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "stock cannot be negative")
			}
			product.Stock = *body.Stock
		}
		if body.PurchasePrice != nil {
			if body.PurchasePrice.IsNegative() {
				return fiber.NewError(fiber.StatusBadRequest, "purchase_price cannot be negative")
			}
			product.PurchasePrice = *body.PurchasePrice
		}
		if body.SalePrice != nil {
			if body.SalePrice.IsNegative() {
				return fiber.NewError(fiber.StatusBadRequest, "sale_price cannot be negative")
			}
			product.SalePrice = *body.SalePrice
		}

		if err := database.DB.Save(product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "product could not be updated")
		}

		writeProductAudit(c, models.AuditActionUpdate, product, before)
		return response.OK(c, "product updated", product)
	}
}

func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		product, err := crud.GetByID[models.Product](database.DB, c.Params("id"))
		if err != nil {
			return err
		}
		if err := crud.Delete[models.Product](database.DB, c.Params("id"), models.DeletionPolicies["products"]); err != nil {
			return err
		}
		writeProductAudit(c, models.AuditActionDelete, product, *product)
		return response.OK(c, "product deleted", nil)
	}
}

func writeProductAudit(c *fiber.Ctx, action models.AuditAction, product *models.Product, before any) {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return
	}
	var after any
	if action != models.AuditActionDelete {
		after = product
	}
	audit.Write(audit.LogOptions{
		BranchID:    auth.CurrentBranchID(c),
		UserID:      userID,
		Module:      "products",
		EntityID:    product.ID,
		Action:      action,
		Description: product.Name,
		Before:      before,
		After:       after,
	})
}
