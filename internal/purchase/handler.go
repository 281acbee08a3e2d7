package purchase

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pos-backend/internal/auth"
	"pos-backend/internal/crud"
	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
	"pos-backend/internal/validate"
)

type PurchaseDetailInput struct {
	ProductID uint            `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	SubTotal  decimal.Decimal `json:"sub_total"`
}

type CreatePurchaseRequest struct {
	InvoiceNumber string                `json:"invoice_number" validate:"max=50"`
	BranchID      uint                  `json:"branch_id" validate:"required"`
	SupplierID    uint                  `json:"supplier_id" validate:"required"`
	TotalCost     decimal.Decimal       `json:"total_cost"`
	Status        string                `json:"status" validate:"omitempty,oneof=finished pending"`
	Details       []PurchaseDetailInput `json:"details" validate:"required,min=1,dive"`
}

type UpdatePurchaseRequest struct {
	TotalCost *decimal.Decimal `json:"total_cost"`
	Status    *string          `json:"status"`
}

// POST /api/purchases — header and details are one transaction.
func CreatePurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePurchaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return err
		}
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		if !crud.Exists[models.Branch](database.DB, body.BranchID) {
			return fiber.NewError(fiber.StatusNotFound, "branch not found")
		}
		if !crud.Exists[models.Supplier](database.DB, body.SupplierID) {
			return fiber.NewError(fiber.StatusNotFound, "supplier not found")
		}
		for _, d := range body.Details {
			if !crud.Exists[models.Product](database.DB, d.ProductID) {
				return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("product %d not found", d.ProductID))
			}
		}

		purchase := models.Purchase{
			InvoiceNumber: body.InvoiceNumber,
			BranchID:      body.BranchID,
			SupplierID:    body.SupplierID,
			UserID:        userID,
			TotalCost:     body.TotalCost,
			Status:        models.PurchasePending,
		}
		if body.Status != "" {
			purchase.Status = models.PurchaseStatus(body.Status)
		}
		if purchase.InvoiceNumber == "" {
			purchase.InvoiceNumber = fmt.Sprintf("PO-%s", time.Now().Format("20060102-150405.000"))
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&purchase).Error; err != nil {
				return err
			}
			for _, d := range body.Details {
				detail := models.PurchaseDetail{
					PurchaseID: purchase.ID,
					ProductID:  d.ProductID,
					Quantity:   d.Quantity,
					UnitCost:   d.UnitCost,
					SubTotal:   d.SubTotal,
				}
				if err := tx.Create(&detail).Error; err != nil {
					return err
				}
				purchase.Details = append(purchase.Details, detail)
			}
			return nil
		})
		if txErr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "purchase could not be created")
		}

		return response.Created(c, "purchase created", purchase)
	}
}

func ListPurchasesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}

		q := database.DB
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}
		if supplier := c.QueryInt("supplier_id"); supplier > 0 {
			q = q.Where("supplier_id = ?", supplier)
		}

		rows, pg, err := crud.List[models.Purchase](q, p, "invoice_number")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "purchases could not be listed")
		}
		return response.Paginated(c, "purchases", rows, pg)
	}
}

func GetPurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		purchase, err := crud.GetByID[models.Purchase](database.DB.Unscoped(), c.Params("id"), "Details", "Details.Product", "Supplier", "Branch")
		if err != nil {
			return err
		}
		return response.OK(c, "purchase", purchase)
	}
}

func UpdatePurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		purchase, err := crud.GetByID[models.Purchase](database.DB, c.Params("id"))
		if err != nil {
			return err
		}

		var body UpdatePurchaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if body.TotalCost != nil {
			purchase.TotalCost = *body.TotalCost
		}
		if body.Status != nil {
			switch models.PurchaseStatus(*body.Status) {
			case models.PurchaseFinished, models.PurchasePending:
				purchase.Status = models.PurchaseStatus(*body.Status)
			default:
				return fiber.NewError(fiber.StatusBadRequest, "status is invalid")
			}
		}

		if err := database.DB.Save(purchase).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "purchase could not be updated")
		}
		return response.OK(c, "purchase updated", purchase)
	}
}

func DeletePurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := crud.Delete[models.Purchase](database.DB, c.Params("id"), models.DeletionPolicies["purchases"]); err != nil {
			return err
		}
		return response.OK(c, "purchase deleted", nil)
	}
}
