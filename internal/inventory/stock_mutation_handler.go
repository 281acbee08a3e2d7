package inventory

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pos-backend/internal/auth"
	"pos-backend/internal/crud"
	"pos-backend/internal/database"
	"pos-backend/internal/metrics"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
	"pos-backend/internal/validate"
)

type CreateStockMutationRequest struct {
	ProductID uint   `json:"product_id" validate:"required"`
	BranchID  uint   `json:"branch_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=in out damaged return"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Note      string `json:"note" validate:"max=255"`
}

// POST /api/stock-mutations — the mutation row and the product stock
// adjustment commit together or not at all.
func CreateStockMutationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStockMutationRequest
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

		mutation := models.StockMutation{
			ProductID: body.ProductID,
			BranchID:  body.BranchID,
			UserID:    userID,
			Type:      models.MutationType(body.Type),
			Quantity:  body.Quantity,
			Note:      body.Note,
		}

		delta := body.Quantity
		if mutation.Type == models.MutationOut || mutation.Type == models.MutationDamaged {
			delta = -delta
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			var product models.Product
			if err := tx.First(&product, "id = ?", body.ProductID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "product not found")
			}
			if product.Stock+delta < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "stock cannot go negative")
			}
			if err := tx.Model(&product).Update("stock", gorm.Expr("stock + ?", delta)).Error; err != nil {
				return err
			}
			return tx.Create(&mutation).Error
		})
		if txErr != nil {
			if ferr, ok := txErr.(*fiber.Error); ok {
				return ferr
			}
			return fiber.NewError(fiber.StatusInternalServerError, "stock mutation could not be saved")
		}

		metrics.StockMutations.WithLabelValues(string(mutation.Type)).Inc()
		return response.Created(c, "stock mutation recorded", mutation)
	}
}

func ListStockMutationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}

		q := database.DB
		if t := c.Query("type"); t != "" {
			q = q.Where("type = ?", t)
		}

		rows, pg, err := crud.List[models.StockMutation](q, p, "note")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "stock mutations could not be listed")
		}
		return response.Paginated(c, "stock mutations", rows, pg)
	}
}

func GetStockMutationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		mutation, err := crud.GetByID[models.StockMutation](database.DB, c.Params("id"), "Product", "Branch")
		if err != nil {
			return err
		}
		return response.OK(c, "stock mutation", mutation)
	}
}

// DELETE /api/stock-mutations/:id — hard delete; the stock adjustment is
// reversed in the same transaction so the ledger and the product stay
// consistent.
func DeleteStockMutationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		mutation, err := crud.GetByID[models.StockMutation](database.DB, c.Params("id"))
		if err != nil {
			return err
		}

		delta := mutation.Quantity
		if mutation.Type == models.MutationIn || mutation.Type == models.MutationReturn {
			delta = -delta
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Product{}).Where("id = ?", mutation.ProductID).
				Update("stock", gorm.Expr("stock + ?", delta)).Error; err != nil {
				return err
			}
			return tx.Unscoped().Delete(&models.StockMutation{}, "id = ?", mutation.ID).Error
		})
		if txErr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "stock mutation could not be deleted")
		}
		return response.OK(c, "stock mutation deleted", nil)
	}
}
