package sales

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pos-backend/internal/audit"
	"pos-backend/internal/auth"
	"pos-backend/internal/crud"
	"pos-backend/internal/database"
	"pos-backend/internal/metrics"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
	"pos-backend/internal/validate"
)

type SaleDetailInput struct {
	ProductID uint            `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	SubTotal  decimal.Decimal `json:"sub_total"`
}

type CreateSaleRequest struct {
	InvoiceNumber string            `json:"invoice_number" validate:"max=50"`
	BranchID      uint              `json:"branch_id" validate:"required"`
	MemberID      *uint             `json:"member_id"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=cash card qris transfer"`
	TotalPrice    decimal.Decimal   `json:"total_price"`
	Tax           decimal.Decimal   `json:"tax"`
	Discount      decimal.Decimal   `json:"discount"`
	TotalPayment  decimal.Decimal   `json:"total_payment"`
	Status        string            `json:"status" validate:"omitempty,oneof=finished pending canceled"`
	Details       []SaleDetailInput `json:"details" validate:"required,min=1,dive"`
}

type UpdateSaleRequest struct {
	PaymentMethod *string          `json:"payment_method"`
	Tax           *decimal.Decimal `json:"tax"`
	Discount      *decimal.Decimal `json:"discount"`
	TotalPayment  *decimal.Decimal `json:"total_payment"`
	Status        *string          `json:"status"`
}

// loyaltyEarnDivisor: one point per 10000 of total_payment on member sales.
var loyaltyEarnDivisor = decimal.NewFromInt(10000)

// POST /api/sales — header, line items and loyalty accrual commit in a single
// transaction. Totals are stored exactly as submitted; the server does not
// recompute total_payment from the details, and stock is only moved through
// the stock mutation module.
func CreateSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return err
		}
		cashierID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		if !crud.Exists[models.Branch](database.DB, body.BranchID) {
			return fiber.NewError(fiber.StatusNotFound, "branch not found")
		}
		if body.MemberID != nil && !crud.Exists[models.Member](database.DB, *body.MemberID) {
			return fiber.NewError(fiber.StatusNotFound, "member not found")
		}
		for _, d := range body.Details {
			if !crud.Exists[models.Product](database.DB, d.ProductID) {
				return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("product %d not found", d.ProductID))
			}
		}

		sale := models.Sale{
			InvoiceNumber: body.InvoiceNumber,
			BranchID:      body.BranchID,
			CashierID:     cashierID,
			MemberID:      body.MemberID,
			PaymentMethod: models.PaymentMethod(body.PaymentMethod),
			TotalPrice:    body.TotalPrice,
			Tax:           body.Tax,
			Discount:      body.Discount,
			TotalPayment:  body.TotalPayment,
			Status:        models.SalePending,
		}
		if body.Status != "" {
			sale.Status = models.SaleStatus(body.Status)
		}
		if sale.InvoiceNumber == "" {
			sale.InvoiceNumber = newInvoiceNumber()
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&sale).Error; err != nil {
				return err
			}
			for _, d := range body.Details {
				detail := models.SaleDetail{
					SaleID:    sale.ID,
					ProductID: d.ProductID,
					Quantity:  d.Quantity,
					UnitPrice: d.UnitPrice,
					SubTotal:  d.SubTotal,
				}
				if err := tx.Create(&detail).Error; err != nil {
					return err
				}
				sale.Details = append(sale.Details, detail)
			}
			if sale.MemberID != nil && sale.Status == models.SaleFinished {
				points := int(sale.TotalPayment.Div(loyaltyEarnDivisor).IntPart())
				if points > 0 {
					entry := models.LoyaltyPoint{
						MemberID: *sale.MemberID,
						SaleID:   &sale.ID,
						Points:   points,
						Note:     "earned from sale " + sale.InvoiceNumber,
					}
					if err := tx.Create(&entry).Error; err != nil {
						return err
					}
					if err := tx.Model(&models.Member{}).Where("id = ?", *sale.MemberID).
						Update("total_points", gorm.Expr("total_points + ?", points)).Error; err != nil {
						return err
					}
				}
			}
			return nil
		})
		if txErr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "sale could not be created")
		}

		metrics.SalesCreated.Inc()
		writeSaleAudit(c, models.AuditActionCreate, &sale, nil)
		return response.Created(c, "sale created", sale)
	}
}

func ListSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}

		q := database.DB
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}
		if branch := c.QueryInt("branch_id"); branch > 0 {
			q = q.Where("branch_id = ?", branch)
		}

		rows, pg, err := crud.List[models.Sale](q, p, "invoice_number")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "sales could not be listed")
		}
		return response.Paginated(c, "sales", rows, pg)
	}
}

func GetSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sale, err := crud.GetByID[models.Sale](database.DB.Unscoped(), c.Params("id"), "Details", "Details.Product", "Branch", "Cashier", "Member")
		if err != nil {
			return err
		}
		return response.OK(c, "sale", sale)
	}
}

// PUT /api/sales/:id — payment metadata and status only; line items are
// immutable once written.
func UpdateSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sale, err := crud.GetByID[models.Sale](database.DB, c.Params("id"))
		if err != nil {
			return err
		}
		before := *sale

		var body UpdateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if body.PaymentMethod != nil {
			switch models.PaymentMethod(*body.PaymentMethod) {
			case models.PaymentCash, models.PaymentCard, models.PaymentQRIS, models.PaymentTransfer:
				sale.PaymentMethod = models.PaymentMethod(*body.PaymentMethod)
			default:
				return fiber.NewError(fiber.StatusBadRequest, "payment_method is invalid")
			}
		}
		if body.Tax != nil {
			sale.Tax = *body.Tax
		}
		if body.Discount != nil {
			sale.Discount = *body.Discount
		}
		if body.TotalPayment != nil {
			sale.TotalPayment = *body.TotalPayment
		}
		if body.Status != nil {
			switch models.SaleStatus(*body.Status) {
			case models.SaleFinished, models.SalePending, models.SaleCanceled:
				sale.Status = models.SaleStatus(*body.Status)
			default:
				return fiber.NewError(fiber.StatusBadRequest, "status is invalid")
			}
		}

		if err := database.DB.Save(sale).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "sale could not be updated")
		}

		writeSaleAudit(c, models.AuditActionUpdate, sale, before)
		return response.OK(c, "sale updated", sale)
	}
}

func DeleteSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sale, err := crud.GetByID[models.Sale](database.DB, c.Params("id"))
		if err != nil {
			return err
		}
		if err := crud.Delete[models.Sale](database.DB, c.Params("id"), models.DeletionPolicies["sales"]); err != nil {
			return err
		}
		writeSaleAudit(c, models.AuditActionDelete, sale, *sale)
		return response.OK(c, "sale deleted", nil)
	}
}

func newInvoiceNumber() string {
	return fmt.Sprintf("INV-%s", time.Now().Format("20060102-150405.000"))
}

func writeSaleAudit(c *fiber.Ctx, action models.AuditAction, sale *models.Sale, before any) {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return
	}
	var after any
	if action != models.AuditActionDelete {
		after = sale
	}
	audit.Write(audit.LogOptions{
		BranchID:    auth.CurrentBranchID(c),
		UserID:      userID,
		Module:      "sales",
		EntityID:    sale.ID,
		Action:      action,
		Description: sale.InvoiceNumber,
		Before:      before,
		After:       after,
	})
}
