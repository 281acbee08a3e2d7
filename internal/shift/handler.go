package shift

import (
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

type OpenShiftRequest struct {
	BranchID    uint            `json:"branch_id" validate:"required"`
	CashierID   uint            `json:"cashier_id" validate:"required"`
	TimeIn      *time.Time      `json:"time_in"`
	OpeningCash decimal.Decimal `json:"opening_cash"`
	Note        string          `json:"note" validate:"max=255"`
}

type CloseShiftRequest struct {
	TimeOut          *time.Time       `json:"time_out"`
	ClosingCash      *decimal.Decimal `json:"closing_cash"`
	TotalSales       *decimal.Decimal `json:"total_sales"`
	TransactionCount *int             `json:"transaction_count"`
	Note             *string          `json:"note"`
	Status           *string          `json:"status"`
}

// POST /api/shifts — opens a shift in the active state.
func OpenShiftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OpenShiftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return err
		}
		if !crud.Exists[models.Branch](database.DB, body.BranchID) {
			return fiber.NewError(fiber.StatusNotFound, "branch not found")
		}
		if !crud.Exists[models.User](database.DB, body.CashierID) {
			return fiber.NewError(fiber.StatusNotFound, "cashier not found")
		}

		timeIn := time.Now()
		if body.TimeIn != nil {
			timeIn = *body.TimeIn
		}

		sh := models.Shift{
			BranchID:    body.BranchID,
			CashierID:   body.CashierID,
			TimeIn:      timeIn,
			OpeningCash: body.OpeningCash,
			Note:        body.Note,
			Status:      models.ShiftActive,
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&sh).Error; err != nil {
				return err
			}
			return appendActivity(tx, c, sh.ID, "opened", "shift opened")
		})
		if txErr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "shift could not be opened")
		}
		return response.Created(c, "shift opened", sh)
	}
}

// PUT /api/shifts/:id/close — merges the closing fields. status defaults to
// closed; a shift that already left active is rejected.
func CloseShiftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sh, err := crud.GetByID[models.Shift](database.DB, c.Params("id"))
		if err != nil {
			return err
		}

		var body CloseShiftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		target := models.ShiftClosed
		if body.Status != nil {
			switch models.ShiftStatus(*body.Status) {
			case models.ShiftClosed, models.ShiftCancelled:
				target = models.ShiftStatus(*body.Status)
			default:
				return fiber.NewError(fiber.StatusBadRequest, "status must be closed or cancelled")
			}
		}
		if !CanTransition(sh.Status, target) {
			return fiber.NewError(fiber.StatusBadRequest, "shift is not active")
		}

		now := time.Now()
		sh.TimeOut = &now
		if body.TimeOut != nil {
			sh.TimeOut = body.TimeOut
		}
		if body.ClosingCash != nil {
			sh.ClosingCash = *body.ClosingCash
		}
		if body.TotalSales != nil {
			sh.TotalSales = *body.TotalSales
		}
		if body.TransactionCount != nil {
			sh.TransactionCount = *body.TransactionCount
		}
		if body.Note != nil {
			sh.Note = *body.Note
		}
		sh.Status = target

		action := "closed"
		if target == models.ShiftCancelled {
			action = "cancelled"
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(sh).Error; err != nil {
				return err
			}
			return appendActivity(tx, c, sh.ID, action, "shift "+action)
		})
		if txErr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "shift could not be "+action)
		}
		return response.OK(c, "shift "+action, sh)
	}
}

func ListShiftsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}

		q := database.DB
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}
		if cashier := c.QueryInt("cashier_id"); cashier > 0 {
			q = q.Where("cashier_id = ?", cashier)
		}

		rows, pg, err := crud.List[models.Shift](q, p, "note")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "shifts could not be listed")
		}
		return response.Paginated(c, "shifts", rows, pg)
	}
}

func GetShiftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sh, err := crud.GetByID[models.Shift](database.DB.Unscoped(), c.Params("id"), "Branch", "Cashier")
		if err != nil {
			return err
		}
		return response.OK(c, "shift", sh)
	}
}

func DeleteShiftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := crud.Delete[models.Shift](database.DB, c.Params("id"), models.DeletionPolicies["shifts"]); err != nil {
			return err
		}
		return response.OK(c, "shift deleted", nil)
	}
}

// GET /api/shifts/:id/activities — the append-only trail for one shift.
func ListShiftActivitiesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := crud.GetByIDUnscoped[models.Shift](database.DB, c.Params("id")); err != nil {
			return err
		}

		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}
		q := database.DB.Where("shift_id = ?", c.Params("id"))
		rows, pg, err := crud.List[models.ShiftActivityLog](q, p, "detail")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "activities could not be listed")
		}
		return response.Paginated(c, "shift activities", rows, pg)
	}
}

func appendActivity(tx *gorm.DB, c *fiber.Ctx, shiftID uint, action, detail string) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		userID = 0
	}
	return tx.Create(&models.ShiftActivityLog{
		ShiftID: shiftID,
		UserID:  userID,
		Action:  action,
		Detail:  detail,
	}).Error
}
