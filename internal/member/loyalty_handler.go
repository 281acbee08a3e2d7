package member

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pos-backend/internal/crud"
	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
	"pos-backend/internal/validate"
)

type CreateLoyaltyPointRequest struct {
	MemberID uint   `json:"member_id" validate:"required"`
	SaleID   *uint  `json:"sale_id"`
	Points   int    `json:"points" validate:"required"`
	Note     string `json:"note" validate:"max=255"`
}

// POST /api/loyalty-points — positive points accrue, negative redeem. The
// entry and the member's running balance move in one transaction, and a
// redemption larger than the balance is refused.
func CreateLoyaltyPointHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLoyaltyPointRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return err
		}
		if body.SaleID != nil && !crud.Exists[models.Sale](database.DB, *body.SaleID) {
			return fiber.NewError(fiber.StatusNotFound, "sale not found")
		}

		entry := models.LoyaltyPoint{
			MemberID: body.MemberID,
			SaleID:   body.SaleID,
			Points:   body.Points,
			Note:     body.Note,
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			var m models.Member
			if err := tx.First(&m, "id = ?", body.MemberID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "member not found")
			}
			if m.TotalPoints+body.Points < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "member does not have enough points")
			}
			if err := tx.Model(&m).Update("total_points", gorm.Expr("total_points + ?", body.Points)).Error; err != nil {
				return err
			}
			return tx.Create(&entry).Error
		})
		if txErr != nil {
			if ferr, ok := txErr.(*fiber.Error); ok {
				return ferr
			}
			return fiber.NewError(fiber.StatusInternalServerError, "loyalty points could not be saved")
		}
		return response.Created(c, "loyalty points recorded", entry)
	}
}

func ListLoyaltyPointsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}

		q := database.DB
		if member := c.QueryInt("member_id"); member > 0 {
			q = q.Where("member_id = ?", member)
		}

		rows, pg, err := crud.List[models.LoyaltyPoint](q, p, "note")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "loyalty points could not be listed")
		}
		return response.Paginated(c, "loyalty points", rows, pg)
	}
}

func GetLoyaltyPointHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entry, err := crud.GetByID[models.LoyaltyPoint](database.DB, c.Params("id"), "Member")
		if err != nil {
			return err
		}
		return response.OK(c, "loyalty point entry", entry)
	}
}

// DELETE /api/loyalty-points/:id — hard delete; the member balance is rolled
// back with the entry.
func DeleteLoyaltyPointHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entry, err := crud.GetByID[models.LoyaltyPoint](database.DB, c.Params("id"))
		if err != nil {
			return err
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Member{}).Where("id = ?", entry.MemberID).
				Update("total_points", gorm.Expr("total_points - ?", entry.Points)).Error; err != nil {
				return err
			}
			return tx.Unscoped().Delete(&models.LoyaltyPoint{}, "id = ?", entry.ID).Error
		})
		if txErr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "loyalty point entry could not be deleted")
		}
		return response.OK(c, "loyalty point entry deleted", nil)
	}
}
