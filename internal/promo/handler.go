package promo

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"pos-backend/internal/crud"
	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
	"pos-backend/internal/validate"
)

type CreatePromoRequest struct {
	Name      string          `json:"name" validate:"required,max=100"`
	ProductID uint            `json:"product_id" validate:"required"`
	BranchID  uint            `json:"branch_id" validate:"required"`
	Type      string          `json:"type" validate:"required,oneof=percentage amount"`
	Value     decimal.Decimal `json:"value"`
	StartDate *time.Time      `json:"start_date"`
	EndDate   *time.Time      `json:"end_date"`
	Status    *bool           `json:"status"`
}

type UpdatePromoRequest struct {
	Name      *string          `json:"name"`
	Type      *string          `json:"type"`
	Value     *decimal.Decimal `json:"value"`
	StartDate *time.Time       `json:"start_date"`
	EndDate   *time.Time       `json:"end_date"`
	Status    *bool            `json:"status"`
}

func validPromoValue(t models.PromoType, v decimal.Decimal) bool {
	if v.IsNegative() {
		return false
	}
	// A percentage above 100 would push a price below zero.
	if t == models.PromoPercentage && v.GreaterThan(decimal.NewFromInt(100)) {
		return false
	}
	return true
}

func CreatePromoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePromoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		body.Name = strings.TrimSpace(body.Name)
		if err := validate.Struct(body); err != nil {
			return err
		}
		if !validPromoValue(models.PromoType(body.Type), body.Value) {
			return fiber.NewError(fiber.StatusBadRequest, "value is out of range for this promo type")
		}
		if body.StartDate != nil && body.EndDate != nil && body.EndDate.Before(*body.StartDate) {
			return fiber.NewError(fiber.StatusBadRequest, "end_date cannot be before start_date")
		}
		if !crud.Exists[models.Product](database.DB, body.ProductID) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		if !crud.Exists[models.Branch](database.DB, body.BranchID) {
			return fiber.NewError(fiber.StatusNotFound, "branch not found")
		}

		promo := models.Promo{
			Name:      body.Name,
			ProductID: body.ProductID,
			BranchID:  body.BranchID,
			Type:      models.PromoType(body.Type),
			Value:     body.Value,
			StartDate: body.StartDate,
			EndDate:   body.EndDate,
			Status:    true,
		}
		if body.Status != nil {
			promo.Status = *body.Status
		}

		if err := database.DB.Create(&promo).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "promo could not be created")
		}
		return response.Created(c, "promo created", promo)
	}
}

func ListPromosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}

		q := database.DB
		if branch := c.QueryInt("branch_id"); branch > 0 {
			q = q.Where("branch_id = ?", branch)
		}

		rows, pg, err := crud.List[models.Promo](q, p, "name")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "promos could not be listed")
		}
		return response.Paginated(c, "promos", rows, pg)
	}
}

func GetPromoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		promo, err := crud.GetByID[models.Promo](database.DB.Unscoped(), c.Params("id"), "Product", "Branch")
		if err != nil {
			return err
		}
		return response.OK(c, "promo", promo)
	}
}

func UpdatePromoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		promo, err := crud.GetByID[models.Promo](database.DB, c.Params("id"))
		if err != nil {
			return err
		}

		var body UpdatePromoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			promo.Name = name
		}
		if body.Type != nil {
			switch models.PromoType(*body.Type) {
			case models.PromoPercentage, models.PromoAmount:
				promo.Type = models.PromoType(*body.Type)
			default:
				return fiber.NewError(fiber.StatusBadRequest, "type is invalid")
			}
		}
		if body.Value != nil {
			promo.Value = *body.Value
		}
		if !validPromoValue(promo.Type, promo.Value) {
			return fiber.NewError(fiber.StatusBadRequest, "value is out of range for this promo type")
		}
		if body.StartDate != nil {
			promo.StartDate = body.StartDate
		}
		if body.EndDate != nil {
			promo.EndDate = body.EndDate
		}
		if promo.StartDate != nil && promo.EndDate != nil && promo.EndDate.Before(*promo.StartDate) {
			return fiber.NewError(fiber.StatusBadRequest, "end_date cannot be before start_date")
		}
		if body.Status != nil {
			promo.Status = *body.Status
		}

		if err := database.DB.Save(promo).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "promo could not be updated")
		}
		return response.OK(c, "promo updated", promo)
	}
}

func DeletePromoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := crud.Delete[models.Promo](database.DB, c.Params("id"), models.DeletionPolicies["promos"]); err != nil {
			return err
		}
		return response.OK(c, "promo deleted", nil)
	}
}
