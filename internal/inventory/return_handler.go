package inventory

import (
	"github.com/gofiber/fiber/v2"

	"pos-backend/internal/crud"
	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
	"pos-backend/internal/validate"
)

type CreateReturnRequest struct {
	ProductID uint   `json:"product_id" validate:"required"`
	BranchID  uint   `json:"branch_id" validate:"required"`
	Direction string `json:"direction" validate:"required,oneof=to_customer to_supplier"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"max=255"`
	Note      string `json:"note" validate:"max=255"`
}

type UpdateReturnRequest struct {
	Direction *string `json:"direction"`
	Quantity  *int    `json:"quantity"`
	Reason    *string `json:"reason"`
	Note      *string `json:"note"`
}

func CreateReturnHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateReturnRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(body); err != nil {
			return err
		}
		if !crud.Exists[models.Product](database.DB, body.ProductID) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		if !crud.Exists[models.Branch](database.DB, body.BranchID) {
			return fiber.NewError(fiber.StatusNotFound, "branch not found")
		}

		ret := models.ReturnOfGoods{
			ProductID: body.ProductID,
			BranchID:  body.BranchID,
			Direction: models.ReturnDirection(body.Direction),
			Quantity:  body.Quantity,
			Reason:    body.Reason,
			Note:      body.Note,
		}
		if err := database.DB.Create(&ret).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "return could not be created")
		}
		return response.Created(c, "return recorded", ret)
	}
}

func ListReturnsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}
		rows, pg, err := crud.List[models.ReturnOfGoods](database.DB, p, "reason", "note")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "returns could not be listed")
		}
		return response.Paginated(c, "returns", rows, pg)
	}
}

func GetReturnHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ret, err := crud.GetByID[models.ReturnOfGoods](database.DB, c.Params("id"), "Product", "Branch")
		if err != nil {
			return err
		}
		return response.OK(c, "return", ret)
	}
}

func UpdateReturnHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ret, err := crud.GetByID[models.ReturnOfGoods](database.DB, c.Params("id"))
		if err != nil {
			return err
		}

		var body UpdateReturnRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.Direction != nil {
			switch models.ReturnDirection(*body.Direction) {
			case models.ReturnToCustomer, models.ReturnToSupplier:
				ret.Direction = models.ReturnDirection(*body.Direction)
			default:
				return fiber.NewError(fiber.StatusBadRequest, "direction is invalid")
			}
		}
		if body.Quantity != nil {
			if *body.Quantity <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "quantity must be positive")
			}
			ret.Quantity = *body.Quantity
		}
		if body.Reason != nil {
			ret.Reason = *body.Reason
		}
		if body.Note != nil {
			ret.Note = *body.Note
		}

		if err := database.DB.Save(ret).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "return could not be updated")
		}
		return response.OK(c, "return updated", ret)
	}
}

func DeleteReturnHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := crud.Delete[models.ReturnOfGoods](database.DB, c.Params("id"), models.DeletionPolicies["return_of_goods"]); err != nil {
			return err
		}
		return response.OK(c, "return deleted", nil)
	}
}
