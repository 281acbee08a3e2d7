package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
)

type SaveSettingRequest struct {
	StoreName      *string          `json:"store_name"`
	Address        *string          `json:"address"`
	Phone          *string          `json:"phone"`
	Currency       *string          `json:"currency"`
	TaxRate        *decimal.Decimal `json:"tax_rate"`
	GlobalDiscount *decimal.Decimal `json:"global_discount"`
}

// GET /api/settings
func GetSettingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var setting models.GeneralSetting
		if err := database.DB.First(&setting).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "settings have not been saved yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "settings could not be read")
		}
		return response.OK(c, "settings", setting)
	}
}

// PUT /api/settings — fetch-merge-save. The unique index on singleton_key is
// what actually guarantees a single row; if two concurrent first-time saves
// race, the loser's insert violates the index and is retried as an update.
func SaveSettingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveSettingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		setting, err := saveSetting(&body)
		if err != nil {
			return err
		}
		return response.OK(c, "settings saved", setting)
	}
}

func saveSetting(body *SaveSettingRequest) (*models.GeneralSetting, error) {
	var setting models.GeneralSetting
	err := database.DB.First(&setting).Error
	creating := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !creating {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "settings could not be read")
	}

	if creating {
		setting = models.GeneralSetting{SingletonKey: "global", Currency: "IDR"}
		if body.StoreName == nil || *body.StoreName == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "store_name is required on first save")
		}
	}

	mergeSetting(&setting, body)

	if err := database.DB.Save(&setting).Error; err != nil {
		if !creating {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "settings could not be saved")
		}
		// Lost the insert race: the row exists now, merge onto it.
		if err := database.DB.First(&setting).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "settings could not be saved")
		}
		mergeSetting(&setting, body)
		if err := database.DB.Save(&setting).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "settings could not be saved")
		}
	}
	return &setting, nil
}

func mergeSetting(setting *models.GeneralSetting, body *SaveSettingRequest) {
	if body.StoreName != nil {
		setting.StoreName = *body.StoreName
	}
	if body.Address != nil {
		setting.Address = *body.Address
	}
	if body.Phone != nil {
		setting.Phone = *body.Phone
	}
	if body.Currency != nil {
		setting.Currency = *body.Currency
	}
	if body.TaxRate != nil {
		setting.TaxRate = *body.TaxRate
	}
	if body.GlobalDiscount != nil {
		setting.GlobalDiscount = *body.GlobalDiscount
	}
}
