package member

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"pos-backend/internal/crud"
	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
	"pos-backend/internal/validate"
)

type CreateMemberRequest struct {
	Name     string     `json:"name" validate:"required,max=100"`
	Email    string     `json:"email" validate:"omitempty,email"`
	Phone    string     `json:"phone" validate:"max=50"`
	Address  string     `json:"address" validate:"max=255"`
	JoinDate *time.Time `json:"join_date"`
	Status   *bool      `json:"status"`
}

type UpdateMemberRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Status  *bool   `json:"status"`
}

func CreateMemberHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMemberRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		body.Name = strings.TrimSpace(body.Name)
		if err := validate.Struct(body); err != nil {
			return err
		}

		m := models.Member{
			Name:     body.Name,
			Email:    body.Email,
			Phone:    body.Phone,
			Address:  body.Address,
			JoinDate: time.Now(),
			Status:   true,
		}
		if body.JoinDate != nil {
			m.JoinDate = *body.JoinDate
		}
		if body.Status != nil {
			m.Status = *body.Status
		}

		if err := database.DB.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "member could not be created")
		}
		return response.Created(c, "member created", m)
	}
}

func ListMembersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}
		rows, pg, err := crud.List[models.Member](database.DB, p, "name", "phone", "email")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "members could not be listed")
		}
		return response.Paginated(c, "members", rows, pg)
	}
}

func GetMemberHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		m, err := crud.GetByIDUnscoped[models.Member](database.DB, c.Params("id"))
		if err != nil {
			return err
		}
		return response.OK(c, "member", m)
	}
}

func UpdateMemberHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		m, err := crud.GetByID[models.Member](database.DB, c.Params("id"))
		if err != nil {
			return err
		}

		var body UpdateMemberRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			m.Name = name
		}
		if body.Email != nil {
			m.Email = *body.Email
		}
		if body.Phone != nil {
			m.Phone = *body.Phone
		}
		if body.Address != nil {
			m.Address = *body.Address
		}
		if body.Status != nil {
			m.Status = *body.Status
		}

		if err := database.DB.Save(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "member could not be updated")
		}
		return response.OK(c, "member updated", m)
	}
}

func DeleteMemberHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := crud.Delete[models.Member](database.DB, c.Params("id"), models.DeletionPolicies["members"]); err != nil {
			return err
		}
		return response.OK(c, "member deleted", nil)
	}
}
