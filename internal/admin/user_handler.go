package admin

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pos-backend/internal/config"
	"pos-backend/internal/crud"
	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
	"pos-backend/internal/validate"
)

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=super_admin admin manager supervisor cashier"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
	BranchID *uint  `json:"branch_id"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
	BranchID *uint   `json:"branch_id"`
}

func CreateUserHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.Name = strings.TrimSpace(body.Name)
		if err := validate.Struct(body); err != nil {
			return err
		}

		if body.BranchID != nil && !crud.Exists[models.Branch](database.DB, *body.BranchID) {
			return fiber.NewError(fiber.StatusNotFound, "branch not found")
		}

		// Duplicate email is a conflict, not a validation failure.
		var exist models.User
		if err := database.DB.Where("email = ?", body.Email).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "email is already registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "email could not be checked")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), cfg.BcryptCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "password could not be hashed")
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         models.UserRole(body.Role),
			Status:       models.UserActive,
			BranchID:     body.BranchID,
		}
		if body.Status != "" {
			user.Status = models.UserStatus(body.Status)
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "user could not be created")
		}
		return response.Created(c, "user created", user)
	}
}

func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := crud.ParseListParams(c)
		if err != nil {
			return err
		}
		rows, pg, err := crud.List[models.User](database.DB, p, "name", "email")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "users could not be listed")
		}
		return response.Paginated(c, "users", rows, pg)
	}
}

func GetUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := crud.GetByIDUnscoped[models.User](database.DB, c.Params("id"))
		if err != nil {
			return err
		}
		return response.OK(c, "user", user)
	}
}

func UpdateUserHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := crud.GetByID[models.User](database.DB, c.Params("id"))
		if err != nil {
			return err
		}

		var body UpdateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			user.Name = name
		}
		if body.Email != nil {
			email := strings.TrimSpace(strings.ToLower(*body.Email))
			var exist models.User
			if err := database.DB.Where("email = ? AND id <> ?", email, user.ID).First(&exist).Error; err == nil {
				return fiber.NewError(fiber.StatusConflict, "email is already registered")
			}
			user.Email = email
		}
		if body.Password != nil {
			if len(*body.Password) < 8 {
				return fiber.NewError(fiber.StatusBadRequest, "password must be at least 8")
			}
			hash, hashErr := bcrypt.GenerateFromPassword([]byte(*body.Password), cfg.BcryptCost)
			if hashErr != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "password could not be hashed")
			}
			user.PasswordHash = string(hash)
		}
		if body.Role != nil {
			switch models.UserRole(*body.Role) {
			case models.RoleSuperAdmin, models.RoleAdmin, models.RoleManager, models.RoleSupervisor, models.RoleCashier:
				user.Role = models.UserRole(*body.Role)
			default:
				return fiber.NewError(fiber.StatusBadRequest, "role is invalid")
			}
		}
		if body.Status != nil {
			switch models.UserStatus(*body.Status) {
			case models.UserActive, models.UserInactive:
				user.Status = models.UserStatus(*body.Status)
			default:
				return fiber.NewError(fiber.StatusBadRequest, "status is invalid")
			}
		}
		if body.BranchID != nil {
			if !crud.Exists[models.Branch](database.DB, *body.BranchID) {
				return fiber.NewError(fiber.StatusNotFound, "branch not found")
			}
			user.BranchID = body.BranchID
		}

		if err := database.DB.Save(user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "user could not be updated")
		}
		return response.OK(c, "user updated", user)
	}
}

func DeleteUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := crud.Delete[models.User](database.DB, c.Params("id"), models.DeletionPolicies["users"]); err != nil {
			return err
		}
		return response.OK(c, "user deleted", nil)
	}
}
