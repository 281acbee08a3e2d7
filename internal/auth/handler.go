package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"pos-backend/internal/config"
	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
	"pos-backend/internal/validate"
)

type RegisterSuperAdminRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userProjection struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
	BranchID *uint           `json:"branch_id"`
}

func project(u *models.User) userProjection {
	return userProjection{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		BranchID: u.BranchID,
	}
}

// POST /api/auth/register-super-admin — one-time bootstrap.
func RegisterSuperAdminHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterSuperAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.Name = strings.TrimSpace(body.Name)
		if err := validate.Struct(body); err != nil {
			return err
		}

		var count int64
		database.DB.Model(&models.User{}).
			Where("role = ?", models.RoleSuperAdmin).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusForbidden, "a super admin already exists")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), cfg.BcryptCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "password could not be hashed")
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         models.RoleSuperAdmin,
			Status:       models.UserActive,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "user could not be created")
		}

		return response.Created(c, "super admin created", project(&user))
	}
}

// POST /api/auth/login. Unknown email, wrong password, and an inactive or
// soft-deleted account all produce the same 401, so accounts cannot be
// enumerated through the error message.
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if err := validate.Struct(body); err != nil {
			return err
		}

		// Default scope skips soft-deleted users, which is exactly what the
		// login lookup needs.
		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "email or password is incorrect")
		}
		if user.Status != models.UserActive {
			return fiber.NewError(fiber.StatusUnauthorized, "email or password is incorrect")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "email or password is incorrect")
		}

		token, err := GenerateToken(cfg, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "token could not be issued")
		}

		return response.OK(c, "login successful", fiber.Map{
			"token": token,
			"user":  project(&user),
		})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return err
		}

		var user models.User
		if err := database.DB.Preload("Branch").First(&user, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}

		res := fiber.Map{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"role":      user.Role,
			"status":    user.Status,
			"branch_id": user.BranchID,
		}
		if user.Branch != nil {
			res["branch"] = fiber.Map{
				"id":   user.Branch.ID,
				"name": user.Branch.Name,
				"city": user.Branch.City,
			}
		}
		return response.OK(c, "profile", res)
	}
}
