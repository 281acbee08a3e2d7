package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-backend/internal/config"
	"pos-backend/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "0123456789abcdef0123456789abcdef",
		JWTTTL:    time.Hour,
	}
}

func testUser() *models.User {
	branchID := uint(4)
	return &models.User{
		ID:       7,
		BranchID: &branchID,
		Email:    "cashier@example.com",
		Role:     models.RoleCashier,
	}
}

func protectedApp(cfg *config.Config, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{JWTMiddleware(cfg)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		id, err := CurrentUserID(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"user_id": id})
	})
	app.Get("/secure", handlers...)
	return app
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateToken(cfg, testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	app := protectedApp(cfg)
	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMissingAndMalformedHeader(t *testing.T) {
	app := protectedApp(testConfig())

	resp, err := app.Test(httptest.NewRequest("GET", "/secure", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWrongSecretRejected(t *testing.T) {
	signer := testConfig()
	token, err := GenerateToken(signer, testUser())
	require.NoError(t, err)

	verifier := testConfig()
	verifier.JWTSecret = "ffffffffffffffffffffffffffffffff"
	app := protectedApp(verifier)

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := testConfig()
	cfg.JWTTTL = -time.Minute
	token, err := GenerateToken(cfg, testUser())
	require.NoError(t, err)

	app := protectedApp(cfg)
	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateToken(cfg, testUser())
	require.NoError(t, err)

	cases := []struct {
		name    string
		allowed []models.UserRole
		want    int
	}{
		{"role allowed", []models.UserRole{models.RoleCashier}, fiber.StatusOK},
		{"role among several", []models.UserRole{models.RoleAdmin, models.RoleCashier}, fiber.StatusOK},
		{"role denied", []models.UserRole{models.RoleAdmin}, fiber.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := protectedApp(cfg, RequireRole(tc.allowed...))
			req := httptest.NewRequest("GET", "/secure", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
