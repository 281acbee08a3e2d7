package validate

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"omitempty,oneof=admin cashier"`
}

func fiberErr(t *testing.T, err error) *fiber.Error {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	return fe
}

func TestStructPasses(t *testing.T) {
	err := Struct(loginForm{Email: "a@b.co", Password: "supersecret"})
	assert.NoError(t, err)
}

func TestStructRequired(t *testing.T) {
	fe := fiberErr(t, Struct(loginForm{Password: "supersecret"}))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "email is required", fe.Message)
}

func TestStructEmail(t *testing.T) {
	fe := fiberErr(t, Struct(loginForm{Email: "not-an-email", Password: "supersecret"}))
	assert.Equal(t, "email must be a valid email address", fe.Message)
}

func TestStructMin(t *testing.T) {
	fe := fiberErr(t, Struct(loginForm{Email: "a@b.co", Password: "short"}))
	assert.Equal(t, "password must be at least 8", fe.Message)
}

func TestStructOneOf(t *testing.T) {
	fe := fiberErr(t, Struct(loginForm{Email: "a@b.co", Password: "supersecret", Role: "janitor"}))
	assert.Equal(t, "role must be one of: admin cashier", fe.Message)
}
