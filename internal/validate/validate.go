package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a request DTO and converts the first failure into a 400
// with a readable message.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", field)
	case "email":
		msg = fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		msg = fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min":
		msg = fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		msg = fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		msg = fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		msg = fmt.Sprintf("%s must be %s or more", field, fe.Param())
	default:
		msg = fmt.Sprintf("%s is invalid", field)
	}
	return fiber.NewError(fiber.StatusBadRequest, msg)
}
