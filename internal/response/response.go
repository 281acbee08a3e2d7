package response

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Every endpoint, success or failure, replies with the same envelope:
// { "data": ..., "meta": { "status", "code", "message", "paginator"? } }

type Paginator struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

type Meta struct {
	Status    string     `json:"status"`
	Code      int        `json:"code"`
	Message   string     `json:"message"`
	Paginator *Paginator `json:"paginator,omitempty"`
}

type Envelope struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

func statusWord(code int) string {
	if code >= 400 {
		return "error"
	}
	return "success"
}

func send(c *fiber.Ctx, code int, message string, data any, p *Paginator) error {
	return c.Status(code).JSON(Envelope{
		Data: data,
		Meta: Meta{
			Status:    statusWord(code),
			Code:      code,
			Message:   message,
			Paginator: p,
		},
	})
}

func OK(c *fiber.Ctx, message string, data any) error {
	return send(c, fiber.StatusOK, message, data, nil)
}

func Created(c *fiber.Ctx, message string, data any) error {
	return send(c, fiber.StatusCreated, message, data, nil)
}

func Paginated(c *fiber.Ctx, message string, data any, p Paginator) error {
	return send(c, fiber.StatusOK, message, data, &p)
}

// Error renders the envelope for a failed request; data is always null.
func Error(c *fiber.Ctx, code int, message string) error {
	if code < 400 {
		code = fiber.StatusInternalServerError
	}
	if message == "" {
		message = http.StatusText(code)
	}
	return send(c, code, message, nil, nil)
}
