package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func body(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestOKEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return OK(c, "fetched", fiber.Map{"id": 1})
	})

	status, out := body(t, app, "/")
	assert.Equal(t, fiber.StatusOK, status)

	meta := out["meta"].(map[string]any)
	assert.Equal(t, "success", meta["status"])
	assert.Equal(t, float64(200), meta["code"])
	assert.Equal(t, "fetched", meta["message"])
	assert.NotContains(t, meta, "paginator")
	assert.Equal(t, float64(1), out["data"].(map[string]any)["id"])
}

func TestPaginatedEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Paginated(c, "listed", []int{1, 2}, Paginator{
			Total: 21, Page: 2, PerPage: 10, TotalPages: 3,
		})
	})

	status, out := body(t, app, "/")
	assert.Equal(t, fiber.StatusOK, status)

	pg := out["meta"].(map[string]any)["paginator"].(map[string]any)
	assert.Equal(t, float64(21), pg["total"])
	assert.Equal(t, float64(2), pg["page"])
	assert.Equal(t, float64(10), pg["per_page"])
	assert.Equal(t, float64(3), pg["total_pages"])
}

func TestErrorEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Error(c, fiber.StatusNotFound, "record not found")
	})

	status, out := body(t, app, "/")
	assert.Equal(t, fiber.StatusNotFound, status)

	assert.Nil(t, out["data"])
	meta := out["meta"].(map[string]any)
	assert.Equal(t, "error", meta["status"])
	assert.Equal(t, float64(404), meta["code"])
	assert.Equal(t, "record not found", meta["message"])
}

func TestErrorDefaultsMessageAndCode(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Error(c, 200, "")
	})

	status, out := body(t, app, "/")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	meta := out["meta"].(map[string]any)
	assert.Equal(t, "Internal Server Error", meta["message"])
}
