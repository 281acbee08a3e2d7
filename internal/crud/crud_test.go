package crud

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		name    string
		total   int64
		perPage int
		want    int
	}{
		{"empty", 0, 10, 0},
		{"exact fit", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single row", 1, 10, 1},
		{"unlimited with rows", 57, 0, 1},
		{"unlimited empty", 0, 0, 0},
		{"per page one", 3, 1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TotalPages(tc.total, tc.perPage))
		})
	}
}

func newParamsApp() *fiber.App {
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		p, err := ParseListParams(c)
		if err != nil {
			return err
		}
		return c.JSON(p)
	})
	return app
}

func TestParseListParamsDefaults(t *testing.T) {
	app := newParamsApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/items", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var p ListParams
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Empty(t, p.Search)
}

func TestParseListParamsExplicit(t *testing.T) {
	app := newParamsApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/items?page=3&per_page=25&search=%20kopi%20", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var p ListParams
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, "kopi", p.Search)
}

func TestParseListParamsUnlimited(t *testing.T) {
	app := newParamsApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/items?per_page=0", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var p ListParams
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, 0, p.PerPage)
}

func TestParseListParamsPageBelowOneClamps(t *testing.T) {
	app := newParamsApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/items?page=0", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var p ListParams
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, 1, p.Page)
}

func TestParseListParamsRejectsBadInput(t *testing.T) {
	app := newParamsApp()

	for _, target := range []string{
		"/items?page=abc",
		"/items?per_page=abc",
		"/items?per_page=-1",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, target)
	}
}
