package report

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeApp() (*fiber.App, *time.Time, *time.Time) {
	var from, to time.Time
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		f, t, err := parseRange(c)
		if err != nil {
			return err
		}
		from, to = f, t
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &from, &to
}

func TestParseRangeExplicit(t *testing.T) {
	app, from, to := rangeApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/?from=2026-01-01&to=2026-01-31", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, 2026, from.Year())
	assert.Equal(t, time.January, from.Month())
	assert.Equal(t, 1, from.Day())
	// end of the last day is included
	assert.Equal(t, 31, to.Day())
	assert.Equal(t, 23, to.Hour())
}

func TestParseRangeRejectsBadInput(t *testing.T) {
	app, _, _ := rangeApp()

	for _, target := range []string{
		"/?from=01-01-2026",
		"/?to=notadate",
		"/?from=2026-02-01&to=2026-01-01",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, target)
	}
}

func TestParseRangeDefaultsToCurrentMonth(t *testing.T) {
	app, from, to := rangeApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	now := time.Now()
	assert.Equal(t, now.Month(), from.Month())
	assert.Equal(t, 1, from.Day())
	assert.WithinDuration(t, now, *to, time.Minute)
}
