package rayid_test

import (
	"net/http/httptest"
	"testing"

	"bunny-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen, _ = c.Locals("ray_id").(string)
		return c.SendString("ok")
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, resp.Header.Get(rayid.Header))
	})

	t.Run("Honored", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.Header, "upstream-id")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "upstream-id", seen)
		assert.Equal(t, "upstream-id", resp.Header.Get(rayid.Header))
	})
}
