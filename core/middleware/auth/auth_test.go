package auth_test

import (
	"net/http/httptest"
	"testing"

	"bunny-manager/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: key}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuth(t *testing.T) {
	t.Run("ValidKey", func(t *testing.T) {
		app := setupApp("secret")
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(auth.HeaderName, "secret")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("WrongKey", func(t *testing.T) {
		app := setupApp("secret")
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(auth.HeaderName, "nope")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("MissingKey", func(t *testing.T) {
		app := setupApp("secret")
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("DisabledWhenEmpty", func(t *testing.T) {
		app := setupApp("")
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}
