package auth

import "github.com/gofiber/fiber/v2"

// Config holds settings for the API key middleware.
type Config struct {
	// ApiKey is the expected key. An empty key disables the check.
	ApiKey string
}

// HeaderName is the request header carrying the API key.
const HeaderName = "X-Api-Key"

// New returns a middleware that rejects requests without the configured API key.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if c.Get(HeaderName) != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid api key",
			})
		}
		return c.Next()
	}
}
