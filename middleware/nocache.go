package middleware

import "github.com/gofiber/fiber/v2"

// NoCache disables client-side caching on every response; list views
// must always reflect the latest writes.
func NoCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}
