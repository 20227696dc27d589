package cors

import (
	"github.com/gofiber/fiber/v2"
)

const (
	// Any allows every origin.
	Any = "*"
	// Secure echoes the caller's Origin header back.
	Secure = "__secure__"
)

// New returns a middleware setting Access-Control-Allow-Origin. mode is Any,
// Secure or a literal origin; an empty mode disables the header.
func New(mode string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch mode {
		case "":
		case Secure:
			c.Vary(fiber.HeaderOrigin)
			if origin := c.Get(fiber.HeaderOrigin); origin != "" {
				c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
			}
		default:
			c.Set(fiber.HeaderAccessControlAllowOrigin, mode)
		}

		if c.Method() == fiber.MethodOptions && mode != "" {
			c.Set(fiber.HeaderAccessControlAllowMethods, "GET,POST,OPTIONS")
			c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}
