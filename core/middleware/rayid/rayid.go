package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName carries the request id on requests and responses.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber locals key holding the request id.
	LocalsKey = "ray_id"
)

// New returns a middleware assigning a RayID to every request. An id sent by
// the caller is kept, otherwise a random UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}

// FromCtx returns the RayID of the current request, or "" outside the middleware.
func FromCtx(c *fiber.Ctx) string {
	rid, _ := c.Locals(LocalsKey).(string)
	return rid
}
