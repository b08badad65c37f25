// Package remoteaddr exposes the network address of the caller of a request.
package remoteaddr

import (
	"github.com/gofiber/fiber/v2"
)

// LocalsKey is the fiber.Locals key the Middleware stores the address under.
const LocalsKey = "remoteAddr"

// Context is a request context knowing the address of its peer.
// *fiber.Ctx implements it.
type Context interface {
	IP() string
}

// Get returns the caller address of c verbatim.
func Get(c Context) string {
	return c.IP()
}

// Middleware stores the caller address in the request locals.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalsKey, Get(c))

		return c.Next()
	}
}

// FromLocals returns the address stored by Middleware,
// falling back to Get if the middleware did not run.
func FromLocals(c *fiber.Ctx) string {
	if addr, ok := c.Locals(LocalsKey).(string); ok {
		return addr
	}

	return Get(c)
}
