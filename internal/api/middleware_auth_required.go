package api

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

// DispatchTokenRequired guards the dispatch entrypoint invoked by the
// periodic trigger; the token lives outside user sessions.
func (handler *Handler) DispatchTokenRequired(c *fiber.Ctx) error {
	provided := strings.TrimSpace(c.Get(dispatchTokenHeader))
	if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(handler.dispatchToken)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	return c.Next()
}
