package api

import (
	"github.com/elarahealth/elara/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	authCookieName      = "elara_auth"
	contextUserKey      = "current_user"
	dispatchTokenHeader = "X-Dispatch-Token"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
