package api

import (
	"time"

	"github.com/elarahealth/elara/internal/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := validatePasswordStrength(credentials.Password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "weak password")
	}

	exists, err := handler.repos.Users.ExistsByNormalizedEmail(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check email")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Email:              credentials.Email,
		PasswordHash:       string(passwordHash),
		DisplayName:        credentials.DisplayName,
		AvgCycleDays:       models.DefaultCycleLengthDays,
		ReminderOffsetDays: models.DefaultReminderOffsetDays,
		ReminderEnabled:    true,
		Timezone:           models.DefaultTimezone,
		CreatedAt:          time.Now().UTC(),
	}
	if err := handler.repos.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":   true,
		"user": userPayload(&user),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.repos.Users.FindByNormalizedEmail(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"ok":   true,
		"user": userPayload(&user),
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func userPayload(user *models.User) fiber.Map {
	return fiber.Map{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
	}
}
