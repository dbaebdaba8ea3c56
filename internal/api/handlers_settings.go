package api

import (
	"errors"
	"time"

	"github.com/elarahealth/elara/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{
		"email":                user.Email,
		"display_name":         user.DisplayName,
		"last_period_end":      formatDatePointer(user.LastPeriodEnd),
		"avg_cycle_days":       user.AvgCycleDays,
		"reminder_offset_days": user.ReminderOffsetDays,
		"reminder_enabled":     user.ReminderEnabled,
		"timezone":             user.TimezoneOrDefault(),
	})
}

// UpdateProfileSettings saves cycle settings and immediately re-schedules the
// user's reminder so the pending instance always reflects the latest profile.
func (handler *Handler) UpdateProfileSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := profileSettingsPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid settings input")
	}

	now := time.Now().UTC()
	update, err := services.ValidateProfileSettings(services.ProfileSettingsInput{
		DisplayName:        payload.DisplayName,
		LastPeriodEndRaw:   payload.LastPeriodEnd,
		AvgCycleDays:       payload.AvgCycleDays,
		ReminderOffsetDays: payload.ReminderOffsetDays,
		ReminderEnabled:    payload.ReminderEnabled,
		Timezone:           payload.Timezone,
	}, now)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, settingsErrorMessage(err))
	}

	if err := handler.repos.Users.UpdateByID(user.ID, services.SettingsUpdateColumns(update)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save settings")
	}

	result, err := handler.reminders.ScheduleFor(user.ID, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to schedule reminder")
	}

	response := fiber.Map{
		"ok":              true,
		"reminder_status": result.Status,
	}
	if result.Status == services.ScheduleStatusScheduled {
		response["scheduled_at"] = result.ScheduledAt.UTC().Format(time.RFC3339)
	}
	return c.JSON(response)
}

func settingsErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrSettingsCycleLengthOutOfRange):
		return "cycle length out of range"
	case errors.Is(err, services.ErrSettingsOffsetOutOfRange):
		return "reminder offset out of range"
	case errors.Is(err, services.ErrSettingsLastPeriodEndInvalid):
		return "invalid last period end date"
	case errors.Is(err, services.ErrSettingsTimezoneInvalid):
		return "invalid timezone"
	default:
		return "invalid settings input"
	}
}

func formatDatePointer(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format("2006-01-02")
}
