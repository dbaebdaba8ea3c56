package api

import (
	"errors"
	"strings"
	"time"

	"github.com/elarahealth/elara/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ScheduleReminder recomputes and replaces the authenticated user's pending
// reminder. Invoked by the profile-edit flow and available directly.
func (handler *Handler) ScheduleReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	result, err := handler.reminders.ScheduleFor(user.ID, time.Now().UTC())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to schedule reminder")
	}

	response := fiber.Map{"status": result.Status}
	if result.Status == services.ScheduleStatusScheduled {
		response["scheduled_at"] = result.ScheduledAt.UTC().Format(time.RFC3339)
	}
	return c.JSON(response)
}

// DispatchDueReminders runs one dispatch pass. Wired to the periodic trigger;
// also callable manually with the dispatch token.
func (handler *Handler) DispatchDueReminders(c *fiber.Ctx) error {
	summary, err := handler.reminders.RunDispatchPass(c.Context(), time.Now().UTC())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to query due reminders")
	}
	return c.JSON(summary)
}

func (handler *Handler) GetPendingReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	instance, found, err := handler.reminders.PendingFor(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load reminder")
	}
	if !found {
		return c.JSON(fiber.Map{"pending": false})
	}

	response := fiber.Map{
		"pending":      true,
		"id":           instance.PublicID,
		"scheduled_at": instance.ScheduledAt.UTC().Format(time.RFC3339),
	}
	if instance.SnoozedUntil != nil {
		response["snoozed_until"] = instance.SnoozedUntil.UTC().Format(time.RFC3339)
	}
	return c.JSON(response)
}

// SnoozeReminder defers the pending instance, either by a number of hours or
// to an explicit RFC3339 instant.
func (handler *Handler) SnoozeReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := snoozePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid snooze input")
	}

	now := time.Now().UTC()
	until, err := resolveSnoozeUntil(payload, now)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid snooze input")
	}

	instance, err := handler.reminders.Snooze(user.ID, until)
	if err != nil {
		if errors.Is(err, services.ErrSnoozeTargetMissing) {
			return apiError(c, fiber.StatusNotFound, "no pending reminder")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to snooze reminder")
	}

	return c.JSON(fiber.Map{
		"ok":            true,
		"id":            instance.PublicID,
		"snoozed_until": until.UTC().Format(time.RFC3339),
	})
}

func resolveSnoozeUntil(payload snoozePayload, now time.Time) (time.Time, error) {
	raw := strings.TrimSpace(payload.Until)
	if raw != "" {
		until, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, err
		}
		if !until.After(now) {
			return time.Time{}, errors.New("snooze must be in the future")
		}
		return until.UTC(), nil
	}

	if payload.Hours <= 0 || payload.Hours > 24*7 {
		return time.Time{}, errors.New("snooze hours out of range")
	}
	return now.Add(time.Duration(payload.Hours) * time.Hour), nil
}
