package api

import (
	"errors"
	"time"

	"github.com/elarahealth/elara/internal/models"
	"github.com/elarahealth/elara/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetChecklistCatalog(c *fiber.Ctx) error {
	catalog := models.DefaultChecklistCatalog()
	items := make([]fiber.Map, 0, len(catalog))
	for _, item := range catalog {
		items = append(items, fiber.Map{
			"key":         item.Key,
			"label":       item.Label,
			"assessed_by": item.AssessedBy,
			"description": item.Description,
		})
	}
	return c.JSON(fiber.Map{"items": items})
}

func (handler *Handler) CreateCheck(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.CheckInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid check input")
	}

	record, err := handler.checks.RecordCheck(user.ID, input, time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrCheckUnknownItem) || errors.Is(err, services.ErrCheckInvalidResult) {
			return apiError(c, fiber.StatusBadRequest, "invalid check input")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save check")
	}

	return c.Status(fiber.StatusCreated).JSON(checkRecordPayload(&record))
}

func (handler *Handler) ListChecks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	records, err := handler.checks.History(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load history")
	}

	payload := make([]fiber.Map, 0, len(records))
	for index := range records {
		payload = append(payload, checkRecordPayload(&records[index]))
	}
	return c.JSON(fiber.Map{"records": payload})
}

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	records, err := handler.checks.History(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load history")
	}

	now := time.Now().UTC()
	stats := services.BuildCheckStats(records, user, now)

	response := fiber.Map{
		"display_name":     user.DisplayName,
		"reminder_enabled": user.ReminderEnabled,
		"total_checks":     stats.TotalChecks,
		"abnormal_checks":  stats.AbnormalChecks,
	}
	if !stats.LastCheckAt.IsZero() {
		response["last_check_at"] = stats.LastCheckAt.UTC().Format(time.RFC3339)
	}
	if !stats.NextExamDate.IsZero() {
		response["next_exam_date"] = stats.NextExamDate.Format("2006-01-02")
		response["days_until_exam"] = stats.DaysUntilExam
	}
	return c.JSON(response)
}

func checkRecordPayload(record *models.BseRecord) fiber.Map {
	summary := services.SummarizeChecklist(record.Items)

	items := make([]fiber.Map, 0, len(record.Items))
	for _, item := range record.Items {
		items = append(items, fiber.Map{
			"item_key":    item.ItemKey,
			"assessed_by": item.AssessedBy,
			"result":      item.Result,
			"note":        item.Note,
		})
	}

	return fiber.Map{
		"id":        record.PublicID,
		"timestamp": record.Timestamp.UTC().Format(time.RFC3339),
		"notes":     record.Notes,
		"items":     items,
		"summary": fiber.Map{
			"normal":   summary.Normal,
			"abnormal": summary.Abnormal,
			"total":    summary.Total,
		},
	}
}
