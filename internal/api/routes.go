package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("", handler.GetSettings)
	settings.Post("/profile", handler.UpdateProfileSettings)

	checks := api.Group("/checks", handler.AuthRequired)
	checks.Get("", handler.ListChecks)
	checks.Post("", handler.CreateCheck)
	checks.Get("/catalog", handler.GetChecklistCatalog)

	api.Get("/dashboard", handler.AuthRequired, handler.GetDashboard)

	reminders := api.Group("/reminders")
	reminders.Post("/schedule", handler.AuthRequired, handler.ScheduleReminder)
	reminders.Post("/snooze", handler.AuthRequired, handler.SnoozeReminder)
	reminders.Get("/pending", handler.AuthRequired, handler.GetPendingReminder)
	reminders.Post("/dispatch", handler.DispatchTokenRequired, handler.DispatchDueReminders)
}
