package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/elarahealth/elara/internal/api"
	"github.com/elarahealth/elara/internal/db"
	"github.com/elarahealth/elara/internal/security"
	"github.com/elarahealth/elara/internal/services"
)

const dispatchTokenAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "elara.db"))
	port := getEnv("PORT", "8080")
	appBaseURL := getEnv("APP_BASE_URL", "http://localhost:"+port)
	resendAPIKey := os.Getenv("RESEND_API_KEY")
	mailFrom := getEnv("MAIL_FROM", "Elara <onboarding@resend.dev>")
	dispatchSpec := getEnv("DISPATCH_CRON", "*/5 * * * *")

	dispatchToken := os.Getenv("DISPATCH_TOKEN")
	if dispatchToken == "" {
		generated, err := security.RandomString(32, dispatchTokenAlphabet)
		if err != nil {
			log.Fatalf("dispatch token generation failed: %v", err)
		}
		dispatchToken = generated
		log.Printf("DISPATCH_TOKEN not set, generated one for this run: %s", dispatchToken)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repos := db.NewRepositories(database)

	mailer := services.NewResendMailer(resendAPIKey, mailFrom)
	if !mailer.Configured() {
		log.Printf("RESEND_API_KEY not set, reminder delivery will fail until configured")
	}

	reminderService := services.NewReminderService(repos.Reminders, repos.Users, mailer, appBaseURL)
	checkService := services.NewCheckService(repos.Records)

	handler, err := api.NewHandler(repos, reminderService, checkService, api.Config{
		Secret:        secretKey,
		CookieSecure:  getEnv("COOKIE_SECURE", "") == "1",
		DispatchToken: dispatchToken,
	})
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Elara",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	dispatcher := cron.New()
	if _, err := dispatcher.AddFunc(dispatchSpec, func() {
		summary, err := reminderService.RunDispatchPass(lifecycleCtx, time.Now().UTC())
		if err != nil {
			log.Printf("dispatch pass failed: %v", err)
			return
		}
		if summary.Due > 0 {
			log.Printf("dispatch pass: due=%d sent=%d skipped=%d failed=%d",
				summary.Due, summary.Sent, summary.Skipped, summary.Failed)
		}
	}); err != nil {
		log.Fatalf("dispatch cron setup failed: %v", err)
	}
	dispatcher.Start()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		<-dispatcher.Stop().Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Elara listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
