package db

import (
	"errors"
	"testing"
	"time"

	"github.com/elarahealth/elara/internal/models"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, repo *UserRepository, email string) models.User {
	t.Helper()
	user := models.User{
		Email:              email,
		PasswordHash:       "hash",
		DisplayName:        "Test",
		AvgCycleDays:       models.DefaultCycleLengthDays,
		ReminderOffsetDays: models.DefaultReminderOffsetDays,
		ReminderEnabled:    true,
		Timezone:           models.DefaultTimezone,
		CreatedAt:          time.Now().UTC(),
	}
	if err := repo.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestUserRepositoryNormalizedEmailLookup(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)

	created := createTestUser(t, repo, "Ada@Example.com")

	found, err := repo.FindByNormalizedEmail("ada@example.com")
	if err != nil {
		t.Fatalf("find by normalized email: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected user %d, got %d", created.ID, found.ID)
	}

	exists, err := repo.ExistsByNormalizedEmail("ada@example.com")
	if err != nil {
		t.Fatalf("exists by normalized email: %v", err)
	}
	if !exists {
		t.Fatal("expected existing email to be reported")
	}

	exists, err = repo.ExistsByNormalizedEmail("other@example.com")
	if err != nil {
		t.Fatalf("exists by normalized email: %v", err)
	}
	if exists {
		t.Fatal("expected unknown email to be absent")
	}
}

func TestUserRepositoryFindByIDMissing(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)

	_, err := repo.FindByID(404)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestUserRepositoryUpdateAndLoadReminderProfile(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)

	created := createTestUser(t, repo, "ada@example.com")

	lastPeriodEnd := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	err := repo.UpdateByID(created.ID, map[string]any{
		"last_period_end":      &lastPeriodEnd,
		"avg_cycle_days":       30,
		"reminder_offset_days": 10,
		"reminder_enabled":     false,
		"timezone":             "Europe/Berlin",
	})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}

	profile, err := repo.LoadReminderProfileByID(created.ID)
	if err != nil {
		t.Fatalf("load reminder profile: %v", err)
	}
	if profile.Email != "ada@example.com" {
		t.Fatalf("unexpected email %q", profile.Email)
	}
	if profile.LastPeriodEnd == nil || profile.LastPeriodEnd.Format("2006-01-02") != "2024-01-01" {
		t.Fatalf("unexpected last period end %v", profile.LastPeriodEnd)
	}
	if profile.AvgCycleDays != 30 || profile.ReminderOffsetDays != 10 {
		t.Fatalf("unexpected cycle settings %d/%d", profile.AvgCycleDays, profile.ReminderOffsetDays)
	}
	if profile.ReminderEnabled {
		t.Fatal("expected reminders disabled")
	}
	if profile.Timezone != "Europe/Berlin" {
		t.Fatalf("unexpected timezone %q", profile.Timezone)
	}
	if profile.PasswordHash != "" {
		t.Fatal("reminder profile must not carry the password hash")
	}
}
