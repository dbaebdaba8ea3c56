package services

import (
	"errors"
	"strings"
	"time"

	"github.com/elarahealth/elara/internal/models"
)

var (
	ErrSettingsCycleLengthOutOfRange = errors.New("settings cycle length out of range")
	ErrSettingsOffsetOutOfRange      = errors.New("settings reminder offset out of range")
	ErrSettingsLastPeriodEndInvalid  = errors.New("settings last period end invalid")
	ErrSettingsTimezoneInvalid       = errors.New("settings timezone invalid")
)

type ProfileSettingsInput struct {
	DisplayName        string
	LastPeriodEndRaw   string
	AvgCycleDays       int
	ReminderOffsetDays int
	ReminderEnabled    bool
	Timezone           string
}

type ProfileSettingsUpdate struct {
	DisplayName        string
	LastPeriodEnd      *time.Time
	AvgCycleDays       int
	ReminderOffsetDays int
	ReminderEnabled    bool
	Timezone           string
}

// ValidateProfileSettings normalizes and bounds-checks a settings submission.
// The last period end is a naive calendar date and may not be in the future.
func ValidateProfileSettings(input ProfileSettingsInput, now time.Time) (ProfileSettingsUpdate, error) {
	if input.AvgCycleDays < models.MinCycleLengthDays || input.AvgCycleDays > models.MaxCycleLengthDays {
		return ProfileSettingsUpdate{}, ErrSettingsCycleLengthOutOfRange
	}
	if input.ReminderOffsetDays < 1 || input.ReminderOffsetDays > input.AvgCycleDays {
		return ProfileSettingsUpdate{}, ErrSettingsOffsetOutOfRange
	}

	timezone := strings.TrimSpace(input.Timezone)
	if timezone == "" {
		timezone = models.DefaultTimezone
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return ProfileSettingsUpdate{}, ErrSettingsTimezoneInvalid
	}

	update := ProfileSettingsUpdate{
		DisplayName:        strings.TrimSpace(input.DisplayName),
		AvgCycleDays:       input.AvgCycleDays,
		ReminderOffsetDays: input.ReminderOffsetDays,
		ReminderEnabled:    input.ReminderEnabled,
		Timezone:           timezone,
	}

	rawDate := strings.TrimSpace(input.LastPeriodEndRaw)
	if rawDate == "" {
		return update, nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", rawDate, time.UTC)
	if err != nil {
		return ProfileSettingsUpdate{}, ErrSettingsLastPeriodEndInvalid
	}
	if parsed.After(dateOnlyUTC(now)) {
		return ProfileSettingsUpdate{}, ErrSettingsLastPeriodEndInvalid
	}

	update.LastPeriodEnd = &parsed
	return update, nil
}

// SettingsUpdateColumns maps a validated update onto the user column set used
// by the repository.
func SettingsUpdateColumns(update ProfileSettingsUpdate) map[string]any {
	return map[string]any{
		"display_name":         update.DisplayName,
		"last_period_end":      update.LastPeriodEnd,
		"avg_cycle_days":       update.AvgCycleDays,
		"reminder_offset_days": update.ReminderOffsetDays,
		"reminder_enabled":     update.ReminderEnabled,
		"timezone":             update.Timezone,
	}
}
