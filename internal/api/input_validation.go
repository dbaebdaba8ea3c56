package api

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var passwordLengthRegex = regexp.MustCompile(`^.{8,}$`)
var passwordUpperRegex = regexp.MustCompile(`\p{Lu}`)
var passwordLowerRegex = regexp.MustCompile(`\p{Ll}`)
var passwordDigitRegex = regexp.MustCompile(`\d`)

type credentialsInput struct {
	Email       string `json:"email" form:"email"`
	Password    string `json:"password" form:"password"`
	DisplayName string `json:"display_name" form:"display_name"`
}

type profileSettingsPayload struct {
	DisplayName        string `json:"display_name" form:"display_name"`
	LastPeriodEnd      string `json:"last_period_end" form:"last_period_end"`
	AvgCycleDays       int    `json:"avg_cycle_days" form:"avg_cycle_days"`
	ReminderOffsetDays int    `json:"reminder_offset_days" form:"reminder_offset_days"`
	ReminderEnabled    bool   `json:"reminder_enabled" form:"reminder_enabled"`
	Timezone           string `json:"timezone" form:"timezone"`
}

type snoozePayload struct {
	Hours int    `json:"hours" form:"hours"`
	Until string `json:"until" form:"until"`
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	credentials.Email = strings.ToLower(strings.TrimSpace(credentials.Email))
	credentials.Password = strings.TrimSpace(credentials.Password)
	credentials.DisplayName = strings.TrimSpace(credentials.DisplayName)

	if credentials.Email == "" || credentials.Password == "" {
		return credentialsInput{}, errors.New("missing credentials")
	}
	if _, err := mail.ParseAddress(credentials.Email); err != nil {
		return credentialsInput{}, errors.New("invalid email")
	}

	return credentials, nil
}

func validatePasswordStrength(password string) error {
	if !passwordLengthRegex.MatchString(password) {
		return errors.New("password too short")
	}

	if passwordUpperRegex.MatchString(password) &&
		passwordLowerRegex.MatchString(password) &&
		passwordDigitRegex.MatchString(password) {
		return nil
	}
	return errors.New("weak password")
}
