package models

import "time"

const (
	DefaultCycleLengthDays    = 28
	DefaultReminderOffsetDays = 7
	MinCycleLengthDays        = 21
	MaxCycleLengthDays        = 45
	DefaultTimezone           = "UTC"
)

type User struct {
	ID                 uint   `gorm:"primaryKey"`
	Email              string `gorm:"uniqueIndex;not null"`
	PasswordHash       string `gorm:"not null"`
	DisplayName        string
	LastPeriodEnd      *time.Time `gorm:"type:date"`
	AvgCycleDays       int        `gorm:"not null;default:28"`
	ReminderOffsetDays int        `gorm:"not null;default:7"`
	ReminderEnabled    bool       `gorm:"not null;default:true"`
	Timezone           string     `gorm:"not null;default:UTC"`
	CreatedAt          time.Time  `gorm:"not null"`
}

// CycleLengthOrDefault returns the stored cycle length clamped into the
// plausible human range, substituting the default for unset values.
func (user *User) CycleLengthOrDefault() int {
	if user.AvgCycleDays <= 0 {
		return DefaultCycleLengthDays
	}
	if user.AvgCycleDays < MinCycleLengthDays {
		return MinCycleLengthDays
	}
	if user.AvgCycleDays > MaxCycleLengthDays {
		return MaxCycleLengthDays
	}
	return user.AvgCycleDays
}

func (user *User) ReminderOffsetOrDefault() int {
	if user.ReminderOffsetDays <= 0 {
		return DefaultReminderOffsetDays
	}
	return user.ReminderOffsetDays
}

func (user *User) TimezoneOrDefault() string {
	if user.Timezone == "" {
		return DefaultTimezone
	}
	return user.Timezone
}
