package models

import "time"

// ReminderInstance is one scheduled reminder occurrence. A user has at most
// one row with Fired=false at any time; the scheduler replaces pending rows
// instead of accumulating them.
type ReminderInstance struct {
	ID           uint      `gorm:"primaryKey"`
	PublicID     string    `gorm:"uniqueIndex;not null"`
	UserID       uint      `gorm:"not null;index"`
	ScheduledAt  time.Time `gorm:"not null;index"`
	Fired        bool      `gorm:"not null;default:false;index"`
	SnoozedUntil *time.Time
	CreatedAt    time.Time `gorm:"not null"`
}

// Snoozed reports whether the instance is deferred past the given instant.
func (instance *ReminderInstance) Snoozed(now time.Time) bool {
	return instance.SnoozedUntil != nil && instance.SnoozedUntil.After(now)
}
