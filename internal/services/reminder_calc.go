package services

import (
	"time"

	"github.com/elarahealth/elara/internal/models"
)

// ReminderHourLocal is the wall-clock hour reminders fire at in the user's
// timezone.
const ReminderHourLocal = 9

// LoadLocationOrUTC resolves an IANA timezone identifier, falling back to UTC
// for empty or unknown names instead of failing the computation.
func LoadLocationOrUTC(name string) *time.Location {
	trimmed := name
	if trimmed == "" {
		return time.UTC
	}
	location, err := time.LoadLocation(trimmed)
	if err != nil {
		return time.UTC
	}
	return location
}

// ComputeNextReminder returns the next reminder instant strictly after now.
//
// The base instant is lastPeriodEnd + offsetDays at midnight UTC. If that is
// not in the future it is advanced by whole cycle lengths in one step, then
// the resulting calendar date is converted to 09:00 local time in the given
// timezone. When the converted instant has already passed (possible near a
// cycle boundary combined with a large timezone offset or a DST jump), the
// reference time is advanced a day at a time, bounded by one cycle length.
// The result is returned in UTC.
func ComputeNextReminder(lastPeriodEnd time.Time, offsetDays int, cycleDays int, now time.Time, location *time.Location) time.Time {
	if cycleDays <= 0 {
		cycleDays = models.DefaultCycleLengthDays
	}
	if location == nil {
		location = time.UTC
	}

	base := baseExamInstant(lastPeriodEnd, offsetDays)
	cycle := time.Duration(cycleDays) * 24 * time.Hour

	reference := now
	for attempt := 0; attempt <= cycleDays; attempt++ {
		candidate := base
		if !candidate.After(reference) {
			steps := reference.Sub(candidate)/cycle + 1
			candidate = candidate.Add(time.Duration(steps) * cycle)
		}

		year, month, day := candidate.Date()
		at := time.Date(year, month, day, ReminderHourLocal, 0, 0, 0, location)
		if at.After(now) {
			return at.UTC()
		}

		reference = reference.AddDate(0, 0, 1)
	}

	// Not reachable for plausible cycle lengths; keep forward progress anyway.
	return NextExamDate(lastPeriodEnd, offsetDays, cycleDays, now.Add(cycle)).Add(ReminderHourLocal * time.Hour)
}

// NextExamDate returns the calendar date (midnight UTC) of the next optimal
// exam day, without the local-time conversion. Used by the dashboard.
func NextExamDate(lastPeriodEnd time.Time, offsetDays int, cycleDays int, now time.Time) time.Time {
	if cycleDays <= 0 {
		cycleDays = models.DefaultCycleLengthDays
	}

	base := baseExamInstant(lastPeriodEnd, offsetDays)
	cycle := time.Duration(cycleDays) * 24 * time.Hour
	if !base.After(now) {
		steps := now.Sub(base)/cycle + 1
		base = base.Add(time.Duration(steps) * cycle)
	}
	return base
}

func baseExamInstant(lastPeriodEnd time.Time, offsetDays int) time.Time {
	year, month, day := lastPeriodEnd.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offsetDays)
}
