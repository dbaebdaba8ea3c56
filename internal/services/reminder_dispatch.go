package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/elarahealth/elara/internal/models"
)

var ErrDueQueryFailed = errors.New("query due reminders failed")

const (
	OutcomeSent    = "sent"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

type DispatchOutcome struct {
	InstanceID string `json:"instance_id"`
	UserID     uint   `json:"user_id"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
}

type DispatchSummary struct {
	Due      int               `json:"due"`
	Sent     int               `json:"sent"`
	Skipped  int               `json:"skipped"`
	Failed   int               `json:"failed"`
	Outcomes []DispatchOutcome `json:"outcomes"`
}

// RunDispatchPass scans for due, unfired reminders and sends each one through
// the mailer. Failures are isolated per instance; only an inability to load
// the due set fails the whole pass. Firing uses a guarded fired=false→true
// update, so an instance is never sent twice even when passes overlap.
func (service *ReminderService) RunDispatchPass(ctx context.Context, now time.Time) (DispatchSummary, error) {
	due, err := service.reminders.ListDue(now)
	if err != nil {
		return DispatchSummary{}, fmt.Errorf("%w: %v", ErrDueQueryFailed, err)
	}

	summary := DispatchSummary{Due: len(due), Outcomes: make([]DispatchOutcome, 0, len(due))}
	for index := range due {
		instance := &due[index]
		outcome := service.dispatchOne(ctx, instance, now)
		switch outcome.Status {
		case OutcomeSent:
			summary.Sent++
		case OutcomeFailed:
			summary.Failed++
		default:
			summary.Skipped++
		}
		summary.Outcomes = append(summary.Outcomes, outcome)
	}

	return summary, nil
}

func (service *ReminderService) dispatchOne(ctx context.Context, instance *models.ReminderInstance, now time.Time) DispatchOutcome {
	outcome := DispatchOutcome{InstanceID: instance.PublicID, UserID: instance.UserID}

	if instance.Snoozed(now) {
		outcome.Status = OutcomeSkipped
		outcome.Reason = "snoozed"
		return outcome
	}

	profile, err := service.users.LoadReminderProfileByID(instance.UserID)
	if err != nil {
		outcome.Status = OutcomeSkipped
		outcome.Reason = "profile not found"
		return outcome
	}
	if !profile.ReminderEnabled {
		outcome.Status = OutcomeSkipped
		outcome.Reason = "reminders disabled"
		return outcome
	}
	if profile.Email == "" {
		outcome.Status = OutcomeSkipped
		outcome.Reason = "no email address"
		return outcome
	}

	body := ReminderEmailHTML(service.appBaseURL)
	if err := service.mailer.Send(ctx, profile.Email, ReminderEmailSubject, body); err != nil {
		log.Printf("reminders: send to user %d failed: %v", instance.UserID, err)
		outcome.Status = OutcomeFailed
		outcome.Reason = "delivery failed"
		return outcome
	}

	fired, err := service.reminders.MarkFired(instance.ID)
	if err != nil {
		log.Printf("reminders: mark fired for instance %s failed: %v", instance.PublicID, err)
		outcome.Status = OutcomeFailed
		outcome.Reason = "mark fired failed"
		return outcome
	}
	if !fired {
		// Another pass won the guarded update and already sent this one.
		outcome.Status = OutcomeSkipped
		outcome.Reason = "already fired"
		return outcome
	}

	outcome.Status = OutcomeSent

	if profile.LastPeriodEnd == nil {
		return outcome
	}
	if _, err := service.scheduleForProfile(&profile, now); err != nil {
		log.Printf("reminders: reschedule for user %d failed: %v", instance.UserID, err)
		outcome.Reason = "reschedule failed"
	}

	return outcome
}
