package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/elarahealth/elara/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReminderProfileLoadFailed = errors.New("load reminder profile failed")
	ErrReminderReplaceFailed     = errors.New("replace pending reminder failed")
	ErrReminderDisableFailed     = errors.New("remove pending reminder failed")
	ErrSnoozeTargetMissing       = errors.New("no pending reminder to snooze")
	ErrSnoozeUpdateFailed        = errors.New("update snooze failed")
)

const (
	ScheduleStatusScheduled   = "scheduled"
	ScheduleStatusDisabled    = "disabled"
	ScheduleStatusNoCycleData = "no cycle data"
)

type ScheduleResult struct {
	Status      string
	ScheduledAt time.Time
}

type ReminderStore interface {
	ReplacePending(userID uint, instance *models.ReminderInstance) error
	DeletePendingByUser(userID uint) error
	FindPendingByUser(userID uint) (models.ReminderInstance, bool, error)
	ListDue(now time.Time) ([]models.ReminderInstance, error)
	MarkFired(instanceID uint) (bool, error)
	UpdateSnoozedUntil(instanceID uint, until time.Time) error
}

type ReminderProfileStore interface {
	LoadReminderProfileByID(userID uint) (models.User, error)
}

type ReminderService struct {
	reminders  ReminderStore
	users      ReminderProfileStore
	mailer     Mailer
	appBaseURL string
}

func NewReminderService(reminders ReminderStore, users ReminderProfileStore, mailer Mailer, appBaseURL string) *ReminderService {
	return &ReminderService{
		reminders:  reminders,
		users:      users,
		mailer:     mailer,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

// ScheduleFor computes the user's next reminder instant and replaces any
// pending instance with it. Disabled reminders also remove the pending
// instance, so a user who turns reminders off stops receiving them
// immediately.
func (service *ReminderService) ScheduleFor(userID uint, now time.Time) (ScheduleResult, error) {
	profile, err := service.users.LoadReminderProfileByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScheduleResult{}, err
		}
		return ScheduleResult{}, fmt.Errorf("%w: %v", ErrReminderProfileLoadFailed, err)
	}

	return service.scheduleForProfile(&profile, now)
}

func (service *ReminderService) scheduleForProfile(profile *models.User, now time.Time) (ScheduleResult, error) {
	if !profile.ReminderEnabled {
		if err := service.reminders.DeletePendingByUser(profile.ID); err != nil {
			return ScheduleResult{}, fmt.Errorf("%w: %v", ErrReminderDisableFailed, err)
		}
		return ScheduleResult{Status: ScheduleStatusDisabled}, nil
	}
	if profile.LastPeriodEnd == nil {
		return ScheduleResult{Status: ScheduleStatusNoCycleData}, nil
	}

	scheduledAt := ComputeNextReminder(
		*profile.LastPeriodEnd,
		profile.ReminderOffsetOrDefault(),
		profile.CycleLengthOrDefault(),
		now,
		LoadLocationOrUTC(profile.TimezoneOrDefault()),
	)

	instance := models.ReminderInstance{
		PublicID:    uuid.NewString(),
		UserID:      profile.ID,
		ScheduledAt: scheduledAt,
		Fired:       false,
		CreatedAt:   now,
	}
	if err := service.reminders.ReplacePending(profile.ID, &instance); err != nil {
		return ScheduleResult{}, fmt.Errorf("%w: %v", ErrReminderReplaceFailed, err)
	}

	return ScheduleResult{Status: ScheduleStatusScheduled, ScheduledAt: scheduledAt}, nil
}

// Snooze defers the user's pending instance until the given instant. The
// instance stays unfired and is reconsidered once the snooze elapses.
func (service *ReminderService) Snooze(userID uint, until time.Time) (models.ReminderInstance, error) {
	instance, found, err := service.reminders.FindPendingByUser(userID)
	if err != nil {
		return models.ReminderInstance{}, err
	}
	if !found {
		return models.ReminderInstance{}, ErrSnoozeTargetMissing
	}
	if err := service.reminders.UpdateSnoozedUntil(instance.ID, until); err != nil {
		return models.ReminderInstance{}, fmt.Errorf("%w: %v", ErrSnoozeUpdateFailed, err)
	}
	instance.SnoozedUntil = &until
	return instance, nil
}

// PendingFor returns the user's pending instance, if any.
func (service *ReminderService) PendingFor(userID uint) (models.ReminderInstance, bool, error) {
	return service.reminders.FindPendingByUser(userID)
}
