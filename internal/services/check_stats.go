package services

import (
	"time"

	"github.com/elarahealth/elara/internal/models"
)

type CheckSummary struct {
	Normal   int `json:"normal"`
	Abnormal int `json:"abnormal"`
	Total    int `json:"total"`
}

type CheckStats struct {
	TotalChecks    int       `json:"total_checks"`
	AbnormalChecks int       `json:"abnormal_checks"`
	LastCheckAt    time.Time `json:"last_check_at"`
	NextExamDate   time.Time `json:"next_exam_date"`
	DaysUntilExam  int       `json:"days_until_exam"`
}

// SummarizeChecklist counts per-record outcomes for the history view.
func SummarizeChecklist(items []models.ChecklistItem) CheckSummary {
	summary := CheckSummary{Total: len(items)}
	for _, item := range items {
		switch item.Result {
		case models.ResultNormal:
			summary.Normal++
		case models.ResultAbnormal:
			summary.Abnormal++
		}
	}
	return summary
}

// BuildCheckStats aggregates a user's exam history with the cycle-derived next
// exam date for the dashboard.
func BuildCheckStats(records []models.BseRecord, profile *models.User, now time.Time) CheckStats {
	stats := CheckStats{TotalChecks: len(records)}

	for _, record := range records {
		if record.Timestamp.After(stats.LastCheckAt) {
			stats.LastCheckAt = record.Timestamp
		}
		if SummarizeChecklist(record.Items).Abnormal > 0 {
			stats.AbnormalChecks++
		}
	}

	if profile != nil && profile.LastPeriodEnd != nil {
		stats.NextExamDate = NextExamDate(
			*profile.LastPeriodEnd,
			profile.ReminderOffsetOrDefault(),
			profile.CycleLengthOrDefault(),
			now,
		)
		stats.DaysUntilExam = int(stats.NextExamDate.Sub(dateOnlyUTC(now)).Hours() / 24)
	}

	return stats
}

func dateOnlyUTC(value time.Time) time.Time {
	year, month, day := value.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
