package services

import (
	"errors"
	"testing"
	"time"

	"github.com/elarahealth/elara/internal/models"
)

type stubCheckStore struct {
	records   []models.BseRecord
	createErr error
	listErr   error
}

func (store *stubCheckStore) CreateWithItems(record *models.BseRecord, items []models.ChecklistItem) error {
	if store.createErr != nil {
		return store.createErr
	}
	record.ID = uint(len(store.records) + 1)
	saved := *record
	saved.Items = items
	store.records = append(store.records, saved)
	return nil
}

func (store *stubCheckStore) ListByUser(userID uint) ([]models.BseRecord, error) {
	if store.listErr != nil {
		return nil, store.listErr
	}
	var result []models.BseRecord
	for _, record := range store.records {
		if record.UserID == userID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (store *stubCheckStore) FindLatestByUser(userID uint) (models.BseRecord, bool, error) {
	records, err := store.ListByUser(userID)
	if err != nil || len(records) == 0 {
		return models.BseRecord{}, false, err
	}
	return records[len(records)-1], true, nil
}

func TestRecordCheckStoresValidatedItems(t *testing.T) {
	t.Parallel()

	store := &stubCheckStore{}
	service := NewCheckService(store)

	now := time.Date(2026, time.February, 15, 10, 0, 0, 0, time.UTC)
	record, err := service.RecordCheck(1, CheckInput{
		Notes: "  all fine  ",
		Items: []CheckItemInput{
			{Key: "lump_or_mass", Result: "normal"},
			{Key: "nipple_discharge", Result: "abnormal", Note: " left side "},
			{Key: "persistent_pain"},
		},
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.PublicID == "" {
		t.Fatal("record must carry a public id")
	}
	if record.Notes != "all fine" {
		t.Fatalf("expected trimmed notes, got %q", record.Notes)
	}
	if len(record.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(record.Items))
	}
	if record.Items[1].Note != "left side" {
		t.Fatalf("expected trimmed item note, got %q", record.Items[1].Note)
	}
	if record.Items[2].Result != models.ResultNotAssessed {
		t.Fatalf("empty result must default to %q, got %q", models.ResultNotAssessed, record.Items[2].Result)
	}
	if record.Items[0].AssessedBy == "" {
		t.Fatal("assessed-by must be filled from the catalog")
	}
	if len(store.records) != 1 {
		t.Fatalf("expected one stored record, got %d", len(store.records))
	}
}

func TestRecordCheckRejectsUnknownItem(t *testing.T) {
	t.Parallel()

	service := NewCheckService(&stubCheckStore{})
	_, err := service.RecordCheck(1, CheckInput{
		Items: []CheckItemInput{{Key: "third_nostril", Result: "normal"}},
	}, time.Now().UTC())
	if !errors.Is(err, ErrCheckUnknownItem) {
		t.Fatalf("expected ErrCheckUnknownItem, got %v", err)
	}
}

func TestRecordCheckRejectsInvalidResult(t *testing.T) {
	t.Parallel()

	service := NewCheckService(&stubCheckStore{})
	_, err := service.RecordCheck(1, CheckInput{
		Items: []CheckItemInput{{Key: "lump_or_mass", Result: "maybe"}},
	}, time.Now().UTC())
	if !errors.Is(err, ErrCheckInvalidResult) {
		t.Fatalf("expected ErrCheckInvalidResult, got %v", err)
	}
}

func TestSummarizeChecklist(t *testing.T) {
	t.Parallel()

	summary := SummarizeChecklist([]models.ChecklistItem{
		{Result: models.ResultNormal},
		{Result: models.ResultNormal},
		{Result: models.ResultAbnormal},
		{Result: models.ResultNotAssessed},
	})
	if summary.Normal != 2 || summary.Abnormal != 1 || summary.Total != 4 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestBuildCheckStats(t *testing.T) {
	t.Parallel()

	lastPeriodEnd := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	profile := models.User{
		LastPeriodEnd:      &lastPeriodEnd,
		AvgCycleDays:       28,
		ReminderOffsetDays: 7,
	}

	records := []models.BseRecord{
		{
			Timestamp: time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC),
			Items:     []models.ChecklistItem{{Result: models.ResultNormal}},
		},
		{
			Timestamp: time.Date(2024, time.February, 6, 9, 0, 0, 0, time.UTC),
			Items:     []models.ChecklistItem{{Result: models.ResultAbnormal}},
		},
	}

	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	stats := BuildCheckStats(records, &profile, now)

	if stats.TotalChecks != 2 {
		t.Fatalf("expected 2 checks, got %d", stats.TotalChecks)
	}
	if stats.AbnormalChecks != 1 {
		t.Fatalf("expected 1 abnormal check, got %d", stats.AbnormalChecks)
	}
	if !stats.LastCheckAt.Equal(records[1].Timestamp) {
		t.Fatalf("expected last check %s, got %s", records[1].Timestamp, stats.LastCheckAt)
	}
	if got := stats.NextExamDate.Format("2006-01-02"); got != "2024-03-04" {
		t.Fatalf("expected next exam 2024-03-04, got %s", got)
	}
	if stats.DaysUntilExam != 3 {
		t.Fatalf("expected 3 days until exam, got %d", stats.DaysUntilExam)
	}
}

func TestBuildCheckStatsWithoutCycleData(t *testing.T) {
	t.Parallel()

	stats := BuildCheckStats(nil, &models.User{}, time.Now().UTC())
	if stats.TotalChecks != 0 || !stats.NextExamDate.IsZero() || stats.DaysUntilExam != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
