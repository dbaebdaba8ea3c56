package db

import (
	"testing"
	"time"

	"github.com/elarahealth/elara/internal/models"
)

func TestCreateWithItemsRoundTrips(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewBseRecordRepository(database)
	user := createTestUser(t, NewUserRepository(database), "ada@example.com")

	record := models.BseRecord{
		PublicID:  "rec-1",
		UserID:    user.ID,
		Timestamp: time.Date(2024, time.February, 5, 9, 0, 0, 0, time.UTC),
		Notes:     "monthly check",
		CreatedAt: time.Now().UTC(),
	}
	items := []models.ChecklistItem{
		{ItemKey: "lump_or_mass", AssessedBy: "Touch", Result: models.ResultNormal},
		{ItemKey: "skin_dimpling", AssessedBy: "Sight", Result: models.ResultAbnormal, Note: "left side"},
	}
	if err := repo.CreateWithItems(&record, items); err != nil {
		t.Fatalf("create with items: %v", err)
	}

	listed, err := repo.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one record, got %d", len(listed))
	}
	if listed[0].Notes != "monthly check" {
		t.Fatalf("unexpected notes %q", listed[0].Notes)
	}
	if len(listed[0].Items) != 2 {
		t.Fatalf("expected two items preloaded, got %d", len(listed[0].Items))
	}
	for _, item := range listed[0].Items {
		if item.RecordID != record.ID {
			t.Fatalf("item %s not linked to record %d", item.ItemKey, record.ID)
		}
	}
}

func TestListByUserNewestFirst(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewBseRecordRepository(database)
	users := NewUserRepository(database)
	owner := createTestUser(t, users, "ada@example.com")
	otherUser := createTestUser(t, users, "other@example.com")

	older := models.BseRecord{
		PublicID:  "older",
		UserID:    owner.ID,
		Timestamp: time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC),
	}
	newer := models.BseRecord{
		PublicID:  "newer",
		UserID:    owner.ID,
		Timestamp: time.Date(2024, time.February, 5, 9, 0, 0, 0, time.UTC),
	}
	other := models.BseRecord{
		PublicID:  "other-user",
		UserID:    otherUser.ID,
		Timestamp: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
	for _, seed := range []*models.BseRecord{&older, &newer, &other} {
		if err := repo.CreateWithItems(seed, nil); err != nil {
			t.Fatalf("seed record %s: %v", seed.PublicID, err)
		}
	}

	listed, err := repo.ListByUser(owner.ID)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected two records for the owner, got %d", len(listed))
	}
	if listed[0].PublicID != "newer" || listed[1].PublicID != "older" {
		t.Fatalf("expected newest first, got %s then %s", listed[0].PublicID, listed[1].PublicID)
	}

	latest, found, err := repo.FindLatestByUser(owner.ID)
	if err != nil || !found {
		t.Fatalf("find latest: found=%v err=%v", found, err)
	}
	if latest.PublicID != "newer" {
		t.Fatalf("expected latest record, got %q", latest.PublicID)
	}
}

func TestFindLatestByUserEmpty(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewBseRecordRepository(database)

	_, found, err := repo.FindLatestByUser(99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected no record for an unknown user")
	}
}
