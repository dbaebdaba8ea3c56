package services

import (
	"errors"
	"strings"
	"time"

	"github.com/elarahealth/elara/internal/models"
	"github.com/google/uuid"
)

var (
	ErrCheckUnknownItem   = errors.New("unknown checklist item")
	ErrCheckInvalidResult = errors.New("invalid checklist result")
)

type CheckItemInput struct {
	Key    string `json:"key"`
	Result string `json:"result"`
	Note   string `json:"note"`
}

type CheckInput struct {
	Notes string           `json:"notes"`
	Items []CheckItemInput `json:"items"`
}

type CheckRecordStore interface {
	CreateWithItems(record *models.BseRecord, items []models.ChecklistItem) error
	ListByUser(userID uint) ([]models.BseRecord, error)
	FindLatestByUser(userID uint) (models.BseRecord, bool, error)
}

type CheckService struct {
	records CheckRecordStore
}

func NewCheckService(records CheckRecordStore) *CheckService {
	return &CheckService{records: records}
}

// RecordCheck validates the checklist payload against the builtin catalog and
// stores the record with its items.
func (service *CheckService) RecordCheck(userID uint, input CheckInput, now time.Time) (models.BseRecord, error) {
	assessedBy := make(map[string]string)
	for _, catalogItem := range models.DefaultChecklistCatalog() {
		assessedBy[catalogItem.Key] = catalogItem.AssessedBy
	}

	items := make([]models.ChecklistItem, 0, len(input.Items))
	for _, item := range input.Items {
		key := strings.TrimSpace(item.Key)
		if _, known := assessedBy[key]; !known {
			return models.BseRecord{}, ErrCheckUnknownItem
		}
		result := strings.TrimSpace(item.Result)
		if result == "" {
			result = models.ResultNotAssessed
		}
		if !models.ValidResult(result) {
			return models.BseRecord{}, ErrCheckInvalidResult
		}
		items = append(items, models.ChecklistItem{
			ItemKey:    key,
			AssessedBy: assessedBy[key],
			Result:     result,
			Note:       strings.TrimSpace(item.Note),
		})
	}

	record := models.BseRecord{
		PublicID:  uuid.NewString(),
		UserID:    userID,
		Timestamp: now,
		Notes:     strings.TrimSpace(input.Notes),
		CreatedAt: now,
	}
	if err := service.records.CreateWithItems(&record, items); err != nil {
		return models.BseRecord{}, err
	}
	record.Items = items
	return record, nil
}

func (service *CheckService) History(userID uint) ([]models.BseRecord, error) {
	return service.records.ListByUser(userID)
}

func (service *CheckService) LatestCheck(userID uint) (models.BseRecord, bool, error) {
	return service.records.FindLatestByUser(userID)
}
