package db

import (
	"github.com/elarahealth/elara/internal/models"
	"gorm.io/gorm"
)

type BseRecordRepository struct {
	database *gorm.DB
}

func NewBseRecordRepository(database *gorm.DB) *BseRecordRepository {
	return &BseRecordRepository{database: database}
}

// CreateWithItems stores the record and its checklist items atomically.
func (repo *BseRecordRepository) CreateWithItems(record *models.BseRecord, items []models.ChecklistItem) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		for index := range items {
			items[index].RecordID = record.ID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (repo *BseRecordRepository) ListByUser(userID uint) ([]models.BseRecord, error) {
	records := make([]models.BseRecord, 0)
	if err := repo.database.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *BseRecordRepository) FindLatestByUser(userID uint) (models.BseRecord, bool, error) {
	var record models.BseRecord
	result := repo.database.
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.BseRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.BseRecord{}, false, nil
	}
	return record, true, nil
}
