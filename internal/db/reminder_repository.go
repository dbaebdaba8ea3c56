package db

import (
	"time"

	"github.com/elarahealth/elara/internal/models"
	"gorm.io/gorm"
)

type ReminderRepository struct {
	database *gorm.DB
}

func NewReminderRepository(database *gorm.DB) *ReminderRepository {
	return &ReminderRepository{database: database}
}

// ReplacePending deletes any unfired instance for the user and inserts the new
// one in a single transaction, preserving the at-most-one-pending invariant.
func (repo *ReminderRepository) ReplacePending(userID uint, instance *models.ReminderInstance) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND fired = ?", userID, false).Delete(&models.ReminderInstance{}).Error; err != nil {
			return err
		}
		return tx.Create(instance).Error
	})
}

func (repo *ReminderRepository) DeletePendingByUser(userID uint) error {
	return repo.database.Where("user_id = ? AND fired = ?", userID, false).Delete(&models.ReminderInstance{}).Error
}

func (repo *ReminderRepository) FindPendingByUser(userID uint) (models.ReminderInstance, bool, error) {
	var instance models.ReminderInstance
	result := repo.database.
		Where("user_id = ? AND fired = ?", userID, false).
		Order("scheduled_at ASC").
		Limit(1).
		Find(&instance)
	if result.Error != nil {
		return models.ReminderInstance{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ReminderInstance{}, false, nil
	}
	return instance, true, nil
}

func (repo *ReminderRepository) ListDue(now time.Time) ([]models.ReminderInstance, error) {
	instances := make([]models.ReminderInstance, 0)
	if err := repo.database.
		Where("fired = ? AND scheduled_at <= ?", false, now).
		Find(&instances).Error; err != nil {
		return nil, err
	}
	return instances, nil
}

// MarkFired flips fired to true and reports whether this call performed the
// transition. The guard on the current fired=false state keeps overlapping
// dispatch passes from sending the same reminder twice.
func (repo *ReminderRepository) MarkFired(instanceID uint) (bool, error) {
	result := repo.database.Model(&models.ReminderInstance{}).
		Where("id = ? AND fired = ?", instanceID, false).
		Update("fired", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *ReminderRepository) UpdateSnoozedUntil(instanceID uint, until time.Time) error {
	return repo.database.Model(&models.ReminderInstance{}).
		Where("id = ?", instanceID).
		Update("snoozed_until", until).Error
}

func (repo *ReminderRepository) CountPendingByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.ReminderInstance{}).
		Where("user_id = ? AND fired = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
