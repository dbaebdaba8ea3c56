package models

import "time"

const (
	ResultNormal      = "normal"
	ResultAbnormal    = "abnormal"
	ResultNotAssessed = "not_assessed"
)

type BseRecord struct {
	ID        uint      `gorm:"primaryKey"`
	PublicID  string    `gorm:"uniqueIndex;not null"`
	UserID    uint      `gorm:"not null;index"`
	Timestamp time.Time `gorm:"not null;index"`
	Notes     string
	Items     []ChecklistItem `gorm:"foreignKey:RecordID"`
	CreatedAt time.Time       `gorm:"not null"`
}

type ChecklistItem struct {
	ID         uint   `gorm:"primaryKey"`
	RecordID   uint   `gorm:"not null;index"`
	ItemKey    string `gorm:"not null"`
	AssessedBy string `gorm:"not null"`
	Result     string `gorm:"not null;default:not_assessed"`
	Note       string
}

type ChecklistCatalogItem struct {
	Key         string
	Label       string
	AssessedBy  string
	Description string
}

func DefaultChecklistCatalog() []ChecklistCatalogItem {
	return []ChecklistCatalogItem{
		{Key: "lump_or_mass", Label: "New Lump or Mass", AssessedBy: "Touch", Description: "Feel for any new hard lumps or masses in the breast tissue or underarm area."},
		{Key: "thickening_swelling", Label: "Thickening or Swelling", AssessedBy: "Touch/Sight", Description: "Check for any areas that feel thicker than usual or show visible swelling."},
		{Key: "size_shape_change", Label: "Size/Shape Change", AssessedBy: "Sight", Description: "Look for any changes in the overall size or shape of either breast."},
		{Key: "skin_dimpling", Label: "Skin Dimpling/Puckering", AssessedBy: "Sight", Description: "Look for any dimpling, puckering, or indentation of the skin."},
		{Key: "redness_rash", Label: "Redness or Rash", AssessedBy: "Sight/Touch", Description: "Check for any unusual redness, irritation, or rash on the breast skin."},
		{Key: "nipple_inversion", Label: "Nipple Inversion", AssessedBy: "Sight", Description: "Look for any nipple that has become inverted (turned inward) when it wasn't before."},
		{Key: "nipple_discharge", Label: "Nipple Discharge", AssessedBy: "Sight", Description: "Check for any unusual discharge from the nipple (not milk if breastfeeding)."},
		{Key: "persistent_pain", Label: "Persistent Pain", AssessedBy: "Touch/Feel", Description: "Note any persistent pain in the breast or armpit area that doesn't go away."},
		{Key: "vein_changes", Label: "Vein Changes", AssessedBy: "Sight", Description: "Look for any new visible veins or changes in existing vein patterns."},
	}
}

// ValidResult reports whether the value is one of the allowed checklist outcomes.
func ValidResult(result string) bool {
	switch result {
	case ResultNormal, ResultAbnormal, ResultNotAssessed:
		return true
	default:
		return false
	}
}

// KnownChecklistKey reports whether the key belongs to the builtin catalog.
func KnownChecklistKey(key string) bool {
	for _, item := range DefaultChecklistCatalog() {
		if item.Key == key {
			return true
		}
	}
	return false
}
