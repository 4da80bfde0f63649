package storage

import (
	"log"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"gorm.io/gorm"
)

// GetAllTours returns every stored tour. Any failure resolves to an empty
// slice; the site prefers showing nothing over failing to render.
func GetAllTours() []models.Tour {
	tours := []models.Tour{}
	if DB == nil {
		return tours
	}
	if err := DB.Find(&tours).Error; err != nil {
		log.Println("tours read failed:", err)
		return []models.Tour{}
	}
	return tours
}

// SaveAllTours replaces the whole collection: callers pass the complete
// desired set, not a delta. Records absent from the list are gone afterwards.
func SaveAllTours(tours []models.Tour) error {
	if DB == nil {
		return ErrStorageUnavailable
	}
	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Tour{}).Error; err != nil {
			return err
		}
		if len(tours) == 0 {
			return nil
		}
		return tx.Create(&tours).Error
	})
	if err != nil {
		log.Println("tours saveAll failed:", err)
		return err
	}
	Notify(StoreTours)
	return nil
}
