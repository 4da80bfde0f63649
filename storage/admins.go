package storage

import (
	"log"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"gorm.io/gorm"
)

func GetAllAdmins() []models.AdminUser {
	admins := []models.AdminUser{}
	if DB == nil {
		return admins
	}
	if err := DB.Find(&admins).Error; err != nil {
		log.Println("admins read failed:", err)
		return []models.AdminUser{}
	}
	return admins
}

// SaveAllAdmins replaces the editor team wholesale. The team-size cap is a
// route-layer policy, not a storage rule.
func SaveAllAdmins(admins []models.AdminUser) error {
	if DB == nil {
		return ErrStorageUnavailable
	}
	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.AdminUser{}).Error; err != nil {
			return err
		}
		if len(admins) == 0 {
			return nil
		}
		return tx.Create(&admins).Error
	})
	if err != nil {
		log.Println("admins saveAll failed:", err)
		return err
	}
	Notify(StoreAdmins)
	return nil
}
