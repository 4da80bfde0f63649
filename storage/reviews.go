package storage

import (
	"log"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetAllReviews() []models.Review {
	reviews := []models.Review{}
	if DB == nil {
		return reviews
	}
	if err := DB.Find(&reviews).Error; err != nil {
		log.Println("reviews read failed:", err)
		return []models.Review{}
	}
	return reviews
}

func SaveAllReviews(reviews []models.Review) error {
	if DB == nil {
		return ErrStorageUnavailable
	}
	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if len(reviews) == 0 {
			return nil
		}
		return tx.Create(&reviews).Error
	})
	if err != nil {
		log.Println("reviews saveAll failed:", err)
		return err
	}
	Notify(StoreReviews)
	return nil
}

// AddReview appends (or upserts by id) a single review. Display order is a
// caller choice, not a storage guarantee.
func AddReview(review models.Review) error {
	if DB == nil {
		return ErrStorageUnavailable
	}
	if err := DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&review).Error; err != nil {
		log.Println("review add failed:", err)
		return err
	}
	Notify(StoreReviews)
	return nil
}
