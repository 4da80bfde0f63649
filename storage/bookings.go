package storage

import (
	"log"

	"github.com/HenryDP/UnaAventuraMasCR/models"
)

// AddBooking appends a checkout record. Bookings are never updated or
// deleted afterwards.
func AddBooking(booking models.Booking) error {
	if DB == nil {
		return ErrStorageUnavailable
	}
	if err := DB.Create(&booking).Error; err != nil {
		log.Println("booking add failed:", err)
		return err
	}
	Notify(StoreBookings)
	return nil
}

// BookingsByTourID returns the bookings for one tour, in no guaranteed
// order. Volumes are small enough that an indexed scan is plenty.
func BookingsByTourID(tourID string) []models.Booking {
	bookings := []models.Booking{}
	if DB == nil {
		return bookings
	}
	if err := DB.Where("tour_id = ?", tourID).Find(&bookings).Error; err != nil {
		log.Println("bookings read failed:", err)
		return []models.Booking{}
	}
	return bookings
}
