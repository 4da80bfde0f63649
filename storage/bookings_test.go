package storage

import (
	"testing"

	"github.com/HenryDP/UnaAventuraMasCR/models"
)

func TestBookingsByTourIDFilters(t *testing.T) {
	newTestDB(t)

	AddBooking(models.Booking{ID: "b1", TourID: "CR-001", CustomerName: "Ana"})
	AddBooking(models.Booking{ID: "b2", TourID: "CR-002", CustomerName: "Luis"})
	AddBooking(models.Booking{ID: "b3", TourID: "CR-001", CustomerName: "Eva"})

	got := BookingsByTourID("CR-001")
	if len(got) != 2 {
		t.Fatalf("expected 2 bookings for CR-001, got %d", len(got))
	}
	for _, booking := range got {
		if booking.TourID != "CR-001" {
			t.Fatalf("booking %s belongs to %s", booking.ID, booking.TourID)
		}
	}

	if got := BookingsByTourID("CR-999"); len(got) != 0 {
		t.Fatalf("expected no bookings for unknown tour, got %d", len(got))
	}
}

func TestAddBookingKeepsSnapshot(t *testing.T) {
	newTestDB(t)

	booking := models.Booking{
		ID:            "b1",
		TourID:        "CR-001",
		TourTitle:     "Volcán Arenal Clásico",
		CustomerType:  "foreigner",
		Quantity:      3,
		TotalPrice:    165,
		PaymentMethod: "whatsapp",
	}
	if err := AddBooking(booking); err != nil {
		t.Fatalf("add: %v", err)
	}

	got := BookingsByTourID("CR-001")
	if len(got) != 1 {
		t.Fatalf("expected one booking, got %d", len(got))
	}
	if got[0] != booking {
		t.Fatalf("snapshot changed on the way through storage: %+v", got[0])
	}
}
