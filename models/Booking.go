package models

// Booking is an immutable checkout record: a snapshot of the customer and the
// tour at the moment of reservation. There is no update or delete path.
type Booking struct {
	ID                     string  `json:"id" gorm:"primaryKey"`
	TourID                 string  `json:"tourId" gorm:"index"`
	TourTitle              string  `json:"tourTitle"`
	DateOfTour             string  `json:"dateOfTour"`
	BookingDate            string  `json:"bookingDate"`
	Reviewed               bool    `json:"reviewed"`
	CustomerName           string  `json:"customerName"`
	CustomerEmail          string  `json:"customerEmail"`
	CustomerPhone          string  `json:"customerPhone"`
	CustomerNationality    string  `json:"customerNationality"`
	CustomerType           string  `json:"customerType"` // national, foreigner
	Quantity               int     `json:"quantity"`
	TotalPrice             float64 `json:"totalPrice"`
	PaymentMethod          string  `json:"paymentMethod"` // whatsapp, card
	SelectedPickupLocation string  `json:"selectedPickupLocation"`
}
