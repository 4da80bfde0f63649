package routes

import (
	"fmt"
	"net/url"
	"time"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"github.com/HenryDP/UnaAventuraMasCR/storage"
	"github.com/HenryDP/UnaAventuraMasCR/utils"
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

type CheckoutInput struct {
	TourID         string `json:"tourId" validate:"required"`
	CustomerName   string `json:"customerName" validate:"required,max=128"`
	CustomerEmail  string `json:"customerEmail" validate:"required,email"`
	CustomerPhone  string `json:"customerPhone" validate:"max=32"`
	Nationality    string `json:"nationality" validate:"max=64"`
	VisitorType    string `json:"visitorType" validate:"required,oneof=national foreigner"`
	Quantity       int    `json:"quantity" validate:"required,min=1,max=50"`
	PaymentMethod  string `json:"paymentMethod" validate:"required,oneof=whatsapp card"`
	PickupLocation string `json:"pickupLocation" validate:"max=256"`
}

// Checkout snapshots the reservation and answers with the payment handoff:
// a WhatsApp deep link or the configured card link. The booking record is
// immutable from here on.
func Checkout(ctx iris.Context) {
	var input CheckoutInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	tour := findTour(input.TourID)
	if tour == nil {
		utils.CreateNotFound(ctx)
		return
	}

	if input.PickupLocation != "" {
		pickups := tour.PickupLocationList()
		if len(pickups) > 0 && !slices.Contains(pickups, input.PickupLocation) {
			utils.CreateError(iris.StatusBadRequest, "Invalid Pickup", "El punto de recogida no pertenece a este tour.", ctx)
			return
		}
	}

	basePrice := tour.PriceForeigner
	if input.VisitorType == "national" {
		basePrice = tour.PriceNational
	}
	totalPrice := basePrice * float64(input.Quantity)

	booking := models.Booking{
		ID:                     uuid.NewString(),
		TourID:                 tour.ID,
		TourTitle:              tour.Title,
		DateOfTour:             tour.TourDate,
		BookingDate:            time.Now().Format("02/01/2006 15:04"),
		CustomerName:           input.CustomerName,
		CustomerEmail:          input.CustomerEmail,
		CustomerPhone:          input.CustomerPhone,
		CustomerNationality:    input.Nationality,
		CustomerType:           input.VisitorType,
		Quantity:               input.Quantity,
		TotalPrice:             totalPrice,
		PaymentMethod:          input.PaymentMethod,
		SelectedPickupLocation: input.PickupLocation,
	}

	if err := storage.AddBooking(booking); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	payment := storage.GetPaymentConfig(storage.DefaultPaymentConfig())
	response := iris.Map{"success": true, "data": booking}
	if input.PaymentMethod == "card" && payment.TouchPayLink != "" {
		response["paymentLink"] = payment.TouchPayLink
	} else {
		response["paymentLink"] = whatsappLink(payment.WhatsappNumber, *tour, booking)
	}
	ctx.JSON(response)
}

// findTour resolves a tour id against the stored catalog, then the seeded
// defaults the site falls back to.
func findTour(id string) *models.Tour {
	for _, t := range storage.GetAllTours() {
		if t.ID == id {
			return &t
		}
	}
	for _, t := range storage.DefaultTours() {
		if t.ID == id {
			return &t
		}
	}
	return nil
}

func whatsappLink(number string, tour models.Tour, booking models.Booking) string {
	visitorLabel := "Extranjero"
	if booking.CustomerType == "national" {
		visitorLabel = "Nacional"
	}
	tourDate := tour.TourDate
	if tourDate == "" {
		tourDate = "A convenir"
	}
	message := fmt.Sprintf("¡Hola! Me interesa reservar:\n\n*%s*\nFecha: %s\nTipo: %s\nCantidad: %d\nTotal: $%.0f",
		tour.Title, tourDate, visitorLabel, booking.Quantity, booking.TotalPrice)
	if booking.SelectedPickupLocation != "" {
		message += "\nPickup: " + booking.SelectedPickupLocation
	}
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

// AdminListTourBookings returns the sales report rows for one tour.
func AdminListTourBookings(ctx iris.Context) {
	tourID := ctx.Params().GetString("id")
	if tourID == "" {
		utils.CreateNotFound(ctx)
		return
	}
	ctx.JSON(iris.Map{"data": storage.BookingsByTourID(tourID)})
}
