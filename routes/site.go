package routes

import (
	"sync"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"github.com/HenryDP/UnaAventuraMasCR/storage"
	"github.com/kataras/iris/v12"
)

// SiteBundle is everything the front end hydrates on load. Each document
// falls back to the built-in defaults when it was never written.
type SiteBundle struct {
	Tours          []models.Tour        `json:"tours"`
	Reviews        []models.Review      `json:"reviews"`
	PaymentConfig  models.PaymentConfig `json:"paymentConfig"`
	AboutData      models.AboutData     `json:"aboutData"`
	FooterConfig   models.FooterConfig  `json:"footerConfig"`
	GeneralConfig  models.GeneralConfig `json:"generalConfig"`
	CarouselImages []string             `json:"carouselImages"`
	LastSync       string               `json:"lastSync"`
}

// GetSite fans in all site documents concurrently, the same way the front
// end used to hydrate its state. Failures resolve to defaults per document;
// this endpoint never errors.
func GetSite(ctx iris.Context) {
	var bundle SiteBundle
	var wg sync.WaitGroup

	reads := []func(){
		func() {
			bundle.Tours = storage.GetAllTours()
			if len(bundle.Tours) == 0 {
				bundle.Tours = storage.DefaultTours()
			}
		},
		func() { bundle.Reviews = storage.GetAllReviews() },
		func() { bundle.PaymentConfig = storage.GetPaymentConfig(storage.DefaultPaymentConfig()) },
		func() { bundle.AboutData = storage.GetAboutData(storage.DefaultAboutData()) },
		func() { bundle.FooterConfig = storage.GetFooterConfig(storage.DefaultFooterConfig()) },
		func() { bundle.GeneralConfig = storage.GetGeneralConfig(storage.DefaultGeneralConfig()) },
		func() { bundle.CarouselImages = storage.GetCarousel(storage.DefaultCarouselImages()) },
		func() { bundle.LastSync = storage.GetLastSync() },
	}
	for _, read := range reads {
		wg.Add(1)
		go func(read func()) {
			defer wg.Done()
			read()
		}(read)
	}
	wg.Wait()

	ctx.JSON(iris.Map{"data": bundle})
}
