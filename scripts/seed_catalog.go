package main

import (
	"fmt"
	"log"

	"github.com/HenryDP/UnaAventuraMasCR/storage"
	"github.com/joho/godotenv"
)

// Seeds the embedded database with the default catalog and site documents so
// a fresh deployment starts from real content instead of runtime fallbacks.
func main() {
	godotenv.Load()
	if storage.InitializeDB() == nil {
		log.Fatal("could not open the database")
	}

	if len(storage.GetAllTours()) == 0 {
		if err := storage.SaveAllTours(storage.DefaultTours()); err != nil {
			log.Fatalf("seeding tours failed: %v", err)
		}
	}

	if err := storage.SetPaymentConfig(storage.DefaultPaymentConfig()); err != nil {
		log.Fatalf("seeding payment config failed: %v", err)
	}
	if err := storage.SetAboutData(storage.DefaultAboutData()); err != nil {
		log.Fatalf("seeding about data failed: %v", err)
	}
	if err := storage.SetFooterConfig(storage.DefaultFooterConfig()); err != nil {
		log.Fatalf("seeding footer config failed: %v", err)
	}
	if err := storage.SetGeneralConfig(storage.DefaultGeneralConfig()); err != nil {
		log.Fatalf("seeding general config failed: %v", err)
	}
	if err := storage.SetCarousel(storage.DefaultCarouselImages()); err != nil {
		log.Fatalf("seeding carousel failed: %v", err)
	}

	fmt.Println("Catalog seeding completed successfully!")
}
