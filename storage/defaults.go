package storage

import (
	"encoding/json"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"gorm.io/datatypes"
)

// Built-in site content. These are the fallbacks the API serves until the
// dashboard writes its own documents; a never-written key always resolves to
// these values without persisting anything.

func DefaultPaymentConfig() models.PaymentConfig {
	return models.PaymentConfig{
		SinpeMovil:          "87751442",
		SinpeName:           "Una Aventura Más CR",
		BankName:            "BAC Credomatic",
		WhatsappNumber:      "50687751442",
		AcceptsCash:         true,
		AcceptsCard:         true,
		EnableOnlinePayment: true,
		TouchPayLink:        "https://tp.cr/s/MjQ3MDc1",
		LinkedAccounts:      []models.LinkedAccount{},
	}
}

func DefaultAboutData() models.AboutData {
	return models.AboutData{
		Title:       "Más que tours, creamos recuerdos.",
		Description: "Buscamos enriquecer las vidas de nuestros clientes a través de aventuras auténticas y sostenibles en todo el territorio nacional.",
		ImageURL:    "https://images.unsplash.com/photo-1621217646536-47661b6c0032?auto=format&fit=crop&q=80&w=800",
		Stats:       models.AboutStats{Years: "5+", Customers: "2k+"},
	}
}

func DefaultFooterConfig() models.FooterConfig {
	return models.FooterConfig{
		Description: "Somos apasionados por mostrarte la verdadera Costa Rica.",
		Addresses:   []string{"La Fortuna, San Carlos, Costa Rica"},
		Email:       "info@unaaventuramas.cr",
		Phone:       "+506 8775-1442",
		Instagram:   "https://www.instagram.com/una_aventura_mas_cr_",
		Facebook:    "https://www.facebook.com/share/1AXtGfckVf/",
		TikTok:      "https://www.tiktok.com/@una_aventura_mas_cr",
	}
}

func DefaultGeneralConfig() models.GeneralConfig {
	return models.GeneralConfig{
		BrandName:    "Una Aventura Más CR",
		HeroTitle:    "Aventuras que Inspiran",
		HeroSubtitle: "Explora la biodiversidad más increíble del planeta.",
	}
}

func jsonColumn(value interface{}) datatypes.JSON {
	raw, _ := json.Marshal(value)
	return datatypes.JSON(raw)
}

// DefaultTours is the catalog shown before the dashboard ever saves one.
func DefaultTours() []models.Tour {
	return []models.Tour{
		{
			ID:    "CR-001",
			Slug:  "volcan-arenal-clasico",
			Title: "Volcán Arenal Clásico",
			Titles: jsonColumn(map[string]string{
				"es": "Volcán Arenal Clásico",
				"en": "Classic Arenal Volcano",
				"de": "Klassischer Arenal Vulkan",
				"fr": "Volcan Arenal Classique",
			}),
			Description: "Caminata guiada por los senderos de lava con vistas al coloso de La Fortuna.",
			Descriptions: jsonColumn(map[string]string{
				"es": "Caminata guiada por los senderos de lava con vistas al coloso de La Fortuna.",
				"en": "Guided hike along the lava trails with views of La Fortuna's giant.",
				"de": "Geführte Wanderung über die Lavapfade mit Blick auf den Riesen von La Fortuna.",
				"fr": "Randonnée guidée sur les sentiers de lave avec vue sur le géant de La Fortuna.",
			}),
			PriceNational:    35,
			PriceForeigner:   55,
			Category:         "Volcán",
			Province:         "Alajuela",
			Location:         "La Fortuna",
			ImageURL:         "https://images.unsplash.com/photo-1518259102261-b40117eabbc9?auto=format&fit=crop&q=80&w=1200",
			Gallery:          jsonColumn([]string{}),
			Difficulty:       "Intermedio",
			DurationCategory: "Día Completo",
			DurationText:     "8 horas",
			MinGroupSize:     4,
			TourDate:         "Sábados",
			HikingDistance:   "6 km",
			Included:         jsonColumn([]string{"Guía certificado", "Entradas al parque", "Almuerzo típico"}),
			Recommendations:  jsonColumn([]string{"Zapatos de montaña", "Bloqueador solar"}),
			PickupLocations:  jsonColumn([]string{"Parque de La Fortuna", "Hotel Arenal Springs"}),
			PickupTime:       "07:00",
			ReturnTime:       "16:00",
		},
		{
			ID:    "CR-002",
			Slug:  "cafe-monteverde",
			Title: "Tour de Café Monteverde",
			Titles: jsonColumn(map[string]string{
				"es": "Tour de Café Monteverde",
				"en": "Monteverde Coffee Tour",
				"de": "Monteverde Kaffeetour",
				"fr": "Tour du Café Monteverde",
			}),
			Description: "Del grano a la taza en una finca familiar del bosque nuboso.",
			Descriptions: jsonColumn(map[string]string{
				"es": "Del grano a la taza en una finca familiar del bosque nuboso.",
				"en": "From bean to cup on a family farm in the cloud forest.",
				"de": "Von der Bohne bis zur Tasse auf einer Familienfarm im Nebelwald.",
				"fr": "Du grain à la tasse dans une ferme familiale de la forêt de nuages.",
			}),
			PriceNational:    20,
			PriceForeigner:   38,
			Category:         "Cultura",
			Province:         "Puntarenas",
			Location:         "Monteverde",
			ImageURL:         "https://images.unsplash.com/photo-1442550528053-c431ecb55509?auto=format&fit=crop&q=80&w=1200",
			Gallery:          jsonColumn([]string{}),
			Difficulty:       "Principiante",
			DurationCategory: "Medio Día",
			DurationText:     "3.5 horas",
			MinGroupSize:     2,
			TourDate:         "Todos los días",
			HikingDistance:   "2 km",
			Included:         jsonColumn([]string{"Guía experto", "Degustación de café"}),
			Recommendations:  jsonColumn([]string{"Ropa cómoda"}),
			PickupLocations:  jsonColumn([]string{"Centro de Monteverde", "Hotel Belmar", "Selina Monteverde"}),
			PickupTime:       "08:00",
			ReturnTime:       "11:30",
		},
	}
}

func DefaultCarouselImages() []string {
	return []string{
		"https://images.unsplash.com/photo-1580910543632-4740d1254394?auto=format&fit=crop&q=80&w=2000",
		"https://images.unsplash.com/photo-1520116468816-95b69f847337?auto=format&fit=crop&q=80&w=2000",
		"https://images.unsplash.com/photo-1542259009477-d625272157b7?auto=format&fit=crop&q=80&w=2000",
	}
}
