package models

import "gorm.io/datatypes"

// ConfigEntry is a singleton configuration document stored under one string
// key (payment, about, footer, general, carousel, last_sync). The value is
// whatever JSON the caller writes; there is no schema validation on read.
type ConfigEntry struct {
	Key   string         `json:"key" gorm:"primaryKey"`
	Value datatypes.JSON `json:"value"`
}

// SchemaVersion tracks the database schema version so one-time destructive
// migrations (like the configs reshape at version 4) run exactly once.
type SchemaVersion struct {
	ID      uint `gorm:"primaryKey"`
	Version int
}

type LinkedAccount struct {
	ID           string `json:"id"`
	BankName     string `json:"bankName"`
	AccountLast4 string `json:"accountLast4"`
	Status       string `json:"status"` // active, inactive
	Currency     string `json:"currency"`
}

type PaymentConfig struct {
	SinpeMovil          string          `json:"sinpeMovil"`
	SinpeName           string          `json:"sinpeName"`
	IbanColones         string          `json:"ibanColones"`
	IbanDollars         string          `json:"ibanDollars"`
	BankName            string          `json:"bankName"`
	WhatsappNumber      string          `json:"whatsappNumber"`
	AcceptsCash         bool            `json:"acceptsCash"`
	AcceptsCard         bool            `json:"acceptsCard"`
	EnableOnlinePayment bool            `json:"enableOnlinePayment"`
	TouchPayLink        string          `json:"touchPayLink"`
	LinkedAccounts      []LinkedAccount `json:"linkedAccounts"`
}

type AboutStats struct {
	Years     string `json:"years"`
	Customers string `json:"customers"`
}

type AboutData struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	Stats       AboutStats `json:"stats"`
}

type FooterConfig struct {
	Description string   `json:"description"`
	Addresses   []string `json:"addresses"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Instagram   string   `json:"instagram"`
	Facebook    string   `json:"facebook"`
	TikTok      string   `json:"tiktok"`
}

type GeneralConfig struct {
	BrandName    string `json:"brandName"`
	LogoURL      string `json:"logoUrl"`
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
}
