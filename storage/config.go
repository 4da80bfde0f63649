package storage

import (
	"encoding/json"
	"log"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// Reserved config document keys.
const (
	ConfigPayment  = "payment"
	ConfigAbout    = "about"
	ConfigFooter   = "footer"
	ConfigGeneral  = "general"
	ConfigCarousel = "carousel"
	ConfigLastSync = "last_sync"
)

// GetConfig reads the document under key into out. The caller pre-fills out
// with its fallback value; on absence or any read error out is left untouched
// and nothing is persisted. Returns whether a stored value was found.
func GetConfig(key string, out interface{}) bool {
	if DB == nil {
		return false
	}
	var entry models.ConfigEntry
	if err := DB.First(&entry, "key = ?", key).Error; err != nil {
		return false
	}
	if err := json.Unmarshal(entry.Value, out); err != nil {
		log.Println("config decode failed for", key+":", err)
		return false
	}
	return true
}

// SetConfig overwrites the document unconditionally and signals the change.
func SetConfig(key string, value interface{}) error {
	if DB == nil {
		return ErrStorageUnavailable
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := models.ConfigEntry{Key: key, Value: datatypes.JSON(raw)}
	if err := DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error; err != nil {
		log.Println("config write failed for", key+":", err)
		return err
	}
	Notify(StoreConfigs)
	return nil
}

// Typed wrappers for the known site documents. Each getter takes the
// caller's fallback and returns it unchanged when nothing is stored yet.

func GetPaymentConfig(fallback models.PaymentConfig) models.PaymentConfig {
	value := fallback
	GetConfig(ConfigPayment, &value)
	return value
}

func SetPaymentConfig(value models.PaymentConfig) error {
	return SetConfig(ConfigPayment, value)
}

func GetAboutData(fallback models.AboutData) models.AboutData {
	value := fallback
	GetConfig(ConfigAbout, &value)
	return value
}

func SetAboutData(value models.AboutData) error {
	return SetConfig(ConfigAbout, value)
}

func GetFooterConfig(fallback models.FooterConfig) models.FooterConfig {
	value := fallback
	GetConfig(ConfigFooter, &value)
	return value
}

func SetFooterConfig(value models.FooterConfig) error {
	return SetConfig(ConfigFooter, value)
}

func GetGeneralConfig(fallback models.GeneralConfig) models.GeneralConfig {
	value := fallback
	GetConfig(ConfigGeneral, &value)
	return value
}

func SetGeneralConfig(value models.GeneralConfig) error {
	return SetConfig(ConfigGeneral, value)
}

func GetCarousel(fallback []string) []string {
	value := fallback
	GetConfig(ConfigCarousel, &value)
	return value
}

func SetCarousel(value []string) error {
	return SetConfig(ConfigCarousel, value)
}

func GetLastSync() string {
	value := "En línea"
	GetConfig(ConfigLastSync, &value)
	return value
}

func SetLastSync(value string) error {
	return SetConfig(ConfigLastSync, value)
}
