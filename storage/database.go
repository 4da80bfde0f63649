package storage

import (
	"log"
	"os"
	"sync"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// schemaVersion 4 reshaped the config store from keyed records to bare
// key-value rows; upgrading past it drops and recreates config_entries.
const schemaVersion = 4

var (
	DB       *gorm.DB
	initOnce sync.Once
)

func connectToDB(dsn string) (*gorm.DB, error) {
	db, dbError := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if dbError != nil {
		return nil, dbError
	}
	return db, nil
}

func performMigrations(db *gorm.DB) error {
	// The version row must exist before we can decide on destructive steps.
	if err := db.AutoMigrate(&models.SchemaVersion{}); err != nil {
		return err
	}

	var current models.SchemaVersion
	if err := db.First(&current).Error; err != nil {
		current = models.SchemaVersion{ID: 1, Version: 0}
	}

	// One-time destructive reshape of the config store. Older deployments kept
	// configs as keyed records; everything since version 4 is bare key-value.
	if current.Version > 0 && current.Version < schemaVersion {
		if db.Migrator().HasTable(&models.ConfigEntry{}) {
			if err := db.Migrator().DropTable(&models.ConfigEntry{}); err != nil {
				log.Println("config store migration drop failed:", err)
			}
		}
	}

	if err := db.AutoMigrate(
		&models.Tour{},
		&models.User{},
		&models.AdminUser{},
		&models.Review{},
		&models.Booking{},
		&models.ConfigEntry{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	current.ID = 1
	current.Version = schemaVersion
	return db.Save(&current).Error
}

// InitializeDB opens the embedded database exactly once. Calling it again is
// a no-op. On failure DB stays nil and every accessor degrades to defaults;
// the site keeps serving built-in content rather than blocking.
func InitializeDB() *gorm.DB {
	initOnce.Do(func() {
		dsn := os.Getenv("DB_PATH")
		if dsn == "" {
			dsn = "costarica_tours.db"
		}
		db, err := openAt(dsn)
		if err != nil {
			log.Println("storage unavailable, serving in-memory defaults:", err)
			return
		}
		DB = db
	})
	return DB
}

// InitializeDBAt opens the database at an explicit DSN, replacing the active
// connection. Tests use it with an in-memory DSN.
func InitializeDBAt(dsn string) (*gorm.DB, error) {
	db, err := openAt(dsn)
	if err != nil {
		return nil, err
	}
	DB = db
	return db, nil
}

func openAt(dsn string) (*gorm.DB, error) {
	db, err := connectToDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := performMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}
