package storage

import (
	"errors"
	"log"
	"strings"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateResult is returned instead of an error so the registration form can
// render the message inline.
type CreateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func GetAllUsers() []models.User {
	users := []models.User{}
	if DB == nil {
		return users
	}
	if err := DB.Find(&users).Error; err != nil {
		log.Println("users read failed:", err)
		return []models.User{}
	}
	return users
}

// FindUserByEmail reports absence through the bool, not an error.
func FindUserByEmail(email string) (*models.User, bool) {
	if DB == nil {
		return nil, false
	}
	var user models.User
	err := DB.First(&user, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("user lookup failed:", err)
		}
		return nil, false
	}
	return &user, true
}

// CreateUser upserts by email: registering an address that already exists
// overwrites the previous record in full (last write wins).
func CreateUser(user models.User) CreateResult {
	if DB == nil {
		return CreateResult{Success: false, Message: "Error al crear usuario"}
	}
	user.Email = strings.ToLower(user.Email)
	err := DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&user).Error
	if err != nil {
		log.Println("user create failed:", err)
		return CreateResult{Success: false, Message: "Error al crear usuario"}
	}
	Notify(StoreUsers)
	return CreateResult{Success: true, Message: "OK"}
}
