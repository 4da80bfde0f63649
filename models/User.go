package models

// User is a site visitor account, keyed by email. Writing a user with an
// existing email overwrites the previous record (last write wins).
type User struct {
	Email       string `json:"email" gorm:"primaryKey"`
	Password    string `json:"-" gorm:"type:text"` // bcrypt hash, never serialized
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	PhoneNumber string `json:"phoneNumber"`
}
