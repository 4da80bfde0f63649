package models

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleEditor     = "EDITOR"
)

// AdminUser is an editor seat managed from the team dashboard. Access codes
// are stored as bcrypt hashes; the role is always EDITOR (the super admin is
// not a record, it authenticates against the configured passphrase).
type AdminUser struct {
	ID             string `json:"id" gorm:"primaryKey"`
	Name           string `json:"name"`
	AccessCodeHash string `json:"-" gorm:"type:text"`
	Role           string `json:"role" gorm:"type:varchar(20);default:EDITOR"`
}
