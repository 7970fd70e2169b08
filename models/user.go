package models

// Role values accepted by account operations
const (
	RoleCustomer = "customer"
	RoleDriver   = "driver"
	RoleManager  = "manager"
)

// User represents an account in the pizza store system. The login doubles
// as the primary key; the password is stored exactly as entered.
type User struct {
	Login         string `gorm:"primaryKey"`
	Password      string `gorm:"not null"`
	Role          string `gorm:"not null;default:'customer'"` // "customer", "driver" or "manager"
	FavoriteItems string
	PhoneNum      string
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsValidRole reports whether role is one of the three accepted role values.
func IsValidRole(role string) bool {
	return role == RoleCustomer || role == RoleDriver || role == RoleManager
}
