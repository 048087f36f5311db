package models

import "time"

// Role defines the allowed user roles in the system
type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleDriver   Role = "driver"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleManager, RoleDriver:
		return true
	}
	return false
}

type User struct {
	Login         string    `json:"login" gorm:"primaryKey"`
	Password      string    `json:"-" gorm:"not null"`
	Role          Role      `json:"role" gorm:"not null;default:'customer'"`
	FavoriteItems string    `json:"favorite_items"`
	PhoneNum      string    `json:"phone_num"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
