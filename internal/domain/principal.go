package domain

import "time"

// Role is the closed set of principal roles.
type Role string

const (
	RoleSeller Role = "seller"
	RoleVendor Role = "vendor"
)

// ParseRole maps a raw role string to a Role.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleSeller:
		return RoleSeller, true
	case RoleVendor:
		return RoleVendor, true
	default:
		return "", false
	}
}

// Seller is the domain model for supply-side businesses.
type Seller struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    string
	Phone           *string
	Address         *string
	BusinessName    *string
	BusinessType    *string
	BusinessLicense *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Vendor is the domain model for street-food vendors buying supplies.
type Vendor struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Address      *string
	BusinessName *string
	FoodType     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
