package dto

import (
	"time"

	"github.com/spec-kit/food-supply/internal/domain"
)

// VendorRegisterRequest payload for new vendors.
type VendorRegisterRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	BusinessName *string `json:"business_name"`
	FoodType     *string `json:"food_type"`
}

// VendorLoginRequest payload for login.
type VendorLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VendorUpdateRequest payload for profile updates.
type VendorUpdateRequest struct {
	Name         string  `json:"name"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	BusinessName *string `json:"business_name"`
	FoodType     *string `json:"food_type"`
}

// VendorResponse is the vendor view without credential material.
type VendorResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	BusinessName *string   `json:"business_name,omitempty"`
	FoodType     *string   `json:"food_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewVendorResponse maps a domain vendor to its API view.
func NewVendorResponse(vendor *domain.Vendor) VendorResponse {
	return VendorResponse{
		ID:           vendor.ID,
		Name:         vendor.Name,
		Email:        vendor.Email,
		Phone:        vendor.Phone,
		Address:      vendor.Address,
		BusinessName: vendor.BusinessName,
		FoodType:     vendor.FoodType,
		CreatedAt:    vendor.CreatedAt,
		UpdatedAt:    vendor.UpdatedAt,
	}
}
