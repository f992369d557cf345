package dto

import (
	"time"

	"github.com/spec-kit/food-supply/internal/domain"
)

// SellerRegisterRequest payload for new sellers.
type SellerRegisterRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	BusinessName    *string `json:"business_name"`
	BusinessType    *string `json:"business_type"`
	BusinessLicense *string `json:"business_license"`
}

// SellerLoginRequest payload for login.
type SellerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SellerUpdateRequest payload for profile updates.
type SellerUpdateRequest struct {
	Name            string  `json:"name"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	BusinessName    *string `json:"business_name"`
	BusinessType    *string `json:"business_type"`
	BusinessLicense *string `json:"business_license"`
}

// SellerResponse is the seller view without credential material.
type SellerResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone,omitempty"`
	Address         *string   `json:"address,omitempty"`
	BusinessName    *string   `json:"business_name,omitempty"`
	BusinessType    *string   `json:"business_type,omitempty"`
	BusinessLicense *string   `json:"business_license,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewSellerResponse maps a domain seller to its API view.
func NewSellerResponse(seller *domain.Seller) SellerResponse {
	return SellerResponse{
		ID:              seller.ID,
		Name:            seller.Name,
		Email:           seller.Email,
		Phone:           seller.Phone,
		Address:         seller.Address,
		BusinessName:    seller.BusinessName,
		BusinessType:    seller.BusinessType,
		BusinessLicense: seller.BusinessLicense,
		CreatedAt:       seller.CreatedAt,
		UpdatedAt:       seller.UpdatedAt,
	}
}
