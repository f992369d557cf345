package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/food-supply/internal/auth"
	"github.com/spec-kit/food-supply/internal/config"
	"github.com/spec-kit/food-supply/internal/domain"
	"github.com/spec-kit/food-supply/internal/events"
	"github.com/spec-kit/food-supply/internal/repository"
	apperrors "github.com/spec-kit/food-supply/pkg/util/errorutil"
)

// Login failures are deliberately indistinguishable between unknown email
// and wrong password.
const invalidCredentialsMsg = "invalid email or password"

// RegisterSellerInput carries seller registration fields.
type RegisterSellerInput struct {
	Name            string
	Email           string
	Password        string
	Phone           *string
	Address         *string
	BusinessName    *string
	BusinessType    *string
	BusinessLicense *string
}

// RegisterVendorInput carries vendor registration fields.
type RegisterVendorInput struct {
	Name         string
	Email        string
	Password     string
	Phone        *string
	Address      *string
	BusinessName *string
	FoodType     *string
}

// UpdateSellerInput carries mutable seller profile fields.
type UpdateSellerInput struct {
	Name            string
	Phone           *string
	Address         *string
	BusinessName    *string
	BusinessType    *string
	BusinessLicense *string
}

// UpdateVendorInput carries mutable vendor profile fields.
type UpdateVendorInput struct {
	Name         string
	Phone        *string
	Address      *string
	BusinessName *string
	FoodType     *string
}

// AuthService coordinates registration, login and profile flows for both
// principal roles.
type AuthService struct {
	sellers    repository.SellerRepository
	vendors    repository.VendorRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for the service.
type AuthDependencies struct {
	SellerRepo repository.SellerRepository
	VendorRepo repository.VendorRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		sellers:    deps.SellerRepo,
		vendors:    deps.VendorRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterSeller creates a new seller account.
func (s *AuthService) RegisterSeller(ctx context.Context, input RegisterSellerInput) (*domain.Seller, error) {
	if _, err := s.sellers.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("a seller with this email already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	seller := &domain.Seller{
		Name:            input.Name,
		Email:           input.Email,
		PasswordHash:    hash,
		Phone:           input.Phone,
		Address:         input.Address,
		BusinessName:    input.BusinessName,
		BusinessType:    input.BusinessType,
		BusinessLicense: input.BusinessLicense,
	}
	if err := s.sellers.Create(ctx, seller); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventPrincipalRegistered, seller.ID, domain.RoleSeller,
		events.PrincipalRegisteredPayload{Name: seller.Name, Email: seller.Email})
	return seller, nil
}

// RegisterVendor creates a new vendor account.
func (s *AuthService) RegisterVendor(ctx context.Context, input RegisterVendorInput) (*domain.Vendor, error) {
	if _, err := s.vendors.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("a vendor with this email already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	vendor := &domain.Vendor{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Address:      input.Address,
		BusinessName: input.BusinessName,
		FoodType:     input.FoodType,
	}
	if err := s.vendors.Create(ctx, vendor); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventPrincipalRegistered, vendor.ID, domain.RoleVendor,
		events.PrincipalRegisteredPayload{Name: vendor.Name, Email: vendor.Email})
	return vendor, nil
}

// LoginSeller authenticates a seller and mints a session token.
func (s *AuthService) LoginSeller(ctx context.Context, email, password string) (*domain.Seller, string, time.Time, error) {
	seller, err := s.sellers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized(invalidCredentialsMsg)
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(seller.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized(invalidCredentialsMsg)
	}

	token, exp, err := s.tokenMgr.Issue(seller.ID, seller.Email, domain.RoleSeller)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventPrincipalLoggedIn, seller.ID, domain.RoleSeller,
		events.PrincipalLoggedInPayload{Email: seller.Email, ExpiresAt: exp})
	return seller, token, exp, nil
}

// LoginVendor authenticates a vendor and mints a session token.
func (s *AuthService) LoginVendor(ctx context.Context, email, password string) (*domain.Vendor, string, time.Time, error) {
	vendor, err := s.vendors.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized(invalidCredentialsMsg)
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(vendor.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized(invalidCredentialsMsg)
	}

	token, exp, err := s.tokenMgr.Issue(vendor.ID, vendor.Email, domain.RoleVendor)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventPrincipalLoggedIn, vendor.ID, domain.RoleVendor,
		events.PrincipalLoggedInPayload{Email: vendor.Email, ExpiresAt: exp})
	return vendor, token, exp, nil
}

// SellerByID loads a seller for profile and verify responses.
func (s *AuthService) SellerByID(ctx context.Context, id string) (*domain.Seller, error) {
	seller, err := s.sellers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("seller", nil)
		}
		return nil, err
	}
	return seller, nil
}

// VendorByID loads a vendor for profile and verify responses.
func (s *AuthService) VendorByID(ctx context.Context, id string) (*domain.Vendor, error) {
	vendor, err := s.vendors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("vendor", nil)
		}
		return nil, err
	}
	return vendor, nil
}

// UpdateSellerProfile updates mutable seller fields.
func (s *AuthService) UpdateSellerProfile(ctx context.Context, id string, input UpdateSellerInput) (*domain.Seller, error) {
	seller, err := s.SellerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	seller.Name = input.Name
	seller.Phone = input.Phone
	seller.Address = input.Address
	seller.BusinessName = input.BusinessName
	seller.BusinessType = input.BusinessType
	seller.BusinessLicense = input.BusinessLicense
	if err := s.sellers.Update(ctx, seller); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("seller", nil)
		}
		return nil, err
	}
	return seller, nil
}

// UpdateVendorProfile updates mutable vendor fields.
func (s *AuthService) UpdateVendorProfile(ctx context.Context, id string, input UpdateVendorInput) (*domain.Vendor, error) {
	vendor, err := s.VendorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	vendor.Name = input.Name
	vendor.Phone = input.Phone
	vendor.Address = input.Address
	vendor.BusinessName = input.BusinessName
	vendor.FoodType = input.FoodType
	if err := s.vendors.Update(ctx, vendor); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("vendor", nil)
		}
		return nil, err
	}
	return vendor, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, principalID string, role domain.Role, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		PrincipalID: principalID,
		Role:        role,
		Timestamp:   time.Now(),
		Payload:     payload,
	})
}
