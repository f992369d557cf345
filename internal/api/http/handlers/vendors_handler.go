package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/food-supply/internal/api/dto"
	"github.com/spec-kit/food-supply/internal/auth"
	"github.com/spec-kit/food-supply/internal/domain"
	"github.com/spec-kit/food-supply/internal/service"
	apperrors "github.com/spec-kit/food-supply/pkg/util/errorutil"
)

// VendorsHandler exposes auth and profile endpoints for vendors.
type VendorsHandler struct {
	auth *service.AuthService
}

// NewVendorsHandler constructs handler.
func NewVendorsHandler(authService *service.AuthService) *VendorsHandler {
	return &VendorsHandler{auth: authService}
}

// Register handles POST /api/vendors/register.
func (h *VendorsHandler) Register(c *fiber.Ctx) error {
	var req dto.VendorRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, password required")
	}

	vendor, err := h.auth.RegisterVendor(c.Context(), service.RegisterVendorInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Phone:        req.Phone,
		Address:      req.Address,
		BusinessName: req.BusinessName,
		FoodType:     req.FoodType,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"vendor": dto.NewVendorResponse(vendor)},
	})
}

// Login handles POST /api/vendors/login.
func (h *VendorsHandler) Login(c *fiber.Ctx) error {
	var req dto.VendorLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	vendor, token, exp, err := h.auth.LoginVendor(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.VendorCookie,
		Value:    token,
		Expires:  exp,
		Path:     "/",
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"vendor": dto.NewVendorResponse(vendor),
			"auth":   dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Verify handles GET /api/vendors/verify. It re-confirms the subject in the
// store, so a deleted vendor yields 404 even with a valid token.
func (h *VendorsHandler) Verify(c *fiber.Ctx) error {
	token, err := auth.BearerToken(c.Get("Authorization"))
	if err != nil {
		return apperrors.NewUnauthorized("missing or invalid authorization header")
	}

	claims, err := h.auth.TokenManager().Verify(token)
	if err != nil || claims.Role != domain.RoleVendor {
		return apperrors.NewUnauthorized("invalid or expired token")
	}

	vendor, err := h.auth.VendorByID(c.Context(), claims.SubjectID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"vendor": dto.NewVendorResponse(vendor)},
	})
}

// Profile handles GET /api/vendors/profile.
func (h *VendorsHandler) Profile(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	vendor, err := h.auth.VendorByID(c.Context(), identity.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"vendor": dto.NewVendorResponse(vendor)},
	})
}

// UpdateProfile handles PUT /api/vendors/profile.
func (h *VendorsHandler) UpdateProfile(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.VendorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	vendor, err := h.auth.UpdateVendorProfile(c.Context(), identity.ID, service.UpdateVendorInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		BusinessName: req.BusinessName,
		FoodType:     req.FoodType,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"vendor": dto.NewVendorResponse(vendor)},
	})
}
