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

// SellersHandler exposes auth and profile endpoints for sellers.
type SellersHandler struct {
	auth *service.AuthService
}

// NewSellersHandler constructs handler.
func NewSellersHandler(authService *service.AuthService) *SellersHandler {
	return &SellersHandler{auth: authService}
}

// Register handles POST /api/sellers/register.
func (h *SellersHandler) Register(c *fiber.Ctx) error {
	var req dto.SellerRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, password required")
	}

	seller, err := h.auth.RegisterSeller(c.Context(), service.RegisterSellerInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		Phone:           req.Phone,
		Address:         req.Address,
		BusinessName:    req.BusinessName,
		BusinessType:    req.BusinessType,
		BusinessLicense: req.BusinessLicense,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"seller": dto.NewSellerResponse(seller)},
	})
}

// Login handles POST /api/sellers/login.
func (h *SellersHandler) Login(c *fiber.Ctx) error {
	var req dto.SellerLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	seller, token, exp, err := h.auth.LoginSeller(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.SellerCookie,
		Value:    token,
		Expires:  exp,
		Path:     "/",
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"seller": dto.NewSellerResponse(seller),
			"auth":   dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Verify handles GET /api/sellers/verify. It re-confirms the subject in the
// store, so a deleted seller yields 404 even with a valid token.
func (h *SellersHandler) Verify(c *fiber.Ctx) error {
	token, err := auth.BearerToken(c.Get("Authorization"))
	if err != nil {
		return apperrors.NewUnauthorized("missing or invalid authorization header")
	}

	claims, err := h.auth.TokenManager().Verify(token)
	if err != nil || claims.Role != domain.RoleSeller {
		return apperrors.NewUnauthorized("invalid or expired token")
	}

	seller, err := h.auth.SellerByID(c.Context(), claims.SubjectID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"seller": dto.NewSellerResponse(seller)},
	})
}

// Profile handles GET /api/sellers/profile.
func (h *SellersHandler) Profile(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	seller, err := h.auth.SellerByID(c.Context(), identity.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"seller": dto.NewSellerResponse(seller)},
	})
}

// UpdateProfile handles PUT /api/sellers/profile.
func (h *SellersHandler) UpdateProfile(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.SellerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	seller, err := h.auth.UpdateSellerProfile(c.Context(), identity.ID, service.UpdateSellerInput{
		Name:            req.Name,
		Phone:           req.Phone,
		Address:         req.Address,
		BusinessName:    req.BusinessName,
		BusinessType:    req.BusinessType,
		BusinessLicense: req.BusinessLicense,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"seller": dto.NewSellerResponse(seller)},
	})
}
