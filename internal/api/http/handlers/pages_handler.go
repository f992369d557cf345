package handlers

import "github.com/gofiber/fiber/v2"

// PagesHandler serves the guarded page routes. Rendering is minimal; the
// interesting behavior lives in the route guard in front of these handlers.
type PagesHandler struct{}

// NewPagesHandler returns a new handler instance.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// SellerLogin handles GET /seller.
func (h *PagesHandler) SellerLogin(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "seller_login"})
}

// SellerDashboard handles GET /seller/dashboard.
func (h *PagesHandler) SellerDashboard(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "seller_dashboard"})
}

// VendorLogin handles GET /vendor.
func (h *PagesHandler) VendorLogin(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "vendor_login"})
}

// VendorDashboard handles GET /vendor/dashboard.
func (h *PagesHandler) VendorDashboard(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "vendor_dashboard"})
}
