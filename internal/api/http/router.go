package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/food-supply/internal/api/http/handlers"
	"github.com/spec-kit/food-supply/internal/auth"
	"github.com/spec-kit/food-supply/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Sellers        *handlers.SellersHandler
	Vendors        *handlers.VendorsHandler
	Pages          *handlers.PagesHandler
	AuthMiddleware *auth.AuthMiddleware
	SellerGuard    *auth.RouteGuard
	VendorGuard    *auth.RouteGuard
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	sellers := app.Group("/api/sellers")
	sellers.Post("/register", cfg.Sellers.Register)
	sellers.Post("/login", cfg.Sellers.Login)
	sellers.Get("/verify", cfg.Sellers.Verify)

	sellerProfile := sellers.Group("/profile", cfg.AuthMiddleware.RequireRole(domain.RoleSeller))
	sellerProfile.Get("", cfg.Sellers.Profile)
	sellerProfile.Put("", cfg.Sellers.UpdateProfile)

	vendors := app.Group("/api/vendors")
	vendors.Post("/register", cfg.Vendors.Register)
	vendors.Post("/login", cfg.Vendors.Login)
	vendors.Get("/verify", cfg.Vendors.Verify)

	vendorProfile := vendors.Group("/profile", cfg.AuthMiddleware.RequireRole(domain.RoleVendor))
	vendorProfile.Get("", cfg.Vendors.Profile)
	vendorProfile.Put("", cfg.Vendors.UpdateProfile)

	app.Get("/seller", cfg.SellerGuard.Handle, cfg.Pages.SellerLogin)
	app.Get("/seller/dashboard", cfg.SellerGuard.Handle, cfg.Pages.SellerDashboard)
	app.Get("/vendor", cfg.VendorGuard.Handle, cfg.Pages.VendorLogin)
	app.Get("/vendor/dashboard", cfg.VendorGuard.Handle, cfg.Pages.VendorDashboard)
}
