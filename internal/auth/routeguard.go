package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Session cookie names for page navigation, one per role.
const (
	SellerCookie = "sellerToken"
	VendorCookie = "vendorToken"
)

// GuardConfig classifies one role's page routes.
type GuardConfig struct {
	// CookieName carries the session token for page navigation.
	CookieName string
	// AuthEntryPath is the login/landing page, matched exactly.
	AuthEntryPath string
	// ProtectedPrefix matches routes that require a valid session.
	ProtectedPrefix string
	// DashboardPath is where already-authenticated visitors land.
	DashboardPath string
}

// RouteGuard gates page routes on a cookie-borne session token. The check is
// cookie-only and never touches the store, trading strict correctness for
// low latency at the edge.
type RouteGuard struct {
	tokens *TokenManager
	cfg    GuardConfig
	logger *zap.Logger
}

// NewRouteGuard constructs a guard for one role's routes.
func NewRouteGuard(tokens *TokenManager, cfg GuardConfig, logger *zap.Logger) *RouteGuard {
	return &RouteGuard{tokens: tokens, cfg: cfg, logger: logger}
}

// Handle applies the allow/redirect state machine for the request path.
func (g *RouteGuard) Handle(c *fiber.Ctx) error {
	path := c.Path()
	authEntry := path == g.cfg.AuthEntryPath
	protected := strings.HasPrefix(path, g.cfg.ProtectedPrefix)
	if !authEntry && !protected {
		return c.Next()
	}

	token := c.Cookies(g.cfg.CookieName)
	if token == "" {
		if protected {
			return c.Redirect(g.cfg.AuthEntryPath, fiber.StatusFound)
		}
		return c.Next()
	}

	if _, err := g.tokens.Verify(token); err != nil {
		g.logger.Debug("stale session cookie",
			zap.String("path", path),
			zap.String("cookie", g.cfg.CookieName),
			zap.Error(err))
		if protected {
			c.ClearCookie(g.cfg.CookieName)
			return c.Redirect(g.cfg.AuthEntryPath, fiber.StatusFound)
		}
		// Stale cookie on the login page is ignored.
		return c.Next()
	}

	if authEntry {
		return c.Redirect(g.cfg.DashboardPath, fiber.StatusFound)
	}
	return c.Next()
}
