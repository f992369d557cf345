package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/food-supply/internal/domain"
)

func newGuardedApp(tm *TokenManager) *fiber.App {
	guard := NewRouteGuard(tm, GuardConfig{
		CookieName:      VendorCookie,
		AuthEntryPath:   "/vendor",
		ProtectedPrefix: "/vendor/dashboard",
		DashboardPath:   "/vendor/dashboard",
	}, zap.NewNop())

	app := fiber.New()
	app.Get("/vendor", guard.Handle, func(c *fiber.Ctx) error {
		return c.SendString("login")
	})
	app.Get("/vendor/dashboard", guard.Handle, func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})
	return app
}

func guardRequest(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: VendorCookie, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	return resp
}

func TestGuardRedirectsProtectedRouteWithoutCookie(t *testing.T) {
	tm := NewTokenManager("test-secret")
	app := newGuardedApp(tm)

	resp := guardRequest(t, app, "/vendor/dashboard", "")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/vendor" {
		t.Fatalf("expected redirect to /vendor, got %q", loc)
	}
}

func TestGuardPassesAuthEntryWithoutCookie(t *testing.T) {
	tm := NewTokenManager("test-secret")
	app := newGuardedApp(tm)

	resp := guardRequest(t, app, "/vendor", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestGuardShortCircuitsLoggedInVisitor(t *testing.T) {
	tm := NewTokenManager("test-secret")
	app := newGuardedApp(tm)

	token, _, err := tm.Issue("v-1", "a@b.com", domain.RoleVendor)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	resp := guardRequest(t, app, "/vendor", token)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/vendor/dashboard" {
		t.Fatalf("expected redirect to /vendor/dashboard, got %q", loc)
	}
}

func TestGuardPassesProtectedRouteWithValidCookie(t *testing.T) {
	tm := NewTokenManager("test-secret")
	app := newGuardedApp(tm)

	token, _, err := tm.Issue("v-1", "a@b.com", domain.RoleVendor)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	resp := guardRequest(t, app, "/vendor/dashboard", token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestGuardClearsExpiredCookieOnProtectedRoute(t *testing.T) {
	tm := NewTokenManager("test-secret")
	app := newGuardedApp(tm)

	expired := forgeToken(t, "test-secret", map[string]any{
		"id":    "v-1",
		"email": "a@b.com",
		"role":  "vendor",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	resp := guardRequest(t, app, "/vendor/dashboard", expired)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/vendor" {
		t.Fatalf("expected redirect to /vendor, got %q", loc)
	}

	setCookie := resp.Header.Get("Set-Cookie")
	if !strings.Contains(setCookie, VendorCookie+"=") {
		t.Fatalf("expected %s to be cleared, got Set-Cookie %q", VendorCookie, setCookie)
	}
}

func TestGuardIgnoresStaleCookieOnAuthEntry(t *testing.T) {
	tm := NewTokenManager("test-secret")
	app := newGuardedApp(tm)

	resp := guardRequest(t, app, "/vendor", "garbage-token")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if setCookie := resp.Header.Get("Set-Cookie"); setCookie != "" {
		t.Fatalf("stale cookie on auth entry must not be touched, got Set-Cookie %q", setCookie)
	}
}
