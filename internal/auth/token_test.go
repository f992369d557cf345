package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spec-kit/food-supply/internal/domain"
)

// forgeToken builds an HS256 token directly so tests can control every claim.
func forgeToken(t *testing.T, secret string, payload map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	signingInput := header + "." + base64.RawURLEncoding.EncodeToString(body)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signingInput))
	return signingInput + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func flipLastChar(s string) string {
	replacement := byte('A')
	if s[len(s)-1] == 'A' {
		replacement = 'B'
	}
	return s[:len(s)-1] + string(replacement)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, exp, err := tm.Issue("v-1", "a@b.com", domain.RoleVendor)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	remaining := time.Until(exp)
	if remaining < SessionTTL-time.Minute || remaining > SessionTTL {
		t.Fatalf("expected ~7d TTL, got %v", remaining)
	}

	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.SubjectID != "v-1" {
		t.Fatalf("expected subject v-1, got %s", claims.SubjectID)
	}
	if claims.Email != "a@b.com" {
		t.Fatalf("expected email a@b.com, got %s", claims.Email)
	}
	if claims.Role != domain.RoleVendor {
		t.Fatalf("expected role vendor, got %s", claims.Role)
	}
	if claims.ExpiresAt.Unix() != exp.Unix() {
		t.Fatalf("expected exp %v, got %v", exp.Unix(), claims.ExpiresAt.Unix())
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, _, err := tm.Issue("v-1", "a@b.com", domain.RoleVendor)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := tm.Verify(flipLastChar(token)); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a")
	verifier := NewTokenManager("secret-b")

	token, _, err := issuer.Issue("v-1", "a@b.com", domain.RoleVendor)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyRejectsMalformedTokens(t *testing.T) {
	tm := NewTokenManager("test-secret")

	cases := []string{
		"",
		"abc",
		"a.b",
		"a..c",
		"a.b.c.d",
		"header.!!!not-base64!!!.sig",
		"header." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".sig",
	}
	for _, raw := range cases {
		if _, err := tm.Verify(raw); !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("token %q: expected ErrMalformedToken, got %v", raw, err)
		}
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret")

	expired := forgeToken(t, "test-secret", map[string]any{
		"id":    "v-1",
		"email": "a@b.com",
		"role":  "vendor",
		"iat":   time.Now().Add(-8 * 24 * time.Hour).Unix(),
		"exp":   time.Now().Add(-24 * time.Hour).Unix(),
	})
	if _, err := tm.Verify(expired); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyChecksExpiryBeforeSignature(t *testing.T) {
	tm := NewTokenManager("test-secret")

	expired := forgeToken(t, "some-other-secret", map[string]any{
		"id":    "v-1",
		"email": "a@b.com",
		"role":  "vendor",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	if _, err := tm.Verify(expired); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyRejectsUnknownRole(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token := forgeToken(t, "test-secret", map[string]any{
		"id":    "x-1",
		"email": "a@b.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	if _, err := tm.Verify(token); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken for unknown role, got %v", err)
	}
}

func TestIssueProducesThreeSegmentToken(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, _, err := tm.Issue("s-1", "s@b.com", domain.RoleSeller)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(parts))
	}
}
