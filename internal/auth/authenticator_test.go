package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/food-supply/internal/domain"
)

type stubSellerRepo struct {
	sellers map[string]*domain.Seller
}

func (r *stubSellerRepo) Create(_ context.Context, seller *domain.Seller) error {
	r.sellers[seller.ID] = seller
	return nil
}

func (r *stubSellerRepo) Update(_ context.Context, seller *domain.Seller) error {
	if _, ok := r.sellers[seller.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.sellers[seller.ID] = seller
	return nil
}

func (r *stubSellerRepo) GetByID(_ context.Context, id string) (*domain.Seller, error) {
	if seller, ok := r.sellers[id]; ok {
		return seller, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *stubSellerRepo) GetByEmail(_ context.Context, email string) (*domain.Seller, error) {
	for _, seller := range r.sellers {
		if seller.Email == email {
			return seller, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type stubVendorRepo struct {
	vendors map[string]*domain.Vendor
}

func (r *stubVendorRepo) Create(_ context.Context, vendor *domain.Vendor) error {
	r.vendors[vendor.ID] = vendor
	return nil
}

func (r *stubVendorRepo) Update(_ context.Context, vendor *domain.Vendor) error {
	if _, ok := r.vendors[vendor.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.vendors[vendor.ID] = vendor
	return nil
}

func (r *stubVendorRepo) GetByID(_ context.Context, id string) (*domain.Vendor, error) {
	if vendor, ok := r.vendors[id]; ok {
		return vendor, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *stubVendorRepo) GetByEmail(_ context.Context, email string) (*domain.Vendor, error) {
	for _, vendor := range r.vendors {
		if vendor.Email == email {
			return vendor, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newTestAuthenticator() (*Authenticator, *TokenManager, *stubSellerRepo, *stubVendorRepo) {
	tm := NewTokenManager("test-secret")
	sellers := &stubSellerRepo{sellers: map[string]*domain.Seller{}}
	vendors := &stubVendorRepo{vendors: map[string]*domain.Vendor{}}
	return NewAuthenticator(tm, sellers, vendors), tm, sellers, vendors
}

func TestAuthenticateRequiresBearerHeader(t *testing.T) {
	authn, _, _, _ := newTestAuthenticator()
	ctx := context.Background()

	if _, err := authn.Authenticate(ctx, domain.RoleSeller, ""); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials for empty header, got %v", err)
	}
	if _, err := authn.Authenticate(ctx, domain.RoleSeller, "Token abc"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials for non-bearer scheme, got %v", err)
	}
}

func TestAuthenticateRejectsRoleMismatch(t *testing.T) {
	authn, tm, _, vendors := newTestAuthenticator()
	vendors.vendors["v-1"] = &domain.Vendor{ID: "v-1", Email: "v@b.com"}

	token, _, err := tm.Issue("v-1", "v@b.com", domain.RoleVendor)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := authn.Authenticate(context.Background(), domain.RoleSeller, "Bearer "+token); !errors.Is(err, ErrRoleMismatch) {
		t.Fatalf("expected ErrRoleMismatch, got %v", err)
	}
}

func TestAuthenticateRejectsDeletedPrincipal(t *testing.T) {
	authn, tm, _, _ := newTestAuthenticator()

	token, _, err := tm.Issue("s-gone", "s@b.com", domain.RoleSeller)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := authn.Authenticate(context.Background(), domain.RoleSeller, "Bearer "+token); !errors.Is(err, ErrPrincipalNotFound) {
		t.Fatalf("expected ErrPrincipalNotFound, got %v", err)
	}
}

func TestAuthenticateResolvesIdentity(t *testing.T) {
	authn, tm, sellers, _ := newTestAuthenticator()
	sellers.sellers["s-1"] = &domain.Seller{ID: "s-1", Name: "Asha", Email: "s@b.com"}

	token, _, err := tm.Issue("s-1", "s@b.com", domain.RoleSeller)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	identity, err := authn.Authenticate(context.Background(), domain.RoleSeller, "Bearer "+token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if identity.ID != "s-1" || identity.Role != domain.RoleSeller {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if identity.Seller == nil || identity.Seller.Name != "Asha" {
		t.Fatalf("expected seller summary, got %+v", identity.Seller)
	}
	if identity.Vendor != nil {
		t.Fatal("vendor must be unset on a seller identity")
	}
}

func TestAuthenticateAnyDispatchesOnTokenRole(t *testing.T) {
	authn, tm, _, vendors := newTestAuthenticator()
	vendors.vendors["v-1"] = &domain.Vendor{ID: "v-1", Name: "Ravi", Email: "v@b.com"}

	token, _, err := tm.Issue("v-1", "v@b.com", domain.RoleVendor)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	identity, err := authn.AuthenticateAny(context.Background(), "Bearer "+token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if identity.Role != domain.RoleVendor || identity.Vendor == nil {
		t.Fatalf("expected vendor identity, got %+v", identity)
	}
}

func TestAuthenticatePropagatesVerifierFailures(t *testing.T) {
	authn, _, _, _ := newTestAuthenticator()

	if _, err := authn.Authenticate(context.Background(), domain.RoleSeller, "Bearer not-a-token"); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}
