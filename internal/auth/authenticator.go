package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/food-supply/internal/domain"
	"github.com/spec-kit/food-supply/internal/repository"
)

var (
	ErrMissingCredentials = errors.New("missing bearer credentials")
	ErrRoleMismatch       = errors.New("token role mismatch")
	ErrPrincipalNotFound  = errors.New("principal not found")
)

// Authenticator resolves bearer tokens to verified identities, re-confirming
// the subject still exists in the store on every call.
type Authenticator struct {
	tokens  *TokenManager
	sellers repository.SellerRepository
	vendors repository.VendorRepository
}

// NewAuthenticator constructs an authenticator over the given stores.
func NewAuthenticator(tokens *TokenManager, sellers repository.SellerRepository, vendors repository.VendorRepository) *Authenticator {
	return &Authenticator{tokens: tokens, sellers: sellers, vendors: vendors}
}

// Authenticate verifies the Authorization header against the expected role
// and resolves the subject. Failures carry a specific kind internally;
// callers at the HTTP boundary collapse them to a generic 401.
func (a *Authenticator) Authenticate(ctx context.Context, expected domain.Role, authHeader string) (*domain.Identity, error) {
	token, err := BearerToken(authHeader)
	if err != nil {
		return nil, err
	}

	claims, err := a.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	if claims.Role != expected {
		return nil, ErrRoleMismatch
	}

	return a.resolve(ctx, claims)
}

// AuthenticateAny dispatches on the role embedded in the token.
func (a *Authenticator) AuthenticateAny(ctx context.Context, authHeader string) (*domain.Identity, error) {
	token, err := BearerToken(authHeader)
	if err != nil {
		return nil, err
	}

	claims, err := a.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	return a.resolve(ctx, claims)
}

func (a *Authenticator) resolve(ctx context.Context, claims *domain.Claims) (*domain.Identity, error) {
	identity := &domain.Identity{ID: claims.SubjectID, Email: claims.Email, Role: claims.Role}

	switch claims.Role {
	case domain.RoleSeller:
		seller, err := a.sellers.GetByID(ctx, claims.SubjectID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrPrincipalNotFound
			}
			return nil, err
		}
		identity.Seller = seller
	case domain.RoleVendor:
		vendor, err := a.vendors.GetByID(ctx, claims.SubjectID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrPrincipalNotFound
			}
			return nil, err
		}
		identity.Vendor = vendor
	default:
		return nil, ErrRoleMismatch
	}

	return identity, nil
}

// BearerToken extracts the token from an Authorization header.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingCredentials
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMissingCredentials
	}
	return parts[1], nil
}
