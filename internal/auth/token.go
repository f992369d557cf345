package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/food-supply/internal/domain"
)

// SessionTTL is the fixed validity window for session tokens.
const SessionTTL = 7 * 24 * time.Hour

var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// TokenManager issues and verifies HS256 session tokens. Verification is
// pure computation over the token string and secret, so the same routine
// serves both the bearer authenticator and the cookie route guard.
type TokenManager struct {
	secret []byte
}

// NewTokenManager builds a manager for the given signing secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

type tokenClaims struct {
	SubjectID string      `json:"id"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a session token for the subject with issued-at now and expiry
// now + SessionTTL.
func (tm *TokenManager) Issue(subjectID, email string, role domain.Role) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(SessionTTL)
	claims := &tokenClaims{
		SubjectID: subjectID,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

type tokenPayload struct {
	SubjectID string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Verify validates a token's structure, expiry and signature without I/O
// and returns its claims. Expiry is checked before the signature, matching
// the wire contract consumers rely on.
func (tm *TokenManager) Verify(token string) (*domain.Claims, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 || segments[0] == "" || segments[1] == "" || segments[2] == "" {
		return nil, ErrMalformedToken
	}

	payloadRaw, err := base64.RawURLEncoding.DecodeString(segments[1])
	if err != nil {
		return nil, ErrMalformedToken
	}
	var payload tokenPayload
	if err := json.Unmarshal(payloadRaw, &payload); err != nil {
		return nil, ErrMalformedToken
	}

	if payload.ExpiresAt != 0 && !time.Now().Before(time.Unix(payload.ExpiresAt, 0)) {
		return nil, ErrTokenExpired
	}

	mac := hmac.New(sha256.New, tm.secret)
	mac.Write([]byte(segments[0] + "." + segments[1]))
	expected := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(segments[2])) {
		return nil, ErrInvalidSignature
	}

	role, ok := domain.ParseRole(payload.Role)
	if !ok {
		return nil, ErrMalformedToken
	}

	return &domain.Claims{
		SubjectID: payload.SubjectID,
		Email:     payload.Email,
		Role:      role,
		IssuedAt:  time.Unix(payload.IssuedAt, 0),
		ExpiresAt: time.Unix(payload.ExpiresAt, 0),
	}, nil
}
