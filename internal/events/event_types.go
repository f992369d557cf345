package events

import (
	"time"

	"github.com/spec-kit/food-supply/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPrincipalRegistered EventType = "principal_registered"
	EventPrincipalLoggedIn   EventType = "principal_logged_in"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	PrincipalID string      `json:"principal_id"`
	Role        domain.Role `json:"role"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// PrincipalRegisteredPayload payload.
type PrincipalRegisteredPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PrincipalLoggedInPayload payload.
type PrincipalLoggedInPayload struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
