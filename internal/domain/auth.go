package domain

import "time"

// Claims is the decoded payload of a session token.
type Claims struct {
	SubjectID string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Identity is a verified caller whose subject was re-confirmed in the store.
// Exactly one of Seller/Vendor is set, matching Role.
type Identity struct {
	ID     string
	Email  string
	Role   Role
	Seller *Seller
	Vendor *Vendor
}
