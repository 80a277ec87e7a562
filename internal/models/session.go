package models

import "github.com/golang-jwt/jwt/v5"

// AdminEmail and AdminPassword are the only accepted credentials.
const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "admin123"
)

// AuthFlagKey names the persisted authentication flag; AuthFlagValue is the only value that counts as signed in.
const (
	AuthFlagKey   = "admin_authenticated"
	AuthFlagValue = "true"
)

// SessionClaims is the payload of a signed session token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}
