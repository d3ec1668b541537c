package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Roles  []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for the identity provider's access tokens.
// Issuing belongs to the identity provider; this service only needs to validate, and
// issues tokens for tooling and tests.
type TokenService interface {
	// IssueAccessToken creates an access token for a user with the given roles.
	IssueAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
