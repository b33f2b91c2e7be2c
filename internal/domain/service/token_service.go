package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for admin bearer tokens.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// Tokens are stateless: nothing is stored on issue.
type TokenService interface {
	// IssueToken signs a token for an already authenticated username.
	IssueToken(username string) (token string, expiresAt time.Time, err error)

	// VerifyToken returns the claims of a well-signed, unexpired token.
	VerifyToken(tokenString string) (*Claims, error)
}
