package usecase

import (
	"context"
	"time"

	"workbench/internal/domain/entity"
)

// LoginInput holds the credentials submitted to the login endpoint.
type LoginInput struct {
	Username string
	Password string
}

// AuthResult is the bearer token handed back after a successful login.
type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthUsecase defines admin authentication use cases.
type AuthUsecase interface {
	// Login checks the credentials and issues a signed token.
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)

	// Authenticate resolves a bearer token to the principal it was issued for.
	Authenticate(ctx context.Context, token string) (*entity.Principal, error)
}
