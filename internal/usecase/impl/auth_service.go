package impl

import (
	"context"

	"workbench/internal/domain/entity"
	domainerrors "workbench/internal/domain/errors"
	"workbench/internal/domain/service"
	"workbench/internal/usecase"

	"github.com/pkg/errors"
)

type authService struct {
	credentials service.CredentialStore
	tokenSvc    service.TokenService
}

// NewAuthService creates a new auth service instance
func NewAuthService(credentials service.CredentialStore, tokenSvc service.TokenService) usecase.AuthUsecase {
	return &authService{
		credentials: credentials,
		tokenSvc:    tokenSvc,
	}
}

// Login checks the admin credentials and issues a token.
func (s *authService) Login(_ context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	if input == nil || input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("username and password are required")
	}

	if !s.credentials.Authenticate(input.Username, input.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenSvc.IssueToken(input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate verifies a bearer token and returns its principal.
func (s *authService) Authenticate(_ context.Context, token string) (*entity.Principal, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := s.tokenSvc.VerifyToken(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrTokenInvalid, "unknown role %q", claims.Role)
	}

	return &entity.Principal{
		Username: claims.Username,
		Role:     role,
	}, nil
}
