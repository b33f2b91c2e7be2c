package impl

import (
	"context"
	"testing"
	"time"

	"workbench/internal/domain/entity"
	domainerrors "workbench/internal/domain/errors"
	"workbench/internal/domain/service"
	mockSvc "workbench/internal/mocks/service"
	"workbench/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service     usecase.AuthUsecase
	credentials *mockSvc.MockCredentialStore
	tokenSvc    *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	credentials := mockSvc.NewMockCredentialStore(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	return authServiceFixtures{
		service:     NewAuthService(credentials, tokenSvc),
		credentials: credentials,
		tokenSvc:    tokenSvc,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	expiresAt := time.Now().Add(2 * time.Hour)

	fx.credentials.EXPECT().Authenticate("admin", "admin123").Return(true)
	fx.tokenSvc.EXPECT().IssueToken("admin").Return("signed-token", expiresAt, nil)

	result, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, expiresAt, result.ExpiresAt)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	tests := []struct {
		name  string
		input *usecase.LoginInput
	}{
		{name: "nil input", input: nil},
		{name: "missing username", input: &usecase.LoginInput{Password: "admin123"}},
		{name: "missing password", input: &usecase.LoginInput{Username: "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Login(context.Background(), tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
		})
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.credentials.EXPECT().Authenticate("admin", "wrong").Return(false)

	result, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "admin", Password: "wrong"})
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_IssueFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.credentials.EXPECT().Authenticate("admin", "admin123").Return(true)
	fx.tokenSvc.EXPECT().IssueToken("admin").Return("", time.Time{}, errors.New("sign failed"))

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "admin", Password: "admin123"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenSvc.EXPECT().VerifyToken("good").Return(&service.Claims{Username: "admin", Role: "admin"}, nil)

		principal, err := fx.service.Authenticate(context.Background(), "good")
		require.NoError(t, err)
		assert.Equal(t, "admin", principal.Username)
		assert.Equal(t, entity.RoleAdmin, principal.Role)
	})

	t.Run("empty token", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Authenticate(context.Background(), "")
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("verification failure", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenSvc.EXPECT().VerifyToken("expired").Return(nil, errors.New("token is expired"))

		_, err := fx.service.Authenticate(context.Background(), "expired")
		assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
	})

	t.Run("unknown role", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenSvc.EXPECT().VerifyToken("odd").Return(&service.Claims{Username: "admin", Role: "guest"}, nil)

		_, err := fx.service.Authenticate(context.Background(), "odd")
		assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
	})
}
