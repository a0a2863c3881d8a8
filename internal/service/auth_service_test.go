package service

import (
	"context"
	"testing"
	"time"

	"pay-assist/internal/dto"
	"pay-assist/pkg/auth"
	"pay-assist/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := auth.HashPassword("op-key")
	require.NoError(t, err)
	return NewAuthService(
		&config.AuthConfig{OperatorEmail: "ops@example.com", APIKeyHash: hash},
		auth.NewJWTManager("secret", time.Hour, 24*time.Hour),
		zap.NewNop(),
	)
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "OPS@example.com", APIKey: "op-key"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "ops@example.com", resp.Operator.Email)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ops@example.com", APIKey: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "someone@example.com", APIKey: "op-key"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	refreshed, err := svc.RefreshToken(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.Operator.ID, refreshed.Operator.ID)

	_, err = svc.RefreshToken(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials, "access tokens cannot refresh")
}

func TestAuthService_DisabledWithoutHash(t *testing.T) {
	svc := NewAuthService(&config.AuthConfig{OperatorEmail: "ops@example.com"},
		auth.NewJWTManager("secret", time.Hour, time.Hour), zap.NewNop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ops@example.com", APIKey: ""})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
