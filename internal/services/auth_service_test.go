package services

import (
	"context"
	"testing"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)

	tokens := auth.NewTokenManager(config.JWTConfig{Secret: "jwt-secret", TTL: 30})
	svc := NewAuthService(config.AdminConfig{Email: "Me@Example.com", PasswordHash: hash}, tokens)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "me@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)

	identity, err := tokens.Resolve(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.UserID, identity.UserID)
	assert.Equal(t, "me@example.com", identity.Email)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "me@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "other@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_NoAdminConfigured(t *testing.T) {
	svc := NewAuthService(config.AdminConfig{}, auth.NewTokenManager(config.JWTConfig{Secret: "x"}))
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.c", Password: "p"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
