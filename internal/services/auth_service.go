package services

import (
	"context"
	"strings"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// AuthService - вход единственного администратора из конфигурации
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	admin  config.AdminConfig
	tokens *auth.TokenManager
}

func NewAuthService(admin config.AdminConfig, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{admin: admin, tokens: tokens}
}

// Login - неверный email и неверный пароль дают одну и ту же ошибку
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if s.admin.Email == "" || !strings.EqualFold(email, s.admin.Email) {
		// сравнение хэша выполняем всегда, чтобы время ответа не выдавало email
		auth.CheckPasswordHash(req.Password, s.admin.PasswordHash)
		logger.CtxWarn(ctx, "Login rejected", "email", email)
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPasswordHash(req.Password, s.admin.PasswordHash) {
		logger.CtxWarn(ctx, "Login rejected", "email", email)
		return nil, apperrors.ErrInvalidCredentials
	}

	identity := &auth.Identity{
		UserID: adminUserID(s.admin.Email),
		Email:  strings.ToLower(s.admin.Email),
		Role:   auth.RoleAdmin,
	}
	token, expiresAt, err := s.tokens.Issue(identity.UserID, identity.Email, identity.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Admin logged in", "user_id", identity.UserID)
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        identity,
	}, nil
}

// adminUserID - стабильный id администратора, выведенный из email
func adminUserID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(email))).String()
}
