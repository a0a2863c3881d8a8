package service

import (
	"context"
	"errors"
	"strings"

	"pay-assist/internal/dto"
	"pay-assist/pkg/auth"
	"pay-assist/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues tokens to the single configured operator. The API key
// is never stored, only its bcrypt hash.
type AuthService struct {
	cfg        *config.AuthConfig
	jwtManager *auth.JWTManager
	logger     *zap.Logger
}

func NewAuthService(cfg *config.AuthConfig, jwtManager *auth.JWTManager, logger *zap.Logger) *AuthService {
	if cfg.APIKeyHash == "" {
		logger.Warn("ADMIN_API_KEY_HASH is empty, operator login is disabled")
	}
	return &AuthService{
		cfg:        cfg,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if s.cfg.APIKeyHash == "" {
		return nil, ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(req.Email), s.cfg.OperatorEmail) {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPasswordHash(req.APIKey, s.cfg.APIKeyHash) {
		s.logger.Warn("Rejected operator login", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	return s.issue()
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtManager.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if claims.TokenType != auth.TokenTypeRefresh || claims.OperatorID != s.operatorID() {
		return nil, ErrInvalidCredentials
	}

	return s.issue()
}

func (s *AuthService) issue() (*dto.AuthResponse, error) {
	id := s.operatorID()

	accessToken, err := s.jwtManager.GenerateToken(id, "operator", s.cfg.OperatorEmail)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(id)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwtManager.GetTokenDuration().Seconds()),
		Operator: dto.OperatorResponse{
			ID:    id,
			Email: s.cfg.OperatorEmail,
		},
	}, nil
}

// operatorID is stable for a given operator email.
func (s *AuthService) operatorID() string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(s.cfg.OperatorEmail))).String()
}
