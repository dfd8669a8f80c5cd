package services

import (
	"context"
	"fmt"

	"scholaris/internal/app/models/dto"
	"scholaris/internal/pkg/apperrors"
	"scholaris/internal/pkg/auth"
	"scholaris/internal/pkg/logger"
)

// AuthService handles the login path
type AuthService struct {
	store      Store
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(store Store, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		store:      store,
		jwtService: jwtService,
	}
}

// Login verifies the credentials and issues an access token carrying the
// user's role names.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	user, err := s.store.Users().GetByUsername(ctx, req.Username)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.Password, req.Password) {
		return dto.LoginResponse{}, apperrors.ErrInvalidCredentials
	}
	if !user.Enabled {
		return dto.LoginResponse{}, apperrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Str("username", user.Username).Msg("User logged in")
	return dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
