package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"scholaris/internal/app/models"
	"scholaris/internal/app/models/dto"
	"scholaris/internal/pkg/apperrors"
	"scholaris/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "scholaris.test",
	})
}

func TestLoginIssuesToken(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	setupRoles(t, store, "ADMIN")
	if err := NewUserService(store).RegisterUser(ctx, dto.UserRequest{Username: "jdoe", Password: "secret", Roles: []string{"ADMIN"}}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	jwtService := newTestJWTService()
	svc := NewAuthService(store, jwtService)

	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "jdoe", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("token type = %q, want Bearer", resp.TokenType)
	}
	if resp.ExpiresIn != int(time.Hour.Seconds()) {
		t.Errorf("expiresIn = %d, want %d", resp.ExpiresIn, int(time.Hour.Seconds()))
	}

	claims, err := jwtService.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "jdoe" || !claims.HasRole("ADMIN") {
		t.Errorf("claims do not match the user: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	setupRoles(t, store, "ADMIN")
	if err := NewUserService(store).RegisterUser(ctx, dto.UserRequest{Username: "jdoe", Password: "secret", Roles: []string{"ADMIN"}}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	svc := NewAuthService(store, newTestJWTService())

	_, err := svc.Login(ctx, dto.LoginRequest{Username: "jdoe", Password: "wrong"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid-credentials error, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newTestStore(), newTestJWTService())

	// an unknown username must not be distinguishable from a wrong password
	_, err := svc.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "secret"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid-credentials error, got %v", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	hash, err := auth.HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := &models.User{ID: uuid.New(), Username: "jdoe", Password: hash, Enabled: false}
	if err := store.Users().Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	svc := NewAuthService(store, newTestJWTService())

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "jdoe", Password: "secret"})
	if !errors.Is(err, apperrors.ErrAccountDisabled) {
		t.Fatalf("expected account-disabled error, got %v", err)
	}
}
