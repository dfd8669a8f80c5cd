package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"scholaris/internal/app/models/dto"
	"scholaris/internal/pkg/apperrors"
)

func setupRoles(t *testing.T, store Store, names ...string) {
	t.Helper()
	svc := NewRoleService(store)
	for _, name := range names {
		if _, err := svc.CreateRole(context.Background(), dto.RoleRequest{Name: name}); err != nil {
			t.Fatalf("CreateRole %s: %v", name, err)
		}
	}
}

func TestRegisterUserAllOrNothing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	setupRoles(t, store, "ADMIN")
	svc := NewUserService(store)

	req := dto.UserRequest{Username: "jdoe", Password: "secret", Roles: []string{"ADMIN", "REGISTRAR"}}
	err := svc.RegisterUser(ctx, req)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error for missing role, got %v", err)
	}

	user, err := store.Users().GetByUsername(ctx, "jdoe")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if user != nil {
		t.Error("registration with a missing role must not create the user")
	}
}

func TestRegisterUserHashesPassword(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	setupRoles(t, store, "ADMIN")
	svc := NewUserService(store)

	if err := svc.RegisterUser(ctx, dto.UserRequest{Username: "jdoe", Password: "secret", Roles: []string{"ADMIN"}}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	user, err := store.Users().GetByUsername(ctx, "jdoe")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if user == nil {
		t.Fatal("user not created")
	}
	if user.Password == "secret" {
		t.Error("password must not be stored in plaintext")
	}
	if !user.Enabled {
		t.Error("new users must be enabled")
	}
	if !user.HasRole("ADMIN") {
		t.Error("user must carry the requested role")
	}
}

func TestAssignRoleSetSemantics(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	setupRoles(t, store, "ADMIN", "REGISTRAR")
	svc := NewUserService(store)

	if err := svc.RegisterUser(ctx, dto.UserRequest{Username: "jdoe", Password: "secret", Roles: []string{"ADMIN"}}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	// assigning the same role twice must not duplicate it
	if err := svc.AssignRoleToUser(ctx, "jdoe", "REGISTRAR"); err != nil {
		t.Fatalf("AssignRoleToUser: %v", err)
	}
	if err := svc.AssignRoleToUser(ctx, "jdoe", "REGISTRAR"); err != nil {
		t.Fatalf("AssignRoleToUser repeat: %v", err)
	}

	user, err := store.Users().GetByUsername(ctx, "jdoe")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if len(user.Roles) != 2 {
		t.Errorf("expected 2 roles, got %d", len(user.Roles))
	}
}

func TestRemoveRoleAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	setupRoles(t, store, "ADMIN", "REGISTRAR")
	svc := NewUserService(store)

	if err := svc.RegisterUser(ctx, dto.UserRequest{Username: "jdoe", Password: "secret", Roles: []string{"ADMIN"}}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	if err := svc.RemoveRoleFromUser(ctx, "jdoe", "REGISTRAR"); err != nil {
		t.Fatalf("removing an absent role must be a no-op, got %v", err)
	}

	user, err := store.Users().GetByUsername(ctx, "jdoe")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if len(user.Roles) != 1 || user.Roles[0].Name != "ADMIN" {
		t.Errorf("role set must be unchanged, got %+v", user.Roles)
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	setupRoles(t, store, "ADMIN")
	svc := NewUserService(store)

	if err := svc.RegisterUser(ctx, dto.UserRequest{Username: "jdoe", Password: "secret", Roles: []string{"ADMIN"}}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	if err := svc.DeleteUser(ctx, uuid.New()); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	user, err := store.Users().GetByUsername(ctx, "jdoe")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if user == nil {
		t.Error("failed delete must leave the store unchanged")
	}
}

func TestAssignRoleMissingUserOrRole(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	setupRoles(t, store, "ADMIN")
	svc := NewUserService(store)

	if err := svc.AssignRoleToUser(ctx, "ghost", "ADMIN"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found for missing user, got %v", err)
	}

	if err := svc.RegisterUser(ctx, dto.UserRequest{Username: "jdoe", Password: "secret", Roles: []string{"ADMIN"}}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if err := svc.AssignRoleToUser(ctx, "jdoe", "GHOST"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found for missing role, got %v", err)
	}
}
