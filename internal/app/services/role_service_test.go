package services

import (
	"context"
	"errors"
	"testing"

	"scholaris/internal/app/models/dto"
	"scholaris/internal/pkg/apperrors"
)

func TestCreateRoleDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := NewRoleService(newTestStore())

	if _, err := svc.CreateRole(ctx, dto.RoleRequest{Name: "ADMIN"}); err != nil {
		t.Fatalf("CreateRole: %v", err)
	}

	_, err := svc.CreateRole(ctx, dto.RoleRequest{Name: "ADMIN"})
	if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		t.Fatalf("expected duplicate-entity error, got %v", err)
	}

	roles, err := svc.GetAllRoles(ctx)
	if err != nil {
		t.Fatalf("GetAllRoles: %v", err)
	}
	if len(roles) != 1 {
		t.Errorf("expected a single role, got %d", len(roles))
	}
}

func TestDeleteRoleNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewRoleService(newTestStore())

	err := svc.DeleteRoleByName(ctx, "GHOST")
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDeleteRoleDetachesMemberships(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	roles := NewRoleService(store)
	users := NewUserService(store)

	if _, err := roles.CreateRole(ctx, dto.RoleRequest{Name: "REGISTRAR"}); err != nil {
		t.Fatalf("CreateRole: %v", err)
	}
	if err := users.RegisterUser(ctx, dto.UserRequest{Username: "jdoe", Password: "secret", Roles: []string{"REGISTRAR"}}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	if err := roles.DeleteRoleByName(ctx, "REGISTRAR"); err != nil {
		t.Fatalf("DeleteRoleByName: %v", err)
	}

	user, err := store.Users().GetByUsername(ctx, "jdoe")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if user == nil {
		t.Fatal("role delete must not delete its members")
	}
	if len(user.Roles) != 0 {
		t.Errorf("deleted role must be detached from the user, got %+v", user.Roles)
	}
}
