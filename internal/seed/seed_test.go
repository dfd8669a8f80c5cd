package seed

import (
	"context"
	"testing"

	"scholaris/internal/app/repositories/memory"
	"scholaris/internal/pkg/auth"
)

func TestEnsureAdminUserIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	if err := EnsureAdminUser(ctx, store); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := EnsureAdminUser(ctx, store); err != nil {
		t.Fatalf("second run: %v", err)
	}

	roles, err := store.Roles().FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll roles: %v", err)
	}
	if len(roles) != 1 || roles[0].Name != adminRoleName {
		t.Fatalf("expected exactly one %s role, got %+v", adminRoleName, roles)
	}

	user, err := store.Users().GetByUsername(ctx, adminUsername)
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if user == nil {
		t.Fatal("admin user not created")
	}
	if !user.Enabled {
		t.Error("admin user must be enabled")
	}
	if !user.HasRole(adminRoleName) {
		t.Errorf("admin user must hold the %s role", adminRoleName)
	}
	if !auth.CheckPassword(user.Password, adminPassword) {
		t.Error("admin password must verify against the stored hash")
	}
}
