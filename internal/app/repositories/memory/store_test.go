package memory

import (
	"context"
	"errors"
	"testing"

	"scholaris/internal/app/models"
	"scholaris/internal/app/services"
)

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	err := store.WithTx(ctx, func(st services.Store) error {
		return st.Roles().Create(ctx, &models.Role{Name: "ADMIN"})
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}

	roles, err := store.Roles().FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(roles) != 1 {
		t.Fatalf("expected 1 role after commit, got %d", len(roles))
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	boom := errors.New("boom")
	err := store.WithTx(ctx, func(st services.Store) error {
		if err := st.Roles().Create(ctx, &models.Role{Name: "ADMIN"}); err != nil {
			return err
		}
		if err := st.Departments().Create(ctx, &models.Department{Name: "Physics"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the callback error, got %v", err)
	}

	roles, err := store.Roles().FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll roles: %v", err)
	}
	departments, err := store.Departments().FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll departments: %v", err)
	}
	if len(roles) != 0 || len(departments) != 0 {
		t.Errorf("failed transaction must leave no writes behind: %d roles, %d departments", len(roles), len(departments))
	}
}

func TestWithTxNestedJoinsEnclosing(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	boom := errors.New("boom")
	err := store.WithTx(ctx, func(st services.Store) error {
		if err := st.Roles().Create(ctx, &models.Role{Name: "ADMIN"}); err != nil {
			return err
		}
		// the nested call must run against the same transaction, not deadlock
		// on the store lock
		if err := st.WithTx(ctx, func(inner services.Store) error {
			return inner.Roles().Create(ctx, &models.Role{Name: "REGISTRAR"})
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the callback error, got %v", err)
	}

	roles, err := store.Roles().FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(roles) != 0 {
		t.Errorf("nested writes must roll back with the enclosing transaction, got %d roles", len(roles))
	}
}

func TestRollbackRestoresDeletedRows(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	if err := store.Roles().Create(ctx, &models.Role{Name: "ADMIN"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	boom := errors.New("boom")
	err := store.WithTx(ctx, func(st services.Store) error {
		if err := st.Roles().DeleteByName(ctx, "ADMIN"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the callback error, got %v", err)
	}

	role, err := store.Roles().GetByName(ctx, "ADMIN")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if role == nil {
		t.Error("rollback must restore the deleted row")
	}
}
