package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"scholaris/internal/app/models"
	"scholaris/internal/pkg/apperrors"
	"scholaris/internal/pkg/dberrors"
)

// RoleRepository handles database operations for roles
type RoleRepository struct {
	db DBTX
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db DBTX) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create inserts a new role
func (r *RoleRepository) Create(ctx context.Context, role *models.Role) error {
	query := `
		INSERT INTO roles (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, role.Name).Scan(&role.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateEntityError(fmt.Sprintf("Role with name %s already exists", role.Name))
		}
		return fmt.Errorf("error creating role: %w", err)
	}

	return nil
}

// GetByName retrieves a role by name
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	query := `
		SELECT id, name
		FROM roles
		WHERE name = $1
	`

	var role models.Role
	err := r.db.QueryRow(ctx, query, name).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving role: %w", err)
	}

	return &role, nil
}

// ExistsByName checks if a role exists by name
func (r *RoleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM roles WHERE name = $1)`,
		name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking role existence: %w", err)
	}

	return exists, nil
}

// FindAll retrieves all roles
func (r *RoleRepository) FindAll(ctx context.Context) ([]*models.Role, error) {
	query := `
		SELECT id, name
		FROM roles
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving roles: %w", err)
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}

	return roles, rows.Err()
}

// DeleteByName removes a role by name. Membership rows go with it via the
// user_roles cascade.
func (r *RoleRepository) DeleteByName(ctx context.Context, name string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM roles WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("error deleting role: %w", err)
	}

	return nil
}
