package services

import (
	"context"
	"fmt"

	"scholaris/internal/app/models"
	"scholaris/internal/app/models/dto"
	"scholaris/internal/pkg/apperrors"
	"scholaris/internal/pkg/logger"
)

// RoleService handles role management
type RoleService struct {
	store Store
}

// NewRoleService creates a new role service instance
func NewRoleService(store Store) *RoleService {
	return &RoleService{store: store}
}

// CreateRole creates a role with the given name
func (s *RoleService) CreateRole(ctx context.Context, req dto.RoleRequest) (dto.RoleResponse, error) {
	var role *models.Role
	err := s.store.WithTx(ctx, func(st Store) error {
		exists, err := st.Roles().ExistsByName(ctx, req.Name)
		if err != nil {
			return fmt.Errorf("error checking role existence: %w", err)
		}
		if exists {
			logger.Error().Str("role", req.Name).Msg("Role with name already exists")
			return apperrors.NewDuplicateEntityError(fmt.Sprintf("Role with name %s already exists", req.Name))
		}

		role = &models.Role{Name: req.Name}
		return st.Roles().Create(ctx, role)
	})
	if err != nil {
		return dto.RoleResponse{}, err
	}
	return dto.RoleResponse{ID: role.ID, Name: role.Name}, nil
}

// GetAllRoles returns every role
func (s *RoleService) GetAllRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	logger.Info().Msg("Fetching all roles")

	roles, err := s.store.Roles().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving roles: %w", err)
	}

	responses := make([]dto.RoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, dto.RoleResponse{ID: role.ID, Name: role.Name})
	}
	return responses, nil
}

// DeleteRoleByName removes a role by name, detaching it from every user's
// role set in the same transaction.
func (s *RoleService) DeleteRoleByName(ctx context.Context, roleName string) error {
	return s.store.WithTx(ctx, func(st Store) error {
		role, err := st.Roles().GetByName(ctx, roleName)
		if err != nil {
			return fmt.Errorf("error retrieving role: %w", err)
		}
		if role == nil {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("Role with name %s does not exist", roleName))
		}

		if err := st.Roles().DeleteByName(ctx, roleName); err != nil {
			return err
		}
		logger.Info().Str("role", roleName).Msg("Role deleted")
		return nil
	})
}
