package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"scholaris/internal/app/models"
	"scholaris/internal/app/models/dto"
	"scholaris/internal/pkg/apperrors"
	"scholaris/internal/pkg/auth"
	"scholaris/internal/pkg/helpers"
	"scholaris/internal/pkg/logger"
)

// UserService handles user registration and role membership
type UserService struct {
	store Store
}

// NewUserService creates a new user service instance
func NewUserService(store Store) *UserService {
	return &UserService{store: store}
}

// RegisterUser creates a user with the requested roles. Role resolution is
// all-or-nothing: the first missing role aborts the registration and no
// user is saved. The password is hashed before storage; the plaintext is
// never retained. New users are enabled.
func (s *UserService) RegisterUser(ctx context.Context, req dto.UserRequest) error {
	return s.store.WithTx(ctx, func(st Store) error {
		roles := make([]models.Role, 0, len(req.Roles))
		for _, roleName := range req.Roles {
			role, err := st.Roles().GetByName(ctx, roleName)
			if err != nil {
				return fmt.Errorf("error resolving role: %w", err)
			}
			if role == nil {
				return apperrors.NewResourceNotFoundError("Role not found: " + roleName)
			}
			roles = append(roles, *role)
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}

		user := &models.User{
			ID:       uuid.New(),
			Username: req.Username,
			Password: hash,
			Enabled:  true,
		}

		logger.Info().Str("username", user.Username).Msg("Registering user")

		if err := st.Users().Create(ctx, user); err != nil {
			return err
		}
		for _, role := range roles {
			if err := st.Users().AssignRole(ctx, user.ID, role.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// AssignRoleToUser adds a role to a user's role set. Adding a role the user
// already has is a no-op.
func (s *UserService) AssignRoleToUser(ctx context.Context, username, roleName string) error {
	return s.store.WithTx(ctx, func(st Store) error {
		user, err := st.Users().GetByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("error retrieving user: %w", err)
		}
		if user == nil {
			return apperrors.NewResourceNotFoundError("User not found")
		}

		role, err := st.Roles().GetByName(ctx, roleName)
		if err != nil {
			return fmt.Errorf("error retrieving role: %w", err)
		}
		if role == nil {
			return apperrors.NewResourceNotFoundError("Role not found")
		}

		logger.Info().Str("role", role.Name).Str("username", username).Msg("Assigning role to user")
		return st.Users().AssignRole(ctx, user.ID, role.ID)
	})
}

// RemoveRoleFromUser removes a role from a user's role set. Removing a role
// the user does not have is a no-op.
func (s *UserService) RemoveRoleFromUser(ctx context.Context, username, roleName string) error {
	return s.store.WithTx(ctx, func(st Store) error {
		user, err := st.Users().GetByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("error retrieving user: %w", err)
		}
		if user == nil {
			return apperrors.NewResourceNotFoundError("User not found")
		}

		role, err := st.Roles().GetByName(ctx, roleName)
		if err != nil {
			return fmt.Errorf("error retrieving role: %w", err)
		}
		if role == nil {
			return apperrors.NewResourceNotFoundError("Role not found")
		}

		logger.Info().Str("role", role.Name).Str("username", username).Msg("Removing role from user")
		return st.Users().RemoveRole(ctx, user.ID, role.ID)
	})
}

// FindUserByID returns a single user by id
func (s *UserService) FindUserByID(ctx context.Context, id uuid.UUID) (dto.UserResponse, error) {
	user, err := s.store.Users().GetByID(ctx, id)
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return dto.UserResponse{}, apperrors.NewResourceNotFoundError("User not found")
	}
	return dto.NewUserResponse(user), nil
}

// GetAllUsers returns a page of users with their roles
func (s *UserService) GetAllUsers(ctx context.Context, page, size int) ([]dto.UserResponse, dto.PaginationInfo, error) {
	logger.Info().Int("page", page).Int("size", size).Msg("Retrieving users")

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	users, total, err := s.store.Users().FindPage(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving users: %w", err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}

	return responses, helpers.NewPaginationInfo(total, page, size), nil
}

// DeleteUser removes a user by id
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.store.WithTx(ctx, func(st Store) error {
		exists, err := st.Users().ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error checking user existence: %w", err)
		}
		if !exists {
			logger.Error().Str("userID", id.String()).Msg("User does not exist")
			return apperrors.NewResourceNotFoundError("User not found")
		}

		if err := st.Users().Delete(ctx, id); err != nil {
			return err
		}
		logger.Info().Str("userID", id.String()).Msg("User deleted successfully")
		return nil
	})
}
