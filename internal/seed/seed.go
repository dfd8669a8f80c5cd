package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"scholaris/internal/app/models"
	"scholaris/internal/app/services"
	"scholaris/internal/pkg/auth"
	"scholaris/internal/pkg/logger"
)

const (
	adminUsername = "admin"
	adminPassword = "admin"
	adminRoleName = "ADMIN"
)

// EnsureAdminUser makes sure the ADMIN role and the bootstrap admin account
// exist. It runs at startup and is idempotent: existing rows are left alone,
// so a changed admin password survives restarts.
func EnsureAdminUser(ctx context.Context, store services.Store) error {
	return store.WithTx(ctx, func(st services.Store) error {
		role, err := st.Roles().GetByName(ctx, adminRoleName)
		if err != nil {
			return fmt.Errorf("error looking up admin role: %w", err)
		}
		if role == nil {
			role = &models.Role{Name: adminRoleName}
			if err := st.Roles().Create(ctx, role); err != nil {
				return fmt.Errorf("error creating admin role: %w", err)
			}
			logger.Info().Str("role", adminRoleName).Msg("Created admin role")
		}

		user, err := st.Users().GetByUsername(ctx, adminUsername)
		if err != nil {
			return fmt.Errorf("error looking up admin user: %w", err)
		}
		if user != nil {
			return nil
		}

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("error hashing admin password: %w", err)
		}

		user = &models.User{
			ID:       uuid.New(),
			Username: adminUsername,
			Password: hash,
			Enabled:  true,
		}
		if err := st.Users().Create(ctx, user); err != nil {
			return fmt.Errorf("error creating admin user: %w", err)
		}
		if err := st.Users().AssignRole(ctx, user.ID, role.ID); err != nil {
			return fmt.Errorf("error assigning admin role: %w", err)
		}

		logger.Info().Str("username", adminUsername).Msg("Created bootstrap admin user")
		return nil
	})
}
