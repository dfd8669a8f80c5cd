package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"scholaris/internal/app/models"
	"scholaris/internal/app/models/dto"
	"scholaris/internal/pkg/apperrors"
	"scholaris/internal/pkg/logger"
)

// ProfileService handles the explicit student profile operations
type ProfileService struct {
	store Store
}

// NewProfileService creates a new profile service instance
func NewProfileService(store Store) *ProfileService {
	return &ProfileService{store: store}
}

// AddProfile creates a profile for a student that does not have one yet.
// A second profile for the same student is a conflict; the student keeps
// the first.
func (s *ProfileService) AddProfile(ctx context.Context, studentID uuid.UUID, req dto.StudentProfileRequest) error {
	return s.store.WithTx(ctx, func(st Store) error {
		exists, err := st.Students().ExistsByID(ctx, studentID)
		if err != nil {
			return fmt.Errorf("error checking student existence: %w", err)
		}
		if !exists {
			return apperrors.NewResourceNotFoundError("Student not found")
		}

		hasProfile, err := st.Profiles().ExistsByStudentID(ctx, studentID)
		if err != nil {
			return fmt.Errorf("error checking profile existence: %w", err)
		}
		if hasProfile {
			return apperrors.NewConflictError("Profile already exists for this student")
		}

		profile := &models.StudentProfile{
			ID:          uuid.New(),
			Address:     req.Address,
			PhoneNumber: req.PhoneNumber,
			StudentID:   studentID,
		}
		if err := st.Profiles().Create(ctx, profile); err != nil {
			return err
		}

		logger.Info().Str("studentID", studentID.String()).Msg("Profile created for student")
		return nil
	})
}

// GetProfile returns the profile of a student
func (s *ProfileService) GetProfile(ctx context.Context, studentID uuid.UUID) (dto.StudentProfileResponse, error) {
	profile, err := s.store.Profiles().GetByStudentID(ctx, studentID)
	if err != nil {
		return dto.StudentProfileResponse{}, fmt.Errorf("error retrieving profile: %w", err)
	}
	if profile == nil {
		return dto.StudentProfileResponse{}, apperrors.NewResourceNotFoundError(fmt.Sprintf("Profile not found for student %s", studentID))
	}
	return dto.NewStudentProfileResponse(profile), nil
}
