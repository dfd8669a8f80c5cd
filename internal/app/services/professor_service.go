package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"scholaris/internal/app/models"
	"scholaris/internal/app/models/dto"
	"scholaris/internal/pkg/apperrors"
	"scholaris/internal/pkg/helpers"
	"scholaris/internal/pkg/logger"
)

// ProfessorService handles professor enrollment and lookups
type ProfessorService struct {
	store Store
}

// NewProfessorService creates a new professor service instance
func NewProfessorService(store Store) *ProfessorService {
	return &ProfessorService{store: store}
}

// AddProfessor registers a professor. The department is resolved by exact
// name and is never auto-created. Every requested course title becomes a
// fresh course row scoped to that department and owned by the professor.
// This path does not reuse existing courses by title, so a taken title
// surfaces as a duplicate-entity error from the store's uniqueness
// constraint.
func (s *ProfessorService) AddProfessor(ctx context.Context, req dto.ProfessorRequest) error {
	return s.store.WithTx(ctx, func(st Store) error {
		exists, err := st.Professors().ExistsByEmail(ctx, req.Email)
		if err != nil {
			return fmt.Errorf("error checking professor email: %w", err)
		}
		if exists {
			logger.Error().Str("email", req.Email).Msg("Professor with email already exists")
			return apperrors.NewDuplicateEntityError("Professor with this email already exists")
		}

		department, err := st.Departments().GetByName(ctx, req.Department)
		if err != nil {
			return fmt.Errorf("error resolving department: %w", err)
		}
		if department == nil {
			return apperrors.NewResourceNotFoundError("Department not found")
		}

		logger.Info().
			Str("professor", req.FirstName+" "+req.LastName).
			Str("department", department.Name).
			Msg("Adding professor")

		professor := &models.Professor{
			ID:           uuid.New(),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			PhoneNumber:  req.PhoneNumber,
			DepartmentID: &department.ID,
		}
		if err := st.Professors().Create(ctx, professor); err != nil {
			return err
		}

		for _, title := range req.CourseTitles {
			course := &models.Course{
				Title:        title,
				DepartmentID: &department.ID,
				ProfessorID:  &professor.ID,
			}
			if err := st.Courses().Create(ctx, course); err != nil {
				return err
			}
		}

		logger.Info().Msg("Professor added successfully")
		return nil
	})
}

// GetProfessors returns a page of professors with their departments
func (s *ProfessorService) GetProfessors(ctx context.Context, page, size int) ([]dto.ProfessorResponse, dto.PaginationInfo, error) {
	logger.Info().Msg("Fetching professors")

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	professors, total, err := s.store.Professors().FindPage(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving professors: %w", err)
	}

	responses := make([]dto.ProfessorResponse, 0, len(professors))
	for _, professor := range professors {
		responses = append(responses, dto.NewProfessorResponse(professor))
	}

	return responses, helpers.NewPaginationInfo(total, page, size), nil
}

// GetProfessor returns a single professor by id
func (s *ProfessorService) GetProfessor(ctx context.Context, id uuid.UUID) (dto.ProfessorResponse, error) {
	logger.Info().Str("professorID", id.String()).Msg("Fetching professor")

	professor, err := s.store.Professors().GetByID(ctx, id)
	if err != nil {
		return dto.ProfessorResponse{}, fmt.Errorf("error retrieving professor: %w", err)
	}
	if professor == nil {
		return dto.ProfessorResponse{}, apperrors.NewResourceNotFoundError("Professor not found")
	}
	return dto.NewProfessorResponse(professor), nil
}

// UpdateProfessorDetails overwrites a professor's email, phone number and
// department reference unconditionally. There is no application-level
// re-validation of email or phone uniqueness here; a collision surfaces as a
// duplicate-entity error from the store's constraint.
func (s *ProfessorService) UpdateProfessorDetails(ctx context.Context, id uuid.UUID, req dto.ProfessorUpdateRequest) error {
	return s.store.WithTx(ctx, func(st Store) error {
		logger.Info().Str("professorID", id.String()).Msg("Updating professor")

		professor, err := st.Professors().GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error retrieving professor: %w", err)
		}
		if professor == nil {
			logger.Error().Str("professorID", id.String()).Msg("Professor does not exist")
			return apperrors.NewResourceNotFoundError("Professor not found")
		}

		department, err := st.Departments().GetByName(ctx, req.Department)
		if err != nil {
			return fmt.Errorf("error resolving department: %w", err)
		}
		if department == nil {
			return apperrors.NewResourceNotFoundError("Department not found")
		}

		professor.Email = req.Email
		professor.PhoneNumber = req.PhoneNumber
		professor.DepartmentID = &department.ID

		if err := st.Professors().Update(ctx, professor); err != nil {
			return err
		}

		logger.Info().Msg("Professor updated successfully")
		return nil
	})
}

// DeleteProfessor removes a professor by id. Courses the professor owned are
// detached, not deleted.
func (s *ProfessorService) DeleteProfessor(ctx context.Context, id uuid.UUID) error {
	return s.store.WithTx(ctx, func(st Store) error {
		exists, err := st.Professors().ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error checking professor existence: %w", err)
		}
		if !exists {
			logger.Error().Str("professorID", id.String()).Msg("Professor does not exist")
			return apperrors.NewResourceNotFoundError("Professor not found")
		}

		logger.Info().Str("professorID", id.String()).Msg("Deleting professor")
		if err := st.Professors().Delete(ctx, id); err != nil {
			return err
		}

		logger.Info().Msg("Professor deleted successfully")
		return nil
	})
}
