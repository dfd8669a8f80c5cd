package services

import (
	"context"
	"fmt"

	"scholaris/internal/app/models"
	"scholaris/internal/app/models/dto"
	"scholaris/internal/pkg/apperrors"
	"scholaris/internal/pkg/logger"
)

// DepartmentService handles department management
type DepartmentService struct {
	store Store
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(store Store) *DepartmentService {
	return &DepartmentService{store: store}
}

// CreateDepartment creates a department with the given unique name
func (s *DepartmentService) CreateDepartment(ctx context.Context, req dto.DepartmentRequest) (*models.Department, error) {
	var department *models.Department
	err := s.store.WithTx(ctx, func(st Store) error {
		exists, err := st.Departments().ExistsByName(ctx, req.Name)
		if err != nil {
			return fmt.Errorf("error checking department existence: %w", err)
		}
		if exists {
			logger.Error().Str("department", req.Name).Msg("Department with name already exists")
			return apperrors.NewDuplicateEntityError("Department with this name already exists")
		}

		department = &models.Department{Name: req.Name}
		return st.Departments().Create(ctx, department)
	})
	if err != nil {
		return nil, err
	}
	return department, nil
}

// GetDepartments returns every department
func (s *DepartmentService) GetDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.store.Departments().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// GetDepartmentByName returns a department by its exact name
func (s *DepartmentService) GetDepartmentByName(ctx context.Context, name string) (*models.Department, error) {
	department, err := s.store.Departments().GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	if department == nil {
		return nil, apperrors.NewResourceNotFoundError("Department not found")
	}
	return department, nil
}
