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

// StudentService handles student registration and lookups
type StudentService struct {
	store         Store
	courseService *CourseService
}

// NewStudentService creates a new student service instance
func NewStudentService(store Store, courseService *CourseService) *StudentService {
	return &StudentService{
		store:         store,
		courseService: courseService,
	}
}

// AddStudent registers a student. Courses are resolved through
// get-or-create, so titles shared with existing courses reuse those rows.
// Each resolved course is linked to the student on both sides, and a profile
// is created from the request's address and phone. The whole operation is a
// single transaction.
func (s *StudentService) AddStudent(ctx context.Context, req dto.StudentRequest) error {
	return s.store.WithTx(ctx, func(st Store) error {
		exists, err := st.Students().ExistsByEmail(ctx, req.Email)
		if err != nil {
			return fmt.Errorf("error checking student email: %w", err)
		}
		if exists {
			logger.Error().Str("email", req.Email).Msg("Student with email already exists")
			return apperrors.NewDuplicateEntityError("Student with email already exists")
		}

		logger.Info().
			Str("firstName", req.FirstName).
			Str("lastName", req.LastName).
			Str("email", req.Email).
			Msg("Creating student")

		courses, err := s.courseService.GetOrCreateCourses(ctx, st, req.CourseTitles)
		if err != nil {
			return err
		}

		student := &models.Student{
			ID:        uuid.New(),
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
		}
		if err := st.Students().Create(ctx, student); err != nil {
			return err
		}

		for _, course := range courses {
			if err := st.Courses().LinkStudent(ctx, course.ID, student.ID); err != nil {
				return err
			}
		}

		profile := &models.StudentProfile{
			ID:          uuid.New(),
			Address:     req.Address,
			PhoneNumber: req.PhoneNumber,
			StudentID:   student.ID,
		}
		return st.Profiles().Create(ctx, profile)
	})
}

// GetStudents returns a page of students with their courses
func (s *StudentService) GetStudents(ctx context.Context, page, size int) ([]dto.StudentResponse, dto.PaginationInfo, error) {
	logger.Info().Int("page", page).Int("size", size).Msg("Get students")

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	students, total, err := s.store.Students().FindPage(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving students: %w", err)
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, dto.NewStudentResponse(student))
	}

	return responses, helpers.NewPaginationInfo(total, page, size), nil
}

// GetStudent returns a single student by id
func (s *StudentService) GetStudent(ctx context.Context, id uuid.UUID) (dto.StudentResponse, error) {
	student, err := s.store.Students().GetByID(ctx, id)
	if err != nil {
		return dto.StudentResponse{}, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return dto.StudentResponse{}, apperrors.NewResourceNotFoundError(fmt.Sprintf("Student not found with id %s", id))
	}
	return dto.NewStudentResponse(student), nil
}

// DeleteStudent removes a student by id, severing enrollment rows and the
// profile with it.
func (s *StudentService) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	return s.store.WithTx(ctx, func(st Store) error {
		exists, err := st.Students().ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error checking student existence: %w", err)
		}
		if !exists {
			logger.Error().Str("studentID", id.String()).Msg("Student does not exist")
			return apperrors.NewResourceNotFoundError("Student does not exist")
		}

		logger.Info().Str("studentID", id.String()).Msg("Deleting student")
		return st.Students().Delete(ctx, id)
	})
}
