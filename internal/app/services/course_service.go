package services

import (
	"context"
	"fmt"

	"scholaris/internal/app/models"
	"scholaris/internal/app/models/dto"
	"scholaris/internal/pkg/apperrors"
	"scholaris/internal/pkg/helpers"
	"scholaris/internal/pkg/logger"
)

// CourseService handles course-related operations
type CourseService struct {
	store Store
}

// NewCourseService creates a new course service instance
func NewCourseService(store Store) *CourseService {
	return &CourseService{store: store}
}

// GetOrCreateCourses resolves each title to a course, creating the ones that
// do not exist yet. It runs against the store it is given so callers can
// pass their transaction-scoped store and keep the whole operation atomic.
// Duplicate titles in the input resolve to the same course. An empty input
// yields an empty result.
//
// The lookup-before-create is advisory: under concurrent creation of the
// same new title the store's uniqueness constraint decides the winner and
// the loser surfaces a duplicate-entity error.
func (s *CourseService) GetOrCreateCourses(ctx context.Context, store Store, titles []string) ([]*models.Course, error) {
	courses := make([]*models.Course, 0, len(titles))
	seen := make(map[string]bool, len(titles))

	for _, title := range titles {
		if seen[title] {
			continue
		}
		seen[title] = true

		existing, err := store.Courses().GetByTitle(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("error looking up course by title: %w", err)
		}
		if existing != nil {
			logger.Info().Str("title", title).Msg("Course already exists, reusing")
			courses = append(courses, existing)
			continue
		}

		logger.Info().Str("title", title).Msg("Creating new course")
		course := &models.Course{Title: title}
		if err := store.Courses().Create(ctx, course); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// AddCourse creates a course with the given title
func (s *CourseService) AddCourse(ctx context.Context, req dto.CourseRequest) (*models.Course, error) {
	var course *models.Course
	err := s.store.WithTx(ctx, func(st Store) error {
		existing, err := st.Courses().GetByTitle(ctx, req.Title)
		if err != nil {
			return fmt.Errorf("error looking up course by title: %w", err)
		}
		if existing != nil {
			logger.Error().Str("title", req.Title).Msg("Course with title already exists")
			return apperrors.NewDuplicateEntityError("Course with this title already exists")
		}

		course = &models.Course{Title: req.Title}
		return st.Courses().Create(ctx, course)
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}

// GetCourses returns a page of courses with their departments attached
func (s *CourseService) GetCourses(ctx context.Context, page, size int) ([]dto.CourseResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	courses, total, err := s.store.Courses().FindPage(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving courses: %w", err)
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		if err := s.attachDepartment(ctx, s.store, course); err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		responses = append(responses, dto.NewCourseResponse(course))
	}

	return responses, helpers.NewPaginationInfo(total, page, size), nil
}

// GetCourse returns a single course by id
func (s *CourseService) GetCourse(ctx context.Context, id int64) (dto.CourseResponse, error) {
	course, err := s.store.Courses().GetByID(ctx, id)
	if err != nil {
		return dto.CourseResponse{}, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return dto.CourseResponse{}, apperrors.NewResourceNotFoundError(fmt.Sprintf("Course not found with id %d", id))
	}

	if err := s.attachDepartment(ctx, s.store, course); err != nil {
		return dto.CourseResponse{}, err
	}

	return dto.NewCourseResponse(course), nil
}

// DeleteCourse removes a course by id. Enrollment rows are severed; enrolled
// students are otherwise untouched.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.store.WithTx(ctx, func(st Store) error {
		exists, err := st.Courses().ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error checking course existence: %w", err)
		}
		if !exists {
			logger.Error().Int64("courseID", id).Msg("Course does not exist")
			return apperrors.NewResourceNotFoundError("Course does not exist")
		}

		logger.Info().Int64("courseID", id).Msg("Deleting course")
		return st.Courses().Delete(ctx, id)
	})
}

func (s *CourseService) attachDepartment(ctx context.Context, store Store, course *models.Course) error {
	if course.DepartmentID == nil {
		return nil
	}
	department, err := store.Departments().GetByID(ctx, *course.DepartmentID)
	if err != nil {
		return fmt.Errorf("error retrieving course department: %w", err)
	}
	course.Department = department
	return nil
}
