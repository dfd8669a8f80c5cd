package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"scholaris/internal/app/models"
	"scholaris/internal/pkg/apperrors"
	"scholaris/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses and the
// enrollment join table
type CourseRepository struct {
	db DBTX
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (title, department_id, professor_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, course.Title, course.DepartmentID, course.ProfessorID).Scan(&course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateEntityError("Course with this title already exists")
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, title, department_id, professor_id
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.DepartmentID,
		&course.ProfessorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetByTitle retrieves a course by its exact title
func (r *CourseRepository) GetByTitle(ctx context.Context, title string) (*models.Course, error) {
	query := `
		SELECT id, title, department_id, professor_id
		FROM courses
		WHERE title = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, title).Scan(
		&course.ID,
		&course.Title,
		&course.DepartmentID,
		&course.ProfessorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// ExistsByID checks if a course exists by ID
func (r *CourseRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`,
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}

// FindPage retrieves a page of courses plus the total course count
func (r *CourseRepository) FindPage(ctx context.Context, offset uint64, limit int) ([]*models.Course, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	query := `
		SELECT id, title, department_id, professor_id
		FROM courses
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.DepartmentID,
			&course.ProfessorID,
		); err != nil {
			return nil, 0, err
		}
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// LinkStudent enrolls a student in a course. Linking an already enrolled
// student is a no-op.
func (r *CourseRepository) LinkStudent(ctx context.Context, courseID int64, studentID uuid.UUID) error {
	query := `
		INSERT INTO enrollment (course_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT (course_id, student_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, courseID, studentID)
	if err != nil {
		return fmt.Errorf("error enrolling student: %w", err)
	}

	return nil
}

// Delete removes a course by ID. Enrollment rows go with it via the cascade;
// enrolled students are untouched.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	return nil
}
