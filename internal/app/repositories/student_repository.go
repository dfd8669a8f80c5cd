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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db DBTX
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (id, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, student.ID, student.FirstName, student.LastName, student.Email)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateEntityError("Student with email already exists")
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID with courses and profile loaded
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, email
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if err := r.loadRelations(ctx, &student); err != nil {
		return nil, err
	}

	return &student, nil
}

// ExistsByID checks if a student exists by ID
func (r *StudentRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`,
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// ExistsByEmail checks if a student exists by email
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// FindPage retrieves a page of students with courses and profiles loaded,
// plus the total student count
func (r *StudentRepository) FindPage(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	query := `
		SELECT id, first_name, last_name, email
		FROM students
		ORDER BY last_name, first_name
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.Email,
		); err != nil {
			return nil, 0, err
		}
		students = append(students, &student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for _, student := range students {
		if err := r.loadRelations(ctx, student); err != nil {
			return nil, 0, err
		}
	}

	return students, total, nil
}

// Delete removes a student by ID. Enrollment rows and the profile go with it
// via their cascades; the courses themselves survive.
func (r *StudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	return nil
}

func (r *StudentRepository) loadRelations(ctx context.Context, student *models.Student) error {
	query := `
		SELECT c.id, c.title, c.department_id, c.professor_id
		FROM courses c
		JOIN enrollment e ON e.course_id = c.id
		WHERE e.student_id = $1
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query, student.ID)
	if err != nil {
		return fmt.Errorf("error retrieving student courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.DepartmentID,
			&course.ProfessorID,
		); err != nil {
			return err
		}
		student.Courses = append(student.Courses, course)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var profile models.StudentProfile
	err = r.db.QueryRow(ctx, `
		SELECT id, address, phone_number, student_id
		FROM student_profiles
		WHERE student_id = $1`,
		student.ID).Scan(&profile.ID, &profile.Address, &profile.PhoneNumber, &profile.StudentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("error retrieving student profile: %w", err)
	}
	student.Profile = &profile

	return nil
}
