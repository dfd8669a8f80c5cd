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

// ProfessorRepository handles database operations for professors
type ProfessorRepository struct {
	db DBTX
}

// NewProfessorRepository creates a new professor repository
func NewProfessorRepository(db DBTX) *ProfessorRepository {
	return &ProfessorRepository{db: db}
}

// Create inserts a new professor
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) error {
	query := `
		INSERT INTO professors (id, first_name, last_name, email, phone_number, department_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		professor.ID,
		professor.FirstName,
		professor.LastName,
		professor.Email,
		professor.PhoneNumber,
		professor.DepartmentID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateEntityError("Professor with this email or phone number already exists")
		}
		return fmt.Errorf("error creating professor: %w", err)
	}

	return nil
}

// GetByID retrieves a professor by ID with department and courses loaded
func (r *ProfessorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Professor, error) {
	query := `
		SELECT id, first_name, last_name, email, phone_number, department_id
		FROM professors
		WHERE id = $1
	`

	var professor models.Professor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&professor.ID,
		&professor.FirstName,
		&professor.LastName,
		&professor.Email,
		&professor.PhoneNumber,
		&professor.DepartmentID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}

	if err := r.loadRelations(ctx, &professor); err != nil {
		return nil, err
	}

	return &professor, nil
}

// ExistsByID checks if a professor exists by ID
func (r *ProfessorRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM professors WHERE id = $1)`,
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking professor existence: %w", err)
	}

	return exists, nil
}

// ExistsByEmail checks if a professor exists by email
func (r *ProfessorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM professors WHERE email = $1)`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking professor existence: %w", err)
	}

	return exists, nil
}

// FindPage retrieves a page of professors with departments and courses
// loaded, plus the total professor count
func (r *ProfessorRepository) FindPage(ctx context.Context, offset uint64, limit int) ([]*models.Professor, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM professors`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting professors: %w", err)
	}

	query := `
		SELECT id, first_name, last_name, email, phone_number, department_id
		FROM professors
		ORDER BY last_name, first_name
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving professors: %w", err)
	}
	defer rows.Close()

	var professors []*models.Professor
	for rows.Next() {
		var professor models.Professor
		if err := rows.Scan(
			&professor.ID,
			&professor.FirstName,
			&professor.LastName,
			&professor.Email,
			&professor.PhoneNumber,
			&professor.DepartmentID,
		); err != nil {
			return nil, 0, err
		}
		professors = append(professors, &professor)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for _, professor := range professors {
		if err := r.loadRelations(ctx, professor); err != nil {
			return nil, 0, err
		}
	}

	return professors, total, nil
}

// Update overwrites a professor's mutable fields
func (r *ProfessorRepository) Update(ctx context.Context, professor *models.Professor) error {
	query := `
		UPDATE professors
		SET first_name = $1, last_name = $2, email = $3, phone_number = $4, department_id = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		professor.FirstName,
		professor.LastName,
		professor.Email,
		professor.PhoneNumber,
		professor.DepartmentID,
		professor.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateEntityError("Professor with this email or phone number already exists")
		}
		return fmt.Errorf("error updating professor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Professor not found")
	}

	return nil
}

// Delete removes a professor by ID. Their courses survive with the professor
// reference cleared by the FK's SET NULL.
func (r *ProfessorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM professors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting professor: %w", err)
	}

	return nil
}

func (r *ProfessorRepository) loadRelations(ctx context.Context, professor *models.Professor) error {
	if professor.DepartmentID != nil {
		var department models.Department
		err := r.db.QueryRow(ctx, `SELECT id, name FROM departments WHERE id = $1`, *professor.DepartmentID).
			Scan(&department.ID, &department.Name)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("error retrieving professor department: %w", err)
		}
		if err == nil {
			professor.Department = &department
		}
	}

	query := `
		SELECT id, title, department_id, professor_id
		FROM courses
		WHERE professor_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, professor.ID)
	if err != nil {
		return fmt.Errorf("error retrieving professor courses: %w", err)
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
		professor.Courses = append(professor.Courses, course)
	}

	return rows.Err()
}
