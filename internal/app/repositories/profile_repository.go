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

// ProfileRepository handles database operations for student profiles
type ProfileRepository struct {
	db DBTX
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a new profile. The unique constraint on student_id keeps it
// to one profile per student.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.StudentProfile) error {
	query := `
		INSERT INTO student_profiles (id, address, phone_number, student_id)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, profile.ID, profile.Address, profile.PhoneNumber, profile.StudentID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("Profile already exists for this student")
		}
		return fmt.Errorf("error creating profile: %w", err)
	}

	return nil
}

// GetByStudentID retrieves the profile of a student
func (r *ProfileRepository) GetByStudentID(ctx context.Context, studentID uuid.UUID) (*models.StudentProfile, error) {
	query := `
		SELECT id, address, phone_number, student_id
		FROM student_profiles
		WHERE student_id = $1
	`

	var profile models.StudentProfile
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&profile.ID,
		&profile.Address,
		&profile.PhoneNumber,
		&profile.StudentID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return &profile, nil
}

// ExistsByStudentID checks if a student already has a profile
func (r *ProfileRepository) ExistsByStudentID(ctx context.Context, studentID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM student_profiles WHERE student_id = $1)`,
		studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking profile existence: %w", err)
	}

	return exists, nil
}
