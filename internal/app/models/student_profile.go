package models

import (
	"github.com/google/uuid"
)

// StudentProfile defines the profile model based on the 'student_profiles'
// table. student_id carries a unique constraint: at most one profile per
// student.
type StudentProfile struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Address     string    `json:"address" db:"address"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	StudentID   uuid.UUID `json:"studentId" db:"student_id"`
}
