package models

import (
	"github.com/google/uuid"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	FirstName string          `json:"firstName" db:"first_name"`
	LastName  string          `json:"lastName" db:"last_name"`
	Email     string          `json:"email" db:"email"`
	Courses   []Course        `json:"courses,omitempty"` // inverse side of enrollment, no db tag
	Profile   *StudentProfile `json:"profile,omitempty"` // one-to-one, no db tag
}
