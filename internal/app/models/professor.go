package models

import (
	"github.com/google/uuid"
)

// Professor defines the professor model based on the 'professors' table
type Professor struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	FirstName    string      `json:"firstName" db:"first_name"`
	LastName     string      `json:"lastName" db:"last_name"`
	Email        string      `json:"email" db:"email"`
	PhoneNumber  string      `json:"phoneNumber" db:"phone_number"`
	DepartmentID *int64      `json:"departmentId,omitempty" db:"department_id"`
	Department   *Department `json:"department,omitempty"` // relation, no db tag
	Courses      []Course    `json:"courses,omitempty"`    // owned courses, no db tag
}
