package models

import (
	"github.com/google/uuid"
)

// Course defines the course model based on the 'courses' table.
// The student association lives in the 'enrollment' join table; the course
// side owns it.
type Course struct {
	ID           int64       `json:"id" db:"id"`
	Title        string      `json:"title" db:"title"`
	DepartmentID *int64      `json:"departmentId,omitempty" db:"department_id"`
	ProfessorID  *uuid.UUID  `json:"professorId,omitempty" db:"professor_id"`
	Department   *Department `json:"department,omitempty"` // relation, no db tag
}
