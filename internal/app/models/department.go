package models

// Department defines the department model based on the 'departments' table.
// A department owns professors and courses, but not exclusively: deleting a
// department does not cascade to them.
type Department struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
