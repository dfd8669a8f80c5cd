package models

// Role defines the role model based on the 'roles' table
type Role struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
