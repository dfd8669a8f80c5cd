package models

import (
	"github.com/google/uuid"
)

// User defines the user model based on the 'users' table
type User struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Username string    `json:"username" db:"username"`
	Password string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Enabled  bool      `json:"enabled" db:"enabled"`
	Roles    []Role    `json:"roles,omitempty"` // many-to-many via user_roles, no db tag
}

// HasRole reports whether the user's role set contains the given name
func (u *User) HasRole(name string) bool {
	for _, role := range u.Roles {
		if role.Name == name {
			return true
		}
	}
	return false
}
