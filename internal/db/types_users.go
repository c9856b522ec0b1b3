package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a platform user account
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	Role         string    `json:"role"`
	Specialty    string    `json:"specialty,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
