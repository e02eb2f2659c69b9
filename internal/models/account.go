package models

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty:
		return true
	}
	return false
}

// AccountDB represents a user account record.
// Accounts are never updated or deleted after registration.
type AccountDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key, monotonic
	Name         string    `json:"name" db:"name"`             // Full name
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	Role         Role      `json:"role" db:"role"`             // student or faculty, immutable
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`  // Registration timestamp
}
