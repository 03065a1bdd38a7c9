// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The role is fixed at creation:
// regular users register through the public endpoint, administrators are
// seeded or created out of band.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // Login identifier, stored lowercased.
	PasswordHash string    // Bcrypt hash of the user's password. Never exposed through the API.
	FullName     string    // The user's display name.
	Role         Role      // Either "user" or "admin".
	StateID      uint      // The user's home emirate, used as the default plan filter.
	State        *State    // The home emirate, populated on reads that join it.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user carries the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
