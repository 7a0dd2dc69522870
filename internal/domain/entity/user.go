// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a platform account. Business operators additionally carry the id of
// the business they manage; admins use the shared admin inbox.
type User struct {
	ID           uuid.UUID  `json:"id"`                    // The Global Unique Identifier (GUID) for the user.
	Name         string     `json:"name"`                  // Display name.
	Email        string     `json:"email"`                 // Login identifier, unique across the platform.
	PasswordHash string     `json:"-"`                     // Bcrypt hash of the login password. Never serialized.
	Role         Role       `json:"role"`                  // The account's role (user, business or admin).
	BusinessID   *uuid.UUID `json:"business_id,omitempty"` // The business this account operates. Nil unless Role is RoleBusiness.
	CreatedAt    time.Time  `json:"created_at"`            // Timestamp of when this account was created.
	UpdatedAt    time.Time  `json:"updated_at"`            // Timestamp of the last modification.
}
