// Package users provides user listing and profile lookup.
// This file defines the DTOs for the users module.
package users

import "time"

// UserResponse represents a user row as returned by the listing and profile
// endpoints. The password hash is never part of this DTO.
type UserResponse struct {
	// The ID of the user
	// example: 1
	ID int `json:"id"`
	// The display name of the user
	// example: "Alice"
	Name string `json:"name"`
	// The login email of the user
	// example: "alice@example.com"
	Email string `json:"email_id"`
	// The optional phone number of the user
	// example: "+3712345678"
	Phone *string `json:"phone_number,omitempty"`
	// The id of the user's role
	// example: 2
	RoleID int `json:"role_id"`
	// The time the user was created
	// example: "2025-01-15T10:30:00Z"
	CreatedAt time.Time `json:"created_at"`
}
