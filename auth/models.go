// Package auth implements the user identity lifecycle: registration with OTP
// verification, login/logout with session auditing, and access token
// issuance.
package auth

import "time"

// User represents a registered user. The password is stored only as a bcrypt
// hash and is never serialized.
type User struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email_id"`
	Phone          *string   `json:"phone_number,omitempty"`
	HashedPassword string    `json:"-"` // Do not expose hashed password
	RoleID         int       `json:"role_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// OtpChallenge is a short-lived one-time code tied to a user. Challenges
// accumulate per user; validation always picks the most recently generated
// usable one.
type OtpChallenge struct {
	ID          int
	UserID      int
	Code        string
	GeneratedAt time.Time
	ExpiresAt   time.Time
	Validated   bool
}

// Usable reports whether the challenge can still be validated at the given
// time: not yet consumed and not past its expiry.
func (c *OtpChallenge) Usable(now time.Time) bool {
	return !c.Validated && now.Before(c.ExpiresAt)
}

// SessionAuditEntry is an append-only login/logout record. LogoutAt is nil
// while the session is open.
type SessionAuditEntry struct {
	UserID   int
	LoginAt  time.Time
	LogoutAt *time.Time
}
