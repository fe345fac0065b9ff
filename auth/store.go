package auth

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors returned by store implementations. The service maps these
// to the apperror taxonomy; fakes in tests return them directly.
var (
	// ErrDuplicateEmail is returned by UserStore.Create when the email is
	// already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrUserNotFound is returned by UserStore.FindByEmail when no user
	// matches.
	ErrUserNotFound = errors.New("user not found")
	// ErrNoEligibleChallenge is returned by OTPStore when no unvalidated,
	// unexpired challenge exists for the user.
	ErrNoEligibleChallenge = errors.New("no eligible otp challenge")
	// ErrNoActiveSession is returned by SessionStore.Close when the user has
	// no open session entry.
	ErrNoActiveSession = errors.New("no active session")
)

// UserStore persists credential records.
type UserStore interface {
	// Create inserts the user and fills in ID and CreatedAt.
	// Returns ErrDuplicateEmail if the email is taken.
	Create(ctx context.Context, user *User) error
	// FindByEmail returns the user with the given login email, or
	// ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// OTPStore persists one-time-code challenges.
type OTPStore interface {
	// Issue appends a new challenge and fills in its ID. Prior challenges for
	// the same user are left untouched.
	Issue(ctx context.Context, challenge *OtpChallenge) error
	// Eligible returns the most recently generated challenge for the user
	// that is unvalidated and unexpired at now, or ErrNoEligibleChallenge.
	Eligible(ctx context.Context, userID int, now time.Time) (*OtpChallenge, error)
	// MarkValidated consumes the challenge. A challenge can be consumed at
	// most once; consuming an already-validated challenge returns
	// ErrNoEligibleChallenge.
	MarkValidated(ctx context.Context, challengeID int) error
}

// SessionStore persists the append-only session audit log.
type SessionStore interface {
	// Open appends an entry with login=now and a null logout time. Any
	// already-open entries for the user are left open.
	Open(ctx context.Context, userID int, now time.Time) error
	// Close sets the logout time on the user's most recent open entry, or
	// returns ErrNoActiveSession.
	Close(ctx context.Context, userID int, now time.Time) error
}

// RoleLookup resolves a role name to its id. Implemented by roles.Store.
type RoleLookup interface {
	// RoleIDByName matches case-insensitively and returns an
	// apperror.NotFoundError when the role does not exist.
	RoleIDByName(ctx context.Context, name string) (int, error)
}
