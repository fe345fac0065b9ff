package auth

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/user/bazario-go/apperror"
	"github.com/user/bazario-go/config"
)

// AuthService orchestrates the identity workflow over the credential, OTP
// challenge and session audit stores. It is stateless between invocations;
// all state lives in the stores.
type AuthService struct {
	users      UserStore
	roles      RoleLookup
	otps       OTPStore
	sessions   SessionStore
	authConfig config.AuthConfig
	otpConfig  config.OTPConfig
}

// NewAuthService creates a new AuthService with its dependencies injected.
func NewAuthService(users UserStore, roles RoleLookup, otps OTPStore, sessions SessionStore,
	authConfig config.AuthConfig, otpConfig config.OTPConfig) *AuthService {
	return &AuthService{
		users:      users,
		roles:      roles,
		otps:       otps,
		sessions:   sessions,
		authConfig: authConfig,
		otpConfig:  otpConfig,
	}
}

// Register creates a new user and issues the first OTP challenge for it.
// It returns the created user and the issued code. The two writes are not
// wrapped in a transaction: if OTP issuance fails the user row persists in an
// unverifiable state, which is surfaced as an error rather than hidden.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, string, error) {
	roleID, err := s.roles.RoleIDByName(ctx, req.Role)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, "", apperror.NewValidationError("invalid role provided", nil)
		}
		return nil, "", apperror.NewDatabaseError("failed to look up role", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Name:           req.Name,
		Email:          strings.ToLower(req.Email),
		Phone:          req.Phone,
		HashedPassword: string(hashedPassword),
		RoleID:         roleID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if err == ErrDuplicateEmail {
			return nil, "", apperror.NewConflictError("user already exists", nil)
		}
		return nil, "", apperror.NewDatabaseError("failed to create user", err)
	}

	code := generateCode()
	now := time.Now()
	challenge := &OtpChallenge{
		UserID:      user.ID,
		Code:        code,
		GeneratedAt: now,
		ExpiresAt:   now.Add(s.otpConfig.TTL),
	}
	if err := s.otps.Issue(ctx, challenge); err != nil {
		// The user row already exists at this point and stays unverifiable
		// until a new challenge is issued for it.
		log.Printf("user %d created but OTP issuance failed: %v", user.ID, err)
		return nil, "", apperror.NewDatabaseError("failed to issue otp", err)
	}

	// Delivery is stubbed: a real deployment would send the code by email.
	log.Printf("OTP issued for user %d, expires at %s", user.ID, challenge.ExpiresAt.Format(time.RFC3339))

	return user, code, nil
}

// ValidateOTP verifies a submitted code against the user's most recent
// usable challenge. A mismatching code does not consume the challenge, so it
// stays retriable until expiry.
func (s *AuthService) ValidateOTP(ctx context.Context, req OTPValidationRequest) error {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if err == ErrUserNotFound {
			return apperror.NewNotFoundError("user not found", nil)
		}
		return apperror.NewDatabaseError("failed to get user", err)
	}

	challenge, err := s.otps.Eligible(ctx, user.ID, time.Now())
	if err != nil {
		if err == ErrNoEligibleChallenge {
			return apperror.NewBadRequestError("otp expired or not found", nil)
		}
		return apperror.NewDatabaseError("failed to look up otp challenge", err)
	}

	if challenge.Code != req.OTP {
		return apperror.NewBadRequestError("invalid otp", nil)
	}

	if err := s.otps.MarkValidated(ctx, challenge.ID); err != nil {
		return apperror.NewDatabaseError("failed to mark otp as validated", err)
	}
	return nil
}

// Login authenticates a user, appends a session audit entry and returns an
// access token. OTP verification state is not checked here; an unverified
// user can still log in.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if err == ErrUserNotFound {
			// Do not reveal whether the email or the password was wrong.
			return nil, apperror.NewAuthError("invalid credentials", nil)
		}
		log.Printf("database error in Login for %s: %v", req.Email, err)
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthError("invalid credentials", nil)
	}

	if err := s.sessions.Open(ctx, user.ID, time.Now()); err != nil {
		return nil, apperror.NewDatabaseError("failed to open session", err)
	}

	token, _, err := generateAccessToken(user.ID, user.RoleID, s.authConfig)
	if err != nil {
		return nil, apperror.NewInternalError("failed to generate token", err)
	}

	return &LoginResponse{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
		RoleID: user.RoleID,
	}, nil
}

// Logout closes the user's most recent open session audit entry.
func (s *AuthService) Logout(ctx context.Context, userID int) error {
	if err := s.sessions.Close(ctx, userID, time.Now()); err != nil {
		if err == ErrNoActiveSession {
			return apperror.NewNotFoundError("no active session found for this user", nil)
		}
		return apperror.NewDatabaseError("failed to close session", err)
	}
	return nil
}
