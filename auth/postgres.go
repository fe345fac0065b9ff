package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// PostgresUserStore implements UserStore on a pgx pool.
type PostgresUserStore struct {
	db *pgxpool.Pool
}

// NewPostgresUserStore creates a new PostgresUserStore.
func NewPostgresUserStore(db *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) Create(ctx context.Context, user *User) error {
	query := `INSERT INTO users (name, email_id, phone_number, password, role_id)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`
	err := s.db.QueryRow(ctx, query,
		user.Name, user.Email, user.Phone, user.HashedPassword, user.RoleID,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "email") {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *PostgresUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, name, email_id, phone_number, password, role_id, created_at
	          FROM users
	          WHERE email_id = $1`
	var user User
	var phone sql.NullString
	err := s.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&phone,
		&user.HashedPassword,
		&user.RoleID,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if phone.Valid {
		user.Phone = &phone.String
	}
	return &user, nil
}

// PostgresOTPStore implements OTPStore on a pgx pool.
type PostgresOTPStore struct {
	db *pgxpool.Pool
}

// NewPostgresOTPStore creates a new PostgresOTPStore.
func NewPostgresOTPStore(db *pgxpool.Pool) *PostgresOTPStore {
	return &PostgresOTPStore{db: db}
}

func (s *PostgresOTPStore) Issue(ctx context.Context, challenge *OtpChallenge) error {
	query := `INSERT INTO users_otp_store (user_id, otp, generated_time, expiry_time, validated)
	          VALUES ($1, $2, $3, $4, FALSE)
	          RETURNING id`
	return s.db.QueryRow(ctx, query,
		challenge.UserID, challenge.Code, challenge.GeneratedAt, challenge.ExpiresAt,
	).Scan(&challenge.ID)
}

func (s *PostgresOTPStore) Eligible(ctx context.Context, userID int, now time.Time) (*OtpChallenge, error) {
	query := `SELECT id, user_id, otp, generated_time, expiry_time, validated
	          FROM users_otp_store
	          WHERE user_id = $1 AND validated = FALSE AND expiry_time > $2
	          ORDER BY generated_time DESC
	          LIMIT 1`
	var challenge OtpChallenge
	err := s.db.QueryRow(ctx, query, userID, now).Scan(
		&challenge.ID,
		&challenge.UserID,
		&challenge.Code,
		&challenge.GeneratedAt,
		&challenge.ExpiresAt,
		&challenge.Validated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoEligibleChallenge
		}
		return nil, err
	}
	return &challenge, nil
}

func (s *PostgresOTPStore) MarkValidated(ctx context.Context, challengeID int) error {
	// The validated = FALSE guard makes consumption idempotent at most once.
	tag, err := s.db.Exec(ctx,
		`UPDATE users_otp_store SET validated = TRUE WHERE id = $1 AND validated = FALSE`,
		challengeID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoEligibleChallenge
	}
	return nil
}

// PostgresSessionStore implements SessionStore on a pgx pool.
type PostgresSessionStore struct {
	db *pgxpool.Pool
}

// NewPostgresSessionStore creates a new PostgresSessionStore.
func NewPostgresSessionStore(db *pgxpool.Pool) *PostgresSessionStore {
	return &PostgresSessionStore{db: db}
}

func (s *PostgresSessionStore) Open(ctx context.Context, userID int, now time.Time) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO user_session_audit (id, login_time) VALUES ($1, $2)`,
		userID, now,
	)
	return err
}

func (s *PostgresSessionStore) Close(ctx context.Context, userID int, now time.Time) error {
	// Closes only the newest open entry; older open entries stay open.
	tag, err := s.db.Exec(ctx, `
		UPDATE user_session_audit
		SET logout_time = $2
		WHERE id = $1
		  AND logout_time IS NULL
		  AND login_time = (
		      SELECT max(login_time) FROM user_session_audit
		      WHERE id = $1 AND logout_time IS NULL
		  )`,
		userID, now,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoActiveSession
	}
	return nil
}
