package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/bazario-go/apperror"
)

// UserService provides user listing and profile lookup.
type UserService struct {
	db *pgxpool.Pool
}

// NewUserService creates a new UserService.
func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

// normalizeRoleFilter validates and canonicalizes the role filter value.
// Accepted values are "seller", "buyer" and "all" (case-insensitive); an
// empty filter defaults to "all".
func normalizeRoleFilter(filter string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(filter))
	if normalized == "" {
		normalized = "all"
	}
	switch normalized {
	case "seller", "buyer", "all":
		return normalized, nil
	default:
		return "", apperror.NewValidationError("invalid role filter value, use 'seller', 'buyer', or 'all'", nil)
	}
}

// ListUsers returns users filtered by role name. An empty result is reported
// as not found, matching the external contract.
func (s *UserService) ListUsers(ctx context.Context, roleFilter string) ([]UserResponse, error) {
	filter, err := normalizeRoleFilter(roleFilter)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT u.id, u.name, u.email_id, u.phone_number, u.role_id, u.created_at
		FROM users u`
	var args []interface{}
	if filter != "all" {
		query += `
		JOIN roles r ON u.role_id = r.id
		WHERE lower(r.role_name) = $1`
		args = append(args, filter)
	}
	query += `
		ORDER BY u.id`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	defer rows.Close()

	var result []UserResponse
	for rows.Next() {
		user, err := scanUserRow(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan user", err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read users", err)
	}
	if len(result) == 0 {
		return nil, apperror.NewNotFoundError("no users found for the given filter", nil)
	}
	return result, nil
}

// GetProfile retrieves a user's profile by id.
func (s *UserService) GetProfile(ctx context.Context, userID int) (*UserResponse, error) {
	query := `
		SELECT id, name, email_id, phone_number, role_id, created_at
		FROM users
		WHERE id = $1`

	var user UserResponse
	var phone sql.NullString
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&phone,
		&user.RoleID,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("user with ID %d not found", userID), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user profile", err)
	}
	if phone.Valid {
		user.Phone = &phone.String
	}
	return &user, nil
}

func scanUserRow(rows pgx.Rows) (UserResponse, error) {
	var user UserResponse
	var phone sql.NullString
	err := rows.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&phone,
		&user.RoleID,
		&user.CreatedAt,
	)
	if err != nil {
		return UserResponse{}, err
	}
	if phone.Valid {
		user.Phone = &phone.String
	}
	return user, nil
}
