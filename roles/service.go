// Package roles exposes the role lookup table. Roles are referenced by the
// identity workflow but never mutated through this API.
package roles

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/bazario-go/apperror"
)

// Role maps an id to a role name, e.g. "seller" or "buyer".
type Role struct {
	ID       int    `json:"id"`
	RoleName string `json:"role_name"`
}

// Store provides read access to the roles table.
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a new roles Store.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// List returns all roles. An empty table is reported as not found, matching
// the external contract.
func (s *Store) List(ctx context.Context) ([]Role, error) {
	rows, err := s.db.Query(ctx, `SELECT id, role_name FROM roles ORDER BY id`)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list roles", err)
	}
	defer rows.Close()

	var result []Role
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.RoleName); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan role", err)
		}
		result = append(result, role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read roles", err)
	}
	if len(result) == 0 {
		return nil, apperror.NewNotFoundError("no roles found", nil)
	}
	return result, nil
}

// RoleIDByName resolves a role name to its id, matching case-insensitively.
func (s *Store) RoleIDByName(ctx context.Context, name string) (int, error) {
	var id int
	err := s.db.QueryRow(ctx,
		`SELECT id FROM roles WHERE lower(role_name) = lower($1)`, name,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.NewNotFoundError(fmt.Sprintf("role '%s' not found", name), nil)
		}
		return 0, apperror.NewDatabaseError("failed to look up role", err)
	}
	return id, nil
}
