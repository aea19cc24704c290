package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-directory/internal/domain"
)

// UserRepository defines read access to directory accounts. This service only
// authenticates against the user table, it never writes to it.
type UserRepository interface {
	GetByEmailAndPhone(ctx context.Context, email, phone string) (*domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

// GetByEmailAndPhone matches email case-insensitively and phone exactly.
func (r *userRepository) GetByEmailAndPhone(ctx context.Context, email, phone string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, phone, is_admin
        FROM users WHERE LOWER(email)=LOWER($1) AND phone=$2`

	var user domain.User
	if err := r.pool.QueryRow(ctx, query, email, phone).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Admin,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
