package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-directory/internal/domain"
)

// VisitorLogRepository persists visitor registrations. The log is
// append-only.
type VisitorLogRepository interface {
	Append(ctx context.Context, entry *domain.VisitorLogEntry) error
	List(ctx context.Context) ([]domain.VisitorLogEntry, error)
}

type visitorLogRepository struct {
	pool *pgxpool.Pool
}

// NewVisitorLogRepository returns a Postgres-backed implementation.
func NewVisitorLogRepository(pool *pgxpool.Pool) VisitorLogRepository {
	return &visitorLogRepository{pool: pool}
}

func (r *visitorLogRepository) Append(ctx context.Context, entry *domain.VisitorLogEntry) error {
	const query = `
        INSERT INTO visitor_log (name, email, phone)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		entry.Name,
		entry.Email,
		entry.Phone,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *visitorLogRepository) List(ctx context.Context) ([]domain.VisitorLogEntry, error) {
	const query = `
        SELECT id, name, email, phone, created_at
        FROM visitor_log ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.VisitorLogEntry
	for rows.Next() {
		var entry domain.VisitorLogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.Email,
			&entry.Phone,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
