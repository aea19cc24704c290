package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-directory/internal/domain"
)

const uniqueViolationCode = "23505"

// EmployeeRepository encapsulates employee persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

// Create inserts the record. The primary key constraint is the sole arbiter
// of identifier uniqueness; colliding inserts surface as a unique violation
// rather than being pre-checked.
func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (id, first_name, last_name, salary, designation)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		emp.ID,
		emp.FirstName,
		emp.LastName,
		emp.Salary,
		emp.Designation,
	)
	return err
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	const query = `
        UPDATE employees SET first_name=$1, last_name=$2, salary=$3, designation=$4
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Salary,
		emp.Designation,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes the record. Deleting an absent id reports pgx.ErrNoRows,
// not success.
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM employees WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	const query = `
        SELECT id, first_name, last_name, salary, designation
        FROM employees WHERE id=$1`

	var emp domain.Employee
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.FirstName,
		&emp.LastName,
		&emp.Salary,
		&emp.Designation,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}

// List returns every record ordered by identifier.
func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `
        SELECT id, first_name, last_name, salary, designation
        FROM employees ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var emp domain.Employee
		if err := rows.Scan(
			&emp.ID,
			&emp.FirstName,
			&emp.LastName,
			&emp.Salary,
			&emp.Designation,
		); err != nil {
			return nil, err
		}
		result = append(result, emp)
	}
	return result, rows.Err()
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
