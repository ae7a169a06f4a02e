package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-directory/internal/domain"
)

// EmployeeFilter narrows a directory listing.
type EmployeeFilter struct {
	// Search matches name, email or job title case-insensitively.
	Search string
}

// EmployeeRepository reads the employee directory.
type EmployeeRepository interface {
	List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error) {
	query := `
        SELECT e.employee_id, e.name, e.email, jt.job_title, s.monthly_salary::float8, p.url
        FROM employee e
        JOIN jobtitle jt ON e.job_id = jt.job_id
        JOIN salary s ON e.employee_id = s.employee_id
        JOIN picture p ON e.employee_id = p.employee_id`
	args := []any{}

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		query += ` WHERE e.name ILIKE $1 OR e.email ILIKE $1 OR jt.job_title ILIKE $1`
	}
	query += ` ORDER BY e.employee_id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Employee{}
	for rows.Next() {
		var emp domain.Employee
		if err := rows.Scan(
			&emp.EmployeeID,
			&emp.Name,
			&emp.Email,
			&emp.JobTitle,
			&emp.MonthlySalary,
			&emp.PictureURL,
		); err != nil {
			return nil, err
		}
		result = append(result, emp)
	}
	return result, rows.Err()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
