package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-directory/internal/domain"
)

// ErrDuplicate is returned when an insert collides with an existing identifier.
var ErrDuplicate = errors.New("duplicate record")

const uniqueViolation = "23505"

// AccountRepository is the credential store.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, employeeID string) error
	GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.AccountSummary, error)
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO users (employee_id, password_hash, access)
        VALUES ($1, $2, $3)`

	_, err := r.pool.Exec(ctx, query, account.EmployeeID, account.PasswordHash, account.Role)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}

func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	const query = `
        UPDATE users SET password_hash=$1, access=$2
        WHERE employee_id=$3`

	cmd, err := r.pool.Exec(ctx, query, account.PasswordHash, account.Role, account.EmployeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, employeeID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE employee_id=$1`, employeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Account, error) {
	const query = `
        SELECT employee_id, password_hash, access
        FROM users WHERE employee_id=$1`

	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, employeeID).Scan(
		&account.EmployeeID,
		&account.PasswordHash,
		&account.Role,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) List(ctx context.Context) ([]domain.AccountSummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT employee_id, access FROM users ORDER BY employee_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.AccountSummary{}
	for rows.Next() {
		var summary domain.AccountSummary
		if err := rows.Scan(&summary.EmployeeID, &summary.Role); err != nil {
			return nil, err
		}
		result = append(result, summary)
	}
	return result, rows.Err()
}
