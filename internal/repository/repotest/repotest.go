// Package repotest provides in-memory repositories for tests.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/repository"
)

// Accounts is an in-memory repository.AccountRepository. Setting Err makes
// every call fail with it.
type Accounts struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
	Err      error
}

var _ repository.AccountRepository = (*Accounts)(nil)

// NewAccounts seeds the store.
func NewAccounts(seed ...domain.Account) *Accounts {
	a := &Accounts{accounts: make(map[string]domain.Account, len(seed))}
	for _, acc := range seed {
		a.accounts[acc.EmployeeID] = acc
	}
	return a
}

func (a *Accounts) Create(_ context.Context, account *domain.Account) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return a.Err
	}
	if _, exists := a.accounts[account.EmployeeID]; exists {
		return repository.ErrDuplicate
	}
	a.accounts[account.EmployeeID] = *account
	return nil
}

func (a *Accounts) Update(_ context.Context, account *domain.Account) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return a.Err
	}
	if _, exists := a.accounts[account.EmployeeID]; !exists {
		return pgx.ErrNoRows
	}
	a.accounts[account.EmployeeID] = *account
	return nil
}

func (a *Accounts) Delete(_ context.Context, employeeID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return a.Err
	}
	if _, exists := a.accounts[employeeID]; !exists {
		return pgx.ErrNoRows
	}
	delete(a.accounts, employeeID)
	return nil
}

func (a *Accounts) GetByEmployeeID(_ context.Context, employeeID string) (*domain.Account, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return nil, a.Err
	}
	acc, exists := a.accounts[employeeID]
	if !exists {
		return nil, pgx.ErrNoRows
	}
	return &acc, nil
}

func (a *Accounts) List(_ context.Context) ([]domain.AccountSummary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return nil, a.Err
	}
	out := make([]domain.AccountSummary, 0, len(a.accounts))
	for _, acc := range a.accounts {
		out = append(out, domain.AccountSummary{EmployeeID: acc.EmployeeID, Role: acc.Role})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

// Employees is an in-memory repository.EmployeeRepository.
type Employees struct {
	Employees []domain.Employee
	Err       error
}

var _ repository.EmployeeRepository = (*Employees)(nil)

func (e *Employees) List(_ context.Context, filter repository.EmployeeFilter) ([]domain.Employee, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := []domain.Employee{}
	for _, emp := range e.Employees {
		if search != "" &&
			!strings.Contains(strings.ToLower(emp.Name), search) &&
			!strings.Contains(strings.ToLower(emp.Email), search) &&
			!strings.Contains(strings.ToLower(emp.JobTitle), search) {
			continue
		}
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}
