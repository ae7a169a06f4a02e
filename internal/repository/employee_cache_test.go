package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/domain"
)

type countingEmployees struct {
	calls     int
	employees []domain.Employee
	err       error
}

func (c *countingEmployees) List(_ context.Context, _ EmployeeFilter) ([]domain.Employee, error) {
	c.calls++
	return c.employees, c.err
}

type mapCache struct {
	values  map[string][]byte
	getErr  error
	setErr  error
	lastTTL time.Duration
}

func newMapCache() *mapCache {
	return &mapCache{values: map[string][]byte{}}
}

func (m *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mapCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	m.lastTTL = ttl
	return nil
}

var sampleEmployees = []domain.Employee{
	{EmployeeID: "E001", Name: "Ada", Email: "ada@example.com", JobTitle: "Engineer", MonthlySalary: 5000, PictureURL: "/img/e001.png"},
	{EmployeeID: "E002", Name: "Bob", Email: "bob@example.com", JobTitle: "Analyst", MonthlySalary: 4200.5, PictureURL: "/img/e002.png"},
}

func TestCachedEmployees_ReadThrough(t *testing.T) {
	store := &countingEmployees{employees: sampleEmployees}
	cache := newMapCache()
	repo := NewCachedEmployeeRepository(store, cache, time.Minute, zap.NewNop())
	ctx := context.Background()

	first, err := repo.List(ctx, EmployeeFilter{})
	require.NoError(t, err)
	second, err := repo.List(ctx, EmployeeFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, store.calls)
	assert.Equal(t, sampleEmployees, first)
	assert.Equal(t, first, second)
	assert.Equal(t, time.Minute, cache.lastTTL)
}

func TestCachedEmployees_SearchKeyedSeparately(t *testing.T) {
	store := &countingEmployees{employees: sampleEmployees}
	repo := NewCachedEmployeeRepository(store, newMapCache(), time.Minute, zap.NewNop())
	ctx := context.Background()

	_, err := repo.List(ctx, EmployeeFilter{Search: "ada"})
	require.NoError(t, err)
	_, err = repo.List(ctx, EmployeeFilter{Search: " ADA "})
	require.NoError(t, err)
	_, err = repo.List(ctx, EmployeeFilter{})
	require.NoError(t, err)

	assert.Equal(t, 2, store.calls)
}

func TestCachedEmployees_CacheFailureFallsBack(t *testing.T) {
	store := &countingEmployees{employees: sampleEmployees}
	cache := newMapCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	repo := NewCachedEmployeeRepository(store, cache, time.Minute, zap.NewNop())

	got, err := repo.List(context.Background(), EmployeeFilter{})
	require.NoError(t, err)
	assert.Equal(t, sampleEmployees, got)
}

func TestCachedEmployees_StoreErrorNotCached(t *testing.T) {
	store := &countingEmployees{err: errors.New("db down")}
	cache := newMapCache()
	repo := NewCachedEmployeeRepository(store, cache, time.Minute, zap.NewNop())

	_, err := repo.List(context.Background(), EmployeeFilter{})
	require.Error(t, err)
	assert.Empty(t, cache.values)
}

func TestCachedEmployees_DisabledReturnsStore(t *testing.T) {
	store := &countingEmployees{}
	repo := NewCachedEmployeeRepository(store, newMapCache(), 0, zap.NewNop())
	assert.Same(t, store, repo)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
}
